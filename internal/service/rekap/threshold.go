package rekap

import (
	"fmt"
	"time"
)

// DayContext names which rule produced a day's threshold.
type DayContext string

const (
	ContextNormal  DayContext = "normal"
	ContextWeekend DayContext = "weekend"
	ContextHoliday DayContext = "holiday"
	ContextRamadan DayContext = "ramadan"
)

// DailyThreshold is the resolved lateness rule for one calendar day.
// HasScoring false means the day carries no cutoff at all: check-ins still
// count as present but lateness is never computed.
type DailyThreshold struct {
	TimeOfDay   string
	HasScoring  bool
	Context     DayContext
	HolidayName string
}

// ThresholdFor resolves the lateness rule for one day. Weekend and Holiday
// days drop scoring entirely; a Holiday period wins over an overlapping
// Ramadan period; Ramadan relaxes the cutoff but keeps scoring on.
func (e *Engine) ThresholdFor(day time.Time, periods []Period) DailyThreshold {
	if isWeekend(day) {
		return DailyThreshold{Context: ContextWeekend}
	}
	if p, ok := findPeriod(day, periods, KindHoliday); ok {
		return DailyThreshold{Context: ContextHoliday, HolidayName: p.Name}
	}
	if _, ok := findPeriod(day, periods, KindRamadan); ok {
		return DailyThreshold{
			TimeOfDay:  e.thresholds.Ramadan,
			HasScoring: true,
			Context:    ContextRamadan,
		}
	}
	return DailyThreshold{
		TimeOfDay:  e.thresholds.Normal,
		HasScoring: true,
		Context:    ContextNormal,
	}
}

// ThresholdInstant anchors a "HH:MM:SS" cutoff on a calendar day in the
// engine's civil zone.
func (e *Engine) ThresholdInstant(day time.Time, timeOfDay string) (time.Time, error) {
	var h, m, s int
	if _, err := fmt.Sscanf(timeOfDay, "%d:%d:%d", &h, &m, &s); err != nil {
		return time.Time{}, fmt.Errorf("invalid threshold %q: %w", timeOfDay, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, e.loc), nil
}
