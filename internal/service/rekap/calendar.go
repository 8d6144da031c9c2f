package rekap

import (
	"time"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
)

// PeriodKind distinguishes the two holiday-table semantics. A Holiday period
// removes its days from the working calendar; a Ramadan period keeps the days
// but relaxes the lateness threshold.
type PeriodKind int

const (
	KindHoliday PeriodKind = iota
	KindRamadan
)

// Period is a resolved holiday-table row with inclusive start and end days.
type Period struct {
	Start time.Time
	End   time.Time
	Kind  PeriodKind
	Name  string
}

// Covers reports whether day falls inside the period. Comparison is by
// calendar day, so callers must pass day truncated to midnight in the same
// zone the period dates were parsed in.
func (p Period) Covers(day time.Time) bool {
	return !day.Before(p.Start) && !day.After(p.End)
}

// Thresholds are the clock-in cutoffs as "HH:MM:SS" strings.
type Thresholds struct {
	Normal  string
	Ramadan string
}

// Engine evaluates the attendance calendar, thresholds and classification
// rules. It is pure: all reference data comes in as arguments and every
// date computation uses the injected civil timezone.
type Engine struct {
	loc        *time.Location
	thresholds Thresholds
}

func NewEngine(loc *time.Location, thresholds Thresholds) *Engine {
	return &Engine{loc: loc, thresholds: thresholds}
}

const dateLayout = "2006-01-02"

// PeriodsFromHariLibur maps raw holiday rows onto periods using the
// configured type codes. Rows with any other type code are ignored.
func PeriodsFromHariLibur(rows []harilibur.HariLibur, holidayCode, ramadanCode int) []Period {
	periods := make([]Period, 0, len(rows))
	for _, row := range rows {
		var kind PeriodKind
		switch row.Type {
		case holidayCode:
			kind = KindHoliday
		case ramadanCode:
			kind = KindRamadan
		default:
			continue
		}
		periods = append(periods, Period{
			Start: truncateDay(row.DateStart),
			End:   truncateDay(row.End()),
			Kind:  kind,
			Name:  row.HolidayName,
		})
	}
	return periods
}

// WorkingDays returns the ordered working days between start and end
// inclusive, formatted as "2006-01-02". A working day is Monday through
// Friday and not covered by a Holiday period. Ramadan periods never remove
// days.
func (e *Engine) WorkingDays(start, end time.Time, periods []Period) []string {
	var days []string
	for day := e.midnight(start); !day.After(e.midnight(end)); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			continue
		}
		if coveredBy(day, periods, KindHoliday) {
			continue
		}
		days = append(days, day.Format(dateLayout))
	}
	return days
}

// HolidayDates returns the weekday dates inside the range that a Holiday
// period removed from the working calendar.
func (e *Engine) HolidayDates(start, end time.Time, periods []Period) []string {
	var days []string
	for day := e.midnight(start); !day.After(e.midnight(end)); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			continue
		}
		if coveredBy(day, periods, KindHoliday) {
			days = append(days, day.Format(dateLayout))
		}
	}
	return days
}

// midnight re-anchors an arbitrary time to 00:00:00 of its calendar day in
// the engine's zone.
func (e *Engine) midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.loc)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func coveredBy(day time.Time, periods []Period, kind PeriodKind) bool {
	probe := truncateDay(day)
	for _, p := range periods {
		if p.Kind == kind && p.Covers(probe) {
			return true
		}
	}
	return false
}

func findPeriod(day time.Time, periods []Period, kind PeriodKind) (Period, bool) {
	probe := truncateDay(day)
	for _, p := range periods {
		if p.Kind == kind && p.Covers(probe) {
			return p, true
		}
	}
	return Period{}, false
}
