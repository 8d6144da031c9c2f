package rekap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/harilibur"
)

var wib = time.FixedZone("WIB", 7*3600)

func testEngine() *Engine {
	return NewEngine(wib, Thresholds{Normal: "07:31:00", Ramadan: "08:01:00"})
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(value string) *time.Time {
	t := day(value)
	return &t
}

func TestWorkingDays_WeekendExcluded(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// 2024-03-01 is a Friday, 03-02 and 03-03 the weekend.
	days := e.WorkingDays(day("2024-03-01"), day("2024-03-03"), nil)
	assert.Equal(t, []string{"2024-03-01"}, days)
}

func TestWorkingDays_HolidayRemovesDays(t *testing.T) {
	t.Parallel()
	e := testEngine()

	periods := PeriodsFromHariLibur([]harilibur.HariLibur{
		{HolidayName: "Cuti Bersama", Type: 2, DateStart: day("2024-03-12"), DateEnd: dayPtr("2024-03-13")},
	}, 2, 1)

	days := e.WorkingDays(day("2024-03-11"), day("2024-03-15"), periods)
	assert.Equal(t, []string{"2024-03-11", "2024-03-14", "2024-03-15"}, days)
}

func TestWorkingDays_RamadanKeepsDays(t *testing.T) {
	t.Parallel()
	e := testEngine()

	periods := PeriodsFromHariLibur([]harilibur.HariLibur{
		{HolidayName: "Ramadhan", Type: 1, DateStart: day("2024-03-11"), DateEnd: dayPtr("2024-04-09")},
	}, 2, 1)

	days := e.WorkingDays(day("2024-03-11"), day("2024-03-15"), periods)
	assert.Equal(t, []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14", "2024-03-15"}, days)
}

func TestWorkingDays_SingleDayHoliday(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// Nil end date means the period is just its start day.
	periods := PeriodsFromHariLibur([]harilibur.HariLibur{
		{HolidayName: "Nyepi", Type: 2, DateStart: day("2024-03-11")},
	}, 2, 1)

	days := e.WorkingDays(day("2024-03-11"), day("2024-03-12"), periods)
	assert.Equal(t, []string{"2024-03-12"}, days)
}

func TestPeriodsFromHariLibur_UnknownTypeSkipped(t *testing.T) {
	t.Parallel()

	periods := PeriodsFromHariLibur([]harilibur.HariLibur{
		{HolidayName: "Libur", Type: 2, DateStart: day("2024-03-11")},
		{HolidayName: "Ramadhan", Type: 1, DateStart: day("2024-03-12")},
		{HolidayName: "Entah", Type: 9, DateStart: day("2024-03-13")},
	}, 2, 1)

	require.Len(t, periods, 2)
	assert.Equal(t, KindHoliday, periods[0].Kind)
	assert.Equal(t, KindRamadan, periods[1].Kind)
}

func TestHolidayDates_WeekdayHolidaysOnly(t *testing.T) {
	t.Parallel()
	e := testEngine()

	// Period spans Friday 03-15 through Monday 03-18; only the weekday
	// parts show up as removed dates.
	periods := PeriodsFromHariLibur([]harilibur.HariLibur{
		{HolidayName: "Libur Panjang", Type: 2, DateStart: day("2024-03-15"), DateEnd: dayPtr("2024-03-18")},
	}, 2, 1)

	dates := e.HolidayDates(day("2024-03-11"), day("2024-03-22"), periods)
	assert.Equal(t, []string{"2024-03-15", "2024-03-18"}, dates)
}

func TestWorkingDays_EmptyWhenRangeAllWeekend(t *testing.T) {
	t.Parallel()
	e := testEngine()

	days := e.WorkingDays(day("2024-03-02"), day("2024-03-03"), nil)
	assert.Empty(t, days)
}
