package harilibur

import "time"

// HariLibur is a holiday-period reference row. DateEnd nil means a single
// day. Type is the raw numeric code from the table; which code means a full
// holiday and which means Ramadan is configurable because historical data
// disagrees with itself.
type HariLibur struct {
	ID          int64
	HolidayName string
	Type        int
	DateStart   time.Time
	DateEnd     *time.Time
}

// End returns the inclusive end of the period, treating a missing end as a
// single-day period.
func (h HariLibur) End() time.Time {
	if h.DateEnd != nil {
		return *h.DateEnd
	}
	return h.DateStart
}
