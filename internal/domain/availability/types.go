package availability

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("range start must not be after range end")
	ErrInvalidMonth     = errors.New("month must be YYYY-MM")
)

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = DateOnly(start)
	end = DateOnly(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days returns every date in the range in ascending order.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Month identifies one calendar month for ledger queries.
type Month struct {
	year  int
	month time.Month
}

func NewMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{year: t.Year(), month: t.Month()}, nil
}

func (m Month) String() string {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// Range covers the whole month as an inclusive date range.
func (m Month) Range() DateRange {
	start := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return DateRange{start: start, end: end}
}
