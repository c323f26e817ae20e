package accounting

import (
	"fmt"
	"time"
)

// Period is a named report date-range preset.
type Period string

const (
	PeriodLast7Days   Period = "last7"
	PeriodLast30Days  Period = "last30"
	PeriodLast90Days  Period = "last90"
	PeriodThisMonth   Period = "thisMonth"
	PeriodLastMonth   Period = "lastMonth"
	PeriodThisQuarter Period = "thisQuarter"
	PeriodLastQuarter Period = "lastQuarter"
	PeriodThisYear    Period = "thisYear"
)

// DateRange is a closed interval of dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports inclusive-interval membership.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Range resolves a period preset against "today". Quarter starts are the
// first day of month quarterIndex*3 where quarterIndex = month/3 (0-based).
func (p Period) Range(today time.Time) (DateRange, error) {
	end := today

	switch p {
	case PeriodLast7Days:
		return DateRange{Start: today.AddDate(0, 0, -7), End: end}, nil
	case PeriodLast30Days:
		return DateRange{Start: today.AddDate(0, 0, -30), End: end}, nil
	case PeriodLast90Days:
		return DateRange{Start: today.AddDate(0, 0, -90), End: end}, nil
	case PeriodThisMonth:
		return DateRange{Start: startOfMonth(today), End: end}, nil
	case PeriodLastMonth:
		prev := today.AddDate(0, -1, 0)
		return DateRange{Start: startOfMonth(prev), End: endOfMonth(prev)}, nil
	case PeriodThisQuarter:
		quarter := int(today.Month()-1) / 3
		start := time.Date(today.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: start, End: end}, nil
	case PeriodLastQuarter:
		quarter := int(today.Month()-1)/3 - 1
		year := today.Year()
		if quarter < 0 {
			quarter = 3
			year--
		}
		start := time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: start, End: endOfMonth(start.AddDate(0, 2, 0))}, nil
	case PeriodThisYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return DateRange{Start: start, End: end}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown period %q", p)
	}
}
