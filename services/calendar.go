package services

import (
	"fmt"
	"time"
)

type ViewType string

const (
	ViewTypeDay   ViewType = "day"
	ViewTypeWeek  ViewType = "week"
	ViewTypeMonth ViewType = "month"
)

// Business-rule constants. Weeks start on Sunday; graph views for week
// and month use a trailing window ending today instead of the aligned
// calendar period.
const (
	WeekStartDay       = time.Sunday
	DaysPerWeekWindow  = 7
	DaysPerMonthWindow = 30
	DateLayout         = "2006-01-02"
)

func ParseViewType(s string) (ViewType, error) {
	switch ViewType(s) {
	case ViewTypeDay, ViewTypeWeek, ViewTypeMonth:
		return ViewType(s), nil
	}
	return "", fmt.Errorf("invalid view type %q", s)
}

func dayStartUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateRange computes the half-open UTC window [start, end) for a
// calendar-aligned view. All integer offsets, including negative ones,
// are valid.
func CalculateRange(view ViewType, offset int, anchor time.Time) (start, end time.Time) {
	switch view {
	case ViewTypeWeek:
		day := dayStartUTC(anchor)
		sunday := day.AddDate(0, 0, -int(day.Weekday()-WeekStartDay))
		start = sunday.AddDate(0, 0, offset*DaysPerWeekWindow)
		end = start.AddDate(0, 0, DaysPerWeekWindow)
	case ViewTypeMonth:
		a := anchor.UTC()
		start = time.Date(a.Year(), a.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0)
	default: // day
		start = dayStartUTC(anchor).AddDate(0, 0, offset)
		end = start.AddDate(0, 0, 1)
	}
	return start, end
}

// TrailingRange computes the graph window: an N-day period ending at the
// anchor day (inclusive). offset shifts the window by whole periods, so
// offset -1 is the period immediately before the current one.
func TrailingRange(view ViewType, offset int, anchor time.Time) (start, end time.Time) {
	days := 1
	switch view {
	case ViewTypeWeek:
		days = DaysPerWeekWindow
	case ViewTypeMonth:
		days = DaysPerMonthWindow
	}
	end = dayStartUTC(anchor).AddDate(0, 0, 1+offset*days)
	start = end.AddDate(0, 0, -days)
	return start, end
}

// GraphRange picks the window used by the graph aggregator: the plain
// calendar day for day views, the trailing period for week/month views.
func GraphRange(view ViewType, offset int, anchor time.Time) (start, end time.Time) {
	if view == ViewTypeDay {
		return CalculateRange(view, offset, anchor)
	}
	return TrailingRange(view, offset, anchor)
}

// FillGaps produces one record per day in [start, end), in ascending
// order. Days without a matching input record get a placeholder. Input
// is assumed to hold at most one record per date.
func FillGaps[T any](records []T, start, end time.Time, dateOf func(T) string, placeholder func(date string) T) []T {
	idx := make(map[string]T, len(records))
	for _, r := range records {
		idx[dateOf(r)] = r
	}

	out := make([]T, 0, int(end.Sub(start).Hours()/24))
	for d := dayStartUTC(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(DateLayout)
		if r, ok := idx[key]; ok {
			out = append(out, r)
		} else {
			out = append(out, placeholder(key))
		}
	}
	return out
}
