package recurrence

import (
	"fmt"
	"slices"
	"time"
	"worklog/pkg/logging"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"
)

// Generate expands iv into every occurrence strictly after origin and on
// or before end, in ascending order. The origin itself is never included.
func Generate(origin temporal.Date, iv Interval, end temporal.Date) ([]temporal.Date, error) {
	if !end.After(origin) {
		return nil, fmt.Errorf("%w: %s is not after %s", terrors.ErrRecurrenceEndDateTooEarly, end, origin)
	}
	iv = iv.Normalize(origin)
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	// any step longer than the span lands past end; clamping keeps the
	// date arithmetic below from overflowing
	iv.Skip = min(iv.Skip, daysBetween(origin, end)+1)

	var out []temporal.Date
	switch iv.Unit {
	case Daily:
		out = daily(origin, iv.Skip, end)
	case Weekly:
		for _, wd := range iv.Weekdays {
			out = append(out, weekly(origin, wd, iv.Skip, end)...)
		}
	case Monthly:
		if len(iv.MonthDates) > 0 {
			out = monthlyByDate(origin, iv.MonthDates, iv.Skip, end)
		} else {
			out = monthlyByWeekday(origin, iv.Weekdays, iv.OrdinalWeeks, iv.Skip, end)
		}
	}
	slices.SortFunc(out, temporal.Date.Compare)
	out = slices.Compact(out)

	logging.Logger.Debugw("occurrences generated", "origin", origin.String(), "end", end.String(), "unit", iv.Unit.String(), "skip", iv.Skip, "count", len(out))
	return out, nil
}

func daysBetween(from, to temporal.Date) int {
	return int((to.Time().Unix() - from.Time().Unix()) / (24 * 60 * 60))
}

// Occurrences generates up to iv.End
func (iv Interval) Occurrences(origin temporal.Date) ([]temporal.Date, error) {
	return Generate(origin, iv, iv.End)
}

func daily(origin temporal.Date, skip int, end temporal.Date) []temporal.Date {
	var out []temporal.Date
	for d := origin.AddDays(skip); !d.After(end); d = d.AddDays(skip) {
		out = append(out, d)
	}
	return out
}

// weekly steps 7*skip days from the first wd after origin; when wd is the
// origin's own weekday the first one is a whole step away
func weekly(origin temporal.Date, wd temporal.Weekday, skip int, end temporal.Date) []temporal.Date {
	step := 7 * skip
	day, start := int(wd), int(origin.Weekday())
	var first temporal.Date
	switch {
	case day == start:
		first = origin.AddDays(step)
	case day > start:
		first = origin.AddDays(day - start)
	default:
		first = origin.AddDays(day - start + step)
	}
	var out []temporal.Date
	for d := first; !d.After(end); d = d.AddDays(step) {
		out = append(out, d)
	}
	return out
}

type monthCursor struct {
	year  int
	month time.Month
}

func (c monthCursor) first() temporal.Date {
	return temporal.Date{Year: c.year, Month: c.month, Day: 1}
}

func (c monthCursor) advance(months int) monthCursor {
	t := time.Date(c.year, c.month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	return monthCursor{year: t.Year(), month: t.Month()}
}

// eachMonth calls fn for the origin's month and every skip-th month after
// it until the month starts after end
func eachMonth(origin temporal.Date, skip int, end temporal.Date, fn func(monthCursor)) {
	for c := (monthCursor{origin.Year, origin.Month}); !c.first().After(end); c = c.advance(skip) {
		fn(c)
	}
}

func inRange(d, origin, end temporal.Date) bool {
	return d.After(origin) && !d.After(end)
}

// negative dates count back from the month's last day, which is
// recomputed for every month
func monthlyByDate(origin temporal.Date, dates []int, skip int, end temporal.Date) []temporal.Date {
	var out []temporal.Date
	eachMonth(origin, skip, end, func(c monthCursor) {
		last := temporal.LastDayOfMonth(c.month, c.year)
		for _, md := range dates {
			day := md
			if day < 0 {
				day = last + md + 1
			}
			if day < 1 || day > last {
				continue
			}
			d := temporal.Date{Year: c.year, Month: c.month, Day: day}
			if inRange(d, origin, end) {
				out = append(out, d)
			}
		}
	})
	return out
}

func monthlyByWeekday(origin temporal.Date, weekdays []temporal.Weekday, ordinals []int, skip int, end temporal.Date) []temporal.Date {
	var out []temporal.Date
	eachMonth(origin, skip, end, func(c monthCursor) {
		for _, n := range ordinals {
			for _, wd := range weekdays {
				d, ok := temporal.NthWeekdayOfMonth(wd, n, c.month, c.year)
				if ok && inRange(d, origin, end) {
					out = append(out, d)
				}
			}
		}
	})
	return out
}
