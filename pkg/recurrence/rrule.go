package recurrence

import (
	"fmt"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[temporal.Weekday]rrule.Weekday{
	temporal.Sunday:    rrule.SU,
	temporal.Monday:    rrule.MO,
	temporal.Tuesday:   rrule.TU,
	temporal.Wednesday: rrule.WE,
	temporal.Thursday:  rrule.TH,
	temporal.Friday:    rrule.FR,
	temporal.Saturday:  rrule.SA,
}

var rruleFreqs = map[Unit]rrule.Frequency{
	Daily:   rrule.DAILY,
	Weekly:  rrule.WEEKLY,
	Monthly: rrule.MONTHLY,
}

// RRule exports the interval as an RFC 5545 rule starting at origin and
// ending at end, both at midnight UTC. Weeks start on Sunday so that
// skipped weeks line up with Generate.
func (iv Interval) RRule(origin, end temporal.Date) (*rrule.RRule, error) {
	iv = iv.Normalize(origin)
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	opt := rrule.ROption{
		Freq:     rruleFreqs[iv.Unit],
		Interval: iv.Skip,
		Wkst:     rrule.SU,
		Dtstart:  origin.Time(),
		Until:    end.Time(),
	}
	switch iv.Unit {
	case Weekly:
		for _, wd := range iv.Weekdays {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[wd])
		}
	case Monthly:
		if len(iv.MonthDates) > 0 {
			opt.Bymonthday = iv.MonthDates
			break
		}
		for _, n := range iv.OrdinalWeeks {
			for _, wd := range iv.Weekdays {
				rwd := rruleWeekdays[wd]
				opt.Byweekday = append(opt.Byweekday, rwd.Nth(n))
			}
		}
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", terrors.ErrInvalidInterval, err)
	}
	return r, nil
}
