// Package recurrence models how a task repeats and expands that model
// into the concrete dates of its occurrences.
package recurrence

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"worklog/pkg/lexicon"
	"worklog/pkg/temporal"
	"worklog/pkg/terrors"

	"github.com/go-playground/validator/v10"
)

type Unit int

const (
	Daily Unit = iota + 1
	Weekly
	Monthly
)

var unitNames = map[Unit]string{Daily: "daily", Weekly: "weekly", Monthly: "monthly"}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day", "days", "daily":
		return Daily, nil
	case "w", "week", "weeks", "weekly":
		return Weekly, nil
	case "m", "month", "months", "monthly":
		return Monthly, nil
	}
	return 0, fmt.Errorf("%w: %w: unknown unit '%s'", terrors.ErrParse, terrors.ErrValue, s)
}

// Interval describes a repeat pattern relative to an origin date.
//
// Weekly intervals use Weekdays. Monthly intervals use either MonthDates
// or Weekdays together with OrdinalWeeks. Daily intervals use neither.
type Interval struct {
	Unit         Unit               `validate:"min=1,max=3"`
	Skip         int                `validate:"min=1"`
	Weekdays     []temporal.Weekday `validate:"unique,dive,min=1,max=7"`
	OrdinalWeeks []int              `validate:"unique,dive,min=1,max=5"`
	MonthDates   []int              `validate:"unique,dive,min=-31,max=31,ne=0"`
	// inclusive, strictly after the origin
	End temporal.Date `validate:"-"`
}

var validate = validator.New()

// Normalize fills in the defaults: a skip of 1, the origin's weekday for
// a weekly interval and the origin's day of month for a monthly one.
func (iv Interval) Normalize(origin temporal.Date) Interval {
	iv.Weekdays = slices.Clone(iv.Weekdays)
	iv.OrdinalWeeks = slices.Clone(iv.OrdinalWeeks)
	iv.MonthDates = slices.Clone(iv.MonthDates)
	if iv.Skip == 0 {
		iv.Skip = 1
	}
	switch iv.Unit {
	case Weekly:
		if len(iv.Weekdays) == 0 {
			iv.Weekdays = []temporal.Weekday{origin.Weekday()}
		}
	case Monthly:
		if len(iv.Weekdays) == 0 && len(iv.OrdinalWeeks) == 0 && len(iv.MonthDates) == 0 {
			iv.MonthDates = []int{origin.Day}
		}
	}
	return iv
}

// Validate checks field ranges and that only the sets relevant to the
// unit are populated.
func (iv Interval) Validate() error {
	if err := validate.Struct(iv); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fe.Error()
			}
			return fmt.Errorf("%w: %s", terrors.ErrInvalidInterval, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", terrors.ErrInvalidInterval, err)
	}

	hasDays, hasOrds, hasDates := len(iv.Weekdays) > 0, len(iv.OrdinalWeeks) > 0, len(iv.MonthDates) > 0
	switch iv.Unit {
	case Daily:
		if hasDays || hasOrds || hasDates {
			return fmt.Errorf("%w: a daily interval takes no weekdays, ordinal weeks or dates", terrors.ErrInvalidInterval)
		}
	case Weekly:
		if !hasDays || hasOrds || hasDates {
			return fmt.Errorf("%w: a weekly interval takes weekdays only", terrors.ErrInvalidInterval)
		}
	case Monthly:
		byWeekday := hasDays && hasOrds
		if byWeekday == hasDates || hasDays != hasOrds {
			return fmt.Errorf("%w: a monthly interval takes either dates or weekdays with ordinal weeks", terrors.ErrInvalidInterval)
		}
	}
	return nil
}

var listSplitRegex = regexp.MustCompile(`[\s,;]+`)

func listTokens(text string) []string {
	var out []string
	for _, tok := range listSplitRegex.Split(strings.TrimSpace(text), -1) {
		if tok != "" && !strings.EqualFold(tok, "and") {
			out = append(out, tok)
		}
	}
	return out
}

func sortedUnique[T ~int](vals []T) []T {
	slices.Sort(vals)
	return slices.Compact(vals)
}

// ParseMonthDates reads a list such as "1, 15, last, -2" or "1st and 3rd".
// Negative numbers count back from the end of the month.
func ParseMonthDates(text string) ([]int, error) {
	var dates []int
	for _, tok := range listTokens(text) {
		var n int
		var ok bool
		if strings.EqualFold(tok, "last") {
			n, ok = -1, true
		} else if n, ok = lexicon.Cardinal(tok).Int(); !ok {
			n, ok = lexicon.OrdinalWord(tok)
		}
		if !ok || n == 0 || n < -31 || n > 31 {
			return nil, fmt.Errorf("%w: %w: invalid month date '%s'", terrors.ErrParse, terrors.ErrValue, tok)
		}
		dates = append(dates, n)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: no month dates in '%s'", terrors.ErrNoArgsProvided, text)
	}
	return sortedUnique(dates), nil
}

// ParseWeekdays reads a list of weekday names or abbreviations ("mon, thu").
func ParseWeekdays(text string) ([]temporal.Weekday, error) {
	var days []temporal.Weekday
	for _, tok := range listTokens(text) {
		n, ok := lexicon.WeekdayName(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %w: invalid weekday '%s'", terrors.ErrParse, terrors.ErrValue, tok)
		}
		days = append(days, temporal.Weekday(n))
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no weekdays in '%s'", terrors.ErrNoArgsProvided, text)
	}
	return sortedUnique(days), nil
}

// ParseOrdinalWeeks reads "1st, 3rd", "first and third" or "2 4".
func ParseOrdinalWeeks(text string) ([]int, error) {
	var weeks []int
	for _, tok := range listTokens(text) {
		n, ok := lexicon.OrdinalWord(tok)
		if !ok {
			n, ok = lexicon.Cardinal(tok).Int()
		}
		if !ok || n < 1 || n > 5 {
			return nil, fmt.Errorf("%w: %w: invalid ordinal week '%s'", terrors.ErrParse, terrors.ErrValue, tok)
		}
		weeks = append(weeks, n)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("%w: no ordinal weeks in '%s'", terrors.ErrNoArgsProvided, text)
	}
	return sortedUnique(weeks), nil
}
