package recurrence

import (
	"strings"
	"worklog/pkg/lexicon"
	"worklog/pkg/temporal"
)

// commaList joins "a, b and c"
func commaList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// every renders the "every other"/"every third" prefix of skip
func every(skip int) string {
	switch {
	case skip == 2:
		return "every other "
	case skip > 2:
		return "every " + lexicon.OrdinalName(skip) + " "
	}
	return "every "
}

func monthDateNames(dates []int) []string {
	var abs, rel []string
	for _, d := range dates {
		switch {
		case d > 0:
			abs = append(abs, lexicon.OrdinalString(d))
		case d == -1:
			rel = append(rel, "last day")
		case d == -2:
			rel = append(rel, "next to the last day")
		case d < 0:
			rel = append(rel, lexicon.OrdinalString(-d)+" to the last day")
		}
	}
	return append(abs, rel...)
}

func weekdayNames(days []temporal.Weekday) []string {
	out := make([]string, len(days))
	for i, wd := range days {
		out[i] = wd.String()
	}
	return out
}

// Describe renders the interval in plain English, e.g. "Recurs every
// other Monday and Friday." or "Recurs on the 1st and last day of every
// month."
func (iv Interval) Describe(origin temporal.Date) string {
	iv = iv.Normalize(origin)
	var sb strings.Builder
	switch iv.Unit {
	case Daily:
		sb.WriteString("Recurs ")
		sb.WriteString(every(iv.Skip))
		sb.WriteString("day")
	case Weekly:
		sb.WriteString("Recurs ")
		sb.WriteString(every(iv.Skip))
		sb.WriteString(commaList(weekdayNames(iv.Weekdays)))
	case Monthly:
		sb.WriteString("Recurs on the ")
		if len(iv.MonthDates) > 0 {
			sb.WriteString(commaList(monthDateNames(iv.MonthDates)))
		} else {
			ords := make([]string, len(iv.OrdinalWeeks))
			for i, n := range iv.OrdinalWeeks {
				ords[i] = lexicon.OrdinalName(n)
			}
			sb.WriteString(commaList(ords))
			sb.WriteString(" ")
			sb.WriteString(commaList(weekdayNames(iv.Weekdays)))
		}
		sb.WriteString(" of ")
		sb.WriteString(every(iv.Skip))
		sb.WriteString("month")
	default:
		return "Does not recur."
	}
	sb.WriteString(".")
	return sb.String()
}
