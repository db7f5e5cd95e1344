package temporal

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"worklog/pkg/lexicon"
	"worklog/pkg/logging"
	"worklog/pkg/terrors"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	numericDateRegex = regexp.MustCompile(`^(\d{1,4})[-/.](\d{1,4})(?:[-/.](\d{1,4}))?$`)
	// hyphenated words ("twenty-first") stay whole
	wordRegex = regexp.MustCompile(`[\p{L}\p{N}]+(?:-[\p{L}\p{N}]+)*`)
)

var dateFillers = []string{"the", "of"}

// alternates are tried in this order after the active format fails
var alternateFormats = []DateFormat{LittleEndian, MiddleEndian, BigEndian}

func normalize(text string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(text)))
}

// ParseDate reads a numeric date ("3/15", "15.03.2024", "2024-3-15") or a
// phrase ("tomorrow", "next friday", "march 15th 2024") relative to today.
//
// A numeric date that only fits formats other than prefs.Date yields an
// *AmbiguousDateError carrying every reading; a numeric date with no date
// format set yields terrors.ErrDateFormatUnset.
func ParseDate(text string, today Date, prefs *Prefs) (Date, error) {
	if prefs == nil {
		prefs = &Prefs{}
	}
	text = normalize(text)
	if text == "" {
		return Date{}, fmt.Errorf("%w: %w", terrors.ErrUnparsableDate, terrors.ErrEmptyText)
	}
	if m := numericDateRegex.FindStringSubmatch(text); m != nil {
		return parseNumericDate(text, m[1:], today, prefs)
	}
	return parsePhraseDate(text, today, prefs)
}

func parseNumericDate(text string, groups []string, today Date, prefs *Prefs) (Date, error) {
	if prefs.Date == DateUnset {
		return Date{}, fmt.Errorf("%w: '%s'", terrors.ErrDateFormatUnset, text)
	}
	var nums []string
	for _, g := range groups {
		if g != "" {
			nums = append(nums, g)
		}
	}

	if d, ok := prefs.Date.build(nums, today.Year); ok {
		return d, nil
	}
	var candidates []Candidate
	for _, f := range alternateFormats {
		if f == prefs.Date {
			continue
		}
		if d, ok := f.build(nums, today.Year); ok {
			candidates = append(candidates, Candidate{Format: f, Date: d})
		}
	}
	if len(candidates) == 0 {
		return Date{}, fmt.Errorf("%w: '%s'", terrors.ErrUnparsableDate, text)
	}
	logging.Logger.Debugw("numeric date does not fit active format", "text", text, "format", prefs.Date.String(), "candidates", len(candidates))
	return Date{}, &AmbiguousDateError{Text: text, Candidates: candidates}
}

// build orders the digit groups per f, inserting year when only two are
// given. Only a year typed with one or two digits is expanded.
func (f DateFormat) build(nums []string, year int) (Date, bool) {
	parts := slices.Clone(nums)
	if len(parts) == 2 {
		yearText := fmt.Sprintf("%04d", year)
		if f == BigEndian {
			parts = slices.Insert(parts, 0, yearText)
		} else {
			parts = append(parts, yearText)
		}
	}
	if len(parts) != 3 {
		return Date{}, false
	}
	var yearText, monthText, dayText string
	switch f {
	case MiddleEndian:
		monthText, dayText, yearText = parts[0], parts[1], parts[2]
	case LittleEndian:
		dayText, monthText, yearText = parts[0], parts[1], parts[2]
	case BigEndian:
		yearText, monthText, dayText = parts[0], parts[1], parts[2]
	default:
		return Date{}, false
	}
	y, err := strconv.Atoi(yearText)
	if err != nil {
		return Date{}, false
	}
	if len(yearText) <= 2 {
		y = expandYear(y)
	}
	m, err := strconv.Atoi(monthText)
	if err != nil {
		return Date{}, false
	}
	d, err := strconv.Atoi(dayText)
	if err != nil {
		return Date{}, false
	}
	date, err := NewDate(y, time.Month(m), d)
	return date, err == nil
}

// expandYear maps two digit years to 2000-2049 and 1950-1999
func expandYear(y int) int {
	if y < 50 {
		return 2000 + y
	}
	return 1900 + y
}

// dateRule is one phrase form. match reports false to pass the words on
// to the next rule.
type dateRule struct {
	name  string
	words int
	match func(words []string, today Date, prefs *Prefs) (Date, bool)
}

var dateRules = []dateRule{
	{"relative day", 1, matchRelativeDay},
	{"weekday", 1, matchWeekday},
	{"month day", 2, matchMonthDay},
	{"this/last/next weekday", 2, matchShiftedWeekday},
	{"month day year", 3, matchMonthDayYear},
	{"two days out", 3, matchTwoDaysOut},
	{"two weeks out", 3, matchTwoWeeksOut},
}

func parsePhraseDate(text string, today Date, prefs *Prefs) (Date, error) {
	var words []string
	for _, w := range wordRegex.FindAllString(text, -1) {
		if !slices.Contains(dateFillers, w) {
			words = append(words, w)
		}
	}
	for _, rule := range dateRules {
		if rule.words != len(words) {
			continue
		}
		if d, ok := rule.match(words, today, prefs); ok {
			logging.Logger.Debugw("date phrase matched", "text", text, "rule", rule.name, "date", d.String())
			return d, nil
		}
	}
	return Date{}, fmt.Errorf("%w: '%s'", terrors.ErrUnparsableDate, text)
}

// inWeek is the day of wd within the Sunday-start week containing today
func inWeek(today Date, wd Weekday) Date {
	return today.AddDays(int(wd) - int(today.Weekday()))
}

func weekdayWord(w string) (Weekday, bool) {
	n, ok := lexicon.WeekdayName(w)
	return Weekday(n), ok
}

func dayWord(w string) (int, bool) {
	if n, ok := lexicon.Cardinal(w).Int(); ok {
		return n, true
	}
	return lexicon.OrdinalWord(w)
}

func yearWord(w string) (int, bool) {
	n, ok := lexicon.Cardinal(w).Int()
	if !ok || n < 1900 || n > 2100 {
		return 0, false
	}
	return n, true
}

func matchRelativeDay(words []string, today Date, _ *Prefs) (Date, bool) {
	switch words[0] {
	case "today":
		return today, true
	case "yesterday":
		return today.AddDays(-1), true
	case "tomorrow":
		return today.AddDays(1), true
	}
	return Date{}, false
}

func matchWeekday(words []string, today Date, _ *Prefs) (Date, bool) {
	wd, ok := weekdayWord(words[0])
	if !ok {
		return Date{}, false
	}
	return inWeek(today, wd), true
}

// month and day in either order, in the current year; never touches prefs
func matchMonthDay(words []string, today Date, _ *Prefs) (Date, bool) {
	for _, pair := range [][2]string{{words[0], words[1]}, {words[1], words[0]}} {
		m, ok := lexicon.MonthName(pair[0])
		if !ok {
			continue
		}
		day, ok := dayWord(pair[1])
		if !ok {
			continue
		}
		if d, err := NewDate(today.Year, m, day); err == nil {
			return d, true
		}
	}
	return Date{}, false
}

var weekShift = map[string]int{"this": 0, "last": -1, "next": 1}

func matchShiftedWeekday(words []string, today Date, _ *Prefs) (Date, bool) {
	shift, ok := weekShift[words[0]]
	if !ok {
		return Date{}, false
	}
	wd, ok := weekdayWord(words[1])
	if !ok {
		return Date{}, false
	}
	return inWeek(today, wd).AddDays(7 * shift), true
}

// month, day and year in M-D-Y, D-M-Y or Y-M-D order; the order that
// matches becomes the date format
func matchMonthDayYear(words []string, _ Date, prefs *Prefs) (Date, bool) {
	orders := []struct {
		format           DateFormat
		month, day, year int
	}{
		{MiddleEndian, 0, 1, 2},
		{LittleEndian, 1, 0, 2},
		{BigEndian, 1, 2, 0},
	}
	for _, o := range orders {
		m, ok := lexicon.MonthName(words[o.month])
		if !ok {
			continue
		}
		day, ok := dayWord(words[o.day])
		if !ok {
			continue
		}
		y, ok := yearWord(words[o.year])
		if !ok {
			continue
		}
		d, err := NewDate(y, m, day)
		if err != nil {
			continue
		}
		prefs.setDate(o.format)
		return d, true
	}
	return Date{}, false
}

func matchTwoDaysOut(words []string, today Date, _ *Prefs) (Date, bool) {
	switch strings.Join(words, " ") {
	case "day after tomorrow":
		return today.AddDays(2), true
	case "day before yesterday":
		return today.AddDays(-2), true
	}
	return Date{}, false
}

func matchTwoWeeksOut(words []string, today Date, _ *Prefs) (Date, bool) {
	wd, ok := weekdayWord(words[0])
	if !ok {
		return Date{}, false
	}
	switch words[1] + " " + words[2] {
	case "before last":
		return inWeek(today, wd).AddDays(-14), true
	case "after next":
		return inWeek(today, wd).AddDays(14), true
	}
	return Date{}, false
}
