// Package lexicon resolves single words of user input into numbers,
// ordinals, month numbers and weekday numbers.
package lexicon

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"worklog/pkg/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// word forms of 0..20; the index is the value
var cardinals = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

var tens = map[string]int{
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60,
	"seventy": 70, "eighty": 80, "ninety": 90, "hundred": 100,
}

const thousand = 1000

// word forms of 1st..31st; index 0 is unused
var ordinals = []string{
	"zeroth", "first", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"eighth", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth",
	"nineteenth", "twentieth", "twenty-first", "twenty-second", "twenty-third",
	"twenty-fourth", "twenty-fifth", "twenty-sixth", "twenty-seventh",
	"twenty-eighth", "twenty-ninth", "thirtieth", "thirty-first",
}

// Sunday-based so that the index is the weekday number (Sunday=1)
var WeekdayNames = []string{
	"", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

type Kind int

const (
	Word Kind = iota // unresolved, Text holds the token
	Integer
	Fraction // any non-integer value: "half", "2/3", "1.5"
)

// Lexeme is either a resolved number or the unresolved token it came from.
type Lexeme struct {
	Kind  Kind
	Value decimal.Decimal
	Text  string
}

func word(text string) Lexeme {
	return Lexeme{Kind: Word, Text: text}
}

func integer(text string, n int64) Lexeme {
	return Lexeme{Kind: Integer, Value: decimal.NewFromInt(n), Text: text}
}

func (l Lexeme) IsNumber() bool {
	return l.Kind != Word
}

// Int returns the value of an Integer lexeme
func (l Lexeme) Int() (int, bool) {
	if l.Kind != Integer {
		return 0, false
	}
	return int(l.Value.IntPart()), true
}

// Is reports whether l is an unresolved word equal to any of words, ignoring case
func (l Lexeme) Is(words ...string) bool {
	if l.Kind != Word {
		return false
	}
	return slices.Contains(words, fold(l.Text))
}

func (l Lexeme) String() string {
	if l.Kind == Word {
		return l.Text
	}
	return l.Value.String()
}

// Cardinal converts digit strings and number words ("eleven",
// "twenty-three") into an Integer lexeme; anything else comes back as a Word.
func Cardinal(token string) Lexeme {
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return integer(token, n)
	}
	parts := strings.Split(fold(token), "-")
	vals := make([]int64, 0, len(parts))
	for _, part := range parts {
		n, ok := cardinalWord(part)
		if !ok {
			return word(token)
		}
		vals = append(vals, n)
	}
	switch len(vals) {
	case 1:
		return integer(token, vals[0])
	case 2:
		// only "<tens>-<unit>" is a valid compound; rejects "eleven-twelve"
		if vals[0] >= 20 && vals[0] <= 90 && vals[0]%10 == 0 && vals[1] >= 1 && vals[1] <= 9 {
			return integer(token, vals[0]+vals[1])
		}
	}
	return word(token)
}

func cardinalWord(w string) (int64, bool) {
	if ndx := slices.Index(cardinals, w); ndx != -1 {
		return int64(ndx), true
	}
	if n, ok := tens[w]; ok {
		return int64(n), true
	}
	if w == "thousand" {
		return thousand, true
	}
	return 0, false
}

// OrdinalWord maps "first".."thirty-first" and abbreviations such as
// "3rd" or "22nd" to their value.
func OrdinalWord(token string) (int, bool) {
	w := fold(token)
	if ndx := slices.Index(ordinals, w); ndx > 0 {
		return ndx, true
	}
	n := utils.RuneCount(w)
	if n < 3 {
		return 0, false
	}
	suffix := utils.RuneSlice(w, n-2)
	if !slices.Contains([]string{"st", "nd", "rd", "th"}, suffix) {
		return 0, false
	}
	digits := utils.RuneSlice(w, 0, n-2)
	if !utils.HasDigitsOnly(digits) {
		return 0, false
	}
	val, err := strconv.Atoi(digits)
	if err != nil || val < 1 {
		return 0, false
	}
	// "3st" and "1th" are not ordinals
	if !strings.HasSuffix(OrdinalString(val), suffix) {
		return 0, false
	}
	return val, true
}

// MonthName matches a month by case-insensitive prefix ("dec", "Sept").
// Tokens shorter than 3 letters never match.
func MonthName(token string) (time.Month, bool) {
	w := fold(token)
	if utils.RuneCount(w) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(fold(m.String()), w) {
			return m, true
		}
	}
	return 0, false
}

// WeekdayName matches a weekday by case-insensitive prefix ("tu", "Thurs")
// and returns its Sunday-based number. Single letters never match.
func WeekdayName(token string) (int, bool) {
	w := fold(token)
	if utils.RuneCount(w) < 2 {
		return 0, false
	}
	for ndx := 1; ndx < len(WeekdayNames); ndx++ {
		if strings.HasPrefix(fold(WeekdayNames[ndx]), w) {
			return ndx, true
		}
	}
	return 0, false
}

// OrdinalString abbreviates n as "1st", "12th", "23rd"
func OrdinalString(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	end := "th"
	if abs%100 < 11 || abs%100 > 13 {
		switch abs % 10 {
		case 1:
			end = "st"
		case 2:
			end = "nd"
		case 3:
			end = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, end)
}

// OrdinalName spells out 1..31 ("first", "twenty-second"); other values are abbreviated
func OrdinalName(n int) string {
	if n >= 1 && n < len(ordinals) {
		return ordinals[n]
	}
	return OrdinalString(n)
}
