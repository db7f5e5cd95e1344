package temporal

import (
	"fmt"
	"regexp"
	"strings"
	"worklog/pkg/lexicon"
	"worklog/pkg/terrors"

	"github.com/shopspring/decimal"
)

// Duration is a non-negative span normalised so that Hours < 24 and
// Minutes < 60.
type Duration struct {
	Days    int
	Hours   int
	Minutes int
}

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// MaxDuration is what "max" resolves to
var MaxDuration = Duration{Days: 999999999, Hours: 23, Minutes: 59}

var (
	// "45m", "2h", "1h30m", "1d2h5m"
	compoundRegex = regexp.MustCompile(`^(?:\d+[dhm])+$`)
	compoundPart  = regexp.MustCompile(`(\d+)([dhm])`)
)

var unitMinutes = map[byte]int64{
	'm': 1,
	'h': minutesPerHour,
	'd': minutesPerDay,
}

// NewDuration normalises a count of minutes; negative counts clamp to zero.
func NewDuration(minutes int64) Duration {
	if minutes < 0 {
		minutes = 0
	}
	return Duration{
		Days:    int(minutes / minutesPerDay),
		Hours:   int(minutes % minutesPerDay / minutesPerHour),
		Minutes: int(minutes % minutesPerHour),
	}
}

func (d Duration) TotalMinutes() int64 {
	return int64(d.Days)*minutesPerDay + int64(d.Hours)*minutesPerHour + int64(d.Minutes)
}

func (d Duration) IsZero() bool {
	return d == Duration{}
}

func (d Duration) String() string {
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	var parts []string
	if d.Days != 0 {
		parts = append(parts, plural(d.Days, "day"))
	}
	if d.Hours != 0 {
		parts = append(parts, plural(d.Hours, "hour"))
	}
	if d.Minutes != 0 || len(parts) == 0 {
		parts = append(parts, plural(d.Minutes, "minute"))
	}
	return strings.Join(parts, ", ")
}

// ParseDurationAbsolute reads spans such as "ninety-five minutes",
// "2 hours and a half", "half an hour", "1 1/2 days", "1h30m" or "max".
// Consecutive numbers add up and are assigned to the unit word that
// follows them; only the first letter of the unit word counts.
func ParseDurationAbsolute(text string) (Duration, error) {
	text = normalize(text)
	if text == "max" {
		return MaxDuration, nil
	}

	var (
		total        decimal.Decimal
		amount       decimal.Decimal
		pending      bool
		fractionOnly bool
		lastUnit     int64
		afterFrac    bool
	)
	for _, lex := range lexicon.NumberPhrase(text) {
		if lex.Is("and", "of") {
			continue
		}
		if lex.IsNumber() {
			// the article in "half an hour"
			if afterFrac && lex.Kind == lexicon.Integer && (lex.Text == "a" || lex.Text == "an") {
				continue
			}
			if !pending {
				fractionOnly = true
			}
			amount = amount.Add(lex.Value)
			pending = true
			afterFrac = lex.Kind == lexicon.Fraction
			fractionOnly = fractionOnly && afterFrac
			continue
		}
		afterFrac = false

		word := strings.Trim(lex.Text, ".,;")
		if compoundRegex.MatchString(word) {
			for _, m := range compoundPart.FindAllStringSubmatch(word, -1) {
				n, _ := decimal.NewFromString(m[1])
				lastUnit = unitMinutes[m[2][0]]
				total = total.Add(n.Mul(decimal.NewFromInt(lastUnit)))
			}
			amount, pending = decimal.Zero, false
			continue
		}
		if !pending || word == "" {
			continue
		}
		if mult, ok := unitMinutes[word[0]]; ok {
			total = total.Add(amount.Mul(decimal.NewFromInt(mult)))
			lastUnit = mult
			amount, pending = decimal.Zero, false
		}
	}
	if lastUnit == 0 {
		return Duration{}, fmt.Errorf("%w: '%s'", terrors.ErrNoDurationFound, text)
	}
	// "two hours and a half"
	if pending && fractionOnly {
		total = total.Add(amount.Mul(decimal.NewFromInt(lastUnit)))
	}

	minutes := total.Round(0)
	if minutes.IsNegative() {
		return Duration{}, fmt.Errorf("%w: '%s'", terrors.ErrNegativeDuration, text)
	}
	if minutes.GreaterThan(decimal.NewFromInt(MaxDuration.TotalMinutes())) {
		return Duration{}, fmt.Errorf("%w: '%s' exceeds %s", terrors.ErrValue, text, MaxDuration)
	}
	return NewDuration(minutes.IntPart()), nil
}

// ParseDurationRelative is the span from start to end on the same day.
func ParseDurationRelative(end, start Clock) (Duration, error) {
	diff := end.Minutes() - start.Minutes()
	if diff < 0 {
		return Duration{}, fmt.Errorf("%w: %s is before %s", terrors.ErrNegativeDuration, end, start)
	}
	return NewDuration(int64(diff)), nil
}

// ParseDuration treats text as an end time when it reads as one and
// measures from start; otherwise it falls back to ParseDurationAbsolute.
func ParseDuration(text string, start Clock, prefs *Prefs) (Duration, error) {
	if end, err := ParseTime(text, prefs); err == nil {
		return ParseDurationRelative(end, start)
	}
	return ParseDurationAbsolute(text)
}
