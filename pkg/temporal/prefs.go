package temporal

import (
	"fmt"
	"strings"
	"worklog/pkg/logging"
	"worklog/pkg/terrors"
)

type DateFormat int

const (
	DateUnset DateFormat = iota
	MiddleEndian
	LittleEndian
	BigEndian
)

var dateFormatNames = map[DateFormat]string{
	DateUnset:    "",
	MiddleEndian: "middle",
	LittleEndian: "little",
	BigEndian:    "big",
}

func (f DateFormat) String() string {
	return dateFormatNames[f]
}

// Layout is the component order, e.g. "M/D/Y"
func (f DateFormat) Layout() string {
	switch f {
	case MiddleEndian:
		return "M/D/Y"
	case LittleEndian:
		return "D/M/Y"
	case BigEndian:
		return "Y/M/D"
	}
	return ""
}

// ParseDateFormat accepts the config names ("middle") and the single
// letters M, L and B.
func ParseDateFormat(s string) (DateFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DateUnset, nil
	case "middle", "m", "mdy":
		return MiddleEndian, nil
	case "little", "l", "dmy":
		return LittleEndian, nil
	case "big", "b", "ymd":
		return BigEndian, nil
	}
	return DateUnset, fmt.Errorf("%w: %w: unknown date format '%s'", terrors.ErrParse, terrors.ErrValue, s)
}

// TimeFormat values double as their config representation.
type TimeFormat int

const (
	TimeUnset TimeFormat = 0
	Hour12    TimeFormat = 12
	Hour24    TimeFormat = 24
)

func ParseTimeFormat(n int) (TimeFormat, error) {
	switch TimeFormat(n) {
	case TimeUnset, Hour12, Hour24:
		return TimeFormat(n), nil
	}
	return TimeUnset, fmt.Errorf("%w: %w: unknown time format '%d'", terrors.ErrParse, terrors.ErrValue, n)
}

// Prefs is the caller-owned format context threaded through the parsers.
type Prefs struct {
	Date DateFormat
	Time TimeFormat
}

// Candidate is one reading of a numeric date under a non-active format.
type Candidate struct {
	Format DateFormat
	Date   Date
}

// AmbiguousDateError is returned when a numeric date does not fit the
// active format but does fit one or more of the others.
type AmbiguousDateError struct {
	Text       string
	Candidates []Candidate
}

func (e *AmbiguousDateError) Error() string {
	parts := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		parts[i] = fmt.Sprintf("%s as %s", c.Date, c.Format.Layout())
	}
	return fmt.Sprintf("%s: '%s' could be %s", terrors.ErrAmbiguousDateFormat, e.Text, strings.Join(parts, " or "))
}

func (e *AmbiguousDateError) Unwrap() error {
	return terrors.ErrAmbiguousDateFormat
}

// Adopt switches the date format to the one the caller confirmed.
func (p *Prefs) Adopt(c Candidate) Date {
	p.setDate(c.Format)
	return c.Date
}

func (p *Prefs) setDate(f DateFormat) {
	if p.Date == f {
		return
	}
	logging.Logger.Debugw("date format changed", "from", p.Date.String(), "to", f.String())
	p.Date = f
}

func (p *Prefs) setTime(f TimeFormat) {
	if p.Time == f {
		return
	}
	logging.Logger.Debugw("time format changed", "from", int(p.Time), "to", int(f))
	p.Time = f
}
