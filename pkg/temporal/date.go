// Package temporal turns free text into calendar dates, clock times and
// durations. Date and time format preferences are owned by the caller and
// passed in as *Prefs; they are only changed by a successful parse.
package temporal

import (
	"fmt"
	"time"
	"worklog/pkg/lexicon"
	"worklog/pkg/terrors"
)

// Date is a timezone-free calendar day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", terrors.ErrValue, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", terrors.ErrValue, month)
	}
	if day < 1 || day > LastDayOfMonth(month, year) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", terrors.ErrValue, day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseISODate reads the "2006-01-02" form used on the command line
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %w: %w", terrors.ErrParse, terrors.ErrUnparsableDate, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() Weekday {
	return WeekdayOf(d.Time().Weekday())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday numbers days from Sunday=1 to Saturday=7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func WeekdayOf(wd time.Weekday) Weekday {
	return Weekday(wd) + 1
}

func (w Weekday) Valid() bool {
	return w >= Sunday && w <= Saturday
}

func (w Weekday) Std() time.Weekday {
	return time.Weekday(w - 1)
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return lexicon.WeekdayNames[w]
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d", terrors.ErrInvalidTime, hour, minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// Minutes since midnight
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func LastDayOfMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NthWeekdayOfMonth finds the nth wd of the month. The second return value
// is false when the month has no such day (a 5th Friday in February 2024).
func NthWeekdayOfMonth(wd Weekday, n int, month time.Month, year int) (Date, bool) {
	if !wd.Valid() || n < 1 {
		return Date{}, false
	}
	first := Date{Year: year, Month: month, Day: 1}.Weekday()
	day := 1 + (int(wd)-int(first)+7)%7 + 7*(n-1)
	if day > LastDayOfMonth(month, year) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}
