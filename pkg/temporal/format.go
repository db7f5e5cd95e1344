package temporal

import (
	"time"
)

var shortLayouts = map[DateFormat]string{
	MiddleEndian: "01/02/2006",
	LittleEndian: "02/01/2006",
	BigEndian:    "2006/01/02",
}

var longLayouts = map[DateFormat]string{
	MiddleEndian: "Monday, January 02, 2006",
	LittleEndian: "Monday, 02 January 2006",
	BigEndian:    "Monday, 2006 January 02",
}

// FormatDate renders d in the order of f; an unset format renders
// middle-endian. Short forms parse back through ParseDate under f.
func FormatDate(d Date, f DateFormat, short bool) string {
	if f == DateUnset {
		f = MiddleEndian
	}
	if short {
		return d.Time().Format(shortLayouts[f])
	}
	return d.Time().Format(longLayouts[f])
}

// FormatClock renders "3:05 PM" unless tf is 24-hour, then "15:05".
func FormatClock(c Clock, tf TimeFormat) string {
	if tf == Hour24 {
		return c.String()
	}
	return time.Date(2000, time.January, 1, c.Hour, c.Minute, 0, 0, time.UTC).Format("3:04 PM")
}
