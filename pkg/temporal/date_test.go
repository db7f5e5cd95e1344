package temporal

import (
	"errors"
	"testing"
	"time"
	"worklog/pkg/terrors"

	"github.com/stretchr/testify/assert"
)

func mkDate(y int, m time.Month, d int) Date {
	return Date{Year: y, Month: m, Day: d}
}

func TestNewDate(t *testing.T) {
	assert := assert.New(t)
	d, err := NewDate(2024, time.February, 29)
	if assert.Nil(err) {
		assert.Equal(mkDate(2024, time.February, 29), d)
	}
	for _, bad := range [][3]int{{2023, 2, 29}, {2024, 13, 1}, {2024, 0, 1}, {2024, 4, 31}, {0, 1, 1}, {2024, 1, 0}} {
		_, err := NewDate(bad[0], time.Month(bad[1]), bad[2])
		assert.Truef(errors.Is(err, terrors.ErrValue), "%v", bad)
	}
}

func TestDateArithmetic(t *testing.T) {
	assert := assert.New(t)
	d := mkDate(2024, time.February, 28)
	assert.Equal(mkDate(2024, time.February, 29), d.AddDays(1))
	assert.Equal(mkDate(2024, time.March, 1), d.AddDays(2))
	assert.Equal(mkDate(2023, time.December, 31), mkDate(2024, time.January, 1).AddDays(-1))
	assert.True(d.Before(d.AddDays(1)))
	assert.True(d.AddDays(1).After(d))
	assert.Equal(0, d.Compare(mkDate(2024, time.February, 28)))
	assert.Equal("2024-02-28", d.String())
	assert.True(Date{}.IsZero())

	iso, err := ParseISODate("2024-03-15")
	if assert.Nil(err) {
		assert.Equal(mkDate(2024, time.March, 15), iso)
	}
	_, err = ParseISODate("15/03/2024")
	assert.ErrorIs(err, terrors.ErrUnparsableDate)
}

func TestWeekday(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Sunday, WeekdayOf(time.Sunday))
	assert.Equal(Saturday, WeekdayOf(time.Saturday))
	assert.Equal(Monday, mkDate(2024, time.January, 1).Weekday())
	assert.Equal(time.Wednesday, Wednesday.Std())
	assert.Equal("Thursday", Thursday.String())
	assert.False(Weekday(0).Valid())
	assert.False(Weekday(8).Valid())
}

func TestLastDayOfMonth(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(29, LastDayOfMonth(time.February, 2024))
	assert.Equal(28, LastDayOfMonth(time.February, 2023))
	assert.Equal(28, LastDayOfMonth(time.February, 1900))
	assert.Equal(29, LastDayOfMonth(time.February, 2000))
	assert.Equal(30, LastDayOfMonth(time.April, 2024))
	assert.Equal(31, LastDayOfMonth(time.December, 2024))
}

func TestNthWeekdayOfMonth(t *testing.T) {
	assert := assert.New(t)

	t.Run("no fifth friday in february 2024", func(t *testing.T) {
		_, ok := NthWeekdayOfMonth(Friday, 5, time.February, 2024)
		assert.False(ok)
	})

	t.Run("existing", func(t *testing.T) {
		d, ok := NthWeekdayOfMonth(Friday, 1, time.February, 2024)
		if assert.True(ok) {
			assert.Equal(mkDate(2024, time.February, 2), d)
		}
		d, ok = NthWeekdayOfMonth(Thursday, 5, time.February, 2024)
		if assert.True(ok) {
			assert.Equal(mkDate(2024, time.February, 29), d)
		}
		d, ok = NthWeekdayOfMonth(Monday, 2, time.January, 2024)
		if assert.True(ok) {
			assert.Equal(mkDate(2024, time.January, 8), d)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, ok := NthWeekdayOfMonth(Weekday(9), 1, time.January, 2024)
		assert.False(ok)
		_, ok = NthWeekdayOfMonth(Monday, 0, time.January, 2024)
		assert.False(ok)
	})
}

func TestClock(t *testing.T) {
	assert := assert.New(t)
	c, err := NewClock(23, 59)
	if assert.Nil(err) {
		assert.Equal(23*60+59, c.Minutes())
		assert.Equal("23:59", c.String())
	}
	_, err = NewClock(24, 0)
	assert.ErrorIs(err, terrors.ErrInvalidTime)
	_, err = NewClock(1, 60)
	assert.ErrorIs(err, terrors.ErrInvalidTime)
}
