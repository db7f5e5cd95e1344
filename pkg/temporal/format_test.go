package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert := assert.New(t)
	d := mkDate(2024, time.March, 5)

	assert.Equal("03/05/2024", FormatDate(d, MiddleEndian, true))
	assert.Equal("05/03/2024", FormatDate(d, LittleEndian, true))
	assert.Equal("2024/03/05", FormatDate(d, BigEndian, true))
	assert.Equal("03/05/2024", FormatDate(d, DateUnset, true))

	assert.Equal("Tuesday, March 05, 2024", FormatDate(d, MiddleEndian, false))
	assert.Equal("Tuesday, 05 March 2024", FormatDate(d, LittleEndian, false))
	assert.Equal("Tuesday, 2024 March 05", FormatDate(d, BigEndian, false))
	assert.Equal("Tuesday, March 05, 2024", FormatDate(d, DateUnset, false))
}

func TestFormatClock(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("3:05 PM", FormatClock(Clock{15, 5}, Hour12))
	assert.Equal("3:05 PM", FormatClock(Clock{15, 5}, TimeUnset))
	assert.Equal("12:00 AM", FormatClock(Clock{0, 0}, Hour12))
	assert.Equal("12:30 PM", FormatClock(Clock{12, 30}, Hour12))
	assert.Equal("15:05", FormatClock(Clock{15, 5}, Hour24))
	assert.Equal("00:00", FormatClock(Clock{}, Hour24))
}

func TestFormatPrefs(t *testing.T) {
	assert := assert.New(t)
	for s, want := range map[string]DateFormat{"": DateUnset, "middle": MiddleEndian, "L": LittleEndian, "Big": BigEndian} {
		f, err := ParseDateFormat(s)
		if assert.Nil(err) {
			assert.Equal(want, f)
		}
	}
	_, err := ParseDateFormat("sideways")
	assert.Error(err)
	assert.Equal("D/M/Y", LittleEndian.Layout())
	assert.Equal("big", BigEndian.String())

	tf, err := ParseTimeFormat(24)
	if assert.Nil(err) {
		assert.Equal(Hour24, tf)
	}
	_, err = ParseTimeFormat(13)
	assert.Error(err)
}
