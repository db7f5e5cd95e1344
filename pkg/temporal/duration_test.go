package temporal

import (
	"testing"
	"worklog/pkg/terrors"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationAbsolute(t *testing.T) {
	assert := assert.New(t)

	t.Run("valid", func(t *testing.T) {
		for text, want := range map[string]Duration{
			"ninety-five minutes":      {0, 1, 35},
			"2 hours and a half":       {0, 2, 30},
			"an hour and a half":       {0, 1, 30},
			"half an hour":             {0, 0, 30},
			"a quarter of an hour":     {0, 0, 15},
			"two thirds of an hour":    {0, 0, 40},
			"1 1/2 days":               {1, 12, 0},
			"1h30m":                    {0, 1, 30},
			"45m":                      {0, 0, 45},
			"3 days, 4 hours, 5 mins":  {3, 4, 5},
			"1.5 hours":                {0, 1, 30},
			"twenty five minutes":      {0, 0, 25},
			"90 minutes and 2 hours":   {0, 3, 30},
			"0 minutes":                {0, 0, 0},
			"1 day 30 hours":           {2, 6, 0},
			"max":                      MaxDuration,
			"MAX":                      MaxDuration,
		} {
			d, err := ParseDurationAbsolute(text)
			if assert.Nilf(err, "text %q", text) {
				assert.Equalf(want, d, "text %q", text)
			}
		}
	})

	t.Run("no unit", func(t *testing.T) {
		for _, text := range []string{"", "some time", "45", "five apples"} {
			_, err := ParseDurationAbsolute(text)
			assert.ErrorIsf(err, terrors.ErrNoDurationFound, "text %q", text)
		}
	})

	t.Run("negative", func(t *testing.T) {
		_, err := ParseDurationAbsolute("-5 minutes")
		assert.ErrorIs(err, terrors.ErrNegativeDuration)
		d, err := ParseDurationAbsolute("2 hours -30 minutes")
		if assert.Nil(err) {
			assert.Equal(Duration{0, 1, 30}, d)
		}
	})

	t.Run("too long", func(t *testing.T) {
		_, err := ParseDurationAbsolute("1000000000 days")
		assert.ErrorIs(err, terrors.ErrValue)
	})
}

func TestParseDurationRelative(t *testing.T) {
	assert := assert.New(t)
	d, err := ParseDurationRelative(Clock{10, 30}, Clock{9, 15})
	if assert.Nil(err) {
		assert.Equal(Duration{0, 1, 15}, d)
	}
	d, err = ParseDurationRelative(Clock{9, 15}, Clock{9, 15})
	if assert.Nil(err) {
		assert.True(d.IsZero())
	}
	_, err = ParseDurationRelative(Clock{9, 0}, Clock{9, 15})
	assert.ErrorIs(err, terrors.ErrNegativeDuration)
}

func TestParseDuration(t *testing.T) {
	assert := assert.New(t)
	start := Clock{9, 0}

	d, err := ParseDuration("10:30", start, &Prefs{})
	if assert.Nil(err) {
		assert.Equal(Duration{0, 1, 30}, d)
	}
	d, err = ParseDuration("quarter past five pm", start, &Prefs{})
	if assert.Nil(err) {
		assert.Equal(Duration{0, 8, 15}, d)
	}
	d, err = ParseDuration("45 minutes", start, &Prefs{})
	if assert.Nil(err) {
		assert.Equal(Duration{0, 0, 45}, d)
	}
	_, err = ParseDuration("8:00", start, &Prefs{})
	assert.ErrorIs(err, terrors.ErrNegativeDuration)
}

func TestDurationString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("1 day, 2 hours, 5 minutes", Duration{1, 2, 5}.String())
	assert.Equal("0 minutes", Duration{}.String())
	assert.Equal("1 hour", Duration{0, 1, 0}.String())
	assert.Equal("2 days, 1 minute", Duration{2, 0, 1}.String())
	assert.Equal(int64(1505), NewDuration(1505).TotalMinutes())
	assert.Equal(Duration{1, 1, 5}, NewDuration(1505))
	assert.True(NewDuration(-3).IsZero())
}
