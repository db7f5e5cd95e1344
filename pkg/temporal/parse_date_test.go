package temporal

import (
	"errors"
	"testing"
	"time"
	"worklog/pkg/terrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a Wednesday
var today = mkDate(2024, time.March, 13)

func TestParseNumericDate(t *testing.T) {
	assert := assert.New(t)

	t.Run("active format", func(t *testing.T) {
		for text, f := range map[string]DateFormat{
			"3/15/2024":  MiddleEndian,
			"15.3.2024":  LittleEndian,
			"2024-03-15": BigEndian,
			"3/15":       MiddleEndian,
			"15/3":       LittleEndian,
			"3-15":       BigEndian,
			"03/15/24":   MiddleEndian,
		} {
			prefs := &Prefs{Date: f}
			d, err := ParseDate(text, today, prefs)
			if assert.Nilf(err, "%s under %s", text, f) {
				assert.Equalf(mkDate(2024, time.March, 15), d, "%s under %s", text, f)
			}
			assert.Equal(f, prefs.Date)
		}
	})

	t.Run("valid under the active format is never ambiguous", func(t *testing.T) {
		prefs := &Prefs{Date: MiddleEndian}
		d, err := ParseDate("03/04/05", today, prefs)
		if assert.Nil(err) {
			assert.Equal(mkDate(2005, time.March, 4), d)
		}
		assert.Equal(MiddleEndian, prefs.Date)
	})

	t.Run("two digit years", func(t *testing.T) {
		prefs := &Prefs{Date: MiddleEndian}
		d, _ := ParseDate("1/2/49", today, prefs)
		assert.Equal(2049, d.Year)
		d, _ = ParseDate("1/2/50", today, prefs)
		assert.Equal(1950, d.Year)
		d, _ = ParseDate("1/2/150", today, prefs)
		assert.Equal(150, d.Year)
		d, _ = ParseDate("1/2/0049", today, prefs)
		assert.Equal(49, d.Year)
		d, _ = ParseDate("0005.01.02", today, &Prefs{Date: BigEndian})
		assert.Equal(5, d.Year)
	})

	t.Run("one alternate", func(t *testing.T) {
		prefs := &Prefs{Date: MiddleEndian}
		_, err := ParseDate("15/03/2024", today, prefs)
		require.ErrorIs(t, err, terrors.ErrAmbiguousDateFormat)
		var amb *AmbiguousDateError
		require.True(t, errors.As(err, &amb))
		if assert.Len(amb.Candidates, 1) {
			assert.Equal(Candidate{Format: LittleEndian, Date: mkDate(2024, time.March, 15)}, amb.Candidates[0])
		}
		assert.Equal(MiddleEndian, prefs.Date)

		assert.Equal(mkDate(2024, time.March, 15), prefs.Adopt(amb.Candidates[0]))
		assert.Equal(LittleEndian, prefs.Date)
		d, err := ParseDate("15/03/2024", today, prefs)
		if assert.Nil(err) {
			assert.Equal(mkDate(2024, time.March, 15), d)
		}
	})

	t.Run("several alternates", func(t *testing.T) {
		prefs := &Prefs{Date: BigEndian}
		_, err := ParseDate("05/03/2024", today, prefs)
		var amb *AmbiguousDateError
		require.True(t, errors.As(err, &amb))
		assert.Equal([]Candidate{
			{Format: LittleEndian, Date: mkDate(2024, time.March, 5)},
			{Format: MiddleEndian, Date: mkDate(2024, time.May, 3)},
		}, amb.Candidates)
		assert.Contains(err.Error(), "05/03/2024")
	})

	t.Run("failures", func(t *testing.T) {
		_, err := ParseDate("99/99/99", today, &Prefs{Date: MiddleEndian})
		assert.ErrorIs(err, terrors.ErrUnparsableDate)
		_, err = ParseDate("2/30/2024", today, &Prefs{Date: MiddleEndian})
		assert.ErrorIs(err, terrors.ErrUnparsableDate)
		_, err = ParseDate("3/15/2024", today, &Prefs{})
		assert.ErrorIs(err, terrors.ErrDateFormatUnset)
		_, err = ParseDate("3/15/2024", today, nil)
		assert.ErrorIs(err, terrors.ErrDateFormatUnset)
	})
}

func TestDateRoundTrip(t *testing.T) {
	assert := assert.New(t)
	dates := []Date{
		mkDate(2024, time.March, 15),
		mkDate(2024, time.February, 29),
		mkDate(1999, time.December, 31),
		mkDate(100, time.January, 1),
		mkDate(5, time.January, 1),
		mkDate(99, time.December, 31),
		mkDate(2001, time.October, 10),
	}
	for _, f := range []DateFormat{MiddleEndian, LittleEndian, BigEndian} {
		for _, d := range dates {
			text := FormatDate(d, f, true)
			got, err := ParseDate(text, today, &Prefs{Date: f})
			if assert.Nilf(err, "%s under %s", text, f) {
				assert.Equalf(d, got, "%s under %s", text, f)
			}
		}
	}
}

func TestParsePhraseDate(t *testing.T) {
	assert := assert.New(t)
	check := func(text string, want Date) {
		d, err := ParseDate(text, today, &Prefs{Date: MiddleEndian})
		if assert.Nilf(err, "text %q", text) {
			assert.Equalf(want, d, "text %q", text)
		}
	}

	t.Run("one word", func(t *testing.T) {
		check("today", today)
		check("Yesterday", mkDate(2024, time.March, 12))
		check("tomorrow", mkDate(2024, time.March, 14))
		// the weekday within this week, even when already past
		check("monday", mkDate(2024, time.March, 11))
		check("sun", mkDate(2024, time.March, 10))
		check("Sat", mkDate(2024, time.March, 16))
		check("wed", today)
	})

	t.Run("two words", func(t *testing.T) {
		check("march 15", mkDate(2024, time.March, 15))
		check("15th of march", mkDate(2024, time.March, 15))
		check("the fifth of May", mkDate(2024, time.May, 5))
		check("dec twenty-first", mkDate(2024, time.December, 21))
		check("next friday", mkDate(2024, time.March, 22))
		check("last tuesday", mkDate(2024, time.March, 5))
		check("this thu", mkDate(2024, time.March, 14))
	})

	t.Run("two words never change the format", func(t *testing.T) {
		prefs := &Prefs{Date: BigEndian}
		_, err := ParseDate("15 march", today, prefs)
		assert.Nil(err)
		assert.Equal(BigEndian, prefs.Date)
	})

	t.Run("three words", func(t *testing.T) {
		check("day after tomorrow", mkDate(2024, time.March, 15))
		check("the day before yesterday", mkDate(2024, time.March, 11))
		check("friday after next", mkDate(2024, time.March, 29))
		check("monday before last", mkDate(2024, time.February, 26))
		check("march twenty-first 2024", mkDate(2024, time.March, 21))
	})

	t.Run("three words set the format", func(t *testing.T) {
		for text, f := range map[string]DateFormat{
			"march 15th 2024":        MiddleEndian,
			"15 march 2024":          LittleEndian,
			"the 15th of March 2024": LittleEndian,
			"2024 mar 15":            BigEndian,
		} {
			prefs := &Prefs{}
			d, err := ParseDate(text, today, prefs)
			if assert.Nilf(err, "text %q", text) {
				assert.Equal(mkDate(2024, time.March, 15), d)
				assert.Equalf(f, prefs.Date, "text %q", text)
			}
		}
	})

	t.Run("failures leave prefs alone", func(t *testing.T) {
		for _, text := range []string{"", "someday", "feb 30", "march 15 1850", "a b c d", "next month", "day after yesterday"} {
			prefs := &Prefs{Date: LittleEndian}
			_, err := ParseDate(text, today, prefs)
			assert.ErrorIsf(err, terrors.ErrUnparsableDate, "text %q", text)
			assert.Equal(LittleEndian, prefs.Date)
		}
	})
}
