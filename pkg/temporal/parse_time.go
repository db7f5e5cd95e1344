package temporal

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"worklog/pkg/lexicon"
	"worklog/pkg/logging"
	"worklog/pkg/terrors"
	"worklog/pkg/utils"
)

var (
	amCueRegex       = regexp.MustCompile(`[\d\s]a\.?m?\.?$|morning`)
	pmCueRegex       = regexp.MustCompile(`[\d\s]p\.?m?\.?$|afternoon|evening|night`)
	cueSuffixRegex   = regexp.MustCompile(`([\d\s])[ap]\.?m?\.?$`)
	numericTimeRegex = regexp.MustCompile(`^(?:(\d{1,2}):(\d{1,2})|(\d{1,4}))\s?(?:[ap]\.?m?\.?)?$`)
	timeTokenRegex   = regexp.MustCompile(`[a-z]+|\d+`)
)

var timeFillers = []string{
	"a", "morning", "afternoon", "evening", "night",
	"in", "the", "at", "o", "clock", "oclock",
}

type meridiem int

const (
	noCue meridiem = iota
	am
	pm
)

type relation int

const (
	exact relation = iota
	past
	to
)

var relations = map[string]relation{
	"after": past, "past": past,
	"before": to, "until": to, "till": to, "til": to, "to": to,
}

// minute words allowed in "<minutes> past|to <hour>"
var minuteWords = map[string]int{"quarter": 15, "half": 30}

// reading is what the text says before the am/pm cue is applied
type reading struct {
	hour   int
	minute int
	rel    relation
	cue    meridiem
}

func cueOf(text string) meridiem {
	switch {
	case amCueRegex.MatchString(text):
		return am
	case pmCueRegex.MatchString(text):
		return pm
	}
	return noCue
}

// ParseTime reads "9:30", "930pm", "noon", "quarter to five",
// "twenty past nine in the evening", "half nine" and similar forms.
// An am/pm cue switches prefs to 12-hour time; an hour that only makes
// sense on a 24-hour clock switches it to 24-hour time.
func ParseTime(text string, prefs *Prefs) (Clock, error) {
	if prefs == nil {
		prefs = &Prefs{}
	}
	text = normalize(text)
	if text == "" {
		return Clock{}, fmt.Errorf("%w: %w", terrors.ErrInvalidTime, terrors.ErrEmptyText)
	}

	var r reading
	var ok bool
	if m := numericTimeRegex.FindStringSubmatch(text); m != nil {
		r, ok = numericReading(m)
	} else {
		r, ok = phraseReading(text)
	}
	if !ok {
		return Clock{}, fmt.Errorf("%w: '%s'", terrors.ErrInvalidTime, text)
	}
	if r.cue == noCue {
		r.cue = cueOf(text)
	}

	c, format, err := r.resolve(prefs.Time)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: '%s'", err, text)
	}
	if format != TimeUnset {
		prefs.setTime(format)
	}
	return c, nil
}

func numericReading(m []string) (reading, bool) {
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return reading{hour: h, minute: minute}, true
	}
	n, _ := strconv.Atoi(m[3])
	if len(m[3]) > 2 {
		return reading{hour: n / 100, minute: n % 100}, true
	}
	return reading{hour: n}, true
}

type timeToken struct {
	word   string
	num    int
	isNum  bool
	spoken bool
}

func timeTokens(text string) []timeToken {
	text = cueSuffixRegex.ReplaceAllString(text, "$1")
	var out []timeToken
	for _, w := range timeTokenRegex.FindAllString(text, -1) {
		if slices.Contains(timeFillers, w) {
			continue
		}
		tok := timeToken{word: w}
		if n, ok := lexicon.Cardinal(w).Int(); ok {
			tok.num, tok.isNum = n, true
			tok.spoken = !utils.HasDigitsOnly(w)
		}
		// "twenty five" is one number
		if n := len(out); n > 0 && tok.spoken && out[n-1].spoken &&
			out[n-1].num >= 20 && out[n-1].num <= 50 && out[n-1].num%10 == 0 &&
			tok.num >= 1 && tok.num <= 9 {
			out[n-1].num += tok.num
			out[n-1].word += "-" + w
			continue
		}
		out = append(out, tok)
	}
	return out
}

func (t timeToken) minutes() (int, bool) {
	if t.isNum {
		return t.num, true
	}
	n, ok := minuteWords[t.word]
	return n, ok
}

func phraseReading(text string) (reading, bool) {
	toks := timeTokens(text)
	switch len(toks) {
	case 1:
		switch {
		case toks[0].word == "noon":
			return reading{hour: 12, cue: pm}, true
		case toks[0].word == "midnight":
			return reading{hour: 12, cue: am}, true
		case toks[0].isNum:
			return reading{hour: toks[0].num}, true
		}
	case 2:
		if toks[0].word == "half" && toks[1].isNum {
			return reading{hour: toks[1].num, minute: 30}, true
		}
		if toks[0].isNum && toks[1].isNum {
			return reading{hour: toks[0].num, minute: toks[1].num}, true
		}
	case 3:
		rel, ok := relations[toks[1].word]
		if !ok || !toks[2].isNum {
			break
		}
		minute, ok := toks[0].minutes()
		if !ok {
			break
		}
		return reading{hour: toks[2].num, minute: minute, rel: rel}, true
	}
	return reading{}, false
}

// resolve applies the cue and the past/to offset. The returned format is
// the preference the reading implies, or TimeUnset when it implies none.
func (r reading) resolve(current TimeFormat) (Clock, TimeFormat, error) {
	h, m := r.hour, r.minute
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, TimeUnset, terrors.ErrInvalidTime
	}
	format := TimeUnset
	switch {
	case h > 12:
		format = Hour24
	case r.cue == pm:
		format = Hour12
		if h < 12 {
			h += 12
		}
	case r.cue == am:
		format = Hour12
		if h == 12 {
			h = 0
		}
	case h == 12 && current != Hour24:
		h = 0
	}

	if r.rel == to && m > 0 {
		h = (h + 23) % 24
		m = 60 - m
	}
	c, err := NewClock(h, m)
	if err != nil {
		return Clock{}, TimeUnset, err
	}
	logging.Logger.Debugw("time resolved", "hour", r.hour, "minute", r.minute, "cue", int(r.cue), "clock", c.String())
	return c, format, nil
}
