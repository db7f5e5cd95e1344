package lexicon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

var (
	// a '-' at the start or after whitespace is a sign, anywhere else it joins words
	signRegex     = regexp.MustCompile(`(^|\s)-`)
	splitRegex    = regexp.MustCompile(`[\s-]+`)
	fractionRegex = regexp.MustCompile(`^(\d+)/(\d+)$`)
	decimalRegex  = regexp.MustCompile(`^\d*\.\d+$`)
)

const signMarker = "\x00"

var denominators = map[string]int64{
	"half":     2,
	"halves":   2,
	"third":    3,
	"thirds":   3,
	"fourth":   4,
	"fourths":  4,
	"quarter":  4,
	"quarters": 4,
}

// NumberPhrase splits text on whitespace and hyphens and resolves every
// piece it can into a number. "a"/"an" count as one, "N/M" is a fraction,
// and a fraction word takes the integer right before it as its numerator
// ("two thirds", "a quarter"), defaulting to one.
func NumberPhrase(text string) []Lexeme {
	text = norm.NFC.String(strings.TrimSpace(text))
	text = signRegex.ReplaceAllString(text, "$1"+signMarker)

	var out []Lexeme
	for _, token := range splitRegex.Split(text, -1) {
		negative := strings.HasPrefix(token, signMarker)
		token = strings.TrimPrefix(token, signMarker)
		if token == "" {
			continue
		}

		lex := resolve(token)
		if lex.Kind == Word {
			if den, ok := denominators[fold(token)]; ok {
				num := int64(1)
				if len(out) > 0 {
					if n, ok := out[len(out)-1].Int(); ok {
						num = int64(n)
						out = out[:len(out)-1]
					}
				}
				lex = Lexeme{
					Kind:  Fraction,
					Value: decimal.NewFromInt(num).Div(decimal.NewFromInt(den)),
					Text:  token,
				}
			}
		}
		if negative {
			if lex.IsNumber() {
				lex.Value = lex.Value.Neg()
			} else {
				lex.Text = "-" + lex.Text
			}
		}
		out = append(out, lex)
	}
	return out
}

func resolve(token string) Lexeme {
	if lex := Cardinal(token); lex.IsNumber() {
		return lex
	}
	if m := fractionRegex.FindStringSubmatch(token); m != nil {
		num, _ := strconv.ParseInt(m[1], 10, 64)
		den, _ := strconv.ParseInt(m[2], 10, 64)
		if den != 0 {
			return Lexeme{
				Kind:  Fraction,
				Value: decimal.NewFromInt(num).Div(decimal.NewFromInt(den)),
				Text:  token,
			}
		}
	}
	if decimalRegex.MatchString(token) {
		if val, err := decimal.NewFromString(token); err == nil {
			return Lexeme{Kind: Fraction, Value: val, Text: token}
		}
	}
	if w := fold(token); w == "a" || w == "an" {
		return integer(token, 1)
	}
	return word(token)
}
