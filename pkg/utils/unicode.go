package utils

import (
	"unicode/utf8"
)

// RuneSlice slices s by rune index; with no stop it runs to the end.
// out-of-range bounds panic just like a regular slice expression
func RuneSlice(s string, start int, stops ...int) string {
	if len(stops) > 1 {
		panic("runtime error: extra unsupported values provided")
	}
	rs := []rune(s)
	stop := len(rs)
	if len(stops) == 1 {
		stop = stops[0]
	}
	// checked against len: []rune may over-allocate
	if start < 0 || stop < start || stop > len(rs) {
		panic("runtime error: slice bounds out of range")
	}
	return string(rs[start:stop])
}

func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// HasDigitsOnly reports whether s is a non-empty run of ascii digits
func HasDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
