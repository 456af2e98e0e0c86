package money

import (
	"strconv"
	"strings"
)

// Format renders an amount the way order totals are displayed: dollar sign,
// thousands separators and exactly two decimals.
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// Parse extracts a best-effort amount from a formatted total. Every
// character except digits and the decimal point is dropped; empty or
// unparsable input yields 0. Totals written by older app versions only
// exist as display strings, so this is the fallback the summary uses.
func Parse(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
