package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{25, "$25.00"},
		{90, "$90.00"},
		{35.5, "$35.50"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-40, "-$40.00"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Format(c.in))
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$90.00", 90},
		{"$1,234.50", 1234.50},
		{"MXN 150.25", 150.25},
		{"", 0},
		{"no-money-here", 0},
		{"1.2.3", 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Parse(c.in))
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 25, 90.5, 1234.56, 99999.99} {
		assert.Equal(t, v, Parse(Format(v)))
	}
}
