package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"55", "55"},
		{"12.5", "12.5"},
		{"12.34", "12.34"},
		{"1234.5", "1,234.5"},
		{"1234567", "1,234,567"},
		{"-25", "-25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(dec(tt.in)), "Format(%s)", tt.in)
	}
}

func TestFormat_RoundsToTwoPlaces(t *testing.T) {
	got := Format(dec("12.346"))
	assert.Equal(t, "12.35", got)
}

func TestFormat_NonFinite(t *testing.T) {
	// An exponent far beyond float64 range overflows to +Inf.
	huge := decimal.New(1, 400)
	f, _ := huge.Float64()
	require.True(t, f > 1e308)
	assert.Equal(t, Placeholder, Format(huge))
}
