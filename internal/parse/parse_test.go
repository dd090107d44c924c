package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"¥-12.50", "-12.5"},
		{"-25.00", "-25"},
		{"100", "100"},
		{"+3.5", "3.5"},
		{"1,234.56", "1234.56"},
		{"CNY 42.00", "42"},
		{"", "0"},
		{"abc", "0"},
		{"--3", "0"},
		{"-", "0"},
		{"1.2.3", "0"},
	}
	for _, tt := range tests {
		got := Amount(tt.in)
		assert.Equal(t, tt.want, got.String(), "Amount(%q)", tt.in)
	}
}

func TestDateTime_ISO(t *testing.T) {
	ts, ok := DateTime("2024-03-14 12:05:00")
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())
	assert.Equal(t, 14, ts.Day())
	assert.Equal(t, 12, ts.Hour())
	assert.Equal(t, 5, ts.Minute())
}

func TestDateTime_SlashDelimited(t *testing.T) {
	ts, ok := DateTime("2024/03/14")
	require.True(t, ok)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.March, ts.Month())
	assert.Equal(t, 14, ts.Day())
}

func TestDateTime_DotDelimited(t *testing.T) {
	ts, ok := DateTime("2024.03.14 18:30:00")
	require.True(t, ok)
	assert.Equal(t, 14, ts.Day())
	assert.Equal(t, 18, ts.Hour())
}

func TestDateTime_DateOnly(t *testing.T) {
	ts, ok := DateTime("2024-03-14")
	require.True(t, ok)
	assert.Equal(t, 0, ts.Hour())
}

func TestDateTime_Trimmed(t *testing.T) {
	_, ok := DateTime("  2024-03-14  ")
	assert.True(t, ok)
}

func TestDateTime_Empty(t *testing.T) {
	_, ok := DateTime("")
	assert.False(t, ok)

	_, ok = DateTime("   ")
	assert.False(t, ok)
}

func TestDateTime_Garbage(t *testing.T) {
	_, ok := DateTime("not a date")
	assert.False(t, ok)

	_, ok = DateTime("14/03/2024") // day-first is not recognized
	assert.False(t, ok)
}

func TestDateTime_LocalZone(t *testing.T) {
	ts, ok := DateTime("2024-03-14 12:05:00")
	require.True(t, ok)
	assert.Equal(t, time.Local, ts.Location())
}
