package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1200", 1200, true},
		{"1,200", 1200, true},
		{"$1,234.50", 1234.50, true},
		{"(1,200)", -1200, true},
		{"$(1,200)", -1200, true},
		{"($450.25)", -450.25, true},
		{"$(450.25)", -450.25, true},
		{"-300", -300, true},
		{"95%", 95, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"-", 0, false},
		{"n/a", 0, false},
		{"Occupied", 0, false},
		{"()", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseNumber(%q) ok", tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, "ParseNumber(%q)", tt.in)
		}
	}
}

func TestNormalizeCell(t *testing.T) {
	assert.Equal(t, "unit type", NormalizeCell("  Unit   Type "))
	assert.Equal(t, "net operating income", NormalizeCell("Net\tOperating\nIncome"))
	assert.Equal(t, "", NormalizeCell("   "))
}

func TestFirstNumberRight(t *testing.T) {
	row := []string{"Net Operating Income", "", "n/a", "186,000", "15,500"}
	v, ok := firstNumberRight(row, 0)
	assert.True(t, ok)
	assert.InDelta(t, 186000, v, 1e-9)

	v, ok = firstNumberRight([]string{"Net Operating Income", "$(1,200)"}, 0)
	assert.True(t, ok)
	assert.InDelta(t, -1200, v, 1e-9)

	_, ok = firstNumberRight([]string{"label", "text only"}, 0)
	assert.False(t, ok)
}

func TestSumNumbersRight(t *testing.T) {
	row := []string{"NOI", "15,500", "15,500", "(1,000)", "x"}
	v, ok := sumNumbersRight(row, 0)
	assert.True(t, ok)
	assert.InDelta(t, 30000, v, 1e-9)

	_, ok = sumNumbersRight([]string{"NOI"}, 0)
	assert.False(t, ok)
}
