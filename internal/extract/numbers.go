package extract

import (
	"strconv"
	"strings"
)

// ParseNumber reads a financial number out of a cell. Currency symbols,
// commas, percent signs, and whitespace are stripped before sign detection,
// so accountant-style parenthesized values parse as negative whether the
// symbol sits inside or outside the parens ("(1,200)", "$(1,200)" -> -1200).
// The bool is false when the cell holds no usable number — callers must
// leave the field absent in that case, never substitute a guess.
func ParseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	s = strings.NewReplacer("$", "", ",", "", "%", "", " ", "", " ", "").Replace(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "-" {
		return 0, false
	}
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// NormalizeCell lowercases a cell and collapses runs of whitespace so label
// synonyms match regardless of formatting.
func NormalizeCell(cell string) string {
	return strings.Join(strings.Fields(strings.ToLower(cell)), " ")
}

// firstNumberRight returns the first parseable number to the right of col in
// the row, or false when none exists.
func firstNumberRight(row []string, col int) (float64, bool) {
	for i := col + 1; i < len(row); i++ {
		if v, ok := ParseNumber(row[i]); ok {
			return v, true
		}
	}
	return 0, false
}

// sumNumbersRight sums every parseable number to the right of col in the
// row. Used for monthly-column layouts (CSV exports, OCR tables) where the
// annual figure is the row total.
func sumNumbersRight(row []string, col int) (float64, bool) {
	var sum float64
	found := false
	for i := col + 1; i < len(row); i++ {
		if v, ok := ParseNumber(row[i]); ok {
			sum += v
			found = true
		}
	}
	return sum, found
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
