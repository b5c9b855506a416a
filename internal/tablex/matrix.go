package tablex

import "strings"

// Matrix is a dense rows × columns text grid with parallel per-cell
// confidence values. Missing cells are padded with empty text and zero
// confidence so every row has the same width.
type Matrix struct {
	Page       int         `json:"page"`
	Rows       [][]string  `json:"rows"`
	Confidence [][]float64 `json:"confidence"`
}

func (m Matrix) NumRows() int {
	return len(m.Rows)
}

func (m Matrix) NumCols() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0])
}

// Cell returns the trimmed text at (row, col), or "" when out of range.
func (m Matrix) Cell(row, col int) string {
	if row < 0 || row >= len(m.Rows) {
		return ""
	}
	if col < 0 || col >= len(m.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(m.Rows[row][col])
}

// RowText joins a row's cells for token scanning.
func (m Matrix) RowText(row int) string {
	if row < 0 || row >= len(m.Rows) {
		return ""
	}
	return strings.Join(m.Rows[row], " ")
}
