package tablex

import (
	"context"
	"fmt"

	"github.com/propscope/underwriter/constants"
)

// RawCell is one detected table cell as reported by the external
// OCR/table-detection collaborator. Row and Col are 1-based.
type RawCell struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// RawTable is one detected table: a sparse bag of cells on a page.
type RawTable struct {
	Page  int       `json:"page"`
	Cells []RawCell `json:"cells"`
}

// Analyzer invokes the external OCR/table-detection engine. The engine
// itself is out of scope; only its result shape is normalized here.
type Analyzer interface {
	AnalyzeTables(ctx context.Context, data []byte, mimeType string) ([]RawTable, error)
}

// CheckMime fails fast on content types the collaborator does not accept.
func CheckMime(mimeType string) error {
	if _, ok := constants.OCRMimeTypes[mimeType]; !ok {
		return fmt.Errorf("unsupported mime type for table extraction: %q", mimeType)
	}
	return nil
}

// ToMatrices converts sparse raw tables into dense matrices, padding each
// table out to its maximum row and column extent. Cell text lands at its
// reported coordinates; everything unreported stays empty with zero
// confidence.
func ToMatrices(raw []RawTable) []Matrix {
	out := make([]Matrix, 0, len(raw))
	for _, t := range raw {
		maxRow, maxCol := 0, 0
		for _, c := range t.Cells {
			if c.Row > maxRow {
				maxRow = c.Row
			}
			if c.Col > maxCol {
				maxCol = c.Col
			}
		}
		if maxRow == 0 || maxCol == 0 {
			continue
		}
		m := Matrix{
			Page:       t.Page,
			Rows:       make([][]string, maxRow),
			Confidence: make([][]float64, maxRow),
		}
		for i := range m.Rows {
			m.Rows[i] = make([]string, maxCol)
			m.Confidence[i] = make([]float64, maxCol)
		}
		for _, c := range t.Cells {
			if c.Row < 1 || c.Col < 1 {
				continue
			}
			m.Rows[c.Row-1][c.Col-1] = c.Text
			m.Confidence[c.Row-1][c.Col-1] = c.Confidence
		}
		out = append(out, m)
	}
	return out
}
