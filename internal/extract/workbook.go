package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/propscope/underwriter/constants"
)

// Grid is a sheet's cells as rows of text. Rows are ragged exactly as the
// source reports them; consumers index defensively.
type Grid [][]string

// LoadGrid reads XLSX/XLS or CSV bytes into a Grid. The first sheet wins for
// workbooks. Unsupported content types are an explicit error.
func LoadGrid(data []byte, mimeType string) (Grid, error) {
	switch mimeType {
	case constants.MimeForExt("xlsx"), constants.MimeForExt("xls"):
		return loadWorkbookGrid(data)
	case constants.MimeForExt("csv"):
		return loadCSVGrid(data)
	default:
		return nil, fmt.Errorf("unsupported spreadsheet mime type: %q", mimeType)
	}
}

func loadWorkbookGrid(data []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func loadCSVGrid(data []byte) (Grid, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var grid Grid
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		grid = append(grid, record)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("csv is empty")
	}
	return grid, nil
}
