package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/internal/tablex"
)

// Canonical T12 line items and their label synonyms, in scan order. Short
// acronyms only ever match a whole cell; phrases match by containment.
var t12Labels = []struct {
	key      string
	synonyms []string
}{
	{"gross_potential_rent", []string{"gross potential rent", "gross potential income", "gross scheduled rent", "gpr"}},
	{"effective_gross_income", []string{"effective gross income", "total revenue", "total income", "egi"}},
	{"total_operating_expenses", []string{"total operating expenses", "total expenses", "operating expenses", "opex"}},
	{"net_operating_income", []string{"net operating income", "net income", "noi"}},
}

var monthTokens = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// SpreadsheetT12 parses an XLSX/CSV operating statement by label scan.
type SpreadsheetT12 struct {
	logger *slog.Logger
}

func NewSpreadsheetT12(logger *slog.Logger) *SpreadsheetT12 {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpreadsheetT12{logger: logger}
}

func (e *SpreadsheetT12) ExtractT12(_ context.Context, in Input) (*T12Result, error) {
	grid, err := LoadGrid(in.Data, in.MimeType)
	if err != nil {
		return nil, fmt.Errorf("load t12 grid: %w", err)
	}

	// Workbooks carry an annual column: take the first number right of the
	// label. CSV exports are month columns: the annual figure is the row sum.
	valueFn := firstNumberRight
	if in.MimeType == constants.MimeForExt("csv") {
		valueFn = sumNumbersRight
	}

	result := scanT12Labels(grid, valueFn)
	if result.Empty() {
		return nil, fmt.Errorf("no recognizable operating statement line items in %q", in.Filename)
	}
	result.Method = MethodSpreadsheet
	confidence := 1.0
	result.Confidence = &confidence
	result.SourceFileID = in.FileID.String()

	e.logger.Info("t12 extracted",
		"file_id", in.FileID,
		"method", result.Method,
		"has_noi", result.NetOperatingIncome != nil,
	)
	return result, nil
}

// OCRTableT12 runs the same label scan against the best-scoring previously
// extracted OCR table. Confidence stays nil: no claim beyond what OCR
// reported per cell.
type OCRTableT12 struct {
	logger *slog.Logger
}

func NewOCRTableT12(logger *slog.Logger) *OCRTableT12 {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRTableT12{logger: logger}
}

func (e *OCRTableT12) ExtractT12(_ context.Context, in Input) (*T12Result, error) {
	table := selectT12Table(in.Tables)
	if table == nil {
		return nil, fmt.Errorf("no extracted table scores as an operating statement for %q", in.Filename)
	}

	result := scanT12Labels(table.Rows, sumNumbersRight)
	if result.Empty() {
		return nil, fmt.Errorf("ocr operating statement table for %q yields no line items", in.Filename)
	}
	result.Method = MethodOCRTable
	result.SourceFileID = in.FileID.String()

	e.logger.Info("t12 extracted",
		"file_id", in.FileID,
		"method", result.Method,
		"has_noi", result.NetOperatingIncome != nil,
	)
	return result, nil
}

// selectT12Table scores tables by month-name and metric tokens in their
// leading rows and returns the best scorer, or nil when nothing scores.
func selectT12Table(tables []tablex.Matrix) *tablex.Matrix {
	bestScore := 0
	bestIdx := -1
	for i := range tables {
		t := &tables[i]
		limit := t.NumRows()
		if limit > 4 {
			limit = 4
		}
		score := 0
		for row := 0; row < limit; row++ {
			text := strings.ToLower(t.RowText(row))
			for _, tok := range monthTokens {
				if strings.Contains(text, tok) {
					score++
				}
			}
			for _, item := range t12Labels {
				for _, syn := range item.synonyms {
					if len(syn) > 4 && strings.Contains(text, syn) {
						score += 2
						break
					}
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil
	}
	return &tables[bestIdx]
}

// scanT12Labels walks every cell looking for line-item labels; the first
// match per metric wins and its value is read with valueFn from the cells to
// the right. Metrics never found stay nil — absence is surfaced, not
// estimated.
func scanT12Labels(rows [][]string, valueFn func([]string, int) (float64, bool)) *T12Result {
	result := &T12Result{}
	found := make(map[string]bool, len(t12Labels))

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		for col, c := range row {
			norm := NormalizeCell(c)
			if norm == "" {
				continue
			}
			for _, item := range t12Labels {
				if found[item.key] || !labelMatches(norm, item.synonyms) {
					continue
				}
				if v, ok := valueFn(row, col); ok {
					setT12Metric(result, item.key, v)
					found[item.key] = true
				}
				break
			}
		}
	}
	return result
}

func labelMatches(norm string, synonyms []string) bool {
	for _, syn := range synonyms {
		if len(syn) <= 4 {
			if norm == syn {
				return true
			}
			continue
		}
		if strings.Contains(norm, syn) {
			return true
		}
	}
	return false
}

func setT12Metric(result *T12Result, key string, v float64) {
	switch key {
	case "gross_potential_rent":
		result.GrossPotentialRent = &v
	case "effective_gross_income":
		result.EffectiveGrossIncome = &v
	case "total_operating_expenses":
		result.TotalOperatingExpenses = &v
	case "net_operating_income":
		result.NetOperatingIncome = &v
	}
}
