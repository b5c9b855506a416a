package extract

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/propscope/underwriter/internal/tablex"
)

// One authoritative synonym table for rent-roll columns. Keys are checked in
// columnPriority order so "unit type" never gets swallowed by "unit".
var rentRollColumns = map[string][]string{
	"unit":      {"unit", "apt", "suite", "unit #", "apt #", "unit no"},
	"unit_type": {"unit type", "floorplan", "floor plan", "type"},
	"beds":      {"beds", "bed", "br", "bd"},
	"baths":     {"baths", "bath", "ba"},
	"sqft":      {"sqft", "sq ft", "square feet", "sf"},
	"rent":      {"current rent", "monthly rent", "lease rent", "market rent", "rent"},
	"status":    {"status", "occupancy", "lease status", "occupied"},
	"tenant":    {"tenant", "resident", "name"},
}

var columnPriority = []string{"unit_type", "status", "beds", "baths", "sqft", "rent", "tenant", "unit"}

// Header tokens for scoring candidate OCR tables; a header row must hit at
// least ocrHeaderMinScore of them for the table to qualify as a rent roll.
var rentRollHeaderTokens = []string{"unit", "bed", "bath", "rent", "sqft", "occup", "status", "tenant"}

const ocrHeaderMinScore = 3

var occupiedTokens = map[string]struct{}{
	"occupied": {}, "occ": {}, "leased": {}, "current": {},
}

var vacantTokens = map[string]struct{}{
	"vacant": {}, "vac": {}, "empty": {},
}

// SpreadsheetRentRoll is the preferred extraction path: a machine-readable
// XLSX/CSV rent roll.
type SpreadsheetRentRoll struct {
	logger *slog.Logger
}

func NewSpreadsheetRentRoll(logger *slog.Logger) *SpreadsheetRentRoll {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpreadsheetRentRoll{logger: logger}
}

func (e *SpreadsheetRentRoll) ExtractRentRoll(_ context.Context, in Input) (*RentRollResult, error) {
	grid, err := LoadGrid(in.Data, in.MimeType)
	if err != nil {
		return nil, fmt.Errorf("load rent roll grid: %w", err)
	}

	headerIdx, cols := findRentRollHeader(grid)
	if headerIdx < 0 {
		return nil, fmt.Errorf("no recognizable rent roll header in %q", in.Filename)
	}

	result := buildRentRoll(grid[headerIdx+1:], cols)
	if result.TotalUnits == 0 {
		return nil, fmt.Errorf("rent roll %q contains no unit rows", in.Filename)
	}
	result.Method = MethodSpreadsheet
	confidence := 1.0
	result.Confidence = &confidence
	result.SourceFileID = in.FileID.String()

	e.logger.Info("rent roll extracted",
		"file_id", in.FileID,
		"method", result.Method,
		"total_units", result.TotalUnits,
		"has_occupancy", result.Occupancy != nil,
	)
	return result, nil
}

// OCRTableRentRoll is the fallback path over tables previously produced by
// the table-extraction adapter. It makes no confidence claim beyond what the
// OCR engine reported, so Confidence stays nil.
type OCRTableRentRoll struct {
	logger *slog.Logger
}

func NewOCRTableRentRoll(logger *slog.Logger) *OCRTableRentRoll {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRTableRentRoll{logger: logger}
}

func (e *OCRTableRentRoll) ExtractRentRoll(_ context.Context, in Input) (*RentRollResult, error) {
	table, headerIdx := selectRentRollTable(in.Tables)
	if table == nil {
		return nil, fmt.Errorf("no extracted table scores as a rent roll for %q", in.Filename)
	}

	cols := mapHeaderRow(table.Rows[headerIdx])
	result := buildRentRoll(table.Rows[headerIdx+1:], cols)
	if result.TotalUnits == 0 {
		return nil, fmt.Errorf("ocr rent roll table for %q contains no unit rows", in.Filename)
	}
	result.Method = MethodOCRTable
	result.SourceFileID = in.FileID.String()

	e.logger.Info("rent roll extracted",
		"file_id", in.FileID,
		"method", result.Method,
		"total_units", result.TotalUnits,
		"has_occupancy", result.Occupancy != nil,
	)
	return result, nil
}

// selectRentRollTable scores each table's candidate header rows against the
// fixed token set and returns the best table at or above the minimum score,
// along with its header row index.
func selectRentRollTable(tables []tablex.Matrix) (*tablex.Matrix, int) {
	bestScore := 0
	bestIdx := -1
	bestHeader := 0
	for i := range tables {
		t := &tables[i]
		limit := t.NumRows()
		if limit > 3 {
			limit = 3
		}
		for row := 0; row < limit; row++ {
			text := strings.ToLower(t.RowText(row))
			score := 0
			for _, tok := range rentRollHeaderTokens {
				if strings.Contains(text, tok) {
					score++
				}
			}
			if score > bestScore {
				bestScore = score
				bestIdx = i
				bestHeader = row
			}
		}
	}
	if bestScore < ocrHeaderMinScore || bestIdx < 0 {
		return nil, 0
	}
	return &tables[bestIdx], bestHeader
}

// findRentRollHeader scans the first dozen rows for one that maps at least
// two known columns, one of which identifies units.
func findRentRollHeader(grid Grid) (int, map[string]int) {
	limit := len(grid)
	if limit > 12 {
		limit = 12
	}
	for i := 0; i < limit; i++ {
		cols := mapHeaderRow(grid[i])
		if len(cols) < 2 {
			continue
		}
		if _, ok := cols["unit"]; ok {
			return i, cols
		}
		if _, ok := cols["unit_type"]; ok {
			return i, cols
		}
	}
	return -1, nil
}

// mapHeaderRow maps semantic column keys to cell indexes by synonym match.
// Exact matches win over containment, and each key binds at most once.
func mapHeaderRow(row []string) map[string]int {
	cols := make(map[string]int)
	for idx, cell := range row {
		norm := NormalizeCell(cell)
		if norm == "" {
			continue
		}
		if key := matchColumn(norm, cols); key != "" {
			cols[key] = idx
		}
	}
	return cols
}

func matchColumn(norm string, taken map[string]int) string {
	for _, key := range columnPriority {
		if _, ok := taken[key]; ok {
			continue
		}
		for _, syn := range rentRollColumns[key] {
			if norm == syn {
				return key
			}
		}
	}
	for _, key := range columnPriority {
		if _, ok := taken[key]; ok {
			continue
		}
		for _, syn := range rentRollColumns[key] {
			if strings.Contains(norm, syn) {
				return key
			}
		}
	}
	return ""
}

type mixBucket struct {
	count     int
	rentSum   float64
	rentCount int
}

// buildRentRoll accumulates per-unit rows into totals, the unit-mix
// histogram, and occupancy. Occupancy is computed only when every status
// cell resolves unambiguously to occupied or vacant; one unrecognized cell
// leaves it nil rather than guessed from partial data.
func buildRentRoll(rows [][]string, cols map[string]int) *RentRollResult {
	unitCol, hasUnitCol := cols["unit"]
	statusCol, hasStatusCol := cols["status"]

	cell := func(row []string, col int) string {
		if col < 0 || col >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	mix := make(map[string]*mixBucket)
	totalUnits := 0
	occupied := 0
	occupancyValid := hasStatusCol

	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if hasUnitCol && cell(row, unitCol) == "" {
			continue
		}
		totalUnits++

		unitType := deriveUnitType(row, cols, cell)
		bucket, ok := mix[unitType]
		if !ok {
			bucket = &mixBucket{}
			mix[unitType] = bucket
		}
		bucket.count++
		if rentCol, ok := cols["rent"]; ok {
			if rent, ok := ParseNumber(cell(row, rentCol)); ok {
				bucket.rentSum += rent
				bucket.rentCount++
			}
		}

		if occupancyValid {
			status := NormalizeCell(cell(row, statusCol))
			if _, ok := occupiedTokens[status]; ok {
				occupied++
			} else if _, ok := vacantTokens[status]; !ok {
				occupancyValid = false
			}
		}
	}

	result := &RentRollResult{TotalUnits: totalUnits}
	types := make([]string, 0, len(mix))
	for t := range mix {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		b := mix[t]
		entry := UnitMixEntry{UnitType: t, Count: b.count}
		if b.rentCount > 0 {
			avg := b.rentSum / float64(b.rentCount)
			entry.AvgRent = &avg
		}
		result.UnitMix = append(result.UnitMix, entry)
	}
	if occupancyValid && totalUnits > 0 {
		occ := float64(occupied) / float64(totalUnits)
		result.Occupancy = &occ
	}
	return result
}

// deriveUnitType prefers an explicit unit-type column and otherwise derives
// "{beds} Bed / {baths} Bath" from the bed/bath columns.
func deriveUnitType(row []string, cols map[string]int, cell func([]string, int) string) string {
	if col, ok := cols["unit_type"]; ok {
		if v := cell(row, col); v != "" {
			return v
		}
	}
	bedsCol, hasBeds := cols["beds"]
	bathsCol, hasBaths := cols["baths"]
	if hasBeds && hasBaths {
		beds := cell(row, bedsCol)
		baths := cell(row, bathsCol)
		if beds != "" && baths != "" {
			return fmt.Sprintf("%s Bed / %s Bath", beds, baths)
		}
	}
	return "Unknown"
}
