package extract

import (
	"context"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/tablex"
)

// Extraction method tags recorded on result artifacts.
const (
	MethodSpreadsheet = "spreadsheet"
	MethodOCRTable    = "ocr_table"
)

// Input carries one document into an extractor. Spreadsheet variants read
// Data/MimeType; OCR-table variants read Tables (previously produced by the
// table-extraction adapter).
type Input struct {
	FileID   uuid.UUID
	Filename string
	MimeType string
	Data     []byte
	Tables   []tablex.Matrix
}

// UnitMixEntry is one bucket of the unit-mix histogram.
type UnitMixEntry struct {
	UnitType string   `json:"unit_type"`
	Count    int      `json:"count"`
	AvgRent  *float64 `json:"avg_rent"`
}

// RentRollResult is the payload of a rent_roll_parsed artifact. Occupancy is
// nil unless every status cell resolved unambiguously; Confidence is nil for
// OCR-derived results.
type RentRollResult struct {
	TotalUnits   int            `json:"total_units"`
	UnitMix      []UnitMixEntry `json:"unit_mix"`
	Occupancy    *float64       `json:"occupancy"`
	Method       string         `json:"method"`
	Confidence   *float64       `json:"confidence"`
	SourceFileID string         `json:"source_file_id"`
}

// T12Result is the payload of a t12_parsed artifact. Every metric is
// nullable: a line item not found in the document stays nil.
type T12Result struct {
	GrossPotentialRent     *float64 `json:"gross_potential_rent"`
	EffectiveGrossIncome   *float64 `json:"effective_gross_income"`
	TotalOperatingExpenses *float64 `json:"total_operating_expenses"`
	NetOperatingIncome     *float64 `json:"net_operating_income"`
	Method                 string   `json:"method"`
	Confidence             *float64 `json:"confidence"`
	SourceFileID           string   `json:"source_file_id"`
}

// Empty reports whether no metric was read at all.
func (r *T12Result) Empty() bool {
	return r.GrossPotentialRent == nil &&
		r.EffectiveGrossIncome == nil &&
		r.TotalOperatingExpenses == nil &&
		r.NetOperatingIncome == nil
}

// RentRollExtractor is one code path turning a rent-roll document into its
// result payload.
type RentRollExtractor interface {
	ExtractRentRoll(ctx context.Context, in Input) (*RentRollResult, error)
}

// T12Extractor is one code path turning an operating statement into its
// result payload.
type T12Extractor interface {
	ExtractT12(ctx context.Context, in Input) (*T12Result, error)
}

// Capabilities declares which extraction paths this process can run.
// Resolved once at startup from configuration, never re-derived per request.
type Capabilities struct {
	Spreadsheet bool
	OCRTables   bool
}

// DetectCapabilities resolves the capability struct from configuration.
// Spreadsheet parsing is always built in; the OCR-table path needs the
// table-detection collaborator configured.
func DetectCapabilities(cfg common.ServicesConfig) Capabilities {
	return Capabilities{
		Spreadsheet: true,
		OCRTables:   cfg.TableOCRBaseURL != "",
	}
}
