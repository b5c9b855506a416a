package extract

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/internal/tablex"
)

const t12CSV = `Line Item,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec
Gross Potential Rent,"20,000","20,000","20,000","20,000","20,000","20,000","20,000","20,000","20,000","20,000","20,000","20,000"
Vacancy Loss,"(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)","(1,000)"
Effective Gross Income,"19,000","19,000","19,000","19,000","19,000","19,000","19,000","19,000","19,000","19,000","19,000","19,000"
Total Operating Expenses,"3,500","3,500","3,500","3,500","3,500","3,500","3,500","3,500","3,500","3,500","3,500","3,500"
Net Operating Income,"15,500","15,500","15,500","15,500","15,500","15,500","15,500","15,500","15,500","15,500","15,500","15,500"
`

func TestSpreadsheetT12FromCSV(t *testing.T) {
	e := NewSpreadsheetT12(nil)
	result, err := e.ExtractT12(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "t12.csv",
		MimeType: constants.MimeForExt("csv"),
		Data:     []byte(t12CSV),
	})
	require.NoError(t, err)

	// CSV exports carry month columns: the annual figure is the row sum
	require.NotNil(t, result.NetOperatingIncome)
	assert.InDelta(t, 186000, *result.NetOperatingIncome, 1e-9)
	require.NotNil(t, result.GrossPotentialRent)
	assert.InDelta(t, 240000, *result.GrossPotentialRent, 1e-9)
	require.NotNil(t, result.EffectiveGrossIncome)
	assert.InDelta(t, 228000, *result.EffectiveGrossIncome, 1e-9)
	require.NotNil(t, result.TotalOperatingExpenses)
	assert.InDelta(t, 42000, *result.TotalOperatingExpenses, 1e-9)

	assert.Equal(t, MethodSpreadsheet, result.Method)
	require.NotNil(t, result.Confidence)
	assert.NoError(t, ValidateT12Result(result))
}

func TestSpreadsheetT12FromXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"Trailing 12 Operating Statement", ""},
		{"Gross Potential Rent", 240000},
		{"Effective Gross Income", 228000},
		{"Total Operating Expenses", 42000},
		{"NOI", 186000},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	e := NewSpreadsheetT12(nil)
	result, err := e.ExtractT12(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "t12.xlsx",
		MimeType: constants.MimeForExt("xlsx"),
		Data:     buf.Bytes(),
	})
	require.NoError(t, err)

	// workbooks carry an annual column: first number right of the label wins
	require.NotNil(t, result.NetOperatingIncome)
	assert.InDelta(t, 186000, *result.NetOperatingIncome, 1e-9)
	require.NotNil(t, result.GrossPotentialRent)
	assert.InDelta(t, 240000, *result.GrossPotentialRent, 1e-9)
	assert.NoError(t, ValidateT12Result(result))
}

func TestSpreadsheetT12NoLineItems(t *testing.T) {
	e := NewSpreadsheetT12(nil)
	_, err := e.ExtractT12(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "notes.csv",
		MimeType: constants.MimeForExt("csv"),
		Data:     []byte("a,b\n1,2\n"),
	})
	assert.Error(t, err)
}

func TestLabelMatchesAcronymsExactOnly(t *testing.T) {
	noiSynonyms := []string{"net operating income", "net income", "noi"}
	assert.True(t, labelMatches("noi", noiSynonyms))
	assert.True(t, labelMatches("net operating income (noi)", noiSynonyms))
	// short acronyms never match by containment
	assert.False(t, labelMatches("noise allowance", noiSynonyms))
}

func TestOCRTableT12(t *testing.T) {
	junk := tablex.Matrix{
		Page: 1,
		Rows: [][]string{{"Photos", ""}, {"Front", "Back"}},
	}
	statement := tablex.Matrix{
		Page: 3,
		Rows: [][]string{
			{"", "Jan", "Feb", "Mar"},
			{"Gross Potential Rent", "20,000", "20,000", "20,000"},
			{"Net Operating Income", "15,500", "15,500", "15,500"},
		},
	}

	e := NewOCRTableT12(nil)
	result, err := e.ExtractT12(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "t12_scan.pdf",
		Tables:   []tablex.Matrix{junk, statement},
	})
	require.NoError(t, err)

	require.NotNil(t, result.NetOperatingIncome)
	assert.InDelta(t, 46500, *result.NetOperatingIncome, 1e-9)
	require.NotNil(t, result.GrossPotentialRent)
	assert.InDelta(t, 60000, *result.GrossPotentialRent, 1e-9)
	assert.Nil(t, result.EffectiveGrossIncome)
	assert.Nil(t, result.TotalOperatingExpenses)
	assert.Equal(t, MethodOCRTable, result.Method)
	assert.Nil(t, result.Confidence)
}

func TestOCRTableT12NoQualifyingTable(t *testing.T) {
	e := NewOCRTableT12(nil)
	_, err := e.ExtractT12(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "scan.pdf",
		Tables:   []tablex.Matrix{{Page: 1, Rows: [][]string{{"Photos"}, {"Front"}}}},
	})
	assert.Error(t, err)
}
