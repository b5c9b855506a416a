package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/internal/tablex"
)

const rentRollCSV = `Sunset Gardens Apartments,,,,,
Rent Roll as of 2026-08-01,,,,,
Unit,Unit Type,Beds,Baths,Current Rent,Status
101,1BR/1BA,1,1,"1,200",Occupied
102,1BR/1BA,1,1,"1,200",Occupied
103,1BR/1BA,1,1,"1,200",Occupied
104,1BR/1BA,1,1,"1,200",Vacant
105,1BR/1BA,1,1,"1,200",Occupied
106,1BR/1BA,1,1,"1,200",Occupied
107,1BR/1BA,1,1,"1,200",Occupied
108,1BR/1BA,1,1,"1,200",Occupied
201,2BR/2BA,2,2,"1,650",Occupied
202,2BR/2BA,2,2,"1,650",Occupied
203,2BR/2BA,2,2,"1,700",Occupied
204,2BR/2BA,2,2,"1,700",Occupied
`

func csvInput(data string) Input {
	return Input{
		FileID:   uuid.New(),
		Filename: "rent_roll.csv",
		MimeType: constants.MimeForExt("csv"),
		Data:     []byte(data),
	}
}

func TestSpreadsheetRentRoll(t *testing.T) {
	e := NewSpreadsheetRentRoll(nil)
	result, err := e.ExtractRentRoll(context.Background(), csvInput(rentRollCSV))
	require.NoError(t, err)

	assert.Equal(t, 12, result.TotalUnits)
	assert.Equal(t, MethodSpreadsheet, result.Method)
	require.NotNil(t, result.Confidence)
	assert.InDelta(t, 1.0, *result.Confidence, 1e-9)

	require.NotNil(t, result.Occupancy)
	assert.InDelta(t, 11.0/12.0, *result.Occupancy, 1e-9)

	require.Len(t, result.UnitMix, 2)
	assert.Equal(t, "1BR/1BA", result.UnitMix[0].UnitType)
	assert.Equal(t, 8, result.UnitMix[0].Count)
	require.NotNil(t, result.UnitMix[0].AvgRent)
	assert.InDelta(t, 1200, *result.UnitMix[0].AvgRent, 1e-9)
	assert.Equal(t, "2BR/2BA", result.UnitMix[1].UnitType)
	assert.Equal(t, 4, result.UnitMix[1].Count)
	require.NotNil(t, result.UnitMix[1].AvgRent)
	assert.InDelta(t, 1675, *result.UnitMix[1].AvgRent, 1e-9)

	assert.NoError(t, ValidateRentRollResult(result))
}

func TestSpreadsheetRentRollUnresolvedStatus(t *testing.T) {
	data := strings.Replace(rentRollCSV, "104,1BR/1BA,1,1,\"1,200\",Vacant", "104,1BR/1BA,1,1,\"1,200\",Notice", 1)
	e := NewSpreadsheetRentRoll(nil)
	result, err := e.ExtractRentRoll(context.Background(), csvInput(data))
	require.NoError(t, err)

	// one unresolved status cell means occupancy is withheld, not guessed
	assert.Nil(t, result.Occupancy)
	assert.Equal(t, 12, result.TotalUnits)
}

func TestSpreadsheetRentRollNoHeader(t *testing.T) {
	e := NewSpreadsheetRentRoll(nil)
	_, err := e.ExtractRentRoll(context.Background(), csvInput("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}

func TestOCRTableRentRoll(t *testing.T) {
	junk := tablex.Matrix{
		Page: 1,
		Rows: [][]string{{"Property Overview", ""}, {"Built", "1985"}},
	}
	rentRoll := tablex.Matrix{
		Page: 2,
		Rows: [][]string{
			{"Unit", "Beds", "Baths", "Rent", "Status"},
			{"101", "1", "1", "1,150", "Occupied"},
			{"102", "1", "1", "1,150", "Vacant"},
			{"201", "2", "2", "1,600", "Occupied"},
			{"202", "2", "2", "1,600", "Occupied"},
		},
	}

	e := NewOCRTableRentRoll(nil)
	result, err := e.ExtractRentRoll(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "rent_roll_scan.pdf",
		Tables:   []tablex.Matrix{junk, rentRoll},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalUnits)
	assert.Equal(t, MethodOCRTable, result.Method)
	assert.Nil(t, result.Confidence)
	require.NotNil(t, result.Occupancy)
	assert.InDelta(t, 0.75, *result.Occupancy, 1e-9)

	// no unit-type column: derived from beds/baths
	require.Len(t, result.UnitMix, 2)
	assert.Equal(t, "1 Bed / 1 Bath", result.UnitMix[0].UnitType)
	assert.Equal(t, 2, result.UnitMix[0].Count)

	assert.NoError(t, ValidateRentRollResult(result))
}

func TestOCRTableRentRollNoQualifyingTable(t *testing.T) {
	e := NewOCRTableRentRoll(nil)
	_, err := e.ExtractRentRoll(context.Background(), Input{
		FileID:   uuid.New(),
		Filename: "scan.pdf",
		Tables: []tablex.Matrix{
			{Page: 1, Rows: [][]string{{"Summary", "Value"}, {"Price", "1,000,000"}}},
		},
	})
	assert.Error(t, err)
}

func TestValidateRentRollResultRejectsEmpty(t *testing.T) {
	err := ValidateRentRollResult(&RentRollResult{Method: MethodSpreadsheet})
	assert.Error(t, err)
}
