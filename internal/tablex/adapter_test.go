package tablex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMatricesPadsSparseCells(t *testing.T) {
	raw := []RawTable{
		{
			Page: 2,
			Cells: []RawCell{
				{Row: 1, Col: 1, Text: "Unit", Confidence: 0.99},
				{Row: 1, Col: 3, Text: "Rent", Confidence: 0.97},
				{Row: 2, Col: 1, Text: "101", Confidence: 0.95},
				{Row: 3, Col: 2, Text: "1,200", Confidence: 0.42},
			},
		},
	}

	out := ToMatrices(raw)
	require.Len(t, out, 1)
	m := out[0]

	assert.Equal(t, 2, m.Page)
	assert.Equal(t, 3, m.NumRows())
	assert.Equal(t, 3, m.NumCols())
	assert.Equal(t, "Unit", m.Cell(0, 0))
	assert.Equal(t, "Rent", m.Cell(0, 2))
	assert.Equal(t, "", m.Cell(0, 1), "unreported cells stay empty")
	assert.Equal(t, "1,200", m.Cell(2, 1))
	assert.InDelta(t, 0.42, m.Confidence[2][1], 1e-9)
	assert.Zero(t, m.Confidence[0][1])
}

func TestToMatricesSkipsEmptyAndBadCells(t *testing.T) {
	raw := []RawTable{
		{Page: 1},
		{Page: 2, Cells: []RawCell{
			{Row: 0, Col: 1, Text: "bad row index"},
			{Row: 1, Col: 1, Text: "ok"},
		}},
	}

	out := ToMatrices(raw)
	require.Len(t, out, 1)
	assert.Equal(t, "ok", out[0].Cell(0, 0))
}

func TestCheckMime(t *testing.T) {
	assert.NoError(t, CheckMime("application/pdf"))
	assert.NoError(t, CheckMime("image/png"))
	assert.Error(t, CheckMime("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
	assert.Error(t, CheckMime("text/csv"))
}

func TestMatrixRowText(t *testing.T) {
	m := Matrix{Rows: [][]string{{"Unit", "Beds", "Rent"}}}
	assert.Equal(t, "Unit Beds Rent", m.RowText(0))
	assert.Equal(t, "", m.RowText(5))
}
