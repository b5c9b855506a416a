package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propscope/underwriter/constants"
)

func TestClassifyByFilename(t *testing.T) {
	c := NewRuleClassifier(nil)

	result := c.Classify("Sunset_Gardens_Rent_Roll_Aug2026.xlsx", "")
	assert.Equal(t, constants.DocTypeRentRoll, result.DocType)

	result = c.Classify("property_t12.xlsx", "")
	assert.Equal(t, constants.DocTypeT12, result.DocType)
}

func TestClassifyUsesExcerpt(t *testing.T) {
	c := NewRuleClassifier(nil)

	result := c.Classify("statement.csv", "Net Operating Income,15500\nTrailing 12 months ending July")
	assert.Equal(t, constants.DocTypeT12, result.DocType)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9, "two keyword hits is a strong signal")
}

func TestClassifyConfidenceTiers(t *testing.T) {
	c := NewRuleClassifier(nil)

	weak := c.Classify("lease.pdf", "")
	assert.Equal(t, constants.DocTypeRentRoll, weak.DocType)
	assert.InDelta(t, 0.7, weak.Confidence, 1e-9)

	none := c.Classify("photo.jpg", "")
	assert.Equal(t, constants.DocTypeOther, none.DocType)
	assert.InDelta(t, 0.4, none.Confidence, 1e-9)
}

func TestClassifyDebtAndCapex(t *testing.T) {
	c := NewRuleClassifier(nil)

	result := c.Classify("bridge_loan_term_sheet.pdf", "LTV 65%, DSCR 1.25")
	assert.Equal(t, constants.DocTypeDebtTermSheet, result.DocType)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)

	result = c.Classify("renovation_scope.pdf", "CapEx budget for unit interiors")
	assert.Equal(t, constants.DocTypeCapexScope, result.DocType)
}
