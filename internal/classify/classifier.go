package classify

import (
	"log/slog"
	"strings"

	"github.com/propscope/underwriter/constants"
)

// Result is a document-type label with the classifier's confidence in it.
type Result struct {
	DocType    constants.DocType
	Confidence float64
}

// Classifier assigns a document type to an uploaded file. Implementations
// are swappable; RuleClassifier is the keyword-scoring one used today.
type Classifier interface {
	Classify(filename, textExcerpt string) Result
}

// keyword lists per doc type; matches are counted as lower-cased substring
// hits across the filename and the text excerpt combined.
var docTypeKeywords = map[constants.DocType][]string{
	constants.DocTypeRentRoll: {
		"rent roll", "rentroll", "rent_roll", "unit mix", "occupancy",
		"tenant", "lease", "unit #",
	},
	constants.DocTypeT12: {
		"t12", "t-12", "trailing 12", "trailing twelve", "operating statement",
		"income statement", "net operating income", "noi", "profit and loss",
		"p&l",
	},
	constants.DocTypeOfferingMemo: {
		"offering memorandum", "offering memo", "om ", "executive summary",
		"investment highlights", "broker",
	},
	constants.DocTypeDebtTermSheet: {
		"term sheet", "loan terms", "debt quote", "interest rate", "amortization",
		"ltv", "dscr",
	},
	constants.DocTypeCapexScope: {
		"capex", "capital expenditure", "renovation", "scope of work",
		"rehab budget", "improvement",
	},
}

const (
	confidenceNone   = 0.4
	confidenceWeak   = 0.7
	confidenceStrong = 0.9
)

type RuleClassifier struct {
	logger *slog.Logger
}

func NewRuleClassifier(logger *slog.Logger) *RuleClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &RuleClassifier{logger: logger}
}

// Classify scores each doc type by keyword hit count over the combined
// lower-cased filename and excerpt, and picks the highest. Zero matches
// yields "other" at low confidence; two or more hits on the winner is
// treated as a strong signal.
func (c *RuleClassifier) Classify(filename, textExcerpt string) Result {
	haystack := strings.ToLower(filename + "\n" + textExcerpt)

	best := constants.DocTypeOther
	bestCount := 0
	for docType, keywords := range docTypeKeywords {
		count := 0
		for _, kw := range keywords {
			count += strings.Count(haystack, kw)
		}
		if count > bestCount || (count == bestCount && count > 0 && docType < best) {
			best = docType
			bestCount = count
		}
	}

	if bestCount == 0 {
		return Result{DocType: constants.DocTypeOther, Confidence: confidenceNone}
	}
	confidence := confidenceWeak
	if bestCount >= 2 {
		confidence = confidenceStrong
	}
	c.logger.Debug("document classified", "filename", filename, "doc_type", best, "hits", bestCount)
	return Result{DocType: best, Confidence: confidence}
}
