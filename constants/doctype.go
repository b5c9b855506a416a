package constants

// DocType labels an uploaded document. Assigned by the classifier; a file is
// skipped by classification once it carries one.
type DocType string

const (
	DocTypeRentRoll      DocType = "rent_roll"
	DocTypeT12           DocType = "t12"
	DocTypeOfferingMemo  DocType = "offering_memo"
	DocTypeDebtTermSheet DocType = "debt_term_sheet"
	DocTypeCapexScope    DocType = "capex_scope"
	DocTypeOther         DocType = "other"
)

// ArtifactType tags rows in the append-only artifact log. Presence of a type
// for a job doubles as the idempotency marker for that action.
const (
	ArtifactStatusTransition     = "status_transition"
	ArtifactWorkerEvent          = "worker_event"
	ArtifactDocumentClassified   = "document_classified"
	ArtifactDocumentTables       = "document_tables_extracted"
	ArtifactRentRollParsed       = "rent_roll_parsed"
	ArtifactT12Parsed            = "t12_parsed"
	ArtifactRentRollParseError   = "rent_roll_parse_error"
	ArtifactT12ParseError        = "t12_parse_error"
	ArtifactUnderwritingSummary  = "underwriting_summary"
	ArtifactReportGenerated      = "report_generated"
	ArtifactCreditConsumed       = "credit_consumed"
	ArtifactCreditFailed         = "credit_failed"
	ArtifactNeedsDocumentsEmail  = "needs_documents_email"
	ArtifactCompletionEmail      = "completion_email"
)
