package constants

// JobStatus is the canonical status for rows in jobs. The string values are
// wire-exact: they are stored in the DB and exposed to the UI as-is.
type JobStatus string

const (
	JobStatusQueued         JobStatus = "queued"
	JobStatusExtracting     JobStatus = "extracting"
	JobStatusUnderwriting   JobStatus = "underwriting"
	JobStatusScoring        JobStatus = "scoring"
	JobStatusRendering      JobStatus = "rendering"
	JobStatusPDFGenerating  JobStatus = "pdf_generating"
	JobStatusPublishing     JobStatus = "publishing"
	JobStatusPublished      JobStatus = "published"
	JobStatusNeedsDocuments JobStatus = "needs_documents"
	JobStatusFailed         JobStatus = "failed"
)

// InProgressStatuses are the statuses covered by the timeout guard. A job
// parked in any of these longer than the driver's stale threshold is forced
// to failed.
var InProgressStatuses = []JobStatus{
	JobStatusExtracting,
	JobStatusUnderwriting,
	JobStatusScoring,
	JobStatusRendering,
	JobStatusPDFGenerating,
	JobStatusPublishing,
}

// Terminal reports whether a job in this status is never picked up again.
func (s JobStatus) Terminal() bool {
	return s == JobStatusPublished || s == JobStatusFailed
}

// ParseStatus is the per-file extraction state.
type ParseStatus string

const (
	ParseStatusPending    ParseStatus = "pending"
	ParseStatusParsed     ParseStatus = "parsed"
	ParseStatusParsedWarn ParseStatus = "parsed_with_warnings"
	ParseStatusFailed     ParseStatus = "failed"
)

// Error codes surfaced on failed jobs. The user-facing message stays generic;
// the code is stable for support lookups.
const (
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	ErrCodeBilling             = "BILLING_FAILED"
	ErrCodeExtraction          = "EXTRACTION_FAILED"
	ErrCodeRender              = "RENDER_FAILED"
	ErrCodeInternal            = "INTERNAL"
)
