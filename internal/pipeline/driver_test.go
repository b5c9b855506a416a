package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	"github.com/propscope/underwriter/internal/billing"
	"github.com/propscope/underwriter/internal/classify"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/extract"
	"github.com/propscope/underwriter/internal/notify"
	"github.com/propscope/underwriter/internal/report"
	"github.com/propscope/underwriter/internal/repository"
)

// --- in-memory fakes over the repository interfaces ---

type memJobs struct {
	order []uuid.UUID
	rows  map[uuid.UUID]*ent.Job
}

func newMemJobs() *memJobs {
	return &memJobs{rows: make(map[uuid.UUID]*ent.Job)}
}

func (m *memJobs) add(job *ent.Job) {
	m.order = append(m.order, job.ID)
	m.rows[job.ID] = job
}

func (m *memJobs) Create(_ context.Context, ownerID uuid.UUID, reportType, propertyName string) (*ent.Job, error) {
	job := &ent.Job{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Status:    string(constants.JobStatusQueued),
		CreatedAt: time.Now(),
	}
	if reportType != "" {
		job.ReportType = reportType
	}
	if propertyName != "" {
		job.PropertyName = &propertyName
	}
	m.add(job)
	return job, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*ent.Job, error) {
	job, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return job, nil
}

// ListByStatus returns snapshots, like the real repository: rows fetched for
// a batch do not see status changes made after the fetch.
func (m *memJobs) ListByStatus(_ context.Context, status constants.JobStatus, limit int) ([]*ent.Job, error) {
	var out []*ent.Job
	for _, id := range m.order {
		if len(out) >= limit {
			break
		}
		if m.rows[id].Status == string(status) {
			row := *m.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}

func (m *memJobs) ListStale(_ context.Context, cutoff time.Time) ([]*ent.Job, error) {
	inProgress := make(map[string]struct{})
	for _, s := range constants.InProgressStatuses {
		inProgress[string(s)] = struct{}{}
	}
	var out []*ent.Job
	for _, id := range m.order {
		job := m.rows[id]
		if _, ok := inProgress[job.Status]; !ok {
			continue
		}
		anchor := job.CreatedAt
		if job.StartedAt != nil {
			anchor = *job.StartedAt
		}
		if anchor.Before(cutoff) {
			row := *job
			out = append(out, &row)
		}
	}
	return out, nil
}

func (m *memJobs) Transition(_ context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error) {
	job, ok := m.rows[id]
	if !ok || job.Status != string(from) {
		return false, nil
	}
	job.Status = string(to)
	return true, nil
}

func (m *memJobs) TransitionStart(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error) {
	moved, err := m.Transition(ctx, id, from, to)
	if moved {
		now := time.Now()
		m.rows[id].StartedAt = &now
	}
	return moved, err
}

func (m *memJobs) TransitionComplete(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error) {
	moved, err := m.Transition(ctx, id, from, to)
	if moved {
		now := time.Now()
		m.rows[id].CompletedAt = &now
	}
	return moved, err
}

func (m *memJobs) FailFrom(_ context.Context, id uuid.UUID, from constants.JobStatus, code, message string) (bool, error) {
	job, ok := m.rows[id]
	if !ok || job.Status != string(from) {
		return false, nil
	}
	m.fail(job, code, message)
	return true, nil
}

func (m *memJobs) Fail(_ context.Context, id uuid.UUID, code, message string) (bool, error) {
	job, ok := m.rows[id]
	if !ok {
		return false, nil
	}
	switch constants.JobStatus(job.Status) {
	case constants.JobStatusPublished, constants.JobStatusFailed:
		return false, nil
	}
	m.fail(job, code, message)
	return true, nil
}

func (m *memJobs) fail(job *ent.Job, code, message string) {
	now := time.Now()
	job.Status = string(constants.JobStatusFailed)
	job.FailedAt = &now
	job.ErrorCode = &code
	job.ErrorMessage = &message
}

type memFiles struct {
	rows []*ent.JobFile
}

func (m *memFiles) add(file *ent.JobFile) {
	m.rows = append(m.rows, file)
}

func (m *memFiles) GetByID(_ context.Context, id uuid.UUID) (*ent.JobFile, error) {
	for _, f := range m.rows {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, fmt.Errorf("file %s not found", id)
}

func (m *memFiles) Create(_ context.Context, req repository.CreateFileRequest) (*ent.JobFile, error) {
	f := &ent.JobFile{
		ID:               uuid.New(),
		JobID:            req.JobID,
		OriginalFilename: req.OriginalFilename,
		MimeType:         req.MimeType,
		StorageLocator:   req.StorageLocator,
		ParseStatus:      string(constants.ParseStatusPending),
		UploadedAt:       time.Now(),
	}
	m.add(f)
	return f, nil
}

func (m *memFiles) ListByJob(_ context.Context, jobID uuid.UUID) ([]*ent.JobFile, error) {
	var out []*ent.JobFile
	for _, f := range m.rows {
		if f.JobID == jobID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFiles) ListUnclassified(_ context.Context, jobID uuid.UUID) ([]*ent.JobFile, error) {
	var out []*ent.JobFile
	for _, f := range m.rows {
		if f.JobID == jobID && f.DocType == nil {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFiles) ListByDocType(_ context.Context, jobID uuid.UUID, docType constants.DocType) ([]*ent.JobFile, error) {
	var out []*ent.JobFile
	for _, f := range m.rows {
		if f.JobID == jobID && f.DocType != nil && *f.DocType == string(docType) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memFiles) SetDocType(ctx context.Context, id uuid.UUID, docType constants.DocType) error {
	f, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s := string(docType)
	f.DocType = &s
	return nil
}

func (m *memFiles) MarkParsed(ctx context.Context, id uuid.UUID, status constants.ParseStatus) error {
	f, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	f.ParseStatus = string(status)
	f.ParseError = nil
	return nil
}

func (m *memFiles) MarkParseFailed(ctx context.Context, id uuid.UUID, parseError string) error {
	f, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	f.ParseStatus = string(constants.ParseStatusFailed)
	f.ParseError = &parseError
	return nil
}

type memArtifacts struct {
	rows []*ent.Artifact
}

func (m *memArtifacts) Append(ctx context.Context, jobID uuid.UUID, artifactType string, payload any) (*ent.Artifact, error) {
	return m.AppendWithLocator(ctx, jobID, artifactType, "", payload)
}

func (m *memArtifacts) AppendWithLocator(_ context.Context, jobID uuid.UUID, artifactType, locator string, payload any) (*ent.Artifact, error) {
	row := &ent.Artifact{ID: uuid.New(), JobID: jobID, Type: artifactType, CreatedAt: time.Now()}
	if locator != "" {
		row.StorageLocator = &locator
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		row.Payload = b
	}
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memArtifacts) ExistsByType(_ context.Context, jobID uuid.UUID, artifactType string) (bool, error) {
	for _, r := range m.rows {
		if r.JobID == jobID && r.Type == artifactType {
			return true, nil
		}
	}
	return false, nil
}

func (m *memArtifacts) LatestByType(_ context.Context, jobID uuid.UUID, artifactType string) (*ent.Artifact, error) {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].JobID == jobID && m.rows[i].Type == artifactType {
			return m.rows[i], nil
		}
	}
	return nil, fmt.Errorf("no %s artifact for job %s", artifactType, jobID)
}

func (m *memArtifacts) ListByType(_ context.Context, jobID uuid.UUID, artifactType string) ([]*ent.Artifact, error) {
	var out []*ent.Artifact
	for _, r := range m.rows {
		if r.JobID == jobID && r.Type == artifactType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memArtifacts) ListByJob(_ context.Context, jobID uuid.UUID) ([]*ent.Artifact, error) {
	var out []*ent.Artifact
	for _, r := range m.rows {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memArtifacts) countByType(jobID uuid.UUID, artifactType string) int {
	n := 0
	for _, r := range m.rows {
		if r.JobID == jobID && r.Type == artifactType {
			n++
		}
	}
	return n
}

// faultyArtifacts injects storage errors for a single artifact type.
type faultyArtifacts struct {
	memArtifacts
	failAppendType string
	failExistsType string
}

func (m *faultyArtifacts) Append(ctx context.Context, jobID uuid.UUID, artifactType string, payload any) (*ent.Artifact, error) {
	if artifactType == m.failAppendType {
		return nil, fmt.Errorf("artifact store unavailable")
	}
	return m.memArtifacts.Append(ctx, jobID, artifactType, payload)
}

func (m *faultyArtifacts) ExistsByType(ctx context.Context, jobID uuid.UUID, artifactType string) (bool, error) {
	if artifactType == m.failExistsType {
		return false, fmt.Errorf("artifact store unavailable")
	}
	return m.memArtifacts.ExistsByType(ctx, jobID, artifactType)
}

type memProfiles struct {
	rows map[uuid.UUID]*ent.Profile
}

func (m *memProfiles) GetByID(_ context.Context, id uuid.UUID) (*ent.Profile, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, fmt.Errorf("profile %s not found", id)
	}
	return p, nil
}

func (m *memProfiles) GetOrCreateByEmail(_ context.Context, email, name string) (*ent.Profile, error) {
	for _, p := range m.rows {
		if p.Email == email {
			return p, nil
		}
	}
	p := &ent.Profile{ID: uuid.New(), Email: email, Name: name}
	m.rows[p.ID] = p
	return p, nil
}

func (m *memProfiles) CreditBalance(ctx context.Context, id uuid.UUID) (int, error) {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return p.CreditBalance, nil
}

func (m *memProfiles) DecrementCredits(ctx context.Context, id uuid.UUID, observed int) (bool, error) {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if observed < 1 || p.CreditBalance != observed {
		return false, nil
	}
	p.CreditBalance--
	return true, nil
}

func (m *memProfiles) AddCredits(ctx context.Context, id uuid.UUID, amount int) error {
	p, err := m.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.CreditBalance += amount
	return nil
}

func (m *memProfiles) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.rows[id]
	return ok, nil
}

type memBlobs struct {
	data map[string][]byte
}

func (m *memBlobs) Put(_ context.Context, key string, data []byte) (string, error) {
	m.data[key] = data
	return key, nil
}

func (m *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", key)
	}
	return b, nil
}

// --- fixtures and wiring ---

const testRentRollCSV = `Unit,Unit Type,Current Rent,Status
101,1BR,"1,000",Occupied
102,1BR,"1,000",Vacant
103,2BR,"1,500",Occupied
104,2BR,"1,500",Occupied
`

const testT12CSV = `Line Item,Jan,Feb
Gross Potential Rent,"10,000","10,000"
Net Operating Income,"7,750","7,750"
`

type harness struct {
	driver    *Driver
	jobs      *memJobs
	files     *memFiles
	artifacts *memArtifacts
	profiles  *memProfiles
	blobs     *memBlobs
}

func newHarness() *harness {
	h := &harness{
		jobs:      newMemJobs(),
		files:     &memFiles{},
		artifacts: &memArtifacts{},
		profiles:  &memProfiles{rows: make(map[uuid.UUID]*ent.Profile)},
		blobs:     &memBlobs{data: make(map[string][]byte)},
	}
	cfg := common.DriverConfig{
		BatchSize:      25,
		MaxPasses:      10,
		WallBudget:     time.Minute,
		StaleThreshold: 60 * time.Minute,
	}
	h.driver = NewDriver(cfg, Deps{
		Jobs:       h.jobs,
		Files:      h.files,
		Artifacts:  h.artifacts,
		Profiles:   h.profiles,
		Blobs:      h.blobs,
		Classifier: classify.NewRuleClassifier(nil),
		Caps:       extract.Capabilities{Spreadsheet: true},
		Ledger:     billing.NewLedger(h.profiles, h.artifacts, h.jobs, nil),
		Reports:    report.NewStubGenerator(nil),
		Notifier:   notify.NewLogNotifier(nil),
	})
	return h
}

func (h *harness) addProfile(credits int) *ent.Profile {
	p := &ent.Profile{ID: uuid.New(), Email: "owner@example.com", Name: "Owner", CreditBalance: credits}
	h.profiles.rows[p.ID] = p
	return p
}

func (h *harness) addJob(ownerID uuid.UUID, status constants.JobStatus) *ent.Job {
	name := "Sunset Gardens"
	job := &ent.Job{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Status:       string(status),
		ReportType:   "underwriting",
		PropertyName: &name,
		CreatedAt:    time.Now(),
	}
	h.jobs.add(job)
	return job
}

func (h *harness) addFile(jobID uuid.UUID, name, ext string, content []byte) *ent.JobFile {
	locator := fmt.Sprintf("jobs/%s/%s", jobID, name)
	h.blobs.data[locator] = content
	f := &ent.JobFile{
		ID:               uuid.New(),
		JobID:            jobID,
		OriginalFilename: name,
		MimeType:         constants.MimeForExt(ext),
		StorageLocator:   locator,
		ParseStatus:      string(constants.ParseStatusPending),
		UploadedAt:       time.Now(),
	}
	h.files.add(f)
	return f
}

type failingReports struct{}

func (failingReports) GenerateReport(context.Context, report.Request) (report.Response, error) {
	return report.Response{}, fmt.Errorf("report backend unavailable")
}

type countingNotifier struct {
	sent int
}

func (n *countingNotifier) Send(context.Context, notify.Message) error {
	n.sent++
	return nil
}

func transitionList(t *testing.T, m *memArtifacts, jobID uuid.UUID) []transitionRecord {
	t.Helper()
	var out []transitionRecord
	for _, r := range m.rows {
		if r.JobID == jobID && r.Type == constants.ArtifactStatusTransition {
			var rec transitionRecord
			require.NoError(t, json.Unmarshal(r.Payload, &rec))
			out = append(out, rec)
		}
	}
	return out
}

// --- tests ---

func TestDriverHappyPath(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))

	sum, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	// the whole chain advances within one pass; the second pass finds nothing
	assert.Equal(t, 2, sum.Passes)
	assert.Equal(t, 7, sum.Transitions)
	assert.Zero(t, sum.TimedOut)

	final := h.jobs.rows[job.ID]
	assert.Equal(t, string(constants.JobStatusPublished), final.Status)
	assert.NotNil(t, final.StartedAt)
	assert.NotNil(t, final.CompletedAt)
	assert.Nil(t, final.ErrorCode)

	for _, artifactType := range []string{
		constants.ArtifactRentRollParsed,
		constants.ArtifactT12Parsed,
		constants.ArtifactUnderwritingSummary,
		constants.ArtifactReportGenerated,
		constants.ArtifactCreditConsumed,
		constants.ArtifactCompletionEmail,
	} {
		assert.Equal(t, 1, h.artifacts.countByType(job.ID, artifactType), artifactType)
	}
	assert.Equal(t, 2, h.artifacts.countByType(job.ID, constants.ArtifactDocumentClassified))
	assert.Equal(t, 7, h.artifacts.countByType(job.ID, constants.ArtifactStatusTransition))
	assert.Equal(t, 0, owner.CreditBalance)

	summaryRow, err := h.artifacts.LatestByType(context.Background(), job.ID, constants.ArtifactUnderwritingSummary)
	require.NoError(t, err)
	var summary underwritingSummary
	require.NoError(t, json.Unmarshal(summaryRow.Payload, &summary))
	assert.Equal(t, 4, summary.TotalUnits)
	require.NotNil(t, summary.Occupancy)
	assert.InDelta(t, 0.75, *summary.Occupancy, 1e-9)
	require.NotNil(t, summary.NetOperatingIncome)
	assert.InDelta(t, 15500, *summary.NetOperatingIncome, 1e-9)
	require.NotNil(t, summary.NOIPerUnit)
	assert.InDelta(t, 3875, *summary.NOIPerUnit, 1e-9)
	assert.Nil(t, summary.ExpenseRatio, "ratio needs both inputs, one is absent")
}

func TestDriverRerunIsIdempotent(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(2)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))

	_, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)
	sum, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sum.Transitions)
	assert.Equal(t, 1, owner.CreditBalance, "published job must not bill again")
	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactCompletionEmail))
}

func TestDriverMissingT12DivertsToNeedsDocuments(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))

	sum, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Transitions)
	final := h.jobs.rows[job.ID]
	assert.Equal(t, string(constants.JobStatusNeedsDocuments), final.Status)

	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactRentRollParsed))
	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactNeedsDocumentsEmail))
	assert.Equal(t, 1, owner.CreditBalance, "no billing before publishing")

	row, err := h.artifacts.LatestByType(context.Background(), job.ID, constants.ArtifactStatusTransition)
	require.NoError(t, err)
	var rec transitionRecord
	require.NoError(t, json.Unmarshal(row.Payload, &rec))
	assert.Equal(t, string(constants.JobStatusNeedsDocuments), rec.ToStatus)
}

func TestDriverResumesAfterDocumentArrives(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))

	_, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)
	require.Equal(t, string(constants.JobStatusNeedsDocuments), h.jobs.rows[job.ID].Status)

	// upload path: new document plus conditional re-queue
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))
	moved, err := h.jobs.Transition(context.Background(), job.ID, constants.JobStatusNeedsDocuments, constants.JobStatusQueued)
	require.NoError(t, err)
	require.True(t, moved)

	_, err = h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, string(constants.JobStatusPublished), h.jobs.rows[job.ID].Status)
	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactRentRollParsed), "existing artifact is reused, not reparsed")
	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactNeedsDocumentsEmail), "email not resent on recovery")
}

func TestDriverTimesOutStaleJobs(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusExtracting)
	stale := time.Now().Add(-61 * time.Minute)
	job.StartedAt = &stale

	sum, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.TimedOut)
	final := h.jobs.rows[job.ID]
	assert.Equal(t, string(constants.JobStatusFailed), final.Status)
	require.NotNil(t, final.ErrorCode)
	assert.Equal(t, constants.ErrCodeTimeout, *final.ErrorCode)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, common.GenericUserMessage, *final.ErrorMessage)
	assert.NotNil(t, final.FailedAt)

	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactWorkerEvent))
	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactStatusTransition))
}

func TestDriverFreshJobsAreNotReaped(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusExtracting)
	recent := time.Now().Add(-10 * time.Minute)
	job.StartedAt = &recent
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))

	sum, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sum.TimedOut)
	assert.Equal(t, string(constants.JobStatusPublished), h.jobs.rows[job.ID].Status)
}

func TestDriverEmptyQueueCostsOnePass(t *testing.T) {
	h := newHarness()

	sum, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Passes)
	assert.Zero(t, sum.Transitions)
}

func TestDriverInsufficientCreditsFailsJob(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(0)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))

	_, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	final := h.jobs.rows[job.ID]
	assert.Equal(t, string(constants.JobStatusFailed), final.Status)
	require.NotNil(t, final.ErrorCode)
	assert.Equal(t, constants.ErrCodeInsufficientCredits, *final.ErrorCode)

	assert.Equal(t, 1, h.artifacts.countByType(job.ID, constants.ArtifactCreditFailed))
	assert.Zero(t, h.artifacts.countByType(job.ID, constants.ArtifactCreditConsumed))
	assert.Zero(t, h.artifacts.countByType(job.ID, constants.ArtifactCompletionEmail))
}

func TestDriverPrefersSpreadsheetOverScan(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	scan := h.addFile(job.ID, "rent_roll_scan.pdf", "pdf", []byte("%PDF-1.4"))
	sheet := h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))

	_, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	row, err := h.artifacts.LatestByType(context.Background(), job.ID, constants.ArtifactRentRollParsed)
	require.NoError(t, err)
	var result extract.RentRollResult
	require.NoError(t, json.Unmarshal(row.Payload, &result))
	assert.Equal(t, sheet.ID.String(), result.SourceFileID)
	assert.Equal(t, extract.MethodSpreadsheet, result.Method)

	// without the OCR capability the scan is simply left alone
	assert.Equal(t, string(constants.ParseStatusPending), scan.ParseStatus)
	assert.Equal(t, string(constants.ParseStatusParsed), sheet.ParseStatus)
	assert.Equal(t, string(constants.JobStatusPublished), h.jobs.rows[job.ID].Status)
}

func TestDriverRecordsTransitionBeforeStageWork(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))

	faulty := &faultyArtifacts{failAppendType: constants.ArtifactDocumentClassified}
	h.driver.artifacts = faulty

	_, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err)

	final := h.jobs.rows[job.ID]
	assert.Equal(t, string(constants.JobStatusFailed), final.Status)

	// the queued -> extracting update committed, so its record must exist
	// even though classification blew up right after
	recs := transitionList(t, &faulty.memArtifacts, job.ID)
	require.NotEmpty(t, recs)
	assert.Equal(t, string(constants.JobStatusQueued), recs[0].FromStatus)
	assert.Equal(t, string(constants.JobStatusExtracting), recs[0].ToStatus)
}

func TestDriverFailureRecordsCurrentStatus(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusQueued)
	h.addFile(job.ID, "rent_roll.csv", "csv", []byte(testRentRollCSV))
	h.addFile(job.ID, "t12.csv", "csv", []byte(testT12CSV))

	h.driver.reports = failingReports{}

	_, err := h.driver.RunPasses(context.Background())
	require.NoError(t, err, "a blown-up job is isolated, not a run error")

	final := h.jobs.rows[job.ID]
	assert.Equal(t, string(constants.JobStatusFailed), final.Status)
	require.NotNil(t, final.ErrorCode)
	assert.Equal(t, constants.ErrCodeRender, *final.ErrorCode)

	// the report call failed after the scoring -> rendering update, so the
	// failure record must show rendering, not the stale batch status
	recs := transitionList(t, h.artifacts, job.ID)
	require.NotEmpty(t, recs)
	last := recs[len(recs)-1]
	assert.Equal(t, string(constants.JobStatusRendering), last.FromStatus)
	assert.Equal(t, string(constants.JobStatusFailed), last.ToStatus)
}

func TestNotifyGuardCheckFailureIsLogged(t *testing.T) {
	h := newHarness()
	owner := h.addProfile(1)
	job := h.addJob(owner.ID, constants.JobStatusExtracting)

	var buf bytes.Buffer
	h.driver.logger = slog.New(slog.NewTextHandler(&buf, nil))
	faulty := &faultyArtifacts{failExistsType: constants.ArtifactNeedsDocumentsEmail}
	h.driver.artifacts = faulty
	notifier := &countingNotifier{}
	h.driver.notifier = notifier

	h.driver.notifyNeedsDocuments(context.Background(), h.jobs.rows[job.ID], []string{constants.ArtifactT12Parsed})

	assert.Zero(t, notifier.sent, "guard state unknown, must not send")
	assert.Zero(t, faulty.countByType(job.ID, constants.ArtifactNeedsDocumentsEmail))
	assert.Contains(t, buf.String(), "notification guard check failed")
}
