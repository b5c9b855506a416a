package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	"github.com/propscope/underwriter/internal/billing"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/notify"
	"github.com/propscope/underwriter/internal/report"
)

// processQueued starts the job: stamp started_at, move to extracting, and
// classify whatever is not yet labeled.
func (d *Driver) processQueued(ctx context.Context, job *ent.Job) (bool, error) {
	moved, err := d.jobs.TransitionStart(ctx, job.ID, constants.JobStatusQueued, constants.JobStatusExtracting)
	if err != nil || !moved {
		return false, err
	}
	// record immediately: the CAS is committed even if stage work blows up
	d.recordTransition(ctx, job.ID, constants.JobStatusQueued, constants.JobStatusExtracting, nil)

	if err := d.classifyFiles(ctx, job); err != nil {
		return true, err
	}
	return true, nil
}

// processExtracting runs extraction attempts and only lets the job leave
// extracting once both required artifacts exist. Anything less diverts to
// needs_documents with a one-time notification.
func (d *Driver) processExtracting(ctx context.Context, job *ent.Job) (bool, error) {
	// files uploaded after the job started may still be unlabeled
	if err := d.classifyFiles(ctx, job); err != nil {
		return false, err
	}

	if err := d.ensureRentRollArtifact(ctx, job); err != nil {
		return false, err
	}
	if err := d.ensureT12Artifact(ctx, job); err != nil {
		return false, err
	}

	missing, err := d.missingArtifacts(ctx, job)
	if err != nil {
		return false, err
	}
	if len(missing) == 0 {
		moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusExtracting, constants.JobStatusUnderwriting)
		if err != nil || !moved {
			return false, err
		}
		d.recordTransition(ctx, job.ID, constants.JobStatusExtracting, constants.JobStatusUnderwriting, nil)
		return true, nil
	}

	moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusExtracting, constants.JobStatusNeedsDocuments)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusExtracting, constants.JobStatusNeedsDocuments, map[string]any{
		"missing": missing,
	})
	d.notifyNeedsDocuments(ctx, job, missing)
	return true, nil
}

// underwritingSummary is derived strictly from parsed artifacts. A metric
// missing upstream stays nil here; ratios are computed only when both inputs
// are present.
type underwritingSummary struct {
	TotalUnits           int      `json:"total_units"`
	Occupancy            *float64 `json:"occupancy"`
	GrossPotentialRent   *float64 `json:"gross_potential_rent"`
	EffectiveGrossIncome *float64 `json:"effective_gross_income"`
	OperatingExpenses    *float64 `json:"total_operating_expenses"`
	NetOperatingIncome   *float64 `json:"net_operating_income"`
	ExpenseRatio         *float64 `json:"expense_ratio"`
	NOIPerUnit           *float64 `json:"noi_per_unit"`
}

func (d *Driver) processUnderwriting(ctx context.Context, job *ent.Job) (bool, error) {
	moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusUnderwriting, constants.JobStatusScoring)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusUnderwriting, constants.JobStatusScoring, nil)

	exists, err := d.artifacts.ExistsByType(ctx, job.ID, constants.ArtifactUnderwritingSummary)
	if err != nil {
		return true, err
	}
	if !exists {
		summary, err := d.buildSummary(ctx, job)
		if err != nil {
			return true, err
		}
		if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactUnderwritingSummary, summary); err != nil {
			return true, err
		}
	}
	return true, nil
}

// processScoring advances to rendering, re-validates the required artifacts
// (degraded state can reach scoring through non-standard paths), and invokes
// the report collaborator once.
func (d *Driver) processScoring(ctx context.Context, job *ent.Job) (bool, error) {
	moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusScoring, constants.JobStatusRendering)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusScoring, constants.JobStatusRendering, nil)

	if diverted, err := d.divertIfMissingArtifacts(ctx, job); diverted || err != nil {
		return true, err
	}
	if err := d.generateReportOnce(ctx, job); err != nil {
		return true, err
	}
	return true, nil
}

// processRendering finishes jobs parked in rendering: recover a missed
// report call if needed, then hand off to PDF generation.
func (d *Driver) processRendering(ctx context.Context, job *ent.Job) (bool, error) {
	if diverted, err := d.divertIfMissingArtifacts(ctx, job); diverted || err != nil {
		return diverted, err
	}
	if err := d.generateReportOnce(ctx, job); err != nil {
		return false, err
	}

	moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusRendering, constants.JobStatusPDFGenerating)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusRendering, constants.JobStatusPDFGenerating, nil)
	return true, nil
}

// processPDFGenerating bills the job on its way into publishing.
func (d *Driver) processPDFGenerating(ctx context.Context, job *ent.Job) (bool, error) {
	moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusPDFGenerating, constants.JobStatusPublishing)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusPDFGenerating, constants.JobStatusPublishing, nil)

	outcome, err := d.ledger.ConsumeCreditOnce(ctx, job.ID, job.OwnerID)
	if err != nil {
		return true, common.NewAppError(constants.ErrCodeBilling, "credit consumption failed", err)
	}
	if outcome == billing.OutcomeFailed {
		// ledger already failed the job and wrote the credit_failed event
		d.recordTransition(ctx, job.ID, constants.JobStatusPublishing, constants.JobStatusFailed, map[string]any{
			"error_code": constants.ErrCodeInsufficientCredits,
		})
	}
	return true, nil
}

// processPublishing completes the job and sends the one-time completion
// notification.
func (d *Driver) processPublishing(ctx context.Context, job *ent.Job) (bool, error) {
	moved, err := d.jobs.TransitionComplete(ctx, job.ID, constants.JobStatusPublishing, constants.JobStatusPublished)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusPublishing, constants.JobStatusPublished, nil)
	d.notifyCompletion(ctx, job)
	return true, nil
}

// missingArtifacts lists which of the two required extraction artifacts a
// job still lacks.
func (d *Driver) missingArtifacts(ctx context.Context, job *ent.Job) ([]string, error) {
	var missing []string
	for _, artifactType := range []string{constants.ArtifactRentRollParsed, constants.ArtifactT12Parsed} {
		exists, err := d.artifacts.ExistsByType(ctx, job.ID, artifactType)
		if err != nil {
			return nil, err
		}
		if !exists {
			missing = append(missing, artifactType)
		}
	}
	return missing, nil
}

// divertIfMissingArtifacts moves a rendering job back to needs_documents
// when a required artifact vanished from under it.
func (d *Driver) divertIfMissingArtifacts(ctx context.Context, job *ent.Job) (bool, error) {
	missing, err := d.missingArtifacts(ctx, job)
	if err != nil {
		return false, err
	}
	if len(missing) == 0 {
		return false, nil
	}

	moved, err := d.jobs.Transition(ctx, job.ID, constants.JobStatusRendering, constants.JobStatusNeedsDocuments)
	if err != nil || !moved {
		return false, err
	}
	d.recordTransition(ctx, job.ID, constants.JobStatusRendering, constants.JobStatusNeedsDocuments, map[string]any{
		"missing": missing,
	})
	d.notifyNeedsDocuments(ctx, job, missing)
	return true, nil
}

// generateReportOnce calls the report collaborator unless its artifact
// already exists.
func (d *Driver) generateReportOnce(ctx context.Context, job *ent.Job) error {
	exists, err := d.artifacts.ExistsByType(ctx, job.ID, constants.ArtifactReportGenerated)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	propertyName := ""
	if job.PropertyName != nil {
		propertyName = *job.PropertyName
	}
	resp, err := d.reports.GenerateReport(ctx, report.Request{
		UserID:       job.OwnerID.String(),
		PropertyName: propertyName,
		JobID:        job.ID.String(),
	})
	if err != nil {
		return common.NewAppError(constants.ErrCodeRender, "report generation failed", err)
	}
	if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactReportGenerated, map[string]any{
		"report_id": resp.ReportID,
	}); err != nil {
		return err
	}
	return nil
}

func (d *Driver) buildSummary(ctx context.Context, job *ent.Job) (*underwritingSummary, error) {
	rentRoll, err := d.loadRentRollResult(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("load rent_roll_parsed artifact: %w", err)
	}
	t12, err := d.loadT12Result(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("load t12_parsed artifact: %w", err)
	}

	summary := &underwritingSummary{
		TotalUnits:           rentRoll.TotalUnits,
		Occupancy:            rentRoll.Occupancy,
		GrossPotentialRent:   t12.GrossPotentialRent,
		EffectiveGrossIncome: t12.EffectiveGrossIncome,
		OperatingExpenses:    t12.TotalOperatingExpenses,
		NetOperatingIncome:   t12.NetOperatingIncome,
	}
	if t12.TotalOperatingExpenses != nil && t12.EffectiveGrossIncome != nil && *t12.EffectiveGrossIncome != 0 {
		ratio := *t12.TotalOperatingExpenses / *t12.EffectiveGrossIncome
		summary.ExpenseRatio = &ratio
	}
	if t12.NetOperatingIncome != nil && rentRoll.TotalUnits > 0 {
		perUnit := *t12.NetOperatingIncome / float64(rentRoll.TotalUnits)
		summary.NOIPerUnit = &perUnit
	}
	return summary, nil
}

// notifyNeedsDocuments dispatches the missing-documents email at most once
// per job, guarded by the email artifact.
func (d *Driver) notifyNeedsDocuments(ctx context.Context, job *ent.Job, missing []string) {
	sent, err := d.artifacts.ExistsByType(ctx, job.ID, constants.ArtifactNeedsDocumentsEmail)
	if err != nil {
		d.logger.Error("notification guard check failed", "job_id", job.ID, "error", err)
		return
	}
	if sent {
		return
	}
	owner, err := d.profiles.GetByID(ctx, job.OwnerID)
	if err != nil {
		d.logger.Error("failed to load owner for notification", "job_id", job.ID, "error", err)
		return
	}

	msg := notify.Message{
		To:      owner.Email,
		Subject: "More documents needed for your underwriting report",
		Text: "We could not extract the required financial data for your report. " +
			"Please upload the missing documents: " + strings.Join(missing, ", ") + ".",
	}
	if err := d.notifier.Send(ctx, msg); err != nil {
		d.logger.Error("needs_documents notification failed", "job_id", job.ID, "error", err)
		return
	}
	if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactNeedsDocumentsEmail, map[string]any{
		"to":      owner.Email,
		"missing": missing,
	}); err != nil {
		d.logger.Error("failed to record needs_documents email", "job_id", job.ID, "error", err)
	}
}

func (d *Driver) notifyCompletion(ctx context.Context, job *ent.Job) {
	sent, err := d.artifacts.ExistsByType(ctx, job.ID, constants.ArtifactCompletionEmail)
	if err != nil {
		d.logger.Error("notification guard check failed", "job_id", job.ID, "error", err)
		return
	}
	if sent {
		return
	}
	owner, err := d.profiles.GetByID(ctx, job.OwnerID)
	if err != nil {
		d.logger.Error("failed to load owner for notification", "job_id", job.ID, "error", err)
		return
	}

	propertyName := "your property"
	if job.PropertyName != nil && *job.PropertyName != "" {
		propertyName = *job.PropertyName
	}
	msg := notify.Message{
		To:      owner.Email,
		Subject: "Your underwriting report is ready",
		Text:    "The underwriting report for " + propertyName + " has been published.",
	}
	if err := d.notifier.Send(ctx, msg); err != nil {
		d.logger.Error("completion notification failed", "job_id", job.ID, "error", err)
		return
	}
	if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactCompletionEmail, map[string]any{
		"to": owner.Email,
	}); err != nil {
		d.logger.Error("failed to record completion email", "job_id", job.ID, "error", err)
	}
}
