package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	"github.com/propscope/underwriter/internal/billing"
	"github.com/propscope/underwriter/internal/classify"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/extract"
	"github.com/propscope/underwriter/internal/notify"
	"github.com/propscope/underwriter/internal/report"
	"github.com/propscope/underwriter/internal/repository"
	"github.com/propscope/underwriter/internal/storage"
	"github.com/propscope/underwriter/internal/tablex"
)

// Driver advances jobs through the pipeline. It holds no state between
// passes: any number of driver invocations may overlap, coordinated solely
// through conditional status updates — whichever call's update sticks owns
// that transition's side effects.
type Driver struct {
	cfg common.DriverConfig

	jobs      repository.JobRepository
	files     repository.JobFileRepository
	artifacts repository.ArtifactRepository
	profiles  repository.ProfileRepository

	blobs      storage.BlobStore
	classifier classify.Classifier
	caps       extract.Capabilities
	analyzer   tablex.Analyzer

	rentRollSheet extract.RentRollExtractor
	rentRollOCR   extract.RentRollExtractor
	t12Sheet      extract.T12Extractor
	t12OCR        extract.T12Extractor

	ledger    *billing.Ledger
	reports   report.Generator
	notifier  notify.Notifier
	logger    *slog.Logger
}

type Deps struct {
	Jobs      repository.JobRepository
	Files     repository.JobFileRepository
	Artifacts repository.ArtifactRepository
	Profiles  repository.ProfileRepository

	Blobs      storage.BlobStore
	Classifier classify.Classifier
	Caps       extract.Capabilities
	Analyzer   tablex.Analyzer

	Ledger   *billing.Ledger
	Reports  report.Generator
	Notifier notify.Notifier
	Logger   *slog.Logger
}

func NewDriver(cfg common.DriverConfig, deps Deps) *Driver {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		cfg:           cfg,
		jobs:          deps.Jobs,
		files:         deps.Files,
		artifacts:     deps.Artifacts,
		profiles:      deps.Profiles,
		blobs:         deps.Blobs,
		classifier:    deps.Classifier,
		caps:          deps.Caps,
		analyzer:      deps.Analyzer,
		rentRollSheet: extract.NewSpreadsheetRentRoll(logger),
		rentRollOCR:   extract.NewOCRTableRentRoll(logger),
		t12Sheet:      extract.NewSpreadsheetT12(logger),
		t12OCR:        extract.NewOCRTableT12(logger),
		ledger:        deps.Ledger,
		reports:       deps.Reports,
		notifier:      deps.Notifier,
		logger:        logger,
	}
}

// Summary reports what a RunPasses call did.
type Summary struct {
	Passes      int
	Transitions int
	TimedOut    int
}

// RunPasses executes driver passes until a pass yields zero transitions, the
// pass limit is hit, or the wall-clock budget runs out. An empty queue
// therefore costs exactly one pass.
func (d *Driver) RunPasses(ctx context.Context) (Summary, error) {
	deadline := time.Now().Add(d.cfg.WallBudget)
	var sum Summary

	for pass := 0; pass < d.cfg.MaxPasses; pass++ {
		if time.Now().After(deadline) {
			d.logger.Warn("driver wall budget exhausted", "passes", sum.Passes)
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		transitions, timedOut, err := d.runPass(ctx)
		sum.Passes++
		sum.Transitions += transitions
		sum.TimedOut += timedOut
		if err != nil {
			return sum, err
		}
		if transitions == 0 {
			break
		}
	}

	d.logger.Info("driver run complete",
		"passes", sum.Passes,
		"transitions", sum.Transitions,
		"timed_out", sum.TimedOut,
	)
	return sum, nil
}

// runPass does the timeout sweep and then one bounded batch per stage.
// Per-job failures are isolated: a job that blows up is failed and the rest
// of the batch continues.
func (d *Driver) runPass(ctx context.Context) (int, int, error) {
	timedOut, err := d.reapStale(ctx)
	if err != nil {
		return 0, 0, err
	}
	transitions := timedOut

	type stageFn func(context.Context, *ent.Job) (bool, error)
	stages := []struct {
		status constants.JobStatus
		fn     stageFn
	}{
		{constants.JobStatusQueued, d.processQueued},
		{constants.JobStatusExtracting, d.processExtracting},
		{constants.JobStatusUnderwriting, d.processUnderwriting},
		{constants.JobStatusScoring, d.processScoring},
		{constants.JobStatusRendering, d.processRendering},
		{constants.JobStatusPDFGenerating, d.processPDFGenerating},
		{constants.JobStatusPublishing, d.processPublishing},
	}

	for _, stage := range stages {
		batch, err := d.jobs.ListByStatus(ctx, stage.status, d.cfg.BatchSize)
		if err != nil {
			return transitions, timedOut, err
		}
		for _, job := range batch {
			moved, err := stage.fn(ctx, job)
			if err != nil {
				d.failJob(ctx, job, string(stage.status), err)
				transitions++
				continue
			}
			if moved {
				transitions++
			}
		}
	}
	return transitions, timedOut, nil
}

// reapStale force-fails in-progress jobs whose anchor timestamp is older
// than the stale threshold. The conditional FailFrom keeps concurrent
// sweepers from writing duplicate timeout artifacts.
func (d *Driver) reapStale(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-d.cfg.StaleThreshold)
	stale, err := d.jobs.ListStale(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	reaped := 0
	for _, job := range stale {
		moved, err := d.jobs.FailFrom(ctx, job.ID, constants.JobStatus(job.Status),
			constants.ErrCodeTimeout, common.GenericUserMessage)
		if err != nil {
			d.logger.Error("timeout fail update errored", "job_id", job.ID, "error", err)
			continue
		}
		if !moved {
			continue
		}
		reaped++
		d.appendWorkerEvent(ctx, job.ID, workerEvent{
			Stage:     job.Status,
			ErrorCode: constants.ErrCodeTimeout,
			Detail:    "job exceeded stale threshold",
		})
		d.recordTransition(ctx, job.ID, constants.JobStatus(job.Status), constants.JobStatusFailed, map[string]any{
			"reason": "timeout",
		})
	}
	return reaped, nil
}

type transitionRecord struct {
	JobID      string         `json:"job_id"`
	FromStatus string         `json:"from_status"`
	ToStatus   string         `json:"to_status"`
	Timestamp  time.Time      `json:"timestamp"`
	Meta       map[string]any `json:"meta,omitempty"`
}

func (d *Driver) recordTransition(ctx context.Context, jobID uuid.UUID, from, to constants.JobStatus, meta map[string]any) {
	_, err := d.artifacts.Append(ctx, jobID, constants.ArtifactStatusTransition, transitionRecord{
		JobID:      jobID.String(),
		FromStatus: string(from),
		ToStatus:   string(to),
		Timestamp:  time.Now().UTC(),
		Meta:       meta,
	})
	if err != nil {
		d.logger.Error("failed to record status transition", "job_id", jobID, "from", from, "to", to, "error", err)
	}
}

type workerEvent struct {
	Stage     string `json:"stage"`
	ErrorCode string `json:"error_code,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

func (d *Driver) appendWorkerEvent(ctx context.Context, jobID uuid.UUID, ev workerEvent) {
	if _, err := d.artifacts.Append(ctx, jobID, constants.ArtifactWorkerEvent, ev); err != nil {
		d.logger.Error("failed to append worker event", "job_id", jobID, "error", err)
	}
}

// failJob marks a job failed with a generic user-facing message and keeps
// the diagnostic detail in the internal worker_event artifact only.
func (d *Driver) failJob(ctx context.Context, job *ent.Job, stage string, cause error) {
	code := constants.ErrCodeInternal
	var appErr *common.AppError
	if errors.As(cause, &appErr) {
		code = appErr.Code
	}

	// the batch row predates the stage's own CAS; re-read so the audit
	// trail records the status the job actually failed from
	from := constants.JobStatus(job.Status)
	if fresh, err := d.jobs.GetByID(ctx, job.ID); err == nil {
		from = constants.JobStatus(fresh.Status)
	}

	moved, err := d.jobs.Fail(ctx, job.ID, code, common.GenericUserMessage)
	if err != nil {
		d.logger.Error("failed to mark job failed", "job_id", job.ID, "error", err)
		return
	}
	if !moved {
		return
	}
	d.appendWorkerEvent(ctx, job.ID, workerEvent{
		Stage:     stage,
		ErrorCode: code,
		Detail:    cause.Error(),
	})
	d.recordTransition(ctx, job.ID, from, constants.JobStatusFailed, map[string]any{
		"error_code": code,
	})
	d.logger.Error("job failed during stage work", "job_id", job.ID, "stage", stage, "code", code, "error", cause)
}
