package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	entjob "github.com/propscope/underwriter/gen/ent/job"
)

// JobRepository owns all mutation of job rows. Status moves only through the
// conditional transition methods: an update that matches zero rows means
// another worker got there first, and the caller must skip its side effects.
type JobRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, reportType, propertyName string) (*ent.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error)
	ListByStatus(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.Job, error)
	ListStale(ctx context.Context, cutoff time.Time) ([]*ent.Job, error)

	Transition(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error)
	TransitionStart(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error)
	TransitionComplete(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error)
	FailFrom(ctx context.Context, id uuid.UUID, from constants.JobStatus, code, message string) (bool, error)
	Fail(ctx context.Context, id uuid.UUID, code, message string) (bool, error)
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) Create(ctx context.Context, ownerID uuid.UUID, reportType, propertyName string) (*ent.Job, error) {
	create := r.ent.Job.Create().
		SetOwnerID(ownerID).
		SetStatus(string(constants.JobStatusQueued))
	if reportType != "" {
		create.SetReportType(reportType)
	}
	if propertyName != "" {
		create.SetPropertyName(propertyName)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job", "owner_id", ownerID, "error", err)
		return nil, err
	}
	r.logger.Info("job created", "job_id", row.ID, "owner_id", ownerID)
	return row, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	return r.ent.Job.Get(ctx, id)
}

// ListByStatus returns a bounded, oldest-first batch of jobs in one status.
func (r *jobRepo) ListByStatus(ctx context.Context, status constants.JobStatus, limit int) ([]*ent.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(entjob.StatusEQ(string(status))).
		Order(entjob.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list jobs by status", "status", status, "error", err)
		return nil, err
	}
	return rows, nil
}

// ListStale returns in-progress jobs whose anchor timestamp (started_at when
// set, otherwise created_at) is older than cutoff.
func (r *jobRepo) ListStale(ctx context.Context, cutoff time.Time) ([]*ent.Job, error) {
	statuses := make([]string, 0, len(constants.InProgressStatuses))
	for _, s := range constants.InProgressStatuses {
		statuses = append(statuses, string(s))
	}
	rows, err := r.ent.Job.Query().
		Where(
			entjob.StatusIn(statuses...),
			entjob.Or(
				entjob.And(entjob.StartedAtNotNil(), entjob.StartedAtLT(cutoff)),
				entjob.And(entjob.StartedAtIsNil(), entjob.CreatedAtLT(cutoff)),
			),
		).
		Order(entjob.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list stale jobs", "error", err)
		return nil, err
	}
	return rows, nil
}

// Transition performs the compare-and-swap status update. The returned bool
// is true only if this call moved the row; false means another worker already
// advanced it and the caller owns no side effects.
func (r *jobRepo) Transition(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(from))).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.logger.Error("job transition failed", "job_id", id, "from", from, "to", to, "error", err)
		return false, err
	}
	return n > 0, nil
}

// TransitionStart is Transition plus stamping started_at.
func (r *jobRepo) TransitionStart(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(from))).
		SetStatus(string(to)).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("job transition failed", "job_id", id, "from", from, "to", to, "error", err)
		return false, err
	}
	return n > 0, nil
}

// TransitionComplete is Transition plus stamping completed_at.
func (r *jobRepo) TransitionComplete(ctx context.Context, id uuid.UUID, from, to constants.JobStatus) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(from))).
		SetStatus(string(to)).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("job transition failed", "job_id", id, "from", from, "to", to, "error", err)
		return false, err
	}
	return n > 0, nil
}

// FailFrom fails a job only if it is still in the expected source status.
func (r *jobRepo) FailFrom(ctx context.Context, id uuid.UUID, from constants.JobStatus, code, message string) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(entjob.ID(id), entjob.StatusEQ(string(from))).
		SetStatus(string(constants.JobStatusFailed)).
		SetFailedAt(time.Now().UTC()).
		SetErrorCode(code).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("job fail update failed", "job_id", id, "from", from, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Warn("job failed", "job_id", id, "from", from, "code", code)
	}
	return n > 0, nil
}

// Fail fails a job from any non-terminal status.
func (r *jobRepo) Fail(ctx context.Context, id uuid.UUID, code, message string) (bool, error) {
	n, err := r.ent.Job.Update().
		Where(
			entjob.ID(id),
			entjob.StatusNotIn(
				string(constants.JobStatusPublished),
				string(constants.JobStatusFailed),
			),
		).
		SetStatus(string(constants.JobStatusFailed)).
		SetFailedAt(time.Now().UTC()).
		SetErrorCode(code).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("job fail update failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Warn("job failed", "job_id", id, "code", code)
	}
	return n > 0, nil
}
