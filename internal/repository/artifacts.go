package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/propscope/underwriter/gen/ent"
	entartifact "github.com/propscope/underwriter/gen/ent/artifact"
)

// ArtifactRepository is append-only by construction: there are no update or
// delete methods. ExistsByType is the idempotency check every guarded side
// effect goes through.
type ArtifactRepository interface {
	Append(ctx context.Context, jobID uuid.UUID, artifactType string, payload any) (*ent.Artifact, error)
	AppendWithLocator(ctx context.Context, jobID uuid.UUID, artifactType, locator string, payload any) (*ent.Artifact, error)
	ExistsByType(ctx context.Context, jobID uuid.UUID, artifactType string) (bool, error)
	LatestByType(ctx context.Context, jobID uuid.UUID, artifactType string) (*ent.Artifact, error)
	ListByType(ctx context.Context, jobID uuid.UUID, artifactType string) ([]*ent.Artifact, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.Artifact, error)
}

type artifactRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewArtifactRepository(entc *ent.Client, logger *slog.Logger) ArtifactRepository {
	return &artifactRepo{ent: entc, logger: logger}
}

func (r *artifactRepo) Append(ctx context.Context, jobID uuid.UUID, artifactType string, payload any) (*ent.Artifact, error) {
	return r.AppendWithLocator(ctx, jobID, artifactType, "", payload)
}

func (r *artifactRepo) AppendWithLocator(ctx context.Context, jobID uuid.UUID, artifactType, locator string, payload any) (*ent.Artifact, error) {
	create := r.ent.Artifact.Create().
		SetJobID(jobID).
		SetType(artifactType)
	if locator != "" {
		create.SetStorageLocator(locator)
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal artifact payload: %w", err)
		}
		create.SetPayload(b)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to append artifact", "job_id", jobID, "type", artifactType, "error", err)
		return nil, err
	}
	r.logger.Debug("artifact appended", "job_id", jobID, "type", artifactType, "artifact_id", row.ID)
	return row, nil
}

func (r *artifactRepo) ExistsByType(ctx context.Context, jobID uuid.UUID, artifactType string) (bool, error) {
	exists, err := r.ent.Artifact.Query().
		Where(entartifact.JobID(jobID), entartifact.TypeEQ(artifactType)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check artifact existence", "job_id", jobID, "type", artifactType, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *artifactRepo) LatestByType(ctx context.Context, jobID uuid.UUID, artifactType string) (*ent.Artifact, error) {
	row, err := r.ent.Artifact.Query().
		Where(entartifact.JobID(jobID), entartifact.TypeEQ(artifactType)).
		Order(entartifact.ByCreatedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *artifactRepo) ListByType(ctx context.Context, jobID uuid.UUID, artifactType string) ([]*ent.Artifact, error) {
	rows, err := r.ent.Artifact.Query().
		Where(entartifact.JobID(jobID), entartifact.TypeEQ(artifactType)).
		Order(entartifact.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list artifacts by type", "job_id", jobID, "type", artifactType, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *artifactRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.Artifact, error) {
	rows, err := r.ent.Artifact.Query().
		Where(entartifact.JobID(jobID)).
		Order(entartifact.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list artifacts", "job_id", jobID, "error", err)
		return nil, err
	}
	return rows, nil
}
