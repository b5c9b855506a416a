package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/gen/ent"
	"github.com/propscope/underwriter/internal/common"
)

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatNillable(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *JobsService) listArtifacts(ctx context.Context, jobID uuid.UUID, artifactType string) ([]*ent.Artifact, error) {
	if artifactType != "" {
		return s.artifacts.ListByType(ctx, jobID, artifactType)
	}
	return s.artifacts.ListByJob(ctx, jobID)
}
