package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	entfile "github.com/propscope/underwriter/gen/ent/jobfile"
)

type CreateFileRequest struct {
	JobID            uuid.UUID
	OriginalFilename string
	MimeType         string
	StorageLocator   string
}

type JobFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.JobFile, error)
	Create(ctx context.Context, req CreateFileRequest) (*ent.JobFile, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.JobFile, error)
	ListUnclassified(ctx context.Context, jobID uuid.UUID) ([]*ent.JobFile, error)
	ListByDocType(ctx context.Context, jobID uuid.UUID, docType constants.DocType) ([]*ent.JobFile, error)
	SetDocType(ctx context.Context, id uuid.UUID, docType constants.DocType) error
	MarkParsed(ctx context.Context, id uuid.UUID, status constants.ParseStatus) error
	MarkParseFailed(ctx context.Context, id uuid.UUID, parseError string) error
}

type jobFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobFileRepository(entc *ent.Client, logger *slog.Logger) JobFileRepository {
	return &jobFileRepo{ent: entc, logger: logger}
}

func (r *jobFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.JobFile, error) {
	return r.ent.JobFile.Get(ctx, id)
}

func (r *jobFileRepo) Create(ctx context.Context, req CreateFileRequest) (*ent.JobFile, error) {
	row, err := r.ent.JobFile.Create().
		SetJobID(req.JobID).
		SetOriginalFilename(req.OriginalFilename).
		SetMimeType(req.MimeType).
		SetStorageLocator(req.StorageLocator).
		SetParseStatus(string(constants.ParseStatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job file", "job_id", req.JobID, "filename", req.OriginalFilename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *jobFileRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*ent.JobFile, error) {
	rows, err := r.ent.JobFile.Query().
		Where(entfile.JobID(jobID)).
		Order(entfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list job files", "job_id", jobID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *jobFileRepo) ListUnclassified(ctx context.Context, jobID uuid.UUID) ([]*ent.JobFile, error) {
	rows, err := r.ent.JobFile.Query().
		Where(entfile.JobID(jobID), entfile.DocTypeIsNil()).
		Order(entfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list unclassified files", "job_id", jobID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *jobFileRepo) ListByDocType(ctx context.Context, jobID uuid.UUID, docType constants.DocType) ([]*ent.JobFile, error) {
	rows, err := r.ent.JobFile.Query().
		Where(entfile.JobID(jobID), entfile.DocTypeEQ(string(docType))).
		Order(entfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list files by doc type", "job_id", jobID, "doc_type", docType, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *jobFileRepo) SetDocType(ctx context.Context, id uuid.UUID, docType constants.DocType) error {
	_, err := r.ent.JobFile.UpdateOneID(id).
		SetDocType(string(docType)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set doc type", "file_id", id, "doc_type", docType, "error", err)
		return err
	}
	return nil
}

func (r *jobFileRepo) MarkParsed(ctx context.Context, id uuid.UUID, status constants.ParseStatus) error {
	_, err := r.ent.JobFile.UpdateOneID(id).
		SetParseStatus(string(status)).
		ClearParseError().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark file parsed", "file_id", id, "error", err)
		return err
	}
	return nil
}

func (r *jobFileRepo) MarkParseFailed(ctx context.Context, id uuid.UUID, parseError string) error {
	_, err := r.ent.JobFile.UpdateOneID(id).
		SetParseStatus(string(constants.ParseStatusFailed)).
		SetParseError(parseError).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark file parse failure", "file_id", id, "error", err)
		return err
	}
	r.logger.Warn("file parse failed", "file_id", id, "parse_error", parseError)
	return nil
}
