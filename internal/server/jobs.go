package server

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/propscope/underwriter/constants"
	v1 "github.com/propscope/underwriter/gen/proto/underwriter/v1"
	"github.com/propscope/underwriter/internal/common"
	"github.com/propscope/underwriter/internal/pipeline"
	"github.com/propscope/underwriter/internal/repository"
	"github.com/propscope/underwriter/internal/storage"
)

type JobsService struct {
	v1.UnimplementedJobsServiceServer
	jobs      repository.JobRepository
	files     repository.JobFileRepository
	artifacts repository.ArtifactRepository
	profiles  repository.ProfileRepository
	blobs     storage.BlobStore
	driver    *pipeline.Driver
	logger    *slog.Logger
}

func NewJobsService(
	jobs repository.JobRepository,
	files repository.JobFileRepository,
	artifacts repository.ArtifactRepository,
	profiles repository.ProfileRepository,
	blobs storage.BlobStore,
	driver *pipeline.Driver,
	logger *slog.Logger,
) *JobsService {
	return &JobsService{
		jobs:      jobs,
		files:     files,
		artifacts: artifacts,
		profiles:  profiles,
		blobs:     blobs,
		driver:    driver,
		logger:    logger,
	}
}

func (s *JobsService) CreateJob(ctx context.Context, req *v1.CreateJobRequest) (*v1.CreateJobResponse, error) {
	email := strings.TrimSpace(req.GetOwnerEmail())
	if email == "" {
		return nil, common.InvalidArgumentError("owner_email is required")
	}

	profile, err := s.profiles.GetOrCreateByEmail(ctx, email, strings.TrimSpace(req.GetOwnerName()))
	if err != nil {
		s.logger.Error("profile lookup failed during job creation", "email", email, "error", err)
		return nil, common.InternalError("create job failed")
	}

	job, err := s.jobs.Create(ctx, profile.ID, req.GetReportType(), req.GetPropertyName())
	if err != nil {
		return nil, common.InternalError("create job failed")
	}

	return &v1.CreateJobResponse{
		JobId:   job.ID.String(),
		OwnerId: profile.ID.String(),
		Status:  job.Status,
	}, nil
}

// UploadDocument stores a document and attaches it to the job. A job parked
// in needs_documents is conditionally moved back to queued so the next driver
// pass re-attempts extraction with the new document.
func (s *JobsService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, common.NotFoundError("job not found")
	}
	switch constants.JobStatus(job.Status) {
	case constants.JobStatusQueued, constants.JobStatusNeedsDocuments:
	default:
		return nil, status.Errorf(codes.FailedPrecondition, "job in status %q does not accept uploads", job.Status)
	}

	locator := fmt.Sprintf("jobs/%s/%s-%s", job.ID, uuid.New(), filepath.Base(filename))
	if _, err := s.blobs.Put(ctx, locator, req.GetContent()); err != nil {
		s.logger.Error("failed to store uploaded document", "job_id", job.ID, "filename", filename, "error", err)
		return nil, common.InternalError("store document failed")
	}

	file, err := s.files.Create(ctx, repository.CreateFileRequest{
		JobID:            job.ID,
		OriginalFilename: filepath.Base(filename),
		MimeType:         constants.MimeForExt(ext),
		StorageLocator:   locator,
	})
	if err != nil {
		return nil, common.InternalError("attach document failed")
	}

	resp := &v1.UploadDocumentResponse{
		FileId:    file.ID.String(),
		JobStatus: job.Status,
	}

	if constants.JobStatus(job.Status) == constants.JobStatusNeedsDocuments {
		moved, err := s.jobs.Transition(ctx, job.ID, constants.JobStatusNeedsDocuments, constants.JobStatusQueued)
		if err != nil {
			s.logger.Error("re-queue after upload failed", "job_id", job.ID, "error", err)
			return nil, common.InternalError("re-queue failed")
		}
		if moved {
			resp.Requeued = true
			resp.JobStatus = string(constants.JobStatusQueued)
			if _, err := s.artifacts.Append(ctx, job.ID, constants.ArtifactStatusTransition, map[string]any{
				"job_id":      job.ID.String(),
				"from_status": string(constants.JobStatusNeedsDocuments),
				"to_status":   string(constants.JobStatusQueued),
				"timestamp":   time.Now().UTC(),
				"meta":        map[string]any{"reason": "document_uploaded", "file_id": file.ID.String()},
			}); err != nil {
				s.logger.Error("failed to record re-queue transition", "job_id", job.ID, "error", err)
			}
			s.logger.Info("job re-queued after document upload", "job_id", job.ID, "file_id", file.ID)
		}
	}

	return resp, nil
}

func (s *JobsService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, common.NotFoundError("job not found")
	}
	files, err := s.files.ListByJob(ctx, job.ID)
	if err != nil {
		s.logger.Error("failed to list job files", "job_id", job.ID, "error", err)
		return nil, common.InternalError("get job failed")
	}

	out := &v1.Job{
		Id:           job.ID.String(),
		OwnerId:      job.OwnerID.String(),
		Status:       job.Status,
		ReportType:   job.ReportType,
		PropertyName: derefString(job.PropertyName),
		ErrorCode:    derefString(job.ErrorCode),
		ErrorMessage: derefString(job.ErrorMessage),
		CreatedAt:    job.CreatedAt.UTC().Format(time.RFC3339),
		StartedAt:    formatNillable(job.StartedAt),
		CompletedAt:  formatNillable(job.CompletedAt),
		FailedAt:     formatNillable(job.FailedAt),
		Files:        make([]*v1.JobFile, 0, len(files)),
	}
	for _, f := range files {
		pf := &v1.JobFile{
			Id:          f.ID.String(),
			Filename:    f.OriginalFilename,
			ParseStatus: f.ParseStatus,
			ParseError:  derefString(f.ParseError),
		}
		if f.DocType != nil {
			pf.DocType = *f.DocType
		}
		out.Files = append(out.Files, pf)
	}
	return &v1.GetJobResponse{Job: out}, nil
}

func (s *JobsService) ListArtifacts(ctx context.Context, req *v1.ListArtifactsRequest) (*v1.ListArtifactsResponse, error) {
	jobID, err := parseID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	list, err := s.listArtifacts(ctx, jobID, req.GetType())
	if err != nil {
		s.logger.Error("failed to list artifacts", "job_id", jobID, "error", err)
		return nil, common.InternalError("list artifacts failed")
	}
	artifacts := make([]*v1.Artifact, 0, len(list))
	for _, a := range list {
		pa := &v1.Artifact{
			Id:          a.ID.String(),
			Type:        a.Type,
			PayloadJson: string(a.Payload),
			CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
		}
		if a.StorageLocator != nil {
			pa.StorageLocator = *a.StorageLocator
		}
		artifacts = append(artifacts, pa)
	}
	return &v1.ListArtifactsResponse{Artifacts: artifacts}, nil
}

func (s *JobsService) RunDriver(ctx context.Context, _ *v1.RunDriverRequest) (*v1.RunDriverResponse, error) {
	sum, err := s.driver.RunPasses(ctx)
	if err != nil {
		s.logger.Error("manual driver run failed", "error", err)
		return nil, common.InternalError("driver run failed")
	}
	return &v1.RunDriverResponse{
		Passes:      int32(sum.Passes),
		Transitions: int32(sum.Transitions),
		TimedOut:    int32(sum.TimedOut),
	}, nil
}
