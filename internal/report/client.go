package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator invokes the external report-generation collaborator once per job
// reaching rendering.
type Generator interface {
	GenerateReport(ctx context.Context, req Request) (Response, error)
}

type Request struct {
	UserID       string `json:"userId"`
	PropertyName string `json:"property_name"`
	JobID        string `json:"jobId"`
}

type Response struct {
	ReportID string `json:"reportId"`
}

// HTTPGenerator is the production Generator over the collaborator's HTTP API.
type HTTPGenerator struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPGenerator(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HTTPGenerator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (g *HTTPGenerator) GenerateReport(ctx context.Context, req Request) (Response, error) {
	start := time.Now()

	b, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("marshal report request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/reports", bytes.NewReader(b))
	if err != nil {
		return Response{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.logger.Error("report.generate.http_error", "job_id", req.JobID, "error", err)
		return Response{}, fmt.Errorf("report generation http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			g.logger.Warn("report response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return Response{}, fmt.Errorf("report generation status %d: %s", resp.StatusCode, buf.String())
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("decode report response: %w", err)
	}
	if out.ReportID == "" {
		return Response{}, fmt.Errorf("report generation returned no reportId")
	}

	g.logger.Info("report.generate.ok",
		"job_id", req.JobID,
		"report_id", out.ReportID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// StubGenerator fabricates report ids locally. Used by the batch CLI when no
// collaborator endpoint is configured.
type StubGenerator struct {
	logger *slog.Logger
}

func NewStubGenerator(logger *slog.Logger) *StubGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubGenerator{logger: logger}
}

func (g *StubGenerator) GenerateReport(_ context.Context, req Request) (Response, error) {
	id := uuid.New().String()
	g.logger.Info("report.generate.stub", "job_id", req.JobID, "report_id", id)
	return Response{ReportID: id}, nil
}
