package tablex

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// HTTPAnalyzer calls the OCR/table-detection service over HTTP.
type HTTPAnalyzer struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPAnalyzer(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *HTTPAnalyzer {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HTTPAnalyzer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (a *HTTPAnalyzer) AnalyzeTables(ctx context.Context, data []byte, mimeType string) ([]RawTable, error) {
	if err := CheckMime(mimeType); err != nil {
		return nil, err
	}

	start := time.Now()
	body := map[string]any{
		"mime_type": mimeType,
		"content":   base64.StdEncoding.EncodeToString(data),
	}
	raw, err := a.post(ctx, a.baseURL+"/v1/tables:analyze", body)
	if err != nil {
		a.logger.Error("tablex.analyze.http_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	var resp struct {
		Tables []RawTable `json:"tables"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		a.logger.Error("tablex.analyze.decode_error", "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("decode table analysis response: %w", err)
	}

	a.logger.Info("tablex.analyze.ok",
		"mime_type", mimeType,
		"tables", len(resp.Tables),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return resp.Tables, nil
}

func (a *HTTPAnalyzer) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("table analysis http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			a.logger.Warn("table analysis response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("table analysis status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}
