package notify

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
)

// Notifier dispatches a message through the external notification
// collaborator. Callers guard invocations with idempotency artifacts; the
// client itself sends unconditionally.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// HTTPNotifier is the production Notifier over the collaborator's HTTP API.
type HTTPNotifier struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPNotifier(baseURL, apiKey, from string, timeout time.Duration, logger *slog.Logger) *HTTPNotifier {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HTTPNotifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (n *HTTPNotifier) Send(ctx context.Context, msg Message) error {
	body := map[string]string{
		"from":    n.from,
		"to":      msg.To,
		"subject": msg.Subject,
		"text":    msg.Text,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/v1/messages", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.logger.Error("notify.send.http_error", "to", msg.To, "error", err)
		return fmt.Errorf("notification http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			n.logger.Warn("notification response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("notification status %d: %s", resp.StatusCode, buf.String())
	}

	n.logger.Info("notify.send.ok", "to", msg.To, "subject", msg.Subject)
	return nil
}

// LogNotifier only logs; stands in when no collaborator is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, msg Message) error {
	n.logger.Info("notify.send.log_only", "to", msg.To, "subject", msg.Subject)
	return nil
}
