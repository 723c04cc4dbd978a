// Package httpclient turns composed request state into a single outbound
// HTTP call and classifies the result. A dispatch never fails its caller:
// transport errors come back as a response record with status code 0.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/restdeck/restdeck/internal/domain"
)

// oversizeThreshold is the body size in bytes above which the response is
// retained raw and flagged instead of pretty-printed.
const oversizeThreshold = 100_000

// defaultTimeout bounds a single dispatch end to end.
const defaultTimeout = 30 * time.Second

// Dispatcher executes one HTTP call per invocation. It holds no shared
// state beyond the client and touches neither disk nor the workspace.
type Dispatcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher with a default client. Redirect
// behavior is the transport's default; there are no retries.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		client: &http.Client{Timeout: defaultTimeout},
		logger: logger,
	}
}

// SetClient overrides the underlying HTTP client. Passing nil restores
// the default. Used by tests.
func (d *Dispatcher) SetClient(client *http.Client) {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	d.client = client
}

// Execute performs the call described by the request snapshot and returns
// a classified record. Transport failures (DNS, refused connection,
// timeout, TLS) yield a record with StatusCode 0 and the failure message
// in the body; Execute never panics or returns an error.
func (d *Dispatcher) Execute(ctx context.Context, req domain.Request) domain.ResponseRecord {
	effectiveURL := BuildURL(req.URL, req.Params)

	var body io.Reader
	if req.Method.AllowsBody() && req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), effectiveURL, body)
	if err != nil {
		return failureRecord(err, 0)
	}

	// Headers attach in row order; duplicate keys are sent as repeated
	// headers, not deduplicated.
	for _, kv := range req.EffectiveHeaders() {
		httpReq.Header.Add(kv.Key, kv.Value)
	}

	d.logger.Debug("dispatching request",
		slog.String("method", string(req.Method)),
		slog.String("url", effectiveURL))

	start := time.Now()
	resp, err := d.client.Do(httpReq)
	if err != nil {
		return failureRecord(err, time.Since(start))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return failureRecord(err, elapsed)
	}

	record := domain.ResponseRecord{
		StatusCode:  resp.StatusCode,
		StatusLabel: classifyStatus(resp.StatusCode),
		Elapsed:     elapsed,
	}
	record.Body, record.BodyOversized = formatBody(raw)

	d.logger.Debug("dispatch complete",
		slog.Int("status", record.StatusCode),
		slog.Duration("elapsed", record.Elapsed),
		slog.Int("body_bytes", len(raw)),
		slog.Bool("oversized", record.BodyOversized))

	return record
}

func failureRecord(err error, elapsed time.Duration) domain.ResponseRecord {
	return domain.ResponseRecord{
		StatusCode:  0,
		StatusLabel: "Error",
		Elapsed:     elapsed,
		Body:        "Error: " + err.Error(),
	}
}

// classifyStatus buckets a status code into a display label.
func classifyStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "OK"
	case code >= 400 && code < 500:
		return "Client Error"
	case code >= 500 && code < 600:
		return "Server Error"
	default:
		return "Response"
	}
}

// formatBody applies the oversize guard and, for bodies under the
// threshold, pretty-prints valid JSON. Anything else is kept verbatim.
func formatBody(raw []byte) (string, bool) {
	if len(raw) > oversizeThreshold {
		return string(raw), true
	}
	if json.Valid(raw) && len(bytes.TrimSpace(raw)) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err == nil {
			return buf.String(), false
		}
	}
	return string(raw), false
}
