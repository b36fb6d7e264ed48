// Package printservice is the HTTP client of the remote print service that
// owns printers and the job queue.
package printservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/sangkips/fiscal-console/internal/config"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sony/gobreaker/v2"
)

var log = logging.MustGetLogger("printservice")

// MaxJobsLimit is the largest page the print service returns.
const MaxJobsLimit = 200

// ErrUnavailable is returned while the breaker is open or the service
// cannot be reached.
var ErrUnavailable = errors.New("print service unavailable")

// APIError is a non-2xx answer. Detail is the service's own message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("print service returned %d: %s", e.Status, e.Detail)
}

// Client talks to the print service. All calls share one circuit breaker.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	observe Observer
}

// Observer receives the duration and outcome of every call.
type Observer func(operation, outcome string, elapsed time.Duration)

// NewClient creates a client for cfg.URL. A nil httpClient gets one with
// cfg.Timeout.
func NewClient(cfg config.PrintServiceConfig, bcfg config.BreakerConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	threshold := bcfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "print-service",
		MaxRequests: bcfg.MaxRequests,
		Interval:    bcfg.Interval,
		Timeout:     bcfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warningf("circuit breaker %s: %s -> %s", name, from, to)
		},
		// A rejected request is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status < http.StatusInternalServerError
			}
			return err == nil
		},
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		http:    httpClient,
		breaker: breaker,
	}
}

// SetObserver installs fn as the call observer.
func (c *Client) SetObserver(fn Observer) {
	c.observe = fn
}

// BreakerState reports the current breaker state, e.g. for health checks.
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// SubmitJob queues a job.
func (c *Client) SubmitJob(ctx context.Context, req entity.JobRequest) (*entity.Job, error) {
	var job entity.Job
	if err := c.call(ctx, "submit_job", http.MethodPost, "/jobs", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob fetches a single job.
func (c *Client) GetJob(ctx context.Context, id int64) (*entity.Job, error) {
	var job entity.Job
	if err := c.call(ctx, "get_job", http.MethodGet, "/jobs/"+strconv.FormatInt(id, 10), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns the most recent jobs, newest first.
func (c *Client) ListJobs(ctx context.Context, limit int) ([]entity.Job, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > MaxJobsLimit {
		limit = MaxJobsLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}

	var jobs []entity.Job
	if err := c.call(ctx, "list_jobs", http.MethodGet, "/jobs?"+q.Encode(), nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// RetryJob re-queues a failed or queued job.
func (c *Client) RetryJob(ctx context.Context, id int64) (*entity.Job, error) {
	var job entity.Job
	if err := c.call(ctx, "retry_job", http.MethodPost, "/jobs/"+strconv.FormatInt(id, 10)+"/retry", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CancelJob cancels a job that is not printing.
func (c *Client) CancelJob(ctx context.Context, id int64) (*entity.Job, error) {
	var job entity.Job
	if err := c.call(ctx, "cancel_job", http.MethodPost, "/jobs/"+strconv.FormatInt(id, 10)+"/cancel", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListPrinters returns every registered printer.
func (c *Client) ListPrinters(ctx context.Context) ([]entity.Printer, error) {
	var printers []entity.Printer
	if err := c.call(ctx, "list_printers", http.MethodGet, "/printers", nil, &printers); err != nil {
		return nil, err
	}
	return printers, nil
}

// GetPrinter fetches a single printer.
func (c *Client) GetPrinter(ctx context.Context, id int64) (*entity.Printer, error) {
	var printer entity.Printer
	if err := c.call(ctx, "get_printer", http.MethodGet, "/printers/"+strconv.FormatInt(id, 10), nil, &printer); err != nil {
		return nil, err
	}
	return &printer, nil
}

func (c *Client) call(ctx context.Context, op, method, path string, in, out interface{}) (err error) {
	if c.observe != nil {
		start := time.Now()
		defer func() { c.observe(op, outcome(err), time.Since(start)) }()
	}

	var payload []byte
	if in != nil {
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, path, payload)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("%s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warningf("%s %s -> %d", method, path, resp.StatusCode)
		return nil, &APIError{Status: resp.StatusCode, Detail: ParseDetail(body, resp.Status)}
	}
	log.Debugf("%s %s -> %d", method, path, resp.StatusCode)
	return body, nil
}

// ParseDetail extracts the user-facing message of an error body. The
// service answers {"detail": "..."}; validation failures carry a list of
// {"msg": "..."} objects instead. Anything else is returned as text, or
// fallback when the body is empty.
func ParseDetail(body []byte, fallback string) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var text string
		if err := json.Unmarshal(envelope.Detail, &text); err == nil {
			return text
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				if it.Msg != "" {
					msgs = append(msgs, it.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
		return string(envelope.Detail)
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	if fallback == "" {
		return "Unexpected error"
	}
	return fallback
}

func outcome(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		return "rejected"
	default:
		return "error"
	}
}
