package printservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sangkips/fiscal-console/internal/config"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(
		config.PrintServiceConfig{URL: srv.URL + "/", Timeout: time.Second},
		config.BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 2},
		nil,
	)
}

func TestClient_SubmitJob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jobs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req entity.JobRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(3), req.PrinterID)
		assert.Equal(t, enum.PayloadFiscalReceipt, req.PayloadType)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 17, "printer_id": 3, "payload_type": "fiscal_receipt", "payload": {}, "status": "queued", "retries": 0, "created_at": "2024-05-01T10:00:00+00:00", "updated_at": "2024-05-01T10:00:00+00:00"}`))
	})

	job, err := client.SubmitJob(context.Background(), entity.JobRequest{
		PrinterID:   3,
		PayloadType: enum.PayloadFiscalReceipt,
		Payload:     json.RawMessage(`{"items":[]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(17), job.ID)
	assert.Equal(t, enum.JobQueued, job.Status)
}

func TestClient_ListJobsClampsLimit(t *testing.T) {
	var seen []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[]`))
	})

	for _, limit := range []int{0, 20, 500} {
		jobs, err := client.ListJobs(context.Background(), limit)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	}
	assert.Equal(t, []string{"50", "20", "200"}, seen)
}

func TestClient_APIErrorDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Cannot cancel a job that is currently printing"}`))
	})

	_, err := client.CancelJob(context.Background(), 4)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Cannot cancel a job that is currently printing", apiErr.Detail)
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Job not found"}`))
	})

	for i := 0; i < 5; i++ {
		_, err := client.GetJob(context.Background(), 99)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
	}
	assert.Equal(t, "closed", client.BreakerState())
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 2; i++ {
		_, err := client.ListPrinters(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, "open", client.BreakerState())

	_, err := client.ListPrinters(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, calls)
}

func TestClient_UnreachableService(t *testing.T) {
	client := NewClient(
		config.PrintServiceConfig{URL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond},
		config.BreakerConfig{},
		nil,
	)

	_, err := client.GetPrinter(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		fallback string
		want     string
	}{
		{"string detail", `{"detail": "Printer not found"}`, "", "Printer not found"},
		{"validation list", `{"detail": [{"msg": "field required"}, {"msg": "value is not a valid integer"}]}`, "", "field required; value is not a valid integer"},
		{"plain text", "upstream exploded", "", "upstream exploded"},
		{"empty body", "", "502 Bad Gateway", "502 Bad Gateway"},
		{"empty everything", "", "", "Unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDetail([]byte(tt.body), tt.fallback))
		})
	}
}

func TestClient_Observer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/jobs/1/retry" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail": "Only failed or queued jobs can be retried"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 1, "name": "Касa 1", "enabled": true, "config": {}}`))
	})

	var seen []string
	client.SetObserver(func(operation, outcome string, elapsed time.Duration) {
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
		seen = append(seen, operation+":"+outcome)
	})

	_, err := client.GetPrinter(context.Background(), 1)
	require.NoError(t, err)
	_, err = client.RetryJob(context.Background(), 1)
	require.Error(t, err)

	assert.Equal(t, []string{"get_printer:ok", "retry_job:rejected"}, seen)
}
