package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/config"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/repository"
	"github.com/sangkips/fiscal-console/internal/infrastructure/cache"
	"github.com/sangkips/fiscal-console/internal/infrastructure/metrics"
	"github.com/sangkips/fiscal-console/internal/infrastructure/printservice"
	"github.com/sangkips/fiscal-console/internal/presentation/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const saleJobJSON = `{
	"id": 7, "printer_id": 1, "payload_type": "fiscal_receipt", "status": "success", "retries": 0,
	"payload": {"nsale": "S-1", "items": [{"name": "Хляб", "vat_group": "Б", "price": "1.50", "quantity": "2"}], "payments": [{"type": "P", "amount": "3"}]},
	"result": {"receipt_number": "42", "total_amount": "3.00"},
	"created_at": "2026-10-19T07:30:15+00:00", "updated_at": "2026-10-19T07:30:20+00:00"
}`

const printerJSON = `{"id": 1, "name": "FP-700", "model": "FP-700X", "transport": "serial", "enabled": true, "dry_run": false,
	"config": {"operator": {"id": "1", "password": "0000", "till": "1", "name": "Иван"}}}`

// fakePrintService answers like the real print service for the ids used here.
func fakePrintService(t *testing.T) (*httptest.Server, *[]entity.JobRequest) {
	var mu sync.Mutex
	var submitted []entity.JobRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/printers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[" + printerJSON + "]"))
	})
	mux.HandleFunc("/printers/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/printers/1" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Printer not found"}`))
			return
		}
		_, _ = w.Write([]byte(printerJSON))
	})
	mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("[" + saleJobJSON + "]"))
			return
		}
		var req entity.JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		mu.Lock()
		submitted = append(submitted, req)
		mu.Unlock()
		if req.PrinterID == 2 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail": "Printer is disabled"}`))
			return
		}
		job := entity.Job{ID: 100, PrinterID: req.PrinterID, PayloadType: req.PayloadType, Payload: req.Payload,
			Status: "queued", CreatedAt: "2026-10-19T09:00:00+00:00", UpdatedAt: "2026-10-19T09:00:00+00:00"}
		_ = json.NewEncoder(w).Encode(job)
	})
	mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/jobs/7":
			_, _ = w.Write([]byte(saleJobJSON))
		case "/jobs/7/cancel":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail": "Cannot cancel a job that is currently printing"}`))
		case "/jobs/7/retry":
			_, _ = w.Write([]byte(strings.Replace(saleJobJSON, `"success"`, `"queued"`, 1)))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Job not found"}`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &submitted
}

type submissionRepoMock struct {
	mu      sync.Mutex
	created []entity.Submission
}

func (r *submissionRepoMock) Create(ctx context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, *s)
	return nil
}

func (r *submissionRepoMock) List(ctx context.Context, params *repository.SubmissionFilterParams) ([]entity.Submission, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Submission
	for _, s := range r.created {
		if params.Status != nil && s.Status != *params.Status {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

type idempotencyRepoMock struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func (r *idempotencyRepoMock) GetByKey(ctx context.Context, key, endpoint string) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keys[key+"|"+endpoint], nil
}

func (r *idempotencyRepoMock) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[ikey.Key+"|"+ikey.Endpoint] = ikey
	return nil
}

func (r *idempotencyRepoMock) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type testEnv struct {
	router      *gin.Engine
	submitted   *[]entity.JobRequest
	submissions *submissionRepoMock
}

func setup(t *testing.T) *testEnv {
	srv, submitted := fakePrintService(t)
	cfg := &config.Config{App: config.AppConfig{Name: "fiscal-console"}}

	client := printservice.NewClient(
		config.PrintServiceConfig{URL: srv.URL, Timeout: time.Second},
		config.BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 5},
		nil,
	)
	reg := metrics.NewRegistry()
	client.SetObserver(reg.ObservePrintService)

	render := service.RenderSettings{Currency: "лв", Location: time.UTC}
	submissions := &submissionRepoMock{}
	composer := service.NewComposerService(client, render, reg)
	jobs := service.NewJobService(client, submissions, reg, time.UTC)
	previews := service.NewPreviewService(client, cache.NullCache{}, render, reg)

	handlers := &Handlers{
		Sale:       handler.NewSaleHandler(composer, jobs),
		Storno:     handler.NewStornoHandler(composer, jobs),
		Document:   handler.NewDocumentHandler(jobs),
		Job:        handler.NewJobHandler(jobs, previews),
		Printer:    handler.NewPrinterHandler(jobs),
		Submission: handler.NewSubmissionHandler(jobs),
		Health:     handler.NewHealthHandler(cfg.App.Name, nil, client.BreakerState),
	}
	router := Setup(handlers, &Deps{
		Cfg:             cfg,
		IdempotencyRepo: &idempotencyRepoMock{keys: map[string]*entity.IdempotencyKey{}},
		Recorder:        reg,
		Metrics:         reg.Handler(),
	})
	return &testEnv{router: router, submitted: submitted, submissions: submissions}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

const validSaleBody = `{
	"printer_id": 1,
	"operator": {"id": "1", "password": "0000", "till": "1"},
	"items": [{"name": "Хляб", "tax": "Б", "price": "1,50", "qty": "2"}],
	"payments": [{"type": "P", "amount": "5"}]
}`

func TestSales_Recompute(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/sales/recompute", `{
		"items": [{"name": "A", "price": "10", "qty": "2", "discount": "-10%"}, {"name": "B", "price": 5}],
		"payments": [{"type": "P", "amount": "30"}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var totals struct {
		Total     float64 `json:"total"`
		Change    float64 `json:"change"`
		HasChange bool    `json:"has_change"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &totals))
	assert.InDelta(t, 23.0, totals.Total, 1e-9)
	assert.InDelta(t, 7.0, totals.Change, 1e-9)
	assert.True(t, totals.HasChange)
}

func TestSales_ValidateReportsEveryField(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/sales/validate", `{"items": [{"name": "", "price": ""}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Draft has errors", body.Message)

	var result struct {
		Errors     map[string]string `json:"errors"`
		ItemErrors []bool            `json:"item_errors"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Len(t, result.Errors, 4)
	assert.Equal(t, []bool{true}, result.ItemErrors)
}

func TestSales_AutoFill(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/sales/autofill", `{
		"items": [{"name": "A", "price": "3.10"}],
		"payments": [{"type": "N", "amount": "1"}]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"amount":"3.10"`)
}

func TestSales_Preview(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/sales/preview",
		strings.Replace(validSaleBody, `"printer_id": 1,`, `"printer_id": 1, "timestamp": "2026-10-19T09:05:03Z",`, 1))
	require.Equal(t, http.StatusOK, rec.Code)

	var preview struct {
		Lines []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &preview))
	text := strings.Join(preview.Lines, "\n")
	assert.Contains(t, text, "FP-700")
	assert.Contains(t, text, "19.10.26 г., 09:05:03")

	rec, _ = env.do(t, http.MethodPost, "/api/v1/sales/preview", `{"timestamp": "soon"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSales_Draft(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodGet, "/api/v1/sales/draft?printer_id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"name":"Иван"`)

	rec, body = env.do(t, http.MethodGet, "/api/v1/sales/draft?printer_id=9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Printer not found", body.Message)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/sales/draft", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSales_Submit(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/sales", validSaleBody, "X-Request-ID", "req-9")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(body.Data), `"id":100`)

	require.Len(t, *env.submitted, 1)
	sent := (*env.submitted)[0]
	assert.Equal(t, "fiscal_receipt", string(sent.PayloadType))
	assert.Contains(t, string(sent.Payload), `"price":"1,50"`)

	require.Len(t, env.submissions.created, 1)
	assert.Equal(t, "req-9", env.submissions.created[0].RequestID)
}

func TestSales_SubmitInvalid(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/sales", `{"printer_id": 1, "items": [], "payments": []}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Поправи маркираните полета преди изпращане.", body.Message)

	var fields []struct {
		Field string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(body.Errors, &fields))
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Field
	}
	assert.Equal(t, []string{"items", "operator", "payments"}, names)
	assert.Empty(t, *env.submitted)
}

func TestSales_SubmitIdempotent(t *testing.T) {
	env := setup(t)
	first, _ := env.do(t, http.MethodPost, "/api/v1/sales", validSaleBody, "Idempotency-Key", "abc")
	second, _ := env.do(t, http.MethodPost, "/api/v1/sales", validSaleBody, "Idempotency-Key", "abc")

	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Len(t, *env.submitted, 1)
}

func TestDocuments_BackendRejection(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/reports", `{"printer_id": 2, "type": "z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Printer is disabled", body.Message)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/submissions?status=failed", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDocuments_Submit(t *testing.T) {
	env := setup(t)
	cases := []struct {
		path string
		body string
	}{
		{"/api/v1/cash", `{"printer_id": 1, "type": "out", "amount": 20}`},
		{"/api/v1/text", `{"printer_id": 1, "lines": ["Добър ден"]}`},
		{"/api/v1/receipts", `{"printer_id": 1, "header": ["Кафене"], "items": [{"name": "Кафе", "qty": 1, "price": "2.40"}]}`},
		{"/api/v1/storno", `{"printer_id": 1, "operator": {"id": "1", "password": "0000", "till": "1"}, "storno_type": "1",
			"original": {"doc_no": "42", "date": "191026073015"}, "items": [{"name": "Хляб", "price": "1.50"}],
			"payments": [{"type": "P", "amount": "1.50"}]}`},
	}
	for _, tc := range cases {
		rec, _ := env.do(t, http.MethodPost, tc.path, tc.body)
		assert.Equal(t, http.StatusCreated, rec.Code, tc.path+": "+rec.Body.String())
	}
	require.Len(t, *env.submitted, 4)
	assert.JSONEq(t, `{"type": "out", "amount": "20"}`, string((*env.submitted)[0].Payload))
}

func TestStorno_ValidateAndPreview(t *testing.T) {
	env := setup(t)
	rec, body := env.do(t, http.MethodPost, "/api/v1/storno/validate", `{"printer_id": 1, "storno_type": "7"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"storno_type"`)

	rec, body = env.do(t, http.MethodPost, "/api/v1/storno/preview", `{"printer_id": 1, "items": [{"name": "Хляб", "price": "1.50"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), "СТОРНО БОН")
}

func TestJobs(t *testing.T) {
	env := setup(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/jobs?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"id":7`)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/jobs?limit=500", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/jobs/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = env.do(t, http.MethodGet, "/api/v1/jobs/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", body.Message)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/jobs/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, body = env.do(t, http.MethodPost, "/api/v1/jobs/7/cancel", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot cancel a job that is currently printing", body.Message)

	rec, body = env.do(t, http.MethodPost, "/api/v1/jobs/7/retry", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"status":"queued"`)
}

func TestJobs_PreviewAndStorno(t *testing.T) {
	env := setup(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/jobs/7/preview", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), "ФИСКАЛЕН БОН")

	rec, body = env.do(t, http.MethodGet, "/api/v1/jobs/7/storno-draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"doc_no":"42"`)
	assert.Contains(t, string(body.Data), `"date":"191026073015"`)

	rec, body = env.do(t, http.MethodGet, "/api/v1/jobs/storno-candidates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"receipt_number":"42"`)
}

func TestPrintersHealthMetrics(t *testing.T) {
	env := setup(t)

	rec, body := env.do(t, http.MethodGet, "/api/v1/printers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), "FP-700")

	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"print_service":"closed"`)

	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `console_http_requests_total{code="200",method="GET",route="/api/v1/printers"} 1`)
	assert.Contains(t, rec.Body.String(), "console_print_service_seconds")
}

func TestSubmissions_List(t *testing.T) {
	env := setup(t)
	env.do(t, http.MethodPost, "/api/v1/sales", validSaleBody)

	rec, body := env.do(t, http.MethodGet, "/api/v1/submissions?status=accepted&per_page=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items      []map[string]interface{} `json:"items"`
		Pagination struct {
			PerPage int   `json:"per_page"`
			Total   int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "accepted", page.Items[0]["status"])
	assert.Equal(t, 5, page.Pagination.PerPage)

	rec, _ = env.do(t, http.MethodGet, "/api/v1/submissions?status=pending", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = env.do(t, http.MethodGet, "/api/v1/submissions?payload_type=fax", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
