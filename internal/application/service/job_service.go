package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/internal/domain/fiscal"
	"github.com/sangkips/fiscal-console/internal/domain/repository"
	"github.com/sangkips/fiscal-console/pkg/apperror"
	"github.com/sangkips/fiscal-console/pkg/pagination"
)

// DefaultJobsLimit is the page size of the job list.
const DefaultJobsLimit = 50

// candidateWindow is how many recent jobs are scanned for storno candidates.
const candidateWindow = 100

// JobService validates documents, queues them with the print service and
// keeps the local submission log.
type JobService struct {
	client      PrintService
	submissions repository.SubmissionRepository
	recorder    Recorder
	location    *time.Location
}

// NewJobService creates a new job service
func NewJobService(
	client PrintService,
	submissions repository.SubmissionRepository,
	recorder Recorder,
	location *time.Location,
) *JobService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if location == nil {
		location = time.UTC
	}
	return &JobService{
		client:      client,
		submissions: submissions,
		recorder:    recorder,
		location:    location,
	}
}

// SubmitSale validates a sale and queues it as a fiscal receipt.
func (s *JobService) SubmitSale(ctx context.Context, draft entity.SaleDraft, requestID string) (*entity.Job, error) {
	return s.submit(ctx, enum.PayloadFiscalReceipt, draft.PrinterID, fiscal.ValidateSale(draft), requestID)
}

// SubmitStorno validates a reversal and queues it.
func (s *JobService) SubmitStorno(ctx context.Context, draft entity.StornoDraft, requestID string) (*entity.Job, error) {
	return s.submit(ctx, enum.PayloadStorno, draft.PrinterID, fiscal.ValidateStorno(draft), requestID)
}

// SubmitReport queues a Z or X report.
func (s *JobService) SubmitReport(ctx context.Context, req entity.ReportRequest, requestID string) (*entity.Job, error) {
	return s.submit(ctx, enum.PayloadReport, req.PrinterID, fiscal.ValidateReport(req), requestID)
}

// SubmitCash queues a drawer movement.
func (s *JobService) SubmitCash(ctx context.Context, m entity.CashMovement, requestID string) (*entity.Job, error) {
	return s.submit(ctx, enum.PayloadCash, m.PrinterID, fiscal.ValidateCash(m), requestID)
}

// SubmitText queues a free-text slip.
func (s *JobService) SubmitText(ctx context.Context, doc entity.TextDocument, requestID string) (*entity.Job, error) {
	return s.submit(ctx, enum.PayloadText, doc.PrinterID, fiscal.ValidateText(doc), requestID)
}

// SubmitReceipt queues a structured non-fiscal receipt.
func (s *JobService) SubmitReceipt(ctx context.Context, rc entity.Receipt, requestID string) (*entity.Job, error) {
	return s.submit(ctx, enum.PayloadReceipt, rc.PrinterID, fiscal.ValidateReceipt(rc), requestID)
}

func (s *JobService) submit(
	ctx context.Context,
	payloadType enum.PayloadType,
	printerID int64,
	result fiscal.ValidationResult,
	requestID string,
) (*entity.Job, error) {
	payload, err := json.Marshal(result.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", payloadType, err)
	}

	record := &entity.Submission{
		PrinterID:   printerID,
		PayloadType: payloadType,
		Payload:     string(payload),
		RequestID:   requestID,
	}

	if !result.Valid() {
		record.Status = enum.SubmissionRejected
		record.Error = joinErrors(result)
		s.audit(ctx, record)
		return nil, validationError(result)
	}

	job, err := s.client.SubmitJob(ctx, entity.JobRequest{
		PrinterID:   printerID,
		PayloadType: payloadType,
		Payload:     payload,
	})
	if err != nil {
		appErr := printServiceError(err)
		record.Status = enum.SubmissionFailed
		record.Error = appErr.Message
		s.audit(ctx, record)
		log.Errorf("submit %s to printer %d failed: %v", payloadType, printerID, err)
		return nil, appErr
	}

	record.Status = enum.SubmissionAccepted
	record.JobID = &job.ID
	s.audit(ctx, record)
	log.Infof("queued %s job %d on printer %d", payloadType, job.ID, printerID)
	return job, nil
}

// audit persists the attempt. A broken audit log never blocks printing.
func (s *JobService) audit(ctx context.Context, record *entity.Submission) {
	s.recorder.RecordSubmission(string(record.PayloadType), record.Status.String())
	if s.submissions == nil {
		return
	}
	if err := s.submissions.Create(ctx, record); err != nil {
		log.Warningf("could not record %s submission: %v", record.PayloadType, err)
	}
}

func joinErrors(result fiscal.ValidationResult) string {
	fields := result.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + result.Errors[f]
	}
	return strings.Join(parts, "; ")
}

// ListJobs returns the latest jobs, newest first.
func (s *JobService) ListJobs(ctx context.Context, limit int) ([]entity.Job, error) {
	if limit <= 0 {
		limit = DefaultJobsLimit
	}
	jobs, err := s.client.ListJobs(ctx, limit)
	if err != nil {
		return nil, printServiceError(err)
	}
	if jobs == nil {
		jobs = []entity.Job{}
	}
	return jobs, nil
}

func (s *JobService) GetJob(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		return nil, printServiceError(err)
	}
	return job, nil
}

// RetryJob asks the print service to run a failed or queued job again.
func (s *JobService) RetryJob(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := s.client.RetryJob(ctx, id)
	if err != nil {
		return nil, printServiceError(err)
	}
	log.Infof("job %d re-queued", id)
	return job, nil
}

// CancelJob cancels a job that is not printing.
func (s *JobService) CancelJob(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := s.client.CancelJob(ctx, id)
	if err != nil {
		return nil, printServiceError(err)
	}
	log.Infof("job %d cancelled", id)
	return job, nil
}

// StornoDraft builds a reversal draft of a completed sale. The operator is
// taken from the printer config when one is set.
func (s *JobService) StornoDraft(ctx context.Context, jobID int64) (*entity.StornoDraft, error) {
	job, err := s.client.GetJob(ctx, jobID)
	if err != nil {
		return nil, printServiceError(err)
	}
	draft, err := fiscal.StornoFromJob(job, s.location)
	if errors.Is(err, fiscal.ErrNotStornoCandidate) {
		return nil, apperror.NewConflictError("Само успешни фискални бонове с номер могат да бъдат сторнирани.")
	}
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if printer, err := s.client.GetPrinter(ctx, job.PrinterID); err == nil {
		draft.Operator = printer.DefaultOperator()
	} else {
		log.Warningf("printer %d lookup for storno draft failed: %v", job.PrinterID, err)
	}
	return &draft, nil
}

// StornoCandidates lists recent completed sales that can be reversed.
func (s *JobService) StornoCandidates(ctx context.Context) ([]fiscal.StornoCandidate, error) {
	jobs, err := s.client.ListJobs(ctx, candidateWindow)
	if err != nil {
		return nil, printServiceError(err)
	}
	return fiscal.StornoCandidates(jobs, s.location), nil
}

func (s *JobService) ListPrinters(ctx context.Context) ([]entity.Printer, error) {
	printers, err := s.client.ListPrinters(ctx)
	if err != nil {
		return nil, printServiceError(err)
	}
	if printers == nil {
		printers = []entity.Printer{}
	}
	return printers, nil
}

// ListSubmissions pages through the local submission log.
func (s *JobService) ListSubmissions(ctx context.Context, params *repository.SubmissionFilterParams) (*pagination.PaginatedResult[entity.Submission], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	submissions, total, err := s.submissions.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(submissions, pag), nil
}
