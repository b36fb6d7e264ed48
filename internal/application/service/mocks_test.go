package service

import (
	"context"
	"sync"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/repository"
)

type ClientMock struct {
	jobs     map[int64]*entity.Job
	list     []entity.Job
	printers map[int64]*entity.Printer
	err      error

	submitted []entity.JobRequest
	nextID    int64
}

func newClientMock() *ClientMock {
	return &ClientMock{
		jobs:     map[int64]*entity.Job{},
		printers: map[int64]*entity.Printer{},
		nextID:   100,
	}
}

func (c *ClientMock) SubmitJob(ctx context.Context, req entity.JobRequest) (*entity.Job, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.submitted = append(c.submitted, req)
	c.nextID++
	return &entity.Job{
		ID:          c.nextID,
		PrinterID:   req.PrinterID,
		PayloadType: req.PayloadType,
		Payload:     req.Payload,
		Status:      "queued",
		CreatedAt:   "2026-10-19T09:00:00+00:00",
		UpdatedAt:   "2026-10-19T09:00:00+00:00",
	}, nil
}

func (c *ClientMock) GetJob(ctx context.Context, id int64) (*entity.Job, error) {
	if c.err != nil {
		return nil, c.err
	}
	job, ok := c.jobs[id]
	if !ok {
		return nil, notFound("Job not found")
	}
	return job, nil
}

func (c *ClientMock) ListJobs(ctx context.Context, limit int) ([]entity.Job, error) {
	if c.err != nil {
		return nil, c.err
	}
	if limit < len(c.list) {
		return c.list[:limit], nil
	}
	return c.list, nil
}

func (c *ClientMock) RetryJob(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := c.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.Status.Retryable() {
		return nil, badRequest("Only failed or queued jobs can be retried")
	}
	job.Status = "queued"
	return job, nil
}

func (c *ClientMock) CancelJob(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := c.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if !job.Status.Cancellable() {
		return nil, badRequest("Cannot cancel a job that is currently printing")
	}
	job.Status = "failed"
	return job, nil
}

func (c *ClientMock) ListPrinters(ctx context.Context) ([]entity.Printer, error) {
	if c.err != nil {
		return nil, c.err
	}
	var out []entity.Printer
	for _, p := range c.printers {
		out = append(out, *p)
	}
	return out, nil
}

func (c *ClientMock) GetPrinter(ctx context.Context, id int64) (*entity.Printer, error) {
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.printers[id]
	if !ok {
		return nil, notFound("Printer not found")
	}
	return p, nil
}

type SubmissionRepoMock struct {
	mu      sync.Mutex
	created []entity.Submission
	err     error
}

func (r *SubmissionRepoMock) Create(ctx context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, *s)
	return nil
}

func (r *SubmissionRepoMock) List(ctx context.Context, params *repository.SubmissionFilterParams) ([]entity.Submission, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []entity.Submission
	for _, s := range r.created {
		if params.PayloadType != nil && s.PayloadType != *params.PayloadType {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

type RecorderMock struct {
	submissions []string
	previews    []string
}

func (r *RecorderMock) RecordSubmission(payloadType, status string) {
	r.submissions = append(r.submissions, payloadType+":"+status)
}

func (r *RecorderMock) RecordPreview(source, cacheResult string) {
	r.previews = append(r.previews, source+":"+cacheResult)
}
