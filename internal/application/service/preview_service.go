package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangkips/fiscal-console/internal/application/receipt"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/internal/infrastructure/cache"
)

// PreviewService renders queued jobs as they were printed.
type PreviewService struct {
	client   PrintService
	cache    cache.PreviewCache
	render   RenderSettings
	recorder Recorder
}

// NewPreviewService creates a new preview service
func NewPreviewService(client PrintService, previews cache.PreviewCache, render RenderSettings, recorder Recorder) *PreviewService {
	if previews == nil {
		previews = cache.NullCache{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &PreviewService{
		client:   client,
		cache:    previews,
		render:   render,
		recorder: recorder,
	}
}

// JobPreview is the rendered receipt of a job.
type JobPreview struct {
	JobID       int64            `json:"job_id"`
	PayloadType enum.PayloadType `json:"payload_type"`
	Status      enum.JobStatus   `json:"status"`
	Lines       []string         `json:"lines"`
	Cached      bool             `json:"cached"`
}

// JobPreview fetches job id and renders it. A job's rendering only changes
// when the job does, so previews are cached per job version.
func (s *PreviewService) JobPreview(ctx context.Context, id int64) (*JobPreview, error) {
	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		return nil, printServiceError(err)
	}

	key := previewKey(job)
	out := &JobPreview{JobID: job.ID, PayloadType: job.PayloadType, Status: job.Status}

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		s.recorder.RecordPreview(string(job.PayloadType), "hit")
		out.Lines = cached.Lines
		out.Cached = true
		return out, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		log.Warningf("preview cache read for job %d failed: %v", job.ID, err)
	}
	s.recorder.RecordPreview(string(job.PayloadType), "miss")

	out.Lines = receipt.RenderJob(job, receipt.Options{
		PrinterName: s.printerName(ctx, job.PrinterID),
		Location:    s.render.Location,
		Currency:    s.render.Currency,
		Width:       s.render.Width,
	})

	if err := s.cache.Set(ctx, key, &cache.Preview{JobID: job.ID, Lines: out.Lines}); err != nil {
		log.Warningf("preview cache write for job %d failed: %v", job.ID, err)
	}
	return out, nil
}

func (s *PreviewService) printerName(ctx context.Context, printerID int64) string {
	if printerID <= 0 {
		return ""
	}
	printer, err := s.client.GetPrinter(ctx, printerID)
	if err != nil {
		log.Warningf("printer %d lookup for preview failed: %v", printerID, err)
		return ""
	}
	return printer.Name
}

func previewKey(job *entity.Job) string {
	version := job.UpdatedAt
	if version == "" {
		version = job.CreatedAt
	}
	return fmt.Sprintf("%d:%s", job.ID, version)
}
