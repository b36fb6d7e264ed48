package service

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
)

var log = logging.MustGetLogger("service")

// PrintService is the remote job API the console drives.
type PrintService interface {
	SubmitJob(ctx context.Context, req entity.JobRequest) (*entity.Job, error)
	GetJob(ctx context.Context, id int64) (*entity.Job, error)
	ListJobs(ctx context.Context, limit int) ([]entity.Job, error)
	RetryJob(ctx context.Context, id int64) (*entity.Job, error)
	CancelJob(ctx context.Context, id int64) (*entity.Job, error)
	ListPrinters(ctx context.Context) ([]entity.Printer, error)
	GetPrinter(ctx context.Context, id int64) (*entity.Printer, error)
}

// Recorder receives service level counters.
type Recorder interface {
	RecordSubmission(payloadType, status string)
	RecordPreview(source, cacheResult string)
}

type nopRecorder struct{}

func (nopRecorder) RecordSubmission(string, string) {}
func (nopRecorder) RecordPreview(string, string)    {}

// RenderSettings are the receipt options that come from configuration.
type RenderSettings struct {
	Currency string
	Location *time.Location
	Width    int
}
