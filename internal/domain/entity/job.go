package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/enum"
)

// JobRequest is the body posted to the print service to queue a job.
type JobRequest struct {
	PrinterID   int64            `json:"printer_id"`
	PayloadType enum.PayloadType `json:"payload_type"`
	Payload     json.RawMessage  `json:"payload"`
}

// PaymentBreakdown is one tender as reported back by the device.
type PaymentBreakdown struct {
	Type   string `json:"type"`
	Amount Scalar `json:"amount"`
}

// JobResult is what the print service records after a job ran.
type JobResult struct {
	ReceiptNumber  Scalar             `json:"receipt_number,omitempty"`
	TotalAmount    Scalar             `json:"total_amount,omitempty"`
	PaymentMethods []PaymentBreakdown `json:"payment_methods,omitempty"`
	ReportType     string             `json:"report_type,omitempty"`
	CashType       string             `json:"cash_type,omitempty"`
	Amount         Scalar             `json:"amount,omitempty"`
}

// Job is a print job as exposed by the print service.
type Job struct {
	ID          int64            `json:"id"`
	PrinterID   int64            `json:"printer_id"`
	PayloadType enum.PayloadType `json:"payload_type"`
	Payload     json.RawMessage  `json:"payload"`
	Status      enum.JobStatus   `json:"status"`
	Retries     int              `json:"retries"`
	Error       *string          `json:"error,omitempty"`
	Result      *JobResult       `json:"result,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
	StartedAt   *string          `json:"started_at,omitempty"`
	FinishedAt  *string          `json:"finished_at,omitempty"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp reads an ISO-8601 timestamp as produced by the print
// service. Timestamps without an offset are taken as UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Created returns the job creation time, if it can be read.
func (j *Job) Created() (time.Time, bool) {
	return ParseTimestamp(j.CreatedAt)
}

// ReceiptNumber is the device receipt number, or "" when the job has none.
func (j *Job) ReceiptNumber() string {
	if j.Result == nil {
		return ""
	}
	return j.Result.ReceiptNumber.Trimmed()
}

// IsStornoCandidate reports whether the job is a completed sale that a
// storno could reference.
func (j *Job) IsStornoCandidate() bool {
	return j.PayloadType == enum.PayloadFiscalReceipt &&
		j.Status == enum.JobSuccess &&
		j.ReceiptNumber() != ""
}
