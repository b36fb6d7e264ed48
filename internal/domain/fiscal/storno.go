package fiscal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
)

// MaxStornoCandidates caps the list of sales offered for reversal.
const MaxStornoCandidates = 20

// ErrNotStornoCandidate is returned when a job cannot seed a storno.
var ErrNotStornoCandidate = errors.New("job is not a completed fiscal receipt with a receipt number")

// StornoFromJob rebuilds an editable storno draft from a completed sale. The
// original reference is taken from the job result and creation time, the
// lines and tenders from the sale payload. A sale without lines or tenders
// gets one blank entry of each so the draft stays editable.
func StornoFromJob(job *entity.Job, loc *time.Location) (entity.StornoDraft, error) {
	if job == nil || !job.IsStornoCandidate() {
		return entity.StornoDraft{}, ErrNotStornoCandidate
	}
	var sale entity.SalePayload
	if len(job.Payload) > 0 {
		if err := json.Unmarshal(job.Payload, &sale); err != nil {
			return entity.StornoDraft{}, fmt.Errorf("decode sale payload of job %d: %w", job.ID, err)
		}
	}

	items := make([]entity.LineItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		items = append(items, it.AsLineItem())
	}
	if len(items) == 0 {
		items = append(items, entity.NewLineItem())
	}

	tenders := make([]entity.Tender, 0, len(sale.Payments))
	for _, p := range sale.Payments {
		t := enum.TenderType(strings.ToUpper(strings.TrimSpace(p.Type)))
		if !t.IsSet() {
			t = enum.TenderCash
		}
		tenders = append(tenders, entity.Tender{Type: t, Amount: p.Amount})
	}
	if len(tenders) == 0 {
		tenders = append(tenders, entity.NewTender())
	}

	date := ""
	if created, ok := job.Created(); ok {
		if loc != nil {
			created = created.In(loc)
		}
		date = created.Format(OriginalDateLayout)
	}

	return entity.StornoDraft{
		PrinterID: job.PrinterID,
		Reason:    enum.StornoOperatorError,
		Original: entity.OriginalDocumentReference{
			DocNo: job.ReceiptNumber(),
			Date:  date,
			UNP:   strings.TrimSpace(sale.NSale),
		},
		Items:    items,
		Payments: tenders,
	}, nil
}

// StornoCandidate is a completed sale offered for reversal.
type StornoCandidate struct {
	JobID         int64  `json:"job_id"`
	PrinterID     int64  `json:"printer_id"`
	ReceiptNumber string `json:"receipt_number"`
	CreatedAt     string `json:"created_at"`
	Label         string `json:"label"`
}

// StornoCandidates picks, in the given order, up to MaxStornoCandidates
// successful sales that carry a receipt number.
func StornoCandidates(jobs []entity.Job, loc *time.Location) []StornoCandidate {
	out := make([]StornoCandidate, 0, MaxStornoCandidates)
	for i := range jobs {
		job := &jobs[i]
		if !job.IsStornoCandidate() {
			continue
		}
		out = append(out, StornoCandidate{
			JobID:         job.ID,
			PrinterID:     job.PrinterID,
			ReceiptNumber: job.ReceiptNumber(),
			CreatedAt:     job.CreatedAt,
			Label:         candidateLabel(job, loc),
		})
		if len(out) == MaxStornoCandidates {
			break
		}
	}
	return out
}

// candidateLabel is the one-line description shown in the candidate list:
// receipt number, short creation time and the first sold names.
func candidateLabel(job *entity.Job, loc *time.Location) string {
	parts := []string{"Бон №" + job.ReceiptNumber()}
	if created, ok := job.Created(); ok {
		if loc != nil {
			created = created.In(loc)
		}
		parts = append(parts, created.Format("02.01.06 г., 15:04"))
	}
	var sale entity.SalePayload
	if err := json.Unmarshal(job.Payload, &sale); err == nil && len(sale.Items) > 0 {
		names := make([]string, len(sale.Items))
		for i, it := range sale.Items {
			names[i] = it.Name
		}
		parts = append(parts, truncate(strings.Join(names, ", "), 40))
	}
	return strings.Join(parts, " — ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
