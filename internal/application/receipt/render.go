// Package receipt renders job payloads into the fixed-width text a fiscal
// device prints, so an operator can confirm a document before and after it
// is queued.
package receipt

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/pkg/money"
	"github.com/sangkips/fiscal-console/pkg/printer"
)

// DateLayout is the short Bulgarian date and time printed under the title.
const DateLayout = "02.01.06 г., 15:04:05"

// DefaultCurrency is appended to every amount.
const DefaultCurrency = "лв"

// nameWidth is how much of an article name fits on its own line.
const nameWidth = 28

// Options carries everything a renderer needs besides the payload.
type Options struct {
	PrinterName string
	Created     time.Time
	Location    *time.Location
	Currency    string
	Width       int
}

// Input is a payload to render together with the job result, if any.
type Input struct {
	Type    enum.PayloadType
	Payload json.RawMessage
	Result  *entity.JobResult
}

// Render produces the receipt lines for in. It never fails: a payload of an
// unknown type, or one that does not decode, prints as an indented dump.
func Render(in Input, opts Options) []string {
	r := newRenderer(opts)
	var err error
	switch in.Type {
	case enum.PayloadFiscalReceipt:
		err = r.sale(in)
	case enum.PayloadStorno:
		err = r.storno(in)
	case enum.PayloadText:
		err = r.text(in)
	case enum.PayloadReceipt:
		err = r.structured(in)
	case enum.PayloadReport:
		err = r.report(in)
	case enum.PayloadCash:
		err = r.cash(in)
	default:
		r.unknown(in)
	}
	if err != nil {
		r.doc.Reset()
		r.unknown(in)
	}
	return r.doc.Lines()
}

// RenderJob renders a job fetched from the print service. The job creation
// time is used unless opts already carries one.
func RenderJob(job *entity.Job, opts Options) []string {
	if opts.Created.IsZero() {
		if created, ok := job.Created(); ok {
			opts.Created = created
		}
	}
	return Render(Input{Type: job.PayloadType, Payload: job.Payload, Result: job.Result}, opts)
}

type renderer struct {
	doc  *printer.Document
	opts Options
}

func newRenderer(opts Options) *renderer {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	return &renderer{doc: printer.NewDocument(opts.Width), opts: opts}
}

func (r *renderer) amount(v float64) string {
	return money.Format(v) + " " + r.opts.Currency
}

func (r *renderer) rawAmount(raw string) string {
	return money.FormatRaw(raw) + " " + r.opts.Currency
}

// heading prints the title block shared by every device document.
func (r *renderer) heading(title string) {
	r.doc.Center(title).Rule('=')
	if r.opts.PrinterName != "" {
		r.doc.Center(r.opts.PrinterName)
	}
	if !r.opts.Created.IsZero() {
		created := r.opts.Created
		if r.opts.Location != nil {
			created = created.In(r.opts.Location)
		}
		r.doc.Center(created.Format(DateLayout))
	}
}

func decode(raw json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func (r *renderer) unknown(in Input) {
	r.doc.Center("НЕИЗВЕСТЕН ТИП").Rule('-')

	raw := bytes.TrimSpace(in.Payload)
	if len(raw) == 0 {
		r.doc.Text("null")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		r.doc.Text(string(raw))
		return
	}
	r.doc.Text(buf.String())
}
