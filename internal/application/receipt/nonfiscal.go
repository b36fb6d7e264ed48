package receipt

import (
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/pkg/money"
)

func (r *renderer) text(in Input) error {
	var p entity.TextPayload
	if err := decode(in.Payload, &p); err != nil {
		return err
	}

	r.heading("СЛУЖЕБЕН БОН")
	r.doc.Rule('-')
	for _, line := range p.Lines {
		r.doc.Text(line.String())
	}
	r.doc.Rule('-').
		Center("* НЕФИСКАЛЕН *")
	return nil
}

// structured prints a caller-composed slip. It has no device heading: the
// header lines replace it.
func (r *renderer) structured(in Input) error {
	var p entity.Receipt
	if err := decode(in.Payload, &p); err != nil {
		return err
	}

	r.doc.Center("БОН").Rule('=')
	for _, h := range p.Header {
		r.doc.Center(h.String())
	}
	r.doc.Rule('-')

	for _, item := range p.Items {
		qty, price, total := "", "", ""
		if item.Qty != nil {
			qty = item.Qty.String() + "x"
		}
		if item.Price != nil {
			price = money.FormatRaw(item.Price.String())
		}
		if item.Total != nil {
			total = money.FormatRaw(item.Total.String())
		}

		if qty != "" && price != "" {
			r.doc.Text(item.Name).
				Row("  "+qty+" "+price, total)
			continue
		}
		if total == "" {
			total = price
		}
		r.doc.Row(item.Name, total)
	}

	r.doc.Rule('-')
	for _, t := range p.Totals {
		r.doc.Row(t.Label.String(), t.Value.String())
	}
	r.doc.Rule('=')
	for _, f := range p.Footer {
		r.doc.Center(f.String())
	}
	return nil
}
