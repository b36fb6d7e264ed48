package receipt

import (
	"strings"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/internal/domain/fiscal"
	"github.com/sangkips/fiscal-console/pkg/money"
	"github.com/sangkips/fiscal-console/pkg/printer"
)

func (r *renderer) operatorLine(fields entity.OperatorFields) {
	if id := strings.TrimSpace(fields.OperatorLabel()); id != "" {
		r.doc.Text("Оператор: " + id)
	}
}

func (r *renderer) itemRow(item entity.PayloadItem, price, qty, lineAmount float64) {
	r.doc.Text(printer.Truncate(item.Name, nameWidth))
	r.doc.Row(
		"  "+money.FormatQuantity(qty)+" x "+money.Format(price),
		enum.VATLabel(item.TaxRaw())+" "+money.Format(lineAmount),
	)
}

func (r *renderer) tenderRows(payments []entity.PayloadPayment) float64 {
	paid := 0.0
	for _, p := range payments {
		r.doc.Row(enum.TenderType(p.Type).Label(), r.rawAmount(p.Amount.String()))
		paid += money.Coerce(p.Amount.String())
	}
	return paid
}

func (r *renderer) sale(in Input) error {
	var p entity.SalePayload
	if err := decode(in.Payload, &p); err != nil {
		return err
	}

	r.heading("ФИСКАЛЕН БОН")
	r.operatorLine(p.OperatorFields)
	r.doc.Rule('-')

	total := 0.0
	for _, item := range p.Items {
		line := fiscal.PriceLine(item.Price.String(), item.QuantityRaw().String(), item.Discount.String())
		total += line.Final
		r.itemRow(item, money.Coerce(item.Price.String()), fiscal.Quantity(item.QuantityRaw().String()), line.Final)
		if line.Adjustment != 0 {
			r.doc.Row("    отстъпка", money.Format(line.Adjustment))
		}
	}

	r.doc.Rule('-').
		Row("СУМА", r.amount(total)).
		Rule('=')

	paid := r.tenderRows(p.Payments)
	if change := paid - total; change > money.ChangeThreshold {
		r.doc.Row("РЕСТО", r.amount(change))
	}

	r.doc.Rule('-')
	if nsale := strings.TrimSpace(p.NSale); nsale != "" {
		r.doc.Text("УНП: " + nsale)
	}
	if p.Invoice {
		r.doc.Text("ФАКТУРА")
	}
	if in.Result != nil && in.Result.ReceiptNumber.Trimmed() != "" {
		r.doc.Text("Бон №: " + in.Result.ReceiptNumber.Trimmed())
	}
	r.doc.Center("* ФИСКАЛЕН БОН *")
	return nil
}

// storno prints the reversed lines at face value: discounts are not applied
// to a reversal.
func (r *renderer) storno(in Input) error {
	var p entity.StornoPayload
	if err := decode(in.Payload, &p); err != nil {
		return err
	}

	r.heading("СТОРНО БОН")
	r.operatorLine(p.OperatorFields)
	if p.Original.DocNo != "" {
		r.doc.Text("Ориг. док: " + p.Original.DocNo)
	}
	if p.Original.Date != "" {
		r.doc.Text("Ориг. дата: " + p.Original.Date)
	}
	if p.Original.UNP != "" {
		r.doc.Text("Ориг. УНП: " + p.Original.UNP)
	}
	r.doc.Rule('-')

	total := 0.0
	for _, item := range p.Items {
		price := money.Coerce(item.Price.String())
		qty := fiscal.Quantity(item.QuantityRaw().String())
		total += price * qty
		r.itemRow(item, price, qty, price*qty)
	}

	r.doc.Rule('-').
		Row("СУМА СТОРНО", r.amount(total)).
		Rule('=')
	r.tenderRows(p.Payments)
	r.doc.Rule('-').
		Center("* СТОРНО *")
	return nil
}

func (r *renderer) report(in Input) error {
	var p entity.ReportPayload
	if err := decode(in.Payload, &p); err != nil {
		return err
	}
	kind := p.Kind()
	title := kind.Title()

	r.heading(title)
	r.doc.Rule('-').
		Center("Тип: " + string(kind))
	if kind.ResetsRegisters() {
		r.doc.Blank().
			Center("Нулиране на регистрите")
	}
	r.doc.Rule('-').
		Center("* " + title + " *")
	return nil
}

func (r *renderer) cash(in Input) error {
	var p entity.CashPayload
	if err := decode(in.Payload, &p); err != nil {
		return err
	}
	dir := p.CashDirection()
	if dir != enum.CashIn {
		dir = enum.CashOut
	}

	r.heading(dir.Title())
	r.doc.Rule('-').
		Row(dir.Caption(), r.rawAmount(p.Amount.String())).
		Rule('-').
		Center("* " + dir.Title() + " *")
	return nil
}
