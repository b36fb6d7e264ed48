package fiscal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/pkg/money"
)

// OriginalDateLayout is the device timestamp format of a storno reference.
const OriginalDateLayout = "020106150405"

// ReportDateLayout is the date format of report ranges.
const ReportDateLayout = "2006-01-02"

// ValidationResult collects every problem found in a draft. ItemFlags and
// TenderFlags are index-aligned with the draft's lines and tenders; true
// marks an entry that will be dropped from the payload. Payload is the
// normalized wire form and is filled even when the draft is invalid.
type ValidationResult struct {
	Errors      map[string]string `json:"errors"`
	ItemFlags   []bool            `json:"item_errors,omitempty"`
	TenderFlags []bool            `json:"payment_errors,omitempty"`
	Payload     interface{}       `json:"payload,omitempty"`
}

func newResult() ValidationResult {
	return ValidationResult{Errors: map[string]string{}}
}

// Valid reports whether no field failed.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Fields returns the failing field keys in sorted order.
func (r ValidationResult) Fields() []string {
	fields := make([]string, 0, len(r.Errors))
	for f := range r.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// fail records msg for field unless the field already failed.
func (r *ValidationResult) fail(field, msg string) {
	if _, ok := r.Errors[field]; !ok {
		r.Errors[field] = msg
	}
}

func (r *ValidationResult) requirePrinter(id int64) {
	if id <= 0 {
		r.fail(FieldPrinter, MsgPrinterRequired)
	}
}

// itemValid is the single definition of a usable line: a name and a price.
func itemValid(item entity.LineItem) bool {
	return strings.TrimSpace(item.Name) != "" && item.Price.Present()
}

func tenderValid(t entity.Tender) bool {
	return t.Type.IsSet() && t.Amount.Present()
}

// NormalizeItems keeps the valid lines in wire form and flags the rest.
func NormalizeItems(items []entity.LineItem) ([]bool, []entity.PayloadItem) {
	flags := make([]bool, len(items))
	out := make([]entity.PayloadItem, 0, len(items))
	for i, item := range items {
		if !itemValid(item) {
			flags[i] = true
			continue
		}
		pi := entity.PayloadItem{
			Name:     item.Name,
			VATGroup: item.TaxGroup.Or(enum.DefaultVATGroup).String(),
			Price:    item.Price,
			Unit:     strings.TrimSpace(item.Unit),
		}
		if !item.Quantity.Blank() {
			pi.Quantity = item.Quantity
		}
		if !item.Discount.Blank() {
			pi.Discount = item.Discount
		}
		out = append(out, pi)
	}
	return flags, out
}

// NormalizeTenders keeps the valid tenders in wire form and flags the rest.
func NormalizeTenders(tenders []entity.Tender) ([]bool, []entity.PayloadPayment) {
	flags := make([]bool, len(tenders))
	out := make([]entity.PayloadPayment, 0, len(tenders))
	for i, t := range tenders {
		if !tenderValid(t) {
			flags[i] = true
			continue
		}
		out = append(out, entity.PayloadPayment{
			Type:   strings.ToUpper(strings.TrimSpace(t.Type.String())),
			Amount: t.Amount,
		})
	}
	return flags, out
}

func paymentsTotal(payments []entity.PayloadPayment) float64 {
	paid := 0.0
	for _, p := range payments {
		paid += money.Coerce(p.Amount.String())
	}
	return paid
}

// ValidateSale checks a sale draft and builds its fiscal_receipt payload.
// Every rule is evaluated; the result lists all failures at once.
func ValidateSale(draft entity.SaleDraft) ValidationResult {
	r := newResult()
	r.requirePrinter(draft.PrinterID)

	op := CollectOperator(draft.Operator, OperatorRequired)
	if op.Value == nil {
		r.fail(FieldOperator, MsgOperatorRequired)
	}

	itemFlags, items := NormalizeItems(draft.Items)
	r.ItemFlags = itemFlags
	if len(items) == 0 {
		r.fail(FieldItems, MsgItemsRequired)
	}

	tenderFlags, payments := NormalizeTenders(draft.Payments)
	r.TenderFlags = tenderFlags
	if len(payments) == 0 {
		r.fail(FieldPayments, MsgPaymentsRequired)
	}

	if _, failed := r.Errors[FieldPayments]; !failed {
		total := money.Round2(PayloadTotal(items))
		if total > 0 && money.Round2(paymentsTotal(payments)) < total {
			r.fail(FieldPayments, fmt.Sprintf(MsgUnderpaidFormat, money.Format(total)))
		}
	}

	payload := entity.SalePayload{
		OperatorFields: operatorFields(op.Value),
		NSale:          strings.TrimSpace(draft.NSale),
		Invoice:        draft.Invoice,
		Items:          items,
		Payments:       payments,
	}
	payload.OperatorName = strings.TrimSpace(draft.Operator.Name)
	r.Payload = payload
	return r
}

// ValidOriginalDate reports whether raw is a real DDMMYYhhmmss timestamp.
func ValidOriginalDate(raw string) bool {
	if len(raw) != len(OriginalDateLayout) {
		return false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return false
		}
	}
	_, err := time.Parse(OriginalDateLayout, raw)
	return err == nil
}

// ValidateStorno checks a storno draft and builds its payload. Tendered
// amounts are not compared with the total: a reversal may refund a part.
func ValidateStorno(draft entity.StornoDraft) ValidationResult {
	r := newResult()
	r.requirePrinter(draft.PrinterID)

	op := CollectOperator(draft.Operator, OperatorRequired)
	if op.Value == nil {
		r.fail(FieldOperator, MsgOperatorRequired)
	}
	if !draft.Reason.Valid() {
		r.fail(FieldStornoType, MsgStornoTypeInvalid)
	}

	original := entity.OriginalDocumentReference{
		DocNo: strings.TrimSpace(draft.Original.DocNo),
		Date:  strings.TrimSpace(draft.Original.Date),
		FM:    strings.TrimSpace(draft.Original.FM),
		UNP:   strings.TrimSpace(draft.Original.UNP),
	}
	if original.DocNo == "" {
		r.fail(FieldOriginalDocNo, MsgDocNoRequired)
	}
	if !ValidOriginalDate(original.Date) {
		r.fail(FieldOriginalDate, MsgOriginalDateInvalid)
	}

	itemFlags, items := NormalizeItems(draft.Items)
	r.ItemFlags = itemFlags
	if len(items) == 0 {
		r.fail(FieldItems, MsgStornoItemsRequired)
	}
	tenderFlags, payments := NormalizeTenders(draft.Payments)
	r.TenderFlags = tenderFlags
	if len(payments) == 0 {
		r.fail(FieldPayments, MsgStornoPaymentsRequired)
	}

	r.Payload = entity.StornoPayload{
		OperatorFields: operatorFields(op.Value),
		StornoType:     draft.Reason,
		Original:       original,
		Items:          items,
		Payments:       payments,
	}
	return r
}
