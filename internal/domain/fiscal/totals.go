package fiscal

import (
	"strings"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/pkg/money"
)

// EvaluateDiscount turns a discount expression into a signed adjustment of
// lineTotal. "-10%" is a 10% reduction, "+5" a surcharge of 5, "3" a
// surcharge of 3. Blank input and a bare sign or "%" yield 0.
func EvaluateDiscount(raw string, lineTotal float64) float64 {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return 0
	}
	sign := 1.0
	switch expr[0] {
	case '-':
		sign = -1
		expr = expr[1:]
	case '+':
		expr = expr[1:]
	}
	if expr == "" {
		return 0
	}
	if strings.HasSuffix(expr, "%") {
		percent := money.Coerce(strings.TrimSuffix(expr, "%"))
		return lineTotal * percent / 100 * sign
	}
	return money.Coerce(expr) * sign
}

// LineResult is the priced form of a single line.
type LineResult struct {
	Included   bool    `json:"included"`
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
	Adjustment float64 `json:"adjustment"`
	Final      float64 `json:"final"`
}

// Quantity coerces a raw quantity. A blank quantity means one unit.
func Quantity(raw string) float64 {
	if strings.TrimSpace(raw) == "" {
		return 1
	}
	return money.Coerce(raw)
}

// PriceLine prices raw price, quantity and discount input. A line whose
// price or quantity coerces to zero is excluded and contributes nothing.
// The result is never clamped: a discount larger than the line makes the
// line negative.
func PriceLine(price, quantity, discount string) LineResult {
	p := money.Coerce(price)
	q := Quantity(quantity)
	if p == 0 || q == 0 {
		return LineResult{Price: p, Quantity: q}
	}
	lineTotal := p * q
	adjustment := EvaluateDiscount(discount, lineTotal)
	return LineResult{
		Included:   true,
		Price:      p,
		Quantity:   q,
		LineTotal:  lineTotal,
		Adjustment: adjustment,
		Final:      lineTotal + adjustment,
	}
}

// LineTotal prices one draft line.
func LineTotal(item entity.LineItem) LineResult {
	return PriceLine(item.Price.String(), item.Quantity.String(), item.Discount.String())
}

// DocumentTotal sums the final amount of every included line, in order.
func DocumentTotal(items []entity.LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += LineTotal(item).Final
	}
	return total
}

// PayloadTotal is DocumentTotal for lines already in wire form.
func PayloadTotal(items []entity.PayloadItem) float64 {
	total := 0.0
	for _, item := range items {
		total += PriceLine(item.Price.String(), item.QuantityRaw().String(), item.Discount.String()).Final
	}
	return total
}

// Totals is the full priced state of a draft.
type Totals struct {
	Lines     []LineResult `json:"lines"`
	Total     float64      `json:"total"`
	Paid      float64      `json:"paid"`
	Remaining float64      `json:"remaining"`
	Change    float64      `json:"change"`
	HasChange bool         `json:"has_change"`
}

// Recompute prices every line of the draft and reconciles its tenders.
func Recompute(items []entity.LineItem, tenders []entity.Tender) Totals {
	lines := make([]LineResult, len(items))
	total := 0.0
	for i, item := range items {
		lines[i] = LineTotal(item)
		total += lines[i].Final
	}
	rec := Reconcile(total, tenders)
	return Totals{
		Lines:     lines,
		Total:     total,
		Paid:      rec.Paid,
		Remaining: rec.Remaining,
		Change:    rec.Change,
		HasChange: rec.HasChange,
	}
}

// RecomputeSale is Recompute for a sale draft.
func RecomputeSale(draft entity.SaleDraft) Totals {
	return Recompute(draft.Items, draft.Payments)
}

// RecomputeStorno is Recompute for a storno draft.
func RecomputeStorno(draft entity.StornoDraft) Totals {
	return Recompute(draft.Items, draft.Payments)
}
