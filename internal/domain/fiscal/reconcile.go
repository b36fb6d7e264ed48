package fiscal

import (
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/pkg/money"
)

// Reconciliation compares what was tendered with what is due.
type Reconciliation struct {
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	Change    float64 `json:"change"`
	HasChange bool    `json:"has_change"`
}

// PaidTotal sums the coerced amount of every tender.
func PaidTotal(tenders []entity.Tender) float64 {
	paid := 0.0
	for _, t := range tenders {
		paid += money.Coerce(t.Amount.String())
	}
	return paid
}

// Reconcile computes the amount still due and the change owed. Change is
// only reported above half a cent.
func Reconcile(total float64, tenders []entity.Tender) Reconciliation {
	paid := PaidTotal(tenders)
	rec := Reconciliation{Paid: paid}
	if total-paid > 0 {
		rec.Remaining = total - paid
	}
	if change := paid - total; change > money.ChangeThreshold {
		rec.Change = change
		rec.HasChange = true
	}
	return rec
}

// AutoFill tops up the tenders so they cover total. With no tenders a cash
// tender for the remainder is added; otherwise the remainder is added to the
// last tender only. Nothing changes when the total is already covered. The
// input slice is never modified.
func AutoFill(total float64, tenders []entity.Tender) []entity.Tender {
	out := make([]entity.Tender, len(tenders), len(tenders)+1)
	copy(out, tenders)

	remaining := Reconcile(total, tenders).Remaining
	if remaining <= 0 {
		return out
	}
	if len(out) == 0 {
		return append(out, entity.Tender{
			Type:   enum.TenderCash,
			Amount: entity.Scalar(money.Format(remaining)),
		})
	}
	last := &out[len(out)-1]
	last.Amount = entity.Scalar(money.Format(money.Coerce(last.Amount.String()) + remaining))
	return out
}

// AutoFillSale returns a copy of draft with its tenders topped up.
func AutoFillSale(draft entity.SaleDraft) entity.SaleDraft {
	draft.Payments = AutoFill(DocumentTotal(draft.Items), draft.Payments)
	return draft
}
