package entity

import (
	"strings"

	"github.com/sangkips/fiscal-console/internal/domain/enum"
)

// PayloadItem is a sold line as transmitted to the print service. Tax and Qty
// are the legacy spellings; they are read when the current ones are absent
// and never written by the console.
type PayloadItem struct {
	Name     string `json:"name"`
	VATGroup string `json:"vat_group,omitempty"`
	Tax      string `json:"tax,omitempty"`
	Price    Scalar `json:"price"`
	Quantity Scalar `json:"quantity,omitempty"`
	Qty      Scalar `json:"qty,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Discount Scalar `json:"discount,omitempty"`
}

// QuantityRaw returns the transmitted quantity, whichever key carried it.
func (i PayloadItem) QuantityRaw() Scalar {
	if i.Quantity.Present() {
		return i.Quantity
	}
	return i.Qty
}

// TaxRaw returns the transmitted VAT group, whichever key carried it.
func (i PayloadItem) TaxRaw() string {
	if strings.TrimSpace(i.VATGroup) != "" {
		return i.VATGroup
	}
	return i.Tax
}

// AsLineItem converts a transmitted line back into an editable one.
func (i PayloadItem) AsLineItem() LineItem {
	group, ok := enum.ParseVATGroup(i.TaxRaw())
	if !ok {
		group = enum.DefaultVATGroup
	}
	qty := i.QuantityRaw()
	if !qty.Present() {
		qty = "1"
	}
	return LineItem{
		Name:     i.Name,
		TaxGroup: group,
		Price:    i.Price,
		Quantity: qty,
		Unit:     i.Unit,
		Discount: i.Discount,
	}
}

// PayloadPayment is a tender as transmitted to the print service.
type PayloadPayment struct {
	Type   string `json:"type"`
	Amount Scalar `json:"amount"`
}

// PayloadOperator is the nested operator form some producers send.
type PayloadOperator struct {
	ID       Scalar `json:"id,omitempty"`
	Password Scalar `json:"password,omitempty"`
	Till     Scalar `json:"till,omitempty"`
	Name     Scalar `json:"name,omitempty"`
}

// OperatorFields are the flat operator keys shared by sale and storno payloads.
type OperatorFields struct {
	OperatorID       string           `json:"operator_id,omitempty"`
	OperatorPassword string           `json:"operator_password,omitempty"`
	OperatorTill     string           `json:"operator_till,omitempty"`
	OperatorName     string           `json:"operator_name,omitempty"`
	Operator         *PayloadOperator `json:"operator,omitempty"`
}

// OperatorLabel is the operator id printed on a receipt, if any.
func (o OperatorFields) OperatorLabel() string {
	if strings.TrimSpace(o.OperatorID) != "" {
		return o.OperatorID
	}
	if o.Operator != nil {
		return o.Operator.ID.String()
	}
	return ""
}

// SalePayload is the fiscal_receipt job payload.
type SalePayload struct {
	OperatorFields
	NSale    string           `json:"nsale,omitempty"`
	Invoice  bool             `json:"invoice,omitempty"`
	Items    []PayloadItem    `json:"items"`
	Payments []PayloadPayment `json:"payments"`
}

// StornoPayload is the storno job payload.
type StornoPayload struct {
	OperatorFields
	StornoType enum.StornoReason         `json:"storno_type"`
	Original   OriginalDocumentReference `json:"original"`
	Items      []PayloadItem             `json:"items"`
	Payments   []PayloadPayment          `json:"payments"`
}

// ReportPayload is the report job payload. Option is a legacy alias of Type.
type ReportPayload struct {
	Type      string `json:"type,omitempty"`
	Option    string `json:"option,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Kind resolves the report kind from whichever key is set.
func (p ReportPayload) Kind() enum.ReportKind {
	if strings.TrimSpace(p.Type) != "" {
		return enum.ParseReportKind(p.Type)
	}
	return enum.ParseReportKind(p.Option)
}

// CashPayload is the cash job payload. The print service reads Type; Direction
// is accepted from older producers.
type CashPayload struct {
	Type      string `json:"type,omitempty"`
	Direction string `json:"direction,omitempty"`
	Amount    Scalar `json:"amount"`
}

// CashDirection resolves the movement direction from whichever key is set.
func (p CashPayload) CashDirection() enum.CashDirection {
	if strings.TrimSpace(p.Direction) != "" {
		return enum.ParseCashDirection(p.Direction)
	}
	return enum.ParseCashDirection(p.Type)
}

// TextPayload is the non-fiscal text job payload.
type TextPayload struct {
	OperatorFields
	Lines []Scalar `json:"lines"`
}
