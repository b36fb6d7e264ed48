package entity

import (
	"strings"

	"github.com/sangkips/fiscal-console/internal/domain/enum"
)

// LineItem is one sold article as typed by the operator. Numeric fields keep
// the raw input; they are only coerced when totals are computed.
type LineItem struct {
	Name     string        `json:"name"`
	TaxGroup enum.VATGroup `json:"tax"`
	Price    Scalar        `json:"price"`
	Quantity Scalar        `json:"qty"`
	Unit     string        `json:"unit,omitempty"`
	Discount Scalar        `json:"discount,omitempty"`
}

// Tender is one payment instrument and the amount tendered with it.
type Tender struct {
	Type   enum.TenderType `json:"type"`
	Amount Scalar          `json:"amount"`
}

// Operator identifies the cashier on the fiscal device. ID, password and till
// are filled together or not at all.
type Operator struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Till     string `json:"till"`
	Name     string `json:"name,omitempty"`
}

// Trimmed returns a copy with whitespace stripped from every field.
func (o Operator) Trimmed() Operator {
	return Operator{
		ID:       strings.TrimSpace(o.ID),
		Password: strings.TrimSpace(o.Password),
		Till:     strings.TrimSpace(o.Till),
		Name:     strings.TrimSpace(o.Name),
	}
}

// SaleDraft is a fiscal receipt being composed. Item and tender order is the
// printed order.
type SaleDraft struct {
	PrinterID int64      `json:"printer_id"`
	Operator  Operator   `json:"operator"`
	Items     []LineItem `json:"items"`
	Payments  []Tender   `json:"payments"`
	NSale     string     `json:"nsale,omitempty"`
	Invoice   bool       `json:"invoice,omitempty"`
}

// OriginalDocumentReference points a storno at the document it reverses.
// Date uses the device format DDMMYYhhmmss.
type OriginalDocumentReference struct {
	DocNo string `json:"doc_no,omitempty"`
	Date  string `json:"date,omitempty"`
	FM    string `json:"fm,omitempty"`
	UNP   string `json:"unp,omitempty"`
}

// StornoDraft is a reversal being composed, usually prefilled from a prior sale.
type StornoDraft struct {
	PrinterID int64                     `json:"printer_id"`
	Operator  Operator                  `json:"operator"`
	Reason    enum.StornoReason         `json:"storno_type"`
	Original  OriginalDocumentReference `json:"original"`
	Items     []LineItem                `json:"items"`
	Payments  []Tender                  `json:"payments"`
}

// ReportRequest asks for a Z or X report, optionally for a date range.
type ReportRequest struct {
	PrinterID int64           `json:"printer_id"`
	Kind      enum.ReportKind `json:"type"`
	StartDate string          `json:"start_date,omitempty"`
	EndDate   string          `json:"end_date,omitempty"`
}

// CashMovement is a service deposit or withdrawal.
type CashMovement struct {
	PrinterID int64              `json:"printer_id"`
	Direction enum.CashDirection `json:"type"`
	Amount    Scalar             `json:"amount"`
}

// TextDocument is a non-fiscal free text slip.
type TextDocument struct {
	PrinterID int64     `json:"printer_id"`
	Operator  *Operator `json:"operator,omitempty"`
	Lines     []string  `json:"lines"`
}

// NewLineItem returns an empty line with the default VAT group and quantity 1.
func NewLineItem() LineItem {
	return LineItem{TaxGroup: enum.DefaultVATGroup, Quantity: "1"}
}

// NewTender returns an empty cash tender.
func NewTender() Tender {
	return Tender{Type: enum.TenderCash}
}
