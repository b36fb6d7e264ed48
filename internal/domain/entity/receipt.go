package entity

// ReceiptItem is a line of a free-form (non-fiscal) receipt. Any field may be
// missing; a line with both quantity and price prints on two rows.
type ReceiptItem struct {
	Name  string  `json:"name"`
	Qty   *Scalar `json:"qty,omitempty"`
	Price *Scalar `json:"price,omitempty"`
	Total *Scalar `json:"total,omitempty"`
}

// ReceiptTotal is a label/value pair printed under the items.
type ReceiptTotal struct {
	Label Scalar `json:"label"`
	Value Scalar `json:"value"`
}

// Receipt is the "receipt" job payload: a structured, non-fiscal slip whose
// text is fully supplied by the caller.
type Receipt struct {
	PrinterID int64          `json:"printer_id,omitempty"`
	Header    []Scalar       `json:"header,omitempty"`
	Items     []ReceiptItem  `json:"items"`
	Totals    []ReceiptTotal `json:"totals,omitempty"`
	Footer    []Scalar       `json:"footer,omitempty"`
}
