package enum

import "strings"

// TenderType is the payment-method code understood by the fiscal device.
type TenderType string

const (
	TenderCash    TenderType = "P"
	TenderCard    TenderType = "N"
	TenderCheque  TenderType = "C"
	TenderCoupon  TenderType = "D"
	TenderExtra1  TenderType = "I"
	TenderExtra2  TenderType = "J"
	TenderExtra3  TenderType = "K"
	TenderExtra4  TenderType = "L"
	TenderUnknown TenderType = ""
)

var tenderLabels = map[TenderType]string{
	TenderCash:   "В БРОЙ",
	TenderCard:   "КАРТА",
	TenderCheque: "ЧЕК",
	TenderCoupon: "КУПОН",
	TenderExtra1: "ДОП.1",
	TenderExtra2: "ДОП.2",
	TenderExtra3: "ДОП.3",
	TenderExtra4: "ДОП.4",
}

// TenderTypes lists every code in display order.
var TenderTypes = []TenderType{
	TenderCash, TenderCard, TenderCheque, TenderCoupon,
	TenderExtra1, TenderExtra2, TenderExtra3, TenderExtra4,
}

func (t TenderType) String() string {
	return string(t)
}

// Valid reports whether t is one of the eight device codes.
func (t TenderType) Valid() bool {
	_, ok := tenderLabels[TenderType(strings.ToUpper(string(t)))]
	return ok
}

// IsSet reports whether an operator picked any type at all.
func (t TenderType) IsSet() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Label is the receipt caption for t. Unknown codes are printed as-is.
func (t TenderType) Label() string {
	if label, ok := tenderLabels[TenderType(strings.ToUpper(string(t)))]; ok {
		return label
	}
	return string(t)
}
