package enum

// PayloadType tags the kind of document carried by a print job.
type PayloadType string

const (
	PayloadFiscalReceipt PayloadType = "fiscal_receipt"
	PayloadStorno        PayloadType = "storno"
	PayloadReport        PayloadType = "report"
	PayloadCash          PayloadType = "cash"
	PayloadText          PayloadType = "text"
	PayloadReceipt       PayloadType = "receipt"
)

func (p PayloadType) Known() bool {
	switch p {
	case PayloadFiscalReceipt, PayloadStorno, PayloadReport, PayloadCash, PayloadText, PayloadReceipt:
		return true
	}
	return false
}

// Label is the short caption shown in job listings.
func (p PayloadType) Label() string {
	switch p {
	case PayloadFiscalReceipt:
		return "Фискален бон"
	case PayloadStorno:
		return "Сторно"
	case PayloadReport:
		return "Отчет"
	case PayloadCash:
		return "Каса"
	case PayloadText:
		return "Текст"
	case PayloadReceipt:
		return "Бон"
	}
	return string(p)
}
