package fiscal

import (
	"strings"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/pkg/money"
)

// ValidateReport checks a report request. Dates are optional; when both are
// given the range must not be inverted.
func ValidateReport(req entity.ReportRequest) ValidationResult {
	r := newResult()
	r.requirePrinter(req.PrinterID)

	kind := enum.ParseReportKind(string(req.Kind))
	if !kind.Valid() {
		r.fail(FieldType, MsgReportTypeInvalid)
	}

	start, startOK := parseReportDate(&r, FieldStartDate, req.StartDate)
	end, endOK := parseReportDate(&r, FieldEndDate, req.EndDate)
	if startOK && endOK && start.After(end) {
		r.fail(FieldEndDate, MsgDateRangeInvalid)
	}

	r.Payload = entity.ReportPayload{
		Type:      string(kind),
		StartDate: strings.TrimSpace(req.StartDate),
		EndDate:   strings.TrimSpace(req.EndDate),
	}
	return r
}

func parseReportDate(r *ValidationResult, field, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ReportDateLayout, raw)
	if err != nil {
		r.fail(field, MsgDateInvalid)
		return time.Time{}, false
	}
	return t, true
}

// ValidateCash checks a drawer movement. The amount keeps its typed form in
// the payload.
func ValidateCash(m entity.CashMovement) ValidationResult {
	r := newResult()
	r.requirePrinter(m.PrinterID)

	dir := enum.ParseCashDirection(string(m.Direction))
	if !dir.Valid() {
		r.fail(FieldType, MsgCashTypeInvalid)
	}
	if money.Coerce(m.Amount.String()) <= 0 {
		r.fail(FieldAmount, MsgAmountInvalid)
	}

	r.Payload = entity.CashPayload{
		Type:   string(dir),
		Amount: entity.Scalar(m.Amount.Trimmed()),
	}
	return r
}

// ValidateText checks a free-text slip. The operator is optional here but
// may not be partially filled.
func ValidateText(doc entity.TextDocument) ValidationResult {
	r := newResult()
	r.requirePrinter(doc.PrinterID)

	var fields entity.OperatorFields
	if doc.Operator != nil {
		op := CollectOperator(*doc.Operator, OperatorOptional)
		if op.Message != "" {
			r.fail(FieldOperator, op.Message)
		}
		fields = operatorFields(op.Value)
	}

	lines := make([]entity.Scalar, len(doc.Lines))
	for i, l := range doc.Lines {
		lines[i] = entity.Scalar(l)
	}
	if len(lines) == 0 {
		r.fail(FieldLines, MsgLinesRequired)
	}

	r.Payload = entity.TextPayload{OperatorFields: fields, Lines: lines}
	return r
}

// ValidateReceipt checks a structured non-fiscal receipt.
func ValidateReceipt(rc entity.Receipt) ValidationResult {
	r := newResult()
	r.requirePrinter(rc.PrinterID)
	if len(rc.Items) == 0 {
		r.fail(FieldItems, MsgReceiptItemsRequired)
	}
	payload := rc
	payload.PrinterID = 0
	r.Payload = payload
	return r
}
