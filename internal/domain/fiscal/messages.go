package fiscal

// Operator-facing validation messages, in the language printed on receipts.
const (
	MsgBlocking = "Поправи маркираните полета преди изпращане."

	MsgPrinterRequired       = "Избери принтер."
	MsgOperatorRequired      = "Попълни оператор ID, парола и каса."
	MsgOperatorNeedsPassword = "Операторът изисква ID и парола."

	MsgItemsRequired    = "Добави поне един артикул с цена."
	MsgPaymentsRequired = "Добави поне един тип плащане."
	MsgUnderpaidFormat  = "Плащането е по-малко от тотала (%s)."

	MsgStornoItemsRequired    = "Добави поне един артикул."
	MsgStornoPaymentsRequired = "Добави поне едно плащане."
	MsgDocNoRequired          = "Въведи номер на оригиналния документ."
	MsgOriginalDateInvalid    = "Въведи дата и час на оригинала (DDMMYYhhmmss)."
	MsgStornoTypeInvalid      = "Избери тип сторно (0, 1 или 2)."

	MsgReportTypeInvalid = "Избери тип отчет (Z или X)."
	MsgDateInvalid       = "Въведи дата във формат YYYY-MM-DD."
	MsgDateRangeInvalid  = "Началната дата е след крайната."

	MsgCashTypeInvalid = "Избери внос или износ."
	MsgAmountInvalid   = "Въведи валидна сума."

	MsgLinesRequired        = "Добави поне един ред."
	MsgReceiptItemsRequired = "Добави поне един артикул."
)

// Field keys used in ValidationResult.Errors.
const (
	FieldPrinter       = "printer"
	FieldOperator      = "operator"
	FieldItems         = "items"
	FieldPayments      = "payments"
	FieldStornoType    = "storno_type"
	FieldOriginalDocNo = "original.doc_no"
	FieldOriginalDate  = "original.date"
	FieldType          = "type"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldAmount        = "amount"
	FieldLines         = "lines"
)
