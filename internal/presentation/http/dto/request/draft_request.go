package request

import (
	"errors"
	"strings"
	"time"

	"github.com/sangkips/fiscal-console/internal/domain/entity"
)

var ErrInvalidTimestamp = errors.New("timestamp must be an ISO-8601 date and time")

// SalePreviewRequest is a sale draft plus the time printed on the preview.
type SalePreviewRequest struct {
	entity.SaleDraft
	Timestamp string `json:"timestamp"`
}

// StornoPreviewRequest is a storno draft plus the time printed on the preview.
type StornoPreviewRequest struct {
	entity.StornoDraft
	Timestamp string `json:"timestamp"`
}

// PreviewTime parses an optional preview timestamp. Blank means now.
func PreviewTime(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Now(), nil
	}
	t, ok := entity.ParseTimestamp(raw)
	if !ok {
		return time.Time{}, ErrInvalidTimestamp
	}
	return t, nil
}

// SaleDraftQuery selects the printer a new sale is started on.
type SaleDraftQuery struct {
	PrinterID int64 `form:"printer_id" binding:"required,min=1"`
}
