package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
)

// DocumentHandler queues reports, drawer movements and non-fiscal slips.
type DocumentHandler struct {
	jobs *service.JobService
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(jobs *service.JobService) *DocumentHandler {
	return &DocumentHandler{jobs: jobs}
}

func (h *DocumentHandler) Report(c *gin.Context) {
	var req entity.ReportRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobs.SubmitReport(c.Request.Context(), req, GetRequestID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Report queued", job)
}

func (h *DocumentHandler) Cash(c *gin.Context) {
	var m entity.CashMovement
	if !bindJSON(c, &m) {
		return
	}
	job, err := h.jobs.SubmitCash(c.Request.Context(), m, GetRequestID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Cash movement queued", job)
}

func (h *DocumentHandler) Text(c *gin.Context) {
	var doc entity.TextDocument
	if !bindJSON(c, &doc) {
		return
	}
	job, err := h.jobs.SubmitText(c.Request.Context(), doc, GetRequestID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Text queued", job)
}

func (h *DocumentHandler) Receipt(c *gin.Context) {
	var rc entity.Receipt
	if !bindJSON(c, &rc) {
		return
	}
	job, err := h.jobs.SubmitReceipt(c.Request.Context(), rc, GetRequestID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Receipt queued", job)
}
