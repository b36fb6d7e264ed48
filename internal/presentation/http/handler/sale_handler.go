package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/request"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
)

// SaleHandler handles fiscal receipt drafts.
type SaleHandler struct {
	composer *service.ComposerService
	jobs     *service.JobService
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(composer *service.ComposerService, jobs *service.JobService) *SaleHandler {
	return &SaleHandler{composer: composer, jobs: jobs}
}

// Recompute returns the totals of a sale draft.
func (h *SaleHandler) Recompute(c *gin.Context) {
	var draft entity.SaleDraft
	if !bindJSON(c, &draft) {
		return
	}
	response.OK(c, "Totals recomputed", h.composer.RecomputeSale(draft))
}

// Validate reports every problem of a sale draft. An invalid draft is still
// a successful request.
func (h *SaleHandler) Validate(c *gin.Context) {
	var draft entity.SaleDraft
	if !bindJSON(c, &draft) {
		return
	}
	result := h.composer.ValidateSale(draft)
	message := "Draft is valid"
	if !result.Valid() {
		message = "Draft has errors"
	}
	response.OK(c, message, result)
}

// AutoFill tops up the last tender to the document total.
func (h *SaleHandler) AutoFill(c *gin.Context) {
	var draft entity.SaleDraft
	if !bindJSON(c, &draft) {
		return
	}
	response.OK(c, "Payments filled", h.composer.AutoFill(draft))
}

// Preview renders the sale as it would be printed.
func (h *SaleHandler) Preview(c *gin.Context) {
	var req request.SalePreviewRequest
	if !bindJSON(c, &req) {
		return
	}
	at, err := request.PreviewTime(req.Timestamp)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	preview, err := h.composer.PreviewSale(c.Request.Context(), req.SaleDraft, at)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preview rendered", preview)
}

// Submit validates the sale and queues it as a fiscal receipt.
func (h *SaleHandler) Submit(c *gin.Context) {
	var draft entity.SaleDraft
	if !bindJSON(c, &draft) {
		return
	}
	job, err := h.jobs.SubmitSale(c.Request.Context(), draft, GetRequestID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale queued", job)
}

// Draft starts a blank sale with the printer's operator filled in.
func (h *SaleHandler) Draft(c *gin.Context) {
	var q request.SaleDraftQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	draft, err := h.composer.NewSaleDraft(c.Request.Context(), q.PrinterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft created", gin.H{
		"draft":  draft,
		"totals": h.composer.RecomputeSale(*draft),
	})
}
