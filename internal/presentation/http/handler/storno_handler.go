package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/domain/entity"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/request"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
)

// StornoHandler handles reversal drafts.
type StornoHandler struct {
	composer *service.ComposerService
	jobs     *service.JobService
}

// NewStornoHandler creates a new storno handler.
func NewStornoHandler(composer *service.ComposerService, jobs *service.JobService) *StornoHandler {
	return &StornoHandler{composer: composer, jobs: jobs}
}

func (h *StornoHandler) Validate(c *gin.Context) {
	var draft entity.StornoDraft
	if !bindJSON(c, &draft) {
		return
	}
	result := h.composer.ValidateStorno(draft)
	message := "Draft is valid"
	if !result.Valid() {
		message = "Draft has errors"
	}
	response.OK(c, message, gin.H{
		"validation": result,
		"totals":     h.composer.RecomputeStorno(draft),
	})
}

func (h *StornoHandler) Preview(c *gin.Context) {
	var req request.StornoPreviewRequest
	if !bindJSON(c, &req) {
		return
	}
	at, err := request.PreviewTime(req.Timestamp)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	preview, err := h.composer.PreviewStorno(c.Request.Context(), req.StornoDraft, at)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preview rendered", preview)
}

func (h *StornoHandler) Submit(c *gin.Context) {
	var draft entity.StornoDraft
	if !bindJSON(c, &draft) {
		return
	}
	job, err := h.jobs.SubmitStorno(c.Request.Context(), draft, GetRequestID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Storno queued", job)
}
