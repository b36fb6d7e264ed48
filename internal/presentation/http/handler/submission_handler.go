package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/domain/enum"
	"github.com/sangkips/fiscal-console/internal/domain/repository"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/request"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
	"github.com/sangkips/fiscal-console/pkg/pagination"
)

// SubmissionHandler serves the local submission log.
type SubmissionHandler struct {
	jobs *service.JobService
}

// NewSubmissionHandler creates a new submission handler.
func NewSubmissionHandler(jobs *service.JobService) *SubmissionHandler {
	return &SubmissionHandler{jobs: jobs}
}

func (h *SubmissionHandler) List(c *gin.Context) {
	var q request.SubmissionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	params := &repository.SubmissionFilterParams{
		Pagination: &pagination.PaginationParams{Page: q.Page, PerPage: q.PerPage},
	}
	if q.PrinterID > 0 {
		params.PrinterID = &q.PrinterID
	}
	if q.PayloadType != "" {
		pt := enum.PayloadType(q.PayloadType)
		if !pt.Known() {
			response.BadRequest(c, "Unknown payload_type")
			return
		}
		params.PayloadType = &pt
	}
	if q.Status != "" {
		status, ok := enum.ParseSubmissionStatus(q.Status)
		if !ok {
			response.BadRequest(c, "Unknown status")
			return
		}
		params.Status = &status
	}

	result, err := h.jobs.ListSubmissions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Submissions retrieved", result)
}
