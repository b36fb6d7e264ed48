package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/request"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
)

// JobHandler exposes the print service job queue.
type JobHandler struct {
	jobs     *service.JobService
	previews *service.PreviewService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobs *service.JobService, previews *service.PreviewService) *JobHandler {
	return &JobHandler{jobs: jobs, previews: previews}
}

// List returns the latest jobs.
func (h *JobHandler) List(c *gin.Context) {
	var q request.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}
	jobs, err := h.jobs.ListJobs(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Jobs retrieved", jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job retrieved", job)
}

// Preview renders the job as the device printed it.
func (h *JobHandler) Preview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	preview, err := h.previews.JobPreview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Preview rendered", preview)
}

// StornoDraft builds a reversal of a completed sale.
func (h *JobHandler) StornoDraft(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	draft, err := h.jobs.StornoDraft(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Storno draft created", draft)
}

// StornoCandidates lists recent sales that can be reversed.
func (h *JobHandler) StornoCandidates(c *gin.Context) {
	candidates, err := h.jobs.StornoCandidates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Storno candidates retrieved", candidates)
}

func (h *JobHandler) Retry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.RetryJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job re-queued", job)
}

func (h *JobHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobs.CancelJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Job cancelled", job)
}
