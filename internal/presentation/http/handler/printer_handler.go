package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/fiscal-console/internal/application/service"
	"github.com/sangkips/fiscal-console/internal/presentation/http/dto/response"
)

// PrinterHandler lists the fiscal devices known to the print service.
type PrinterHandler struct {
	jobs *service.JobService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(jobs *service.JobService) *PrinterHandler {
	return &PrinterHandler{jobs: jobs}
}

func (h *PrinterHandler) List(c *gin.Context) {
	printers, err := h.jobs.ListPrinters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Printers retrieved", printers)
}
