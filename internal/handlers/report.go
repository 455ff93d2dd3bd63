package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

type ReportHandler struct {
	reportService *services.ReportService
	poaService    *services.POAService
}

func NewReportHandler(reportService *services.ReportService, poaService *services.POAService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		poaService:    poaService,
	}
}

// DownloadPOAReport streams the POA budget workbook as an Excel download
func (h *ReportHandler) DownloadPOAReport(c *gin.Context) {
	poa, err := h.poaService.GetPOAByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	workbook, err := h.reportService.BuildPOAWorkbook(poa.ID.String())
	if err != nil {
		respondError(c, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("poa_%s.xlsx", poa.Code)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	c.Status(http.StatusOK)
	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to stream report")
	}
}
