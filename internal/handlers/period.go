package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

type PeriodHandler struct {
	periodService *services.PeriodService
}

func NewPeriodHandler(periodService *services.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

type periodRequest struct {
	Code      string `json:"codigo_periodo" binding:"required"`
	Name      string `json:"nombre_periodo" binding:"required"`
	StartDate string `json:"fecha_inicio" binding:"required"`
	EndDate   string `json:"fecha_fin" binding:"required"`
	Year      string `json:"anio"`
	Month     string `json:"mes"`
}

func (r *periodRequest) toModel() (*models.Period, error) {
	startDate, err := requireDate(r.StartDate, "start date")
	if err != nil {
		return nil, err
	}

	endDate, err := requireDate(r.EndDate, "end date")
	if err != nil {
		return nil, err
	}

	return &models.Period{
		Code:      r.Code,
		Name:      r.Name,
		StartDate: startDate,
		EndDate:   endDate,
		Year:      r.Year,
		Month:     r.Month,
	}, nil
}

// CreatePeriod handles period creation
func (h *PeriodHandler) CreatePeriod(c *gin.Context) {
	var req periodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.periodService.CreatePeriod(period); err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("period_id", period.ID).Info("Period created")
	c.JSON(http.StatusCreated, period)
}

// UpdatePeriod handles period updates
func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period ID"})
		return
	}

	var req periodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	period.ID = id

	if err := h.periodService.UpdatePeriod(period); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// GetPeriod returns a single period
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	period, err := h.periodService.GetPeriodByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, period)
}

// ListPeriods returns all periods
func (h *PeriodHandler) ListPeriods(c *gin.Context) {
	periods, err := h.periodService.GetPeriods()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, periods)
}
