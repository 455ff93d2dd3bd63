package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/services"
)

type MonthlyScheduleHandler struct {
	scheduleService *services.MonthlyScheduleService
}

func NewMonthlyScheduleHandler(scheduleService *services.MonthlyScheduleService) *MonthlyScheduleHandler {
	return &MonthlyScheduleHandler{scheduleService: scheduleService}
}

type createScheduleRequest struct {
	TaskID string  `json:"id_tarea" binding:"required"`
	Month  string  `json:"mes" binding:"required"`
	Amount float64 `json:"valor"`
}

type updateScheduleRequest struct {
	Month  string  `json:"mes" binding:"required"`
	Amount float64 `json:"valor"`
}

// CreateSchedule assigns part of a task's budget to a month
func (h *MonthlyScheduleHandler) CreateSchedule(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	schedule := &models.MonthlySchedule{
		TaskID: taskID,
		Month:  req.Month,
		Amount: req.Amount,
	}

	if err := h.scheduleService.CreateSchedule(schedule); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule updates a monthly schedule entry. The task binding is
// immutable; only month and amount change.
func (h *MonthlyScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule ID"})
		return
	}

	var req updateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule := &models.MonthlySchedule{
		ID:     id,
		Month:  req.Month,
		Amount: req.Amount,
	}

	if err := h.scheduleService.UpdateSchedule(schedule); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListTaskSchedules returns the monthly schedule of a task
func (h *MonthlyScheduleHandler) ListTaskSchedules(c *gin.Context) {
	schedules, err := h.scheduleService.GetSchedulesByTaskID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}
