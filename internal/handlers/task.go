package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type taskRequest struct {
	ActivityID   string  `json:"id_actividad"`
	TaskDetailID string  `json:"id_detalle_tarea"`
	Name         string  `json:"nombre" binding:"required"`
	Description  string  `json:"detalle_descripcion"`
	Quantity     float64 `json:"cantidad"`
	UnitPrice    float64 `json:"precio_unitario"`
}

func (r *taskRequest) toModel() (*models.Task, error) {
	task := &models.Task{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}

	if r.ActivityID != "" {
		activityID, err := uuid.Parse(r.ActivityID)
		if err != nil {
			return nil, apperrors.NewFormatInvalid("invalid activity ID")
		}
		task.ActivityID = activityID
	}

	if r.TaskDetailID != "" {
		detailID, err := uuid.Parse(r.TaskDetailID)
		if err != nil {
			return nil, apperrors.NewFormatInvalid("invalid task detail ID")
		}
		task.TaskDetailID = &detailID
	}

	return task, nil
}

// CreateTask creates a task under an activity
func (h *TaskHandler) CreateTask(c *gin.Context) {
	activityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	task.ActivityID = activityID

	if err := h.taskService.CreateTask(task); err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("task_id", task.ID).Info("Task created")
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	task.ID = id

	if err := h.taskService.UpdateTask(task); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTask returns a single task
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTaskByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListActivityTasks returns the tasks of an activity
func (h *TaskHandler) ListActivityTasks(c *gin.Context) {
	tasks, err := h.taskService.GetTasksByActivityID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// DeleteTask removes a task and its monthly schedule
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
