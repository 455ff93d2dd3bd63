package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

type createActivitiesRequest struct {
	Descriptions []string `json:"actividades" binding:"required"`
}

type updateActivityRequest struct {
	Description string `json:"descripcion_actividad" binding:"required"`
}

// CreateActivities creates a batch of activities under a POA
func (h *ActivityHandler) CreateActivities(c *gin.Context) {
	var req createActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activities, err := h.activityService.CreateActivities(c.Param("id"), req.Descriptions)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("poa_id", c.Param("id")).Infof("Created %d activities", len(activities))
	c.JSON(http.StatusCreated, activities)
}

// ListPOAActivities returns the activities of a POA
func (h *ActivityHandler) ListPOAActivities(c *gin.Context) {
	activities, err := h.activityService.GetActivitiesByPOAID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// UpdateActivity updates an activity's description
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Param("id"), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity removes an activity
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	if err := h.activityService.DeleteActivity(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
