package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/majoduan/poa-backend/internal/middleware"
	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

type ReformHandler struct {
	reformService *services.ReformService
}

func NewReformHandler(reformService *services.ReformService) *ReformHandler {
	return &ReformHandler{reformService: reformService}
}

type reformRequest struct {
	RequestedAmount float64 `json:"monto_solicitado" binding:"required"`
	Justification   string  `json:"justificacion" binding:"required"`
}

// CreateReform requests a budget amendment for a POA
func (h *ReformHandler) CreateReform(c *gin.Context) {
	userID, err := uuid.Parse(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user session"})
		return
	}

	var req reformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reform, err := h.reformService.CreateReform(c.Param("id"), req.RequestedAmount, req.Justification, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("reform_id", reform.ID).Info("Reform requested")
	c.JSON(http.StatusCreated, reform)
}

// ApproveReform approves a pending reform and applies the new budget
func (h *ReformHandler) ApproveReform(c *gin.Context) {
	userID, err := uuid.Parse(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user session"})
		return
	}

	reform, err := h.reformService.ApproveReform(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("reform_id", reform.ID).Info("Reform approved")
	c.JSON(http.StatusOK, reform)
}

// GetReform returns a single reform
func (h *ReformHandler) GetReform(c *gin.Context) {
	reform, err := h.reformService.GetReformByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reform)
}

// ListPOAReforms returns the reforms requested for a POA
func (h *ReformHandler) ListPOAReforms(c *gin.Context) {
	reforms, err := h.reformService.GetReformsByPOAID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reforms)
}
