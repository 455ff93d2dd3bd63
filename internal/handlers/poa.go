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

type POAHandler struct {
	poaService *services.POAService
}

func NewPOAHandler(poaService *services.POAService) *POAHandler {
	return &POAHandler{poaService: poaService}
}

type poaRequest struct {
	ProjectID      string  `json:"id_proyecto" binding:"required"`
	PeriodID       string  `json:"id_periodo" binding:"required"`
	Code           string  `json:"codigo_poa" binding:"required"`
	StatusID       string  `json:"id_estado_poa" binding:"required"`
	TypeID         string  `json:"id_tipo_poa" binding:"required"`
	ExecutionYear  string  `json:"anio_ejecucion" binding:"required"`
	AssignedBudget float64 `json:"presupuesto_asignado" binding:"required"`
}

func (r *poaRequest) toModel() (*models.POA, error) {
	projectID, err := uuid.Parse(r.ProjectID)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("invalid project ID")
	}

	periodID, err := uuid.Parse(r.PeriodID)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("invalid period ID")
	}

	statusID, err := uuid.Parse(r.StatusID)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("invalid POA status ID")
	}

	typeID, err := uuid.Parse(r.TypeID)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("invalid POA type ID")
	}

	return &models.POA{
		ProjectID:      projectID,
		PeriodID:       periodID,
		Code:           r.Code,
		StatusID:       statusID,
		TypeID:         typeID,
		ExecutionYear:  r.ExecutionYear,
		AssignedBudget: r.AssignedBudget,
	}, nil
}

// CreatePOA handles POA creation
func (h *POAHandler) CreatePOA(c *gin.Context) {
	var req poaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poa, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.poaService.CreatePOA(poa); err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("poa_id", poa.ID).Info("POA created")
	c.JSON(http.StatusCreated, poa)
}

// UpdatePOA handles POA updates
func (h *POAHandler) UpdatePOA(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid POA ID"})
		return
	}

	var req poaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	poa, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	poa.ID = id

	if err := h.poaService.UpdatePOA(poa); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, poa)
}

// GetPOA returns a single POA
func (h *POAHandler) GetPOA(c *gin.Context) {
	poa, err := h.poaService.GetPOAByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, poa)
}

// ListPOAs returns all POAs
func (h *POAHandler) ListPOAs(c *gin.Context) {
	poas, err := h.poaService.GetPOAs()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, poas)
}

// ListProjectPOAs returns the POAs that belong to a project
func (h *POAHandler) ListProjectPOAs(c *gin.Context) {
	poas, err := h.poaService.GetPOAsByProjectID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, poas)
}
