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

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type projectRequest struct {
	Code           string   `json:"codigo_proyecto" binding:"required"`
	Title          string   `json:"titulo" binding:"required"`
	TypeID         string   `json:"id_tipo_proyecto" binding:"required"`
	StatusID       string   `json:"id_estado_proyecto" binding:"required"`
	DirectorName   string   `json:"id_director_proyecto"`
	ApprovedBudget *float64 `json:"presupuesto_aprobado"`
	StartDate      string   `json:"fecha_inicio"`
	EndDate        string   `json:"fecha_fin"`
	ExtensionStart string   `json:"fecha_prorroga_inicio"`
	ExtensionEnd   string   `json:"fecha_prorroga_fin"`
}

func (r *projectRequest) toModel() (*models.Project, error) {
	typeID, err := uuid.Parse(r.TypeID)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("invalid project type ID")
	}

	statusID, err := uuid.Parse(r.StatusID)
	if err != nil {
		return nil, apperrors.NewFormatInvalid("invalid project status ID")
	}

	startDate, err := parseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := parseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	extensionStart, err := parseDate(r.ExtensionStart)
	if err != nil {
		return nil, err
	}

	extensionEnd, err := parseDate(r.ExtensionEnd)
	if err != nil {
		return nil, err
	}

	return &models.Project{
		Code:           r.Code,
		Title:          r.Title,
		TypeID:         typeID,
		StatusID:       statusID,
		DirectorName:   r.DirectorName,
		ApprovedBudget: r.ApprovedBudget,
		StartDate:      startDate,
		EndDate:        endDate,
		ExtensionStart: extensionStart,
		ExtensionEnd:   extensionEnd,
	}, nil
}

// CreateProject handles project creation
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.projectService.CreateProject(project); err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("project_id", project.ID).Info("Project created")
	c.JSON(http.StatusCreated, project)
}

// UpdateProject handles project updates
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := req.toModel()
	if err != nil {
		respondError(c, err)
		return
	}
	project.ID = id

	if err := h.projectService.UpdateProject(project); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProject returns a single project
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects returns all projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.GetProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}
