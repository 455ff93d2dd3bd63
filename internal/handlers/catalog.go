package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/services"
)

// CatalogHandler serves the reference tables the UI needs to fill dropdowns:
// roles, project/POA types and statuses, and the task detail catalog.
type CatalogHandler struct {
	userService       *services.UserService
	projectTypeRepo   *repositories.ProjectTypeRepository
	projectStatusRepo *repositories.ProjectStatusRepository
	poaTypeRepo       *repositories.POATypeRepository
	poaStatusRepo     *repositories.POAStatusRepository
	taskDetailRepo    *repositories.TaskDetailRepository
	budgetItemRepo    *repositories.BudgetItemRepository
}

func NewCatalogHandler(userService *services.UserService,
	projectTypeRepo *repositories.ProjectTypeRepository, projectStatusRepo *repositories.ProjectStatusRepository,
	poaTypeRepo *repositories.POATypeRepository, poaStatusRepo *repositories.POAStatusRepository,
	taskDetailRepo *repositories.TaskDetailRepository, budgetItemRepo *repositories.BudgetItemRepository) *CatalogHandler {
	return &CatalogHandler{
		userService:       userService,
		projectTypeRepo:   projectTypeRepo,
		projectStatusRepo: projectStatusRepo,
		poaTypeRepo:       poaTypeRepo,
		poaStatusRepo:     poaStatusRepo,
		taskDetailRepo:    taskDetailRepo,
		budgetItemRepo:    budgetItemRepo,
	}
}

// ListRoles returns all user roles
func (h *CatalogHandler) ListRoles(c *gin.Context) {
	roles, err := h.userService.GetRoles()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, roles)
}

// ListProjectTypes returns all project types
func (h *CatalogHandler) ListProjectTypes(c *gin.Context) {
	types, err := h.projectTypeRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// ListProjectStatuses returns all project statuses
func (h *CatalogHandler) ListProjectStatuses(c *gin.Context) {
	statuses, err := h.projectStatusRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// ListPOATypes returns all POA types
func (h *CatalogHandler) ListPOATypes(c *gin.Context) {
	types, err := h.poaTypeRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// ListPOAStatuses returns all POA statuses
func (h *CatalogHandler) ListPOAStatuses(c *gin.Context) {
	statuses, err := h.poaStatusRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// ListTaskDetails returns the task detail catalog
func (h *CatalogHandler) ListTaskDetails(c *gin.Context) {
	details, err := h.taskDetailRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// GetTaskBudgetItem returns the budget item a task maps to through its detail
func (h *CatalogHandler) GetTaskBudgetItem(c *gin.Context) {
	item, err := h.budgetItemRepo.GetByTaskID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}
