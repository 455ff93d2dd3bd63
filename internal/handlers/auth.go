package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/majoduan/poa-backend/internal/middleware"
	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/logger"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type registerRequest struct {
	Name     string `json:"nombre_usuario" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   string `json:"id_rol" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password, req.RoleID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("user_id", user.ID).Info("User registered")
	c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and returns an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("user_id", user.ID).Info("User logged in")
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"usuario":      user,
	})
}

// Profile returns the authenticated user's account
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.userService.GetUserByID(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
