package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/middleware"
	"sigmaquiz/serializers"
	"sigmaquiz/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req services.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.authService.RegisterAdmin(&req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, serializers.User(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	token, user, err := h.authService.Login(&req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         serializers.User(user),
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.authService.ChangePassword(user.ID, &req); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password Changed Successfully"})
}
