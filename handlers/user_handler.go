package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sigmaquiz/middleware"
	"sigmaquiz/serializers"
	"sigmaquiz/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.Users(users))
}

// GetProfile resolves the caller from the credential, never from a path
// parameter.
func (h *UserHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, serializers.User(middleware.CurrentUser(c)))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, serializers.User(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("userId")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successful"})
}
