package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/middleware"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// UserHandler handles staff directory HTTP requests
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns staff users, optionally filtered by role
// GET /api/v1/users?role=artist
func (h *UserHandler) List(c *gin.Context) {
	roleName := c.Query("role")

	results, err := h.userService.List(c.Request.Context(), middleware.Principal(c), roleName)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	out := make([]*dto.UserResponse, 0, len(results))
	for _, u := range results {
		out = append(out, &dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	c.JSON(http.StatusOK, response.Success(out))
}
