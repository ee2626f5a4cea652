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

// AppointmentHandler handles appointment and availability HTTP requests
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// ListMine returns the caller's appointments plus same-day notifications
// GET /api/v1/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	result, err := h.appointmentService.ListForArtist(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// ListAll returns every appointment in the studio
// GET /api/v1/admin/appointments
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	results, err := h.appointmentService.ListAll(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	out := make([]*dto.AppointmentResponse, 0, len(results))
	for _, a := range results {
		out = append(out, dto.NewAppointmentResponse(a))
	}
	c.JSON(http.StatusOK, response.Success(out))
}

// DeleteAvailability removes an availability block
// DELETE /api/v1/availability/:id
func (h *AppointmentHandler) DeleteAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Block ID is required"))
		return
	}

	err := h.appointmentService.DeleteAvailability(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Forbidden(""))
		case errors.Is(err, service.ErrAvailabilityNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Availability block not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Availability block deleted"}))
}
