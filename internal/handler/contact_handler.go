package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// ContactHandler handles admin-triggered outbound contact
type ContactHandler struct {
	notifyService service.NotifyService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(notifyService service.NotifyService) *ContactHandler {
	return &ContactHandler{notifyService: notifyService}
}

// Send dispatches an SMS or voice call to a customer. Dispatch failures
// come back in the result body, not as an HTTP error, so the dashboard
// can show what the provider said.
// POST /api/v1/contact
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result := h.notifyService.Send(c.Request.Context(), service.NotifyKind(req.Type), req.Phone, req.Message)

	resp := &dto.ContactResponse{
		Success: result.Success,
		Error:   result.Error,
	}
	if result.Success {
		switch service.NotifyKind(req.Type) {
		case service.NotifyKindCall:
			resp.CallSID = result.ProviderRef
			resp.Message = "Call placed"
		default:
			resp.Message = "Message sent"
		}
	}
	c.JSON(http.StatusOK, response.Success(resp))
}
