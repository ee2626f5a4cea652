package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/dto"
	"github.com/bigrusstattoo/studio/internal/middleware"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// RequestHandler handles appointment-request HTTP requests
type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Create handles the public intake form
// POST /api/v1/requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req dto.CreateRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.requestService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewRequestResponse(result)))
}

// List handles the staff request listing
// GET /api/v1/requests?include_deleted=true
func (h *RequestHandler) List(c *gin.Context) {
	includeDeleted := c.Query("include_deleted") == "true"

	results, err := h.requestService.List(c.Request.Context(), middleware.Principal(c), includeDeleted)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	out := make([]*dto.RequestResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.NewRequestResponse(r))
	}
	c.JSON(http.StatusOK, response.Success(out))
}

// Activate moves a pending or waitlisted request into contacting
// POST /api/v1/waitlist/:id/activate
func (h *RequestHandler) Activate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Request ID is required"))
		return
	}

	req, sendResult, err := h.requestService.Activate(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Forbidden(""))
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Request not found"))
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	resp := &dto.ActivateRequestResponse{Request: dto.NewRequestResponse(req)}
	if sendResult != nil {
		resp.Notification = &dto.NotificationResult{
			Success:     sendResult.Success,
			ProviderRef: sendResult.ProviderRef,
			Error:       sendResult.Error,
		}
	}
	c.JSON(http.StatusOK, response.Success(resp))
}

// BulkUpdateStatus applies one status to a set of requests
// PATCH /api/v1/requests/bulk
func (h *RequestHandler) BulkUpdateStatus(c *gin.Context) {
	var req dto.BulkUpdateStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	updated, err := h.requestService.BulkUpdateStatus(c.Request.Context(), middleware.Principal(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Forbidden(""))
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(&dto.BulkUpdateStatusResponse{Updated: updated}))
}
