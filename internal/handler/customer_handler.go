package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/middleware"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// CustomerHandler handles customer directory HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns the customer directory
// GET /api/v1/customers?include_deleted=true
func (h *CustomerHandler) List(c *gin.Context) {
	includeDeleted := c.Query("include_deleted") == "true"

	results, err := h.customerService.List(c.Request.Context(), middleware.Principal(c), includeDeleted)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden(""))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(results))
}

// GetDetail returns a customer with their full history
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetDetail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Customer ID is required"))
		return
	}

	detail, err := h.customerService.GetDetail(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Forbidden(""))
		case errors.Is(err, service.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Customer not found"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(detail))
}
