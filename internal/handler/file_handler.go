package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/middleware"
	"github.com/bigrusstattoo/studio/internal/response"
	"github.com/bigrusstattoo/studio/internal/service"
)

// FileHandler handles uploaded-file HTTP requests
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// List returns file records, optionally narrowed to one association kind
// GET /api/v1/files?type=request|appointment|all
func (h *FileHandler) List(c *gin.Context) {
	associationType := c.Query("type")
	if strings.EqualFold(associationType, "all") {
		associationType = ""
	}

	results, err := h.fileService.List(c.Request.Context(), middleware.Principal(c), associationType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Forbidden(""))
		case errors.Is(err, domain.ErrInvalidAssociation):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(results))
}
