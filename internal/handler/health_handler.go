package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bigrusstattoo/studio/internal/database"
	"github.com/bigrusstattoo/studio/internal/response"
)

// HealthHandler reports service liveness and dependency health
type HealthHandler struct {
	db      *database.PostgresDB
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Check reports liveness plus a database ping
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	if err := h.db.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		dbStatus = err.Error()
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, response.Success(gin.H{
		"status":    status,
		"version":   h.version,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}))
}
