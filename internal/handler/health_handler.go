package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/multitool_api/internal/utils"
)

// Service identity reported by the info endpoints.
const (
	ServiceName        = "Multi-Tool AI Assistance API"
	ServiceVersion     = "1.0.0"
	ServiceDescription = "Product search and YouTube discovery with an AI assistant"
)

// HealthHandler provides liveness and info endpoints.
type HealthHandler struct {
	env     string
	prefix  string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(env, apiPrefix string) *HealthHandler {
	return &HealthHandler{env: env, prefix: apiPrefix, started: time.Now()}
}

// Root describes the API and where its endpoints live.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": ServiceName,
		"version": ServiceVersion,
		"endpoints": gin.H{
			"health":   h.prefix + "/health",
			"info":     h.prefix + "/info",
			"products": h.prefix + "/products/search",
			"chat":     h.prefix + "/chat",
		},
	})
}

// GetHealth reports process liveness.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, http.StatusOK, "API is healthy", gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
		"uptime":      time.Since(h.started).Seconds(),
		"environment": h.env,
	})
}

// GetInfo returns API name and version.
func (h *HealthHandler) GetInfo(c *gin.Context) {
	utils.Success(c, http.StatusOK, "API information", gin.H{
		"name":        ServiceName,
		"version":     ServiceVersion,
		"description": ServiceDescription,
	})
}

// NotFound answers unmatched routes.
func (h *HealthHandler) NotFound(c *gin.Context) {
	utils.Error(c, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path))
}

// Pinger checks backing store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseHandler exposes the database probe.
type DatabaseHandler struct {
	db Pinger
}

// NewDatabaseHandler creates a new DatabaseHandler.
func NewDatabaseHandler(db Pinger) *DatabaseHandler {
	return &DatabaseHandler{db: db}
}

// GetHealth runs a trivial query against the database.
func (h *DatabaseHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logError(c, err, "database health check failed")
		utils.Error(c, http.StatusInternalServerError, "Database connection failed")
		return
	}
	utils.Success(c, http.StatusOK, "Database is connected", gin.H{
		"status": "connected",
		"type":   "PostgreSQL",
	})
}
