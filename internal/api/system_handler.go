package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/config"
	"statstory-backend-go/internal/middleware"
	"statstory-backend-go/internal/models"
)

// SystemHandler serves the banner, health and connectivity endpoints.
type SystemHandler struct {
	cfg       *config.Config
	startedAt time.Time
	now       func() time.Time
}

func NewSystemHandler(cfg *config.Config, startedAt time.Time, now func() time.Time) *SystemHandler {
	return &SystemHandler{cfg: cfg, startedAt: startedAt, now: now}
}

// HealthStatus is the payload of GET /api/health.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
	Uptime      string `json:"uptime"`
	Version     string `json:"version"`
}

// formatUptime renders d as "Xd Xh Xm Xs".
func formatUptime(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "StatStory API", "version": h.cfg.AppVersion, "status": "running"})
}

// Health handles GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	now := h.now()
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthStatus{
			Status:      "healthy",
			Environment: h.cfg.AppEnv,
			Timestamp:   models.FormatTimestamp(now),
			Uptime:      formatUptime(now.Sub(h.startedAt)),
			Version:     h.cfg.AppVersion,
		},
		Message: "Server is running",
	})
}

// Ping handles GET /api/test/ping. Identity is optional.
func (h *SystemHandler) Ping(c *gin.Context) {
	body := gin.H{
		"message":   "pong",
		"timestamp": models.FormatTimestamp(h.now()),
		"clientIp":  c.ClientIP(),
	}
	if uid := middleware.UserID(c); uid != "" {
		body["userId"] = uid
	}
	c.JSON(http.StatusOK, body)
}

// NotFound answers unmatched routes.
func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{Error: "Not Found - " + c.Request.URL.RequestURI()})
}
