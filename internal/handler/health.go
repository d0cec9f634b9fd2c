package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Health check
// @Description  Returns a constant liveness payload without calling the exchange
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Status godoc
// @Summary      Process status
// @Description  Reports version and uptime without calling the exchange
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /status [get]
func (h *Handler) Status(c *gin.Context) {
	now := h.now()
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"status":         "OK",
		"app":            h.info.Name,
		"version":        h.info.Version,
		"go_version":     runtime.Version(),
		"started_at":     h.info.StartedAt.UTC().Format(time.RFC3339),
		"uptime_seconds": int64(now.Sub(h.info.StartedAt).Seconds()),
		"timestamp":      now.UTC().Format(time.RFC3339),
	})
}
