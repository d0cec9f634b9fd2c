package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home godoc
// @Summary      Service description
// @Description  Returns the service name, version and available endpoints
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        h.info.Name,
		"version":     h.info.Version,
		"description": "Scrapes CME gold trading volume totals and serves them as JSON or HTML",
		"endpoints":   Endpoints,
	})
}

// NotFound answers unknown routes with the JSON error envelope and the route list.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"ok":                  false,
		"error":               "Endpoint not found",
		"available_endpoints": endpointPaths(),
	})
}
