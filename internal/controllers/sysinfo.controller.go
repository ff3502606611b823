package controllers

import (
	"context"
	"net/http"

	"sysinfo-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Collector produces a fresh system information snapshot
type Collector interface {
	Collect(ctx context.Context) (*models.SystemInformation, error)
}

// GetSysInfo returns the handler for GET /api/v1/sysinfo
func GetSysInfo(collector Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := collector.Collect(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// NotFound answers every request that does not match a route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
