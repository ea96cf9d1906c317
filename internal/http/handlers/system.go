package handlers

import (
	"net/http"
	"time"

	intconfig "numerica-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "data_access_error", "base de datos no disponible")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "database": "ok"})
}
