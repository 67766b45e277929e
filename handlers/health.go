package handlers

import (
	"net/http"

	"stayhub/utils"

	"github.com/gin-gonic/gin"
)

// HealthStatusProvider reports the last dependency probe.
type HealthStatusProvider interface {
	Status() utils.HealthStatus
}

// Health handles GET /health.
func Health(monitor HealthStatusProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": statusText(status), "message": "Hi, I'm StayHub", "services": status})
	}
}

func statusText(s utils.HealthStatus) string {
	if s.Healthy() {
		return "ok"
	}
	return "degraded"
}
