package health

import (
	"context"
	"net/http"
	"time"

	"github.com/kevin101681/cascadeconnect-sub011/internal/db"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthChecker reports service liveness including database reachability.
type HealthChecker struct {
	database *db.Database
	timeout  time.Duration
}

func NewHealthChecker(database *db.Database, timeout time.Duration) *HealthChecker {
	return &HealthChecker{database: database, timeout: timeout}
}

func (h *HealthChecker) Handler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	response := HealthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := h.database.HealthCheck(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}
