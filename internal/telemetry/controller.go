package telemetry

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TelemetryController struct {
	TelemetryService *TelemetryService
}

// GET /api/telemetry
func (tc *TelemetryController) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, tc.TelemetryService.Snapshot())
}
