package telemetry

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, telemetryService *TelemetryService) {
	telemetryController := &TelemetryController{TelemetryService: telemetryService}

	r.GET("/api/telemetry", telemetryController.GetSnapshot)
}
