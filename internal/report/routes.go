package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, reportService ReportServiceAPI) {
	reportController := &ReportController{ReportService: reportService}

	reportGroup := r.Group("/api/reports")
	{
		reportGroup.GET("/widget/:id", reportController.DownloadWidgetReport)
		reportGroup.GET("/source/:id", reportController.DownloadSourceReport)
	}
}
