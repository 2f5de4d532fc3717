package dashboard

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, dashboardService DashboardServiceAPI) {
	dashboardController := &DashboardController{DashboardService: dashboardService}

	dashboardGroup := r.Group("/api/dashboard")
	{
		dashboardGroup.GET("", dashboardController.GetDashboard)
		dashboardGroup.PUT("/title", dashboardController.SetTitle)
		dashboardGroup.GET("/widget-types", dashboardController.AvailableWidgets)
		dashboardGroup.POST("/widgets", dashboardController.AddWidget)
		dashboardGroup.DELETE("/widgets/:id", dashboardController.RemoveWidget)
		dashboardGroup.POST("/widgets/:id/config", dashboardController.ApplyConfig)
		dashboardGroup.GET("/widgets/:id/data", dashboardController.GetWidgetData)
		dashboardGroup.GET("/widgets/:id/grid-columns", dashboardController.GetGridColumns)
		dashboardGroup.POST("/refresh", dashboardController.Refresh)
		dashboardGroup.POST("/reset", dashboardController.Reset)
		dashboardGroup.GET("/export", dashboardController.Export)
		dashboardGroup.POST("/import", dashboardController.Import)
	}

	savedGroup := r.Group("/api/dashboards")
	{
		savedGroup.POST("", dashboardController.SaveDashboard)
		savedGroup.GET("", dashboardController.ListSaved)
		savedGroup.POST("/:id/load", dashboardController.LoadDashboard)
		savedGroup.DELETE("/:id", dashboardController.DeleteDashboard)
	}
}
