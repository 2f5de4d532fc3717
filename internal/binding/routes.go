package binding

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, store ConfigStoreAPI, resolver ResolverAPI) {
	bindingController := &BindingController{Store: store, Resolver: resolver}

	widgetGroup := r.Group("/api/widgets")
	{
		widgetGroup.GET("/:id/config", bindingController.GetConfig)
		widgetGroup.PUT("/:id/config", bindingController.SaveConfig)
		widgetGroup.DELETE("/:id/config", bindingController.DeleteConfig)
		widgetGroup.GET("/:id/resolve", bindingController.ResolveConfig)
	}

	r.GET("/api/widget-configs", bindingController.AllConfigs)
	r.GET("/api/widget-types/:type/mappings", bindingController.InitMappings)
}
