package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, catalogService CatalogServiceAPI) {
	catalogController := &CatalogController{CatalogService: catalogService}

	catalogGroup := r.Group("/api/datasources")
	{
		catalogGroup.GET("", catalogController.ListSources)
		catalogGroup.GET("/:id/columns", catalogController.GetColumns)
		catalogGroup.GET("/:id/preview", catalogController.Preview)
	}
}
