package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultPreviewLimit = 10

type CatalogController struct {
	CatalogService CatalogServiceAPI
}

// GET /api/datasources
func (cc *CatalogController) ListSources(c *gin.Context) {
	sources, err := cc.CatalogService.ListSources(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data_sources": sources})
}

// GET /api/datasources/:id/columns
func (cc *CatalogController) GetColumns(c *gin.Context) {
	sourceID := strings.TrimSpace(c.Param("id"))
	if sourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data source id is required"})
		return
	}

	columns, err := cc.CatalogService.Columns(c.Request.Context(), sourceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

// GET /api/datasources/:id/preview?limit=
func (cc *CatalogController) Preview(c *gin.Context) {
	sourceID := strings.TrimSpace(c.Param("id"))
	if sourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data source id is required"})
		return
	}

	limit := defaultPreviewLimit
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	rows, err := cc.CatalogService.Preview(c.Request.Context(), sourceID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
