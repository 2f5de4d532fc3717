package binding

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type BindingController struct {
	Store    ConfigStoreAPI
	Resolver ResolverAPI
}

// GET /api/widgets/:id/config
func (bc *BindingController) GetConfig(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	cfg, ok := bc.Store.Get(widgetID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "config not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// PUT /api/widgets/:id/config
func (bc *BindingController) SaveConfig(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	var cfg WidgetDataConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid config payload"})
		return
	}

	if cfg.WidgetID == "" {
		cfg.WidgetID = widgetID
	}
	if cfg.WidgetID != widgetID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widgetId does not match path"})
		return
	}

	if err := bc.Store.Save(cfg); err != nil {
		if errors.Is(err, ErrIncompleteMapping) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete all required field mappings"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// DELETE /api/widgets/:id/config
func (bc *BindingController) DeleteConfig(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	if err := bc.Store.Delete(widgetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": widgetID})
}

// GET /api/widget-configs
func (bc *BindingController) AllConfigs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configs": bc.Store.All()})
}

// GET /api/widget-types/:type/mappings
//
// Returns the empty mapping skeleton the configuration dialog starts from.
func (bc *BindingController) InitMappings(c *gin.Context) {
	widgetType := strings.TrimSpace(c.Param("type"))
	if widgetType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget type is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"widget_type": widgetType,
		"mappings":    bc.Resolver.InitMappings(widgetType),
	})
}

// GET /api/widgets/:id/resolve
//
// Resolves the saved configuration on demand, without touching any cache;
// the dashboard layer owns cache population.
func (bc *BindingController) ResolveConfig(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	cfg, ok := bc.Store.Get(widgetID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "config not found"})
		return
	}

	rows, err := bc.Resolver.Resolve(c.Request.Context(), cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
