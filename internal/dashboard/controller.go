package dashboard

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"oilfield-dashboard-api/internal/binding"
)

type DashboardController struct {
	DashboardService DashboardServiceAPI
}

// GET /api/dashboard
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":  dc.DashboardService.Title(),
		"panels": dc.DashboardService.Panels(),
	})
}

// PUT /api/dashboard/title
func (dc *DashboardController) SetTitle(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	dc.DashboardService.SetTitle(body.Title)
	c.JSON(http.StatusOK, gin.H{"title": body.Title})
}

// GET /api/dashboard/widget-types
func (dc *DashboardController) AvailableWidgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"widget_types": dc.DashboardService.AvailableWidgets()})
}

// POST /api/dashboard/widgets
func (dc *DashboardController) AddWidget(c *gin.Context) {
	var body struct {
		Type string `json:"type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Type) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget type is required"})
		return
	}

	w, err := dc.DashboardService.AddWidget(strings.TrimSpace(body.Type))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"widget": w})
}

// DELETE /api/dashboard/widgets/:id
func (dc *DashboardController) RemoveWidget(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	if err := dc.DashboardService.RemoveWidget(widgetID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": widgetID})
}

// POST /api/dashboard/widgets/:id/config
//
// The configuration dialog's save: persist the binding, then re-resolve the
// widget's data into the cache.
func (dc *DashboardController) ApplyConfig(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	var cfg binding.WidgetDataConfig
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

	if err := dc.DashboardService.ApplyConfig(c.Request.Context(), cfg); err != nil {
		if errors.Is(err, binding.ErrIncompleteMapping) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete all required field mappings"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// GET /api/dashboard/widgets/:id/data?type=
func (dc *DashboardController) GetWidgetData(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}
	widgetType := strings.TrimSpace(c.Query("type"))

	payload := dc.DashboardService.WidgetData(widgetID, widgetType)
	c.JSON(http.StatusOK, payload)
}

// GET /api/dashboard/widgets/:id/grid-columns
func (dc *DashboardController) GetGridColumns(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": dc.DashboardService.GridColumns(widgetID)})
}

// POST /api/dashboard/refresh
func (dc *DashboardController) Refresh(c *gin.Context) {
	if err := dc.DashboardService.RefreshAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refreshed": true})
}

// POST /api/dashboard/reset
func (dc *DashboardController) Reset(c *gin.Context) {
	dc.DashboardService.Reset()
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// POST /api/dashboards  (save the active layout)
func (dc *DashboardController) SaveDashboard(c *gin.Context) {
	var body struct {
		Title string `json:"title"`
	}
	// body is optional; an empty title keeps the current one
	_ = c.ShouldBindJSON(&body)

	dash, err := dc.DashboardService.SaveDashboard(body.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"dashboard": dash})
}

// GET /api/dashboards
func (dc *DashboardController) ListSaved(c *gin.Context) {
	saved, err := dc.DashboardService.ListSaved()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboards": saved})
}

// POST /api/dashboards/:id/load
func (dc *DashboardController) LoadDashboard(c *gin.Context) {
	dashboardID := strings.TrimSpace(c.Param("id"))
	if dashboardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dashboard id is required"})
		return
	}

	if err := dc.DashboardService.LoadDashboard(c.Request.Context(), dashboardID); err != nil {
		if errors.Is(err, ErrDashboardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dashboard not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"loaded": dashboardID})
}

// DELETE /api/dashboards/:id
func (dc *DashboardController) DeleteDashboard(c *gin.Context) {
	dashboardID := strings.TrimSpace(c.Param("id"))
	if dashboardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dashboard id is required"})
		return
	}

	if err := dc.DashboardService.DeleteDashboard(dashboardID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": dashboardID})
}

// GET /api/dashboard/export
func (dc *DashboardController) Export(c *gin.Context) {
	doc, err := dc.DashboardService.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("dashboard-%d.json", time.Now().UnixMilli())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", doc)
}

// POST /api/dashboard/import
func (dc *DashboardController) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	if err := dc.DashboardService.Import(c.Request.Context(), data); err != nil {
		if errors.Is(err, ErrInvalidImport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dashboard file"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": true})
}
