package report

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService ReportServiceAPI
}

// GET /api/reports/widget/:id?format=
func (rc *ReportController) DownloadWidgetReport(c *gin.Context) {
	widgetID := strings.TrimSpace(c.Param("id"))
	if widgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "widget id is required"})
		return
	}

	contentType, filename, out, err := rc.ReportService.WidgetReport(c.Request.Context(), widgetID, c.Query("format"))
	if err != nil {
		if errors.Is(err, ErrWidgetNotConfigured) {
			c.JSON(http.StatusNotFound, gin.H{"error": "widget has no data configuration"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, out)
}

// GET /api/reports/source/:id?format=
func (rc *ReportController) DownloadSourceReport(c *gin.Context) {
	sourceID := strings.TrimSpace(c.Param("id"))
	if sourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source id is required"})
		return
	}

	contentType, filename, out, err := rc.ReportService.SourceReport(c.Request.Context(), sourceID, c.Query("format"))
	if err != nil {
		if errors.Is(err, ErrUnknownSource) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown data source"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, out)
}
