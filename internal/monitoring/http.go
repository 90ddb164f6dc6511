package monitoring

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler serves the satellite and map fixture endpoints.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// satellite returns the fallback imagery descriptor. Live tile serving
// is intentionally not implemented; the client is pointed at the
// bundled static image for the requested year.
func (h *Handler) satellite(c *gin.Context) {
	raw := c.DefaultQuery("year", "2020")
	year, err := strconv.Atoi(raw)
	if err != nil || !validYear(year) {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":         false,
			"error":      "invalid year",
			"validYears": SatelliteYears,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     false,
		"error":       "Earth Engine initialization failed",
		"fallbackUrl": fmt.Sprintf("/satellite/%d.jpg", year),
		"message":     "Using fallback static imagery",
		"viewer":      DefaultViewer,
	})
}

func (h *Handler) mapMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "markers": MapMarkers})
}

// Register attaches the endpoints to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/monitoring/satellite", h.satellite)
	rg.GET("/monitoring/map-markers", h.mapMarkers)
}
