package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler().Register(r.Group("/api/v1"))
	return r
}

func TestSatellite_FallbackDescriptor(t *testing.T) {
	r := setupRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/satellite?year=2016", nil)
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "/satellite/2016.jpg", body["fallbackUrl"])
	assert.Equal(t, "Using fallback static imagery", body["message"])

	viewer, ok := body["viewer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.5, viewer["minZoom"])
	assert.Equal(t, 5.0, viewer["maxZoom"])
	assert.Equal(t, 1.5, viewer["zoomStep"])
}

func TestSatellite_DefaultYear(t *testing.T) {
	r := setupRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/satellite", nil)
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "/satellite/2020.jpg", body["fallbackUrl"])
}

func TestSatellite_InvalidYear(t *testing.T) {
	r := setupRouter()

	for _, q := range []string{"year=1999", "year=abc"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/satellite?"+q, nil)
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestMapMarkers(t *testing.T) {
	r := setupRouter()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/map-markers", nil)
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		OK      bool        `json:"ok"`
		Markers []MapMarker `json:"markers"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Markers, 3)

	assert.Equal(t, "metekel", body.Markers[0].ID)
	assert.Equal(t, [2]float64{10.7803, 35.5658}, body.Markers[0].Coordinates)
	assert.Equal(t, "Very High", body.Markers[1].FloodRisk)
	assert.Equal(t, "jakarta", body.Markers[2].ID)
}
