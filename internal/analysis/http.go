package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the analyze-documents endpoint with the selected
// analyzer strategy.
type Handler struct {
	analyzer Analyzer
}

func NewHandler(analyzer Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// analyze always answers 200 with a well-formed payload. Only an
// unreadable request body is a client error.
func (h *Handler) analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Analyze(c.Request.Context(), req))
}

// Register attaches the endpoint to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/analyze-documents", h.analyze)
}
