package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the generate-report endpoint with the selected
// generator strategy.
type Handler struct {
	gen Generator
}

func NewHandler(gen Generator) *Handler {
	return &Handler{gen: gen}
}

// generate always answers 200 with a report. Only an unreadable
// request body is a client error.
func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": h.gen.Generate(c.Request.Context(), req)})
}

// Register attaches the endpoint to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/generate-report", h.generate)
}
