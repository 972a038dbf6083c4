package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/service/engine"
)

// GetGlossary 返回财务用语词典
// GET /api/glossary
func (h *Handler) GetGlossary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"glossary": engine.Glossary()})
}
