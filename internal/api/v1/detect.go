package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/service/engine"
)

// DetectMissing 返回项目当前的必填科目缺口
// GET /api/projects/:id/missing
func (h *Handler) DetectMissing(c *gin.Context) {
	project, ok := h.loadOwnedProject(c)
	if !ok {
		return
	}

	items, err := h.store.GetLineItems(project.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	missing := engine.DetectMissing(items)

	c.JSON(http.StatusOK, gin.H{
		"project_id":    project.ProjectID,
		"missing_items": missing,
		"complete":      len(missing) == 0,
	})
}
