package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/service/engine"
)

// Analyze 对项目执行一次完整的对账与分析流程
// POST /api/projects/:id/analyze
//
// 有缺口时返回缺口清单（AWAITING_RECONCILIATION），否则返回完整报告。
// 每次调用都按当前数据重新推导，结果状态回写到项目表仅作缓存。
func (h *Handler) Analyze(c *gin.Context) {
	project, ok := h.loadOwnedProject(c)
	if !ok {
		return
	}

	eng := engine.New(h.store)
	result, err := eng.Run(project.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 状态缓存回写失败不影响本次响应
	if err := h.store.UpdateProjectStatus(project.ProjectID, result.Status); err != nil {
		log.Printf("update project status failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": project.ProjectID,
		"result":     result,
	})
}
