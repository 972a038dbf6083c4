package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
	"github.com/seoulyoojin-design/finance-ai-agent/internal/service/engine"
)

// GetReport 返回项目的最终分析报告
// GET /api/projects/:id/report
//
// 报告不落库，每次请求都按当前数据重新推导；仍有缺口时拒绝出报告
func (h *Handler) GetReport(c *gin.Context) {
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

	if result.Status != model.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "보고서를 보기 전에 누락된 데이터를 먼저 입력해야 합니다.",
			"missing_items": result.MissingItems,
		})
		return
	}

	c.JSON(http.StatusOK, result.Report)
}
