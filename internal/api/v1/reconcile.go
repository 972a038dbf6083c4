package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
	"github.com/seoulyoojin-design/finance-ai-agent/internal/service/engine"
)

// reconcileRequest 补录请求体
type reconcileRequest struct {
	StatementType model.StatementType `json:"statement_type" binding:"required"`
	ItemRequested string              `json:"item_requested" binding:"required"`
	ProvidedValue decimal.Decimal     `json:"user_provided_value"`
}

// Reconcile 把用户补录的数值写入最新期间并追加审计日志
// PUT /api/projects/:id/reconcile
func (h *Handler) Reconcile(c *gin.Context) {
	project, ok := h.loadOwnedProject(c)
	if !ok {
		return
	}

	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다."})
		return
	}

	recorder := engine.NewRecorder(h.store)
	entry, err := recorder.Reconcile(project.ProjectID, req.StatementType, req.ItemRequested, req.ProvidedValue)
	if err != nil {
		var unknown *engine.UnknownAccountError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": project.ProjectID,
		"entry":      entry,
		"message":    fmt.Sprintf("'%s' 데이터가 업데이트되었습니다.", req.ItemRequested),
	})
}
