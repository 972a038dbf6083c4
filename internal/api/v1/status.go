package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Projects int    `json:"projects"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:   "ok",
		Service:  "finance-ai-agent",
		Projects: count,
	})
}
