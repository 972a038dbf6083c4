package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
	"github.com/seoulyoojin-design/finance-ai-agent/internal/store"
)

// defaultUserID 认证桩的缺省用户
const defaultUserID = "test_user_id"

// currentUserID 从请求头解析用户身份
// 认证桩：真实环境应替换为 JWT 校验后取用户 ID
func currentUserID(c *gin.Context) string {
	if v := c.GetHeader("X-User-Id"); v != "" {
		return v
	}
	return defaultUserID
}

// loadOwnedProject 读取项目并校验所有权
// 项目不存在与无权限统一返回 403，不泄露项目是否存在
func (h *Handler) loadOwnedProject(c *gin.Context) (*model.Project, bool) {
	projectID := c.Param("id")

	project, err := h.store.GetProject(projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "접근 권한이 없습니다."})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}

	if project.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "접근 권한이 없습니다."})
		return nil, false
	}

	return project, true
}
