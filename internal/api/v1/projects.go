package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProjects 列出当前用户的全部项目
// GET /api/projects
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjectsByUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

// GetProject 返回项目头和全部行项目
// GET /api/projects/:id
func (h *Handler) GetProject(c *gin.Context) {
	project, ok := h.loadOwnedProject(c)
	if !ok {
		return
	}

	items, err := h.store.GetLineItems(project.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":    project,
		"line_items": items,
	})
}
