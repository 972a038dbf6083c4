package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/config"
	"github.com/seoulyoojin-design/finance-ai-agent/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.Store, cfg *config.AppConfig) *Handler {
	return &Handler{
		store: store,
		cfg:   cfg,
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	// 用语词典
	router.GET("/glossary", h.GetGlossary)

	// 文件上传与项目
	router.POST("/projects/upload", h.Upload)
	router.GET("/projects", h.ListProjects)
	router.GET("/projects/:id", h.GetProject)

	// 缺口检测 / 补录 / 分析 / 报告
	router.GET("/projects/:id/missing", h.DetectMissing)
	router.PUT("/projects/:id/reconcile", h.Reconcile)
	router.POST("/projects/:id/analyze", h.Analyze)
	router.GET("/projects/:id/report", h.GetReport)
}
