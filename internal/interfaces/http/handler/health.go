package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-article-api/internal/config"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.cfg.App.Version,
	})
}

// Ready 就绪检查接口。远程补全凭证缺失不影响就绪态，
// 服务始终能走模板回退路径。
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]*readinessCheck{
		"llm_provider": {Status: "ok"},
	}

	provider, ok := h.cfg.LLM.Providers[h.cfg.LLM.DefaultProvider]
	switch {
	case !ok:
		checks["llm_provider"].Status = "missing"
		checks["llm_provider"].Error = "default provider not configured"
	case provider.APIKey == "":
		checks["llm_provider"].Status = "degraded"
		checks["llm_provider"].Error = "api key not set, template fallback only"
	}

	c.JSON(http.StatusOK, readinessResponse{
		Status: "ready",
		Checks: checks,
	})
}

// Live 存活检查接口
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "alive",
	})
}
