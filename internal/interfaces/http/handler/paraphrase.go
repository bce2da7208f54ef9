package handler

import (
	"github.com/gin-gonic/gin"

	"seo-article-api/internal/application/paraphrase"
	"seo-article-api/internal/interfaces/http/dto"
)

// ParaphraseHandler 文本改写处理器
type ParaphraseHandler struct {
	service *paraphrase.Service
}

// NewParaphraseHandler 创建文本改写处理器
func NewParaphraseHandler(service *paraphrase.Service) *ParaphraseHandler {
	return &ParaphraseHandler{service: service}
}

// Paraphrase POST /api/paraphrase
func (h *ParaphraseHandler) Paraphrase(c *gin.Context) {
	var req dto.ParaphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.UnprocessableEntity(c, "invalid request body", &dto.ErrorDetail{
			ErrorCode: "validation_error",
			Details:   err.Error(),
		})
		return
	}

	// 显式传 0 是合法参数值，只有字段缺省时才补默认
	opts := paraphrase.Options{
		Adequacy:      floatOr(req.Adequacy, 1.0),
		Fluency:       floatOr(req.Fluency, 1.0),
		Diversity:     floatOr(req.Diversity, 1.0),
		MaxVariations: intOr(req.MaxVariations, 3),
	}

	result := h.service.Paraphrase(c.Request.Context(), req.Text, opts)

	dto.Success(c, &dto.ParaphraseResponse{
		OriginalText:          req.Text,
		ParaphrasedVariations: result.Variations,
		ConfidenceScores:      result.Confidences,
		ProcessingTime:        result.ProcessingTime,
	})
}

// floatOr 指针为 nil 时返回默认值
func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// intOr 指针为 nil 时返回默认值
func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
