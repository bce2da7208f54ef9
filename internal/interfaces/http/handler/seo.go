package handler

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"seo-article-api/internal/application/seo"
	"seo-article-api/internal/application/textmetrics"
	"seo-article-api/internal/interfaces/http/dto"
	"seo-article-api/pkg/metrics"
)

// SEOHandler SEO 文本分析处理器
type SEOHandler struct{}

// NewSEOHandler 创建 SEO 分析处理器
func NewSEOHandler() *SEOHandler {
	return &SEOHandler{}
}

// Analyze POST /api/seo-analysis
func (h *SEOHandler) Analyze(c *gin.Context) {
	var req dto.SEOAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.UnprocessableEntity(c, "invalid request body", &dto.ErrorDetail{
			ErrorCode: "validation_error",
			Details:   err.Error(),
		})
		return
	}

	wordCount := textmetrics.WordCount(req.ArticleText)
	densities := textmetrics.KeywordDensity(req.ArticleText, req.TargetKeywords)
	readability := textmetrics.ReadabilityScore(req.ArticleText)
	score := seo.Score(wordCount, densities, readability)

	metrics.SEOAnalysisTotal.WithLabelValues("ok").Inc()
	metrics.SEOScore.Observe(score)

	dto.Success(c, &dto.SEOAnalysisResponse{
		WordCount:                  wordCount,
		KeywordDensity:             densities.Map(),
		ReadabilityScore:           readability,
		MetaDescriptionSuggestions: metaSuggestions(req.ArticleText),
		SEOScore:                   score,
		Suggestions:                seo.Suggestions(wordCount, densities, readability),
	})
}

// metaSuggestions 取正文前三个句子作为 meta description 候选，
// 超过 160 字符的截断补省略号
func metaSuggestions(text string) []string {
	parts := strings.Split(text, ". ")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	suggestions := make([]string, 0, 3)
	for _, sentence := range parts {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if utf8.RuneCountInString(sentence) > 160 {
			sentence = textmetrics.TruncateByRunes(sentence, 157) + "..."
		}
		suggestions = append(suggestions, sentence)
	}
	return suggestions
}
