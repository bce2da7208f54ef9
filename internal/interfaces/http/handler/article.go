// Package handler 提供 HTTP 请求处理器
package handler

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"seo-article-api/internal/application/article"
	"seo-article-api/internal/application/paraphrase"
	"seo-article-api/internal/interfaces/http/dto"
	"seo-article-api/pkg/logger"
)

// ArticleHandler 文章生成处理器
type ArticleHandler struct {
	generator   *article.Generator
	paraphraser article.Paraphraser
}

// NewArticleHandler 创建文章生成处理器
func NewArticleHandler(generator *article.Generator, paraphraser article.Paraphraser) *ArticleHandler {
	return &ArticleHandler{
		generator:   generator,
		paraphraser: paraphraser,
	}
}

// Generate POST /api/generate-article
func (h *ArticleHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.UnprocessableEntity(c, "invalid request body", &dto.ErrorDetail{
			ErrorCode: "validation_error",
			Details:   err.Error(),
		})
		return
	}

	if req.TargetLength == 0 {
		req.TargetLength = 500
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}
	includeParaphrasing := req.IncludeParaphrasing == nil || *req.IncludeParaphrasing

	genReq := &article.Request{
		Topic:             req.Topic,
		Keywords:          req.Keywords,
		TargetLength:      req.TargetLength,
		Tone:              req.Tone,
		IncludeParaphrase: includeParaphrasing,
	}
	if req.ParaphraseConfig != nil {
		genReq.ParaphraseAdequacy = req.ParaphraseConfig.Adequacy
		genReq.ParaphraseFluency = req.ParaphraseConfig.Fluency
		genReq.ParaphraseDiversity = req.ParaphraseConfig.Diversity
	}

	result := h.generator.Generate(ctx, genReq)

	// 请求多个变体时，对最终正文追加一轮改写
	var variations []string
	if includeParaphrasing && req.ParaphraseConfig != nil && intOr(req.ParaphraseConfig.MaxVariations, 0) > 1 {
		paraResult := h.paraphraser.Paraphrase(ctx, result.Content, paraphrase.Options{
			Adequacy:      floatOr(req.ParaphraseConfig.Adequacy, 1.0),
			Fluency:       floatOr(req.ParaphraseConfig.Fluency, 1.0),
			Diversity:     floatOr(req.ParaphraseConfig.Diversity, 1.0),
			MaxVariations: *req.ParaphraseConfig.MaxVariations - 1,
		})
		variations = paraResult.Variations
	}

	resp := &dto.GenerateArticleResponse{
		Topic:            req.Topic,
		GeneratedArticle: result.Content,
		WordCount:        result.WordCount,
		KeywordDensity:   result.KeywordDensity.Map(),
		MetaDescription:  result.MetaDescription,
		ReadabilityScore: result.ReadabilityScore,
		SEO: &dto.SEOContentResponse{
			H1Heading:       result.SEO.H1Heading,
			H2Headings:      result.SEO.H2Headings,
			MetaDescription: result.SEO.MetaDescription,
			Slug:            result.SEO.Slug,
		},
		Variations:     variations,
		ProcessingTime: result.ProcessingTime,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	if req.IncludeHTML {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(result.Content), &buf); err != nil {
			logger.Warn(ctx, "markdown rendering failed", "error", err.Error())
		} else {
			resp.GeneratedArticleHTML = buf.String()
		}
	}

	dto.Success(c, resp)
}
