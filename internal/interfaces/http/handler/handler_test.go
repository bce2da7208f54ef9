package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-article-api/internal/application/article"
	"seo-article-api/internal/application/paraphrase"
	"seo-article-api/internal/application/seo"
	"seo-article-api/internal/config"
	"seo-article-api/internal/infrastructure/llm"
	"seo-article-api/internal/interfaces/http/dto"
	"seo-article-api/pkg/randutil"
)

type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	return "", &llm.RemoteError{Reason: llm.ReasonMissingCredential, Err: errors.New("api key not set")}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rng := randutil.New(42)
	completer := failingCompleter{}
	adjuster := article.NewAdjuster(rng)
	templates := article.NewTemplateGenerator(rng, adjuster)
	seoGen := seo.NewContentGenerator(completer, rng, 30*time.Second)
	paraphraser := paraphrase.NewService(completer, rng, &config.ParaphraseConfig{
		Timeout:        30 * time.Second,
		MaxConcurrency: 2,
	})
	generator := article.NewGenerator(completer, seoGen, templates, adjuster, paraphraser,
		&config.GenerationConfig{ArticleTimeout: 60 * time.Second})

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/generate-article", NewArticleHandler(generator, paraphraser).Generate)
	api.POST("/seo-analysis", NewSEOHandler().Analyze)
	api.POST("/paraphrase", NewParaphraseHandler(paraphraser).Paraphrase)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGenerateArticleEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("full pipeline with failing remote still returns an article", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/generate-article", map[string]any{
			"topic":         "Cloud Security",
			"target_length": 400,
			"keywords":      []string{"cloud", "security"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.GenerateArticleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "Cloud Security", resp.Data.Topic)
		assert.NotEmpty(t, resp.Data.GeneratedArticle)
		assert.Greater(t, resp.Data.WordCount, 0)
		assert.Contains(t, resp.Data.KeywordDensity, "cloud")
		assert.Contains(t, resp.Data.KeywordDensity, "security")
		assert.NotEmpty(t, resp.Data.MetaDescription)
		require.NotNil(t, resp.Data.SEO)
		assert.Len(t, resp.Data.SEO.H2Headings, 6)
		assert.NotEmpty(t, resp.Data.CreatedAt)
	})

	t.Run("markdown rendering on request", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/generate-article", map[string]any{
			"topic":        "Cloud Security",
			"include_html": true,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.GenerateArticleResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Data.GeneratedArticleHTML, "<h2")
	})

	t.Run("short topic is rejected with 422", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/generate-article", map[string]any{"topic": "abc"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error.ErrorCode)
	})

	t.Run("target length outside range is rejected", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/generate-article", map[string]any{
			"topic":         "Cloud Security",
			"target_length": 5000,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestSEOAnalysisEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("analyzes text and reports score", func(t *testing.T) {
		text := "Cloud security is a shared responsibility between providers and customers. " +
			"Strong cloud controls reduce risk across every workload. " +
			"Teams that invest in security early avoid expensive incidents later."
		rec := postJSON(t, engine, "/api/seo-analysis", map[string]any{
			"article_text":    text,
			"target_keywords": []string{"cloud", "security"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.SEOAnalysisResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Greater(t, resp.Data.WordCount, 0)
		assert.Contains(t, resp.Data.KeywordDensity, "cloud")
		assert.NotEmpty(t, resp.Data.MetaDescriptionSuggestions)
		assert.LessOrEqual(t, len(resp.Data.MetaDescriptionSuggestions), 3)
		assert.Greater(t, resp.Data.SEOScore, 0.0)
		assert.NotEmpty(t, resp.Data.Suggestions)
	})

	t.Run("short text is rejected", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/seo-analysis", map[string]any{"article_text": "too short"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestParaphraseEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("returns fallback variations when remote is down", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/paraphrase", map[string]any{
			"text":           "This approach is good and very effective for modern teams.",
			"max_variations": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.ParaphraseResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Data.ParaphrasedVariations, 2)
		assert.Len(t, resp.Data.ConfidenceScores, 2)
		assert.Equal(t, "This approach is good and very effective for modern teams.", resp.Data.OriginalText)
	})

	t.Run("explicit zero adequacy is kept, not replaced by the default", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/paraphrase", map[string]any{
			"text":      "This approach is good and very effective for modern teams.",
			"adequacy":  0,
			"fluency":   2,
			"diversity": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data dto.ParaphraseResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Data.ConfidenceScores)

		// 回退置信度加权 0.3/0.5/0.2 加 ±0.05 抖动：adequacy=0 时
		// 得 0.70±0.05；若 0 被改写成默认值 1.0 则为 0.85±0.05
		for _, score := range resp.Data.ConfidenceScores {
			assert.InDelta(t, 0.70, score, 0.051)
		}
	})

	t.Run("missing text is rejected", func(t *testing.T) {
		rec := postJSON(t, engine, "/api/paraphrase", map[string]any{"max_variations": 2})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
