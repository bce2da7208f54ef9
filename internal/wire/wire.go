// Package wire 负责应用组件的装配
package wire

import (
	"github.com/gin-gonic/gin"

	"seo-article-api/internal/application/article"
	"seo-article-api/internal/application/paraphrase"
	"seo-article-api/internal/application/seo"
	"seo-article-api/internal/config"
	"seo-article-api/internal/infrastructure/llm"
	"seo-article-api/internal/interfaces/http/handler"
	"seo-article-api/internal/interfaces/http/router"
	"seo-article-api/pkg/randutil"
)

// App 装配完成的应用
type App struct {
	router *router.Router
}

// Engine 返回 HTTP 引擎
func (a *App) Engine() *gin.Engine {
	return a.router.Engine()
}

// InitializeApp 按依赖顺序装配全部组件
func InitializeApp(cfg *config.Config) *App {
	rng := randutil.New(cfg.Generation.Seed)

	factory := llm.NewFactory(cfg)
	completer := llm.NewClient(factory, cfg.LLM.DefaultProvider)

	adjuster := article.NewAdjuster(rng)
	templates := article.NewTemplateGenerator(rng, adjuster)
	seoGen := seo.NewContentGenerator(completer, rng, cfg.Generation.SEOTimeout)
	paraphraser := paraphrase.NewService(completer, rng, &cfg.Paraphrase)
	generator := article.NewGenerator(completer, seoGen, templates, adjuster, paraphraser, &cfg.Generation)

	handlers := &router.Handlers{
		Health:     handler.NewHealthHandler(cfg),
		Article:    handler.NewArticleHandler(generator, paraphraser),
		SEO:        handler.NewSEOHandler(),
		Paraphrase: handler.NewParaphraseHandler(paraphraser),
	}

	return &App{router: router.New(cfg, handlers)}
}
