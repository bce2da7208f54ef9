package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seo-article-api/internal/application/paraphrase"
	"seo-article-api/internal/application/seo"
	"seo-article-api/internal/application/textmetrics"
	"seo-article-api/internal/config"
	"seo-article-api/internal/infrastructure/llm"
	apperrors "seo-article-api/pkg/errors"
	"seo-article-api/pkg/logger"
	"seo-article-api/pkg/metrics"
)

const articleSystemPrompt = "You are an expert SEO content writer who creates high-quality, engaging articles that rank well on search engines."

// toneInstructions 各语气对应的写作指令，未知语气按 professional 处理
var toneInstructions = map[string]string{
	"professional": "Write in a professional, formal tone suitable for business audiences.",
	"casual":       "Write in a casual, conversational tone that's friendly and accessible.",
	"formal":       "Write in a very formal, academic tone with proper structure and language.",
}

// Request 文章生成请求
type Request struct {
	Topic             string
	Keywords          []string
	TargetLength      int
	Tone              string
	IncludeParaphrase bool
	// 改写参数为 nil 时使用文章管线默认值，显式 0 原样传递
	ParaphraseAdequacy  *float64
	ParaphraseFluency   *float64
	ParaphraseDiversity *float64
}

// Result 文章生成结果。KeywordDensity 保持请求中的关键词顺序。
type Result struct {
	Content          string
	WordCount        int
	KeywordDensity   textmetrics.Densities
	MetaDescription  string
	ReadabilityScore float64
	SEO              *seo.Content
	ProcessingTime   float64
}

// Paraphraser 改写协作方，生成管线按需调用
type Paraphraser interface {
	Paraphrase(ctx context.Context, text string, opts paraphrase.Options) *paraphrase.Result
}

// Generator 文章生成编排器。先产出 SEO 内容包，再以其 H2 大纲
// 驱动正文生成：远程补全优先，失败回退模板正文，回退对调用方透明。
type Generator struct {
	completer      llm.Completer
	seoGen         *seo.ContentGenerator
	templates      *TemplateGenerator
	adjuster       *Adjuster
	paraphraser    Paraphraser
	articleTimeout time.Duration
}

// NewGenerator 创建文章生成编排器
func NewGenerator(
	completer llm.Completer,
	seoGen *seo.ContentGenerator,
	templates *TemplateGenerator,
	adjuster *Adjuster,
	paraphraser Paraphraser,
	cfg *config.GenerationConfig,
) *Generator {
	return &Generator{
		completer:      completer,
		seoGen:         seoGen,
		templates:      templates,
		adjuster:       adjuster,
		paraphraser:    paraphraser,
		articleTimeout: cfg.ArticleTimeout,
	}
}

// Generate 执行完整生成管线并返回文章与其文本指标
func (g *Generator) Generate(ctx context.Context, req *Request) *Result {
	start := time.Now()

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = []string{req.Topic}
	}

	// 大纲末位固定为结语式 H2，模板正文据此收束
	bundle := g.seoGen.Generate(ctx, req.Topic, req.Keywords, true)

	content, source := g.generateBody(ctx, req, bundle, keywords)

	if req.IncludeParaphrase && g.paraphraser != nil {
		opts := paraphrase.Options{
			Adequacy:      defaultFloat(req.ParaphraseAdequacy, 1.2),
			Fluency:       defaultFloat(req.ParaphraseFluency, 1.5),
			Diversity:     defaultFloat(req.ParaphraseDiversity, 1.0),
			MaxVariations: 1,
		}
		if result := g.paraphraser.Paraphrase(ctx, content, opts); len(result.Variations) > 0 {
			content = result.Variations[0]
		}
	}

	wordCount := textmetrics.WordCount(content)
	metrics.ArticleWordCount.WithLabelValues(source).Observe(float64(wordCount))

	meta := bundle.MetaDescription
	if meta == "" {
		meta = textmetrics.MetaDescriptionFrom(content)
	}

	return &Result{
		Content:          content,
		WordCount:        wordCount,
		KeywordDensity:   textmetrics.KeywordDensity(content, req.Keywords),
		MetaDescription:  meta,
		ReadabilityScore: textmetrics.ReadabilityScore(content),
		SEO:              bundle,
		ProcessingTime:   time.Since(start).Seconds(),
	}
}

// generateBody 远程生成正文，失败回退模板路径并记录回退指标。
// 返回正文与生成来源（remote/template）。
func (g *Generator) generateBody(ctx context.Context, req *Request, bundle *seo.Content, keywords []string) (string, string) {
	bodyStart := time.Now()
	content, err := g.generateRemoteBody(ctx, req, bundle)
	if err == nil {
		metrics.ArticleGenerationTotal.WithLabelValues("remote", "ok").Inc()
		metrics.ArticleGenerationDuration.WithLabelValues("remote").Observe(time.Since(bodyStart).Seconds())
		return content, "remote"
	}

	reason := string(llm.ReasonCallFailed)
	var remoteErr *llm.RemoteError
	if errors.As(err, &remoteErr) {
		reason = string(remoteErr.Reason)
	}
	appErr := apperrors.Wrap(err, apperrors.CodeGenerationFailed, "remote article generation failed")
	logger.Warn(ctx, "remote article generation failed, using templates",
		"topic", req.Topic,
		"code", string(appErr.Code),
		"reason", reason,
		"error", appErr.Error(),
	)
	metrics.FallbackTotal.WithLabelValues("body", reason).Inc()

	content = g.templates.GenerateBodyWithOutline(req.Topic, keywords, req.TargetLength, bundle.H2Headings)
	metrics.ArticleGenerationTotal.WithLabelValues("template", "ok").Inc()
	metrics.ArticleGenerationDuration.WithLabelValues("template").Observe(time.Since(bodyStart).Seconds())
	return content, "template"
}

// generateRemoteBody 远程生成正文并做 80%/120% 长度校正
func (g *Generator) generateRemoteBody(ctx context.Context, req *Request, bundle *seo.Content) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.articleTimeout)
	defer cancel()

	keywordsStr := req.Topic
	if len(req.Keywords) > 0 {
		keywordsStr = strings.Join(req.Keywords, ", ")
	}
	tone, ok := toneInstructions[req.Tone]
	if !ok {
		tone = toneInstructions["professional"]
	}

	prompt := fmt.Sprintf(`Write an SEO-optimized article about "%s" with the following requirements:

- Target word count: %d words
- Keywords to include: %s
- Tone: %s
- Structure the article around these section headings: %s
- Include proper heading structure (H1, H2, H3)
- Make it engaging and informative
- Include practical examples and actionable insights
- End with a clear conclusion and call to action

Please write a complete, well-structured article.`,
		req.Topic, req.TargetLength, keywordsStr, tone, strings.Join(bundle.H2Headings, "; "))

	maxTokens := req.TargetLength * 2
	if maxTokens > 4000 {
		maxTokens = 4000
	}

	content, err := g.completer.Complete(ctx, articleSystemPrompt, prompt, 0.7, maxTokens)
	if err != nil {
		return "", err
	}

	wordCount := textmetrics.WordCount(content)
	if float64(wordCount) < float64(req.TargetLength)*0.8 {
		content = g.adjuster.Expand(content, req.TargetLength-wordCount)
	} else if float64(wordCount) > float64(req.TargetLength)*1.2 {
		content = g.adjuster.Condense(content, wordCount-req.TargetLength)
	}

	return content, nil
}

func defaultFloat(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
