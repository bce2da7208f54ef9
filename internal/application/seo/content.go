// Package seo 提供 SEO 内容生成（H1/H2/meta/slug）与规则化评分。
package seo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"seo-article-api/internal/application/textmetrics"
	"seo-article-api/internal/infrastructure/llm"
	apperrors "seo-article-api/pkg/errors"
	"seo-article-api/pkg/logger"
	"seo-article-api/pkg/metrics"
	"seo-article-api/pkg/randutil"
)

const (
	h1Budget   = 60
	h2Budget   = 70
	metaMinLen = 140
	metaMaxLen = 160

	// baseH2Count 标准模式下 H2 数量；结语模式追加一条
	baseH2Count = 5
)

const seoSystemPrompt = "You are an expert SEO specialist who creates optimized content that ranks well on search engines."

// Content 一次生成的 SEO 内容包：H1、固定数量的 H2、meta description
// 与 slug。构造后不可变，不做持久化。
type Content struct {
	H1Heading       string
	H2Headings      []string
	MetaDescription string
	Slug            string
}

// ContentGenerator SEO 内容生成器。优先走远程补全，任何失败
// 一律回退到模板生成，回退不向调用方暴露。
type ContentGenerator struct {
	completer llm.Completer
	rng       *randutil.LockedRand
	timeout   time.Duration
}

// NewContentGenerator 创建 SEO 内容生成器
func NewContentGenerator(completer llm.Completer, rng *randutil.LockedRand, timeout time.Duration) *ContentGenerator {
	return &ContentGenerator{
		completer: completer,
		rng:       rng,
		timeout:   timeout,
	}
}

// Generate 为主题生成 SEO 内容包。withConclusion 时 H2 共 6 条，
// 末条为结语式标题；否则恒为 5 条。
func (g *ContentGenerator) Generate(ctx context.Context, topic string, keywords []string, withConclusion bool) *Content {
	content, err := g.generateRemote(ctx, topic, keywords, withConclusion)
	if err == nil {
		return content
	}

	reason := string(llm.ReasonCallFailed)
	var remoteErr *llm.RemoteError
	if errors.As(err, &remoteErr) {
		reason = string(remoteErr.Reason)
	}
	appErr := apperrors.Wrap(err, apperrors.CodeLLMProviderError, "remote seo generation failed")
	logger.Warn(ctx, "remote seo generation failed, using templates",
		"topic", topic,
		"code", string(appErr.Code),
		"reason", reason,
		"error", appErr.Error(),
	)
	metrics.FallbackTotal.WithLabelValues("seo_bundle", reason).Inc()

	return g.generateFromTemplates(topic, keywords, withConclusion)
}

// generateRemote 远程生成并解析 SEO 内容
func (g *ContentGenerator) generateRemote(ctx context.Context, topic string, keywords []string, withConclusion bool) (*Content, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	keywordsStr := topic
	if len(keywords) > 0 {
		keywordsStr = strings.Join(keywords, ", ")
	}

	prompt := fmt.Sprintf(`Generate SEO-optimized content for the topic: "%s"

Target keywords: %s

Please generate:
1. ONE compelling H1 heading (under 60 characters, must include main keyword)
2. FIVE relevant H2 headings covering different aspects (each under 70 characters)
3. An engaging meta description (155-160 characters, includes main keyword)
4. A URL-friendly slug (under 60 characters, lowercase, uses hyphens)

Format your response exactly like this:
H1: [heading here]
H2: [heading 1]
H2: [heading 2]
H2: [heading 3]
H2: [heading 4]
H2: [heading 5]
META: [meta description here]
SLUG: [slug here]

Make sure all content is professional, engaging, and optimized for search engines.`, topic, keywordsStr)

	raw, err := g.completer.Complete(ctx, seoSystemPrompt, prompt, 0.7, 500)
	if err != nil {
		return nil, err
	}

	content := ParseResponse(raw)
	g.normalize(content, topic, withConclusion)
	return content, nil
}

// generateFromTemplates 从模板池生成 SEO 内容
func (g *ContentGenerator) generateFromTemplates(topic string, keywords []string, withConclusion bool) *Content {
	h1 := truncateWithEllipsis(fmt.Sprintf(randutil.Pick(g.rng, h1Templates), topic), h1Budget)

	// 从 5 个主题类别中各取一条 H2
	h2s := make([]string, 0, baseH2Count+1)
	for _, category := range h2Categories {
		tpl := randutil.Pick(g.rng, h2Templates[category])
		h2s = append(h2s, truncateWithEllipsis(fmt.Sprintf(tpl, topic), h2Budget))
	}
	if withConclusion {
		h2s = append(h2s, truncateWithEllipsis(fmt.Sprintf(h2ConclusionTemplate, topic), h2Budget))
	}

	meta := fmt.Sprintf(randutil.Pick(g.rng, metaTemplates), topic)
	meta = fitMetaDescription(meta, keywords)

	return &Content{
		H1Heading:       h1,
		H2Headings:      h2s,
		MetaDescription: meta,
		Slug:            textmetrics.Slugify(topic),
	}
}

// normalize 补齐缺失字段并强制 H2 数量不变式。无论生成路径如何，
// H2 一定恰好为 5 条（结语模式 6 条）。
func (g *ContentGenerator) normalize(c *Content, topic string, withConclusion bool) {
	if c.H1Heading == "" {
		c.H1Heading = fmt.Sprintf("The Ultimate Guide to %s", topic)
	}
	if c.MetaDescription == "" {
		c.MetaDescription = fmt.Sprintf("Learn everything about %s. Discover best practices, strategies, and expert insights to succeed.", topic)
	}
	if c.Slug == "" {
		c.Slug = textmetrics.Slugify(topic)
	}

	required := baseH2Count
	for _, fallback := range h2FallbackHeadings(topic) {
		if len(c.H2Headings) >= required {
			break
		}
		c.H2Headings = append(c.H2Headings, fallback)
	}
	if len(c.H2Headings) > required {
		c.H2Headings = c.H2Headings[:required]
	}
	if withConclusion {
		c.H2Headings = append(c.H2Headings, truncateWithEllipsis(fmt.Sprintf(h2ConclusionTemplate, topic), h2Budget))
	}
}

// h2FallbackHeadings 远程解析不足时的补位 H2
func h2FallbackHeadings(topic string) []string {
	return []string{
		fmt.Sprintf("What is %s and Why Does it Matter?", topic),
		fmt.Sprintf("Key Benefits of %s", topic),
		fmt.Sprintf("Effective %s Strategies", topic),
		fmt.Sprintf("Common %s Challenges and Solutions", topic),
		fmt.Sprintf("The Future of %s", topic),
	}
}

// fitMetaDescription 将 meta description 调整到 140-160 字符目标区间：
// 过长截断，过短时补一句关键词提及。
func fitMetaDescription(meta string, keywords []string) string {
	if utf8.RuneCountInString(meta) > metaMaxLen {
		return textmetrics.TruncateByRunes(meta, metaMaxLen-3) + "..."
	}
	if utf8.RuneCountInString(meta) < metaMinLen && len(keywords) > 0 {
		meta += fmt.Sprintf(" Essential %s tips and tricks included.", keywords[0])
	}
	return meta
}

// truncateWithEllipsis 超出预算时截断并补省略号
func truncateWithEllipsis(s string, budget int) string {
	if utf8.RuneCountInString(s) <= budget {
		return s
	}
	return textmetrics.TruncateByRunes(s, budget-3) + "..."
}
