// Package paraphrase 提供文本改写服务：远程补全优先，失败回退本地启发式。
package paraphrase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"seo-article-api/internal/config"
	"seo-article-api/internal/infrastructure/llm"
	apperrors "seo-article-api/pkg/errors"
	"seo-article-api/pkg/logger"
	"seo-article-api/pkg/metrics"
	"seo-article-api/pkg/randutil"
)

const (
	// minTextLen 短于此长度的输入不做改写，直接返回空结果
	minTextLen = 10

	// chunkLimit 超长文本只取前段送入模型
	chunkLimit = 1000

	paraphraseSystemPrompt = "You are an expert editor who rewrites text while fully preserving its meaning."
)

// Options 改写参数，adequacy/fluency/diversity 取值范围 0-2
type Options struct {
	Adequacy      float64
	Fluency       float64
	Diversity     float64
	MaxVariations int
}

// Result 改写结果，Variations 与 Confidences 等长
type Result struct {
	Variations     []string
	Confidences    []float64
	ProcessingTime float64
}

// Service 文本改写服务
type Service struct {
	completer      llm.Completer
	rng            *randutil.LockedRand
	timeout        time.Duration
	maxConcurrency int
}

// NewService 创建改写服务
func NewService(completer llm.Completer, rng *randutil.LockedRand, cfg *config.ParaphraseConfig) *Service {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Service{
		completer:      completer,
		rng:            rng,
		timeout:        cfg.Timeout,
		maxConcurrency: maxConcurrency,
	}
}

// Paraphrase 为文本生成至多 MaxVariations 个改写变体。远程失败时
// 回退到本地启发式，回退路径至多产出 3 个变体。
func (s *Service) Paraphrase(ctx context.Context, text string, opts Options) *Result {
	if len(strings.TrimSpace(text)) < minTextLen {
		return &Result{Variations: []string{}, Confidences: []float64{}}
	}

	start := time.Now()

	variations, confidences, err := s.paraphraseRemote(ctx, text, opts)
	if err != nil {
		appErr := apperrors.Wrap(err, apperrors.CodeParaphraseFailed, "remote paraphrasing failed")
		logger.Warn(ctx, "remote paraphrasing failed, using heuristics",
			"code", string(appErr.Code), "error", appErr.Error())
		metrics.ParaphraseTotal.WithLabelValues("remote", "error").Inc()
		variations, confidences = s.paraphraseFallback(text, opts)
		metrics.ParaphraseTotal.WithLabelValues("fallback", "ok").Inc()
	} else {
		metrics.ParaphraseTotal.WithLabelValues("remote", "ok").Inc()
	}

	return &Result{
		Variations:     variations,
		Confidences:    confidences,
		ProcessingTime: time.Since(start).Seconds(),
	}
}

// paraphraseRemote 并发生成各变体，任一失败即整体回退
func (s *Service) paraphraseRemote(ctx context.Context, text string, opts Options) ([]string, []float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	input := text
	if len(input) > chunkLimit {
		input = input[:chunkLimit] + "..."
	}

	count := opts.MaxVariations
	if count < 1 {
		count = 1
	}

	variations := make([]string, count)
	confidences := make([]float64, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			prompt := buildPrompt(input, opts, i)
			out, err := s.completer.Complete(gctx, paraphraseSystemPrompt, prompt, temperatureFor(opts.Diversity), maxTokensFor(input))
			if err != nil {
				return err
			}
			out = strings.TrimSpace(out)
			if out == "" {
				return fmt.Errorf("variation %d: empty paraphrase", i)
			}
			variations[i] = out
			confidences[i] = modelConfidence(opts, out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return variations, confidences, nil
}

// buildPrompt 将 0-2 的参数折算为改写指令
func buildPrompt(text string, opts Options, index int) string {
	var b strings.Builder
	b.WriteString("Rewrite the following text in different words while keeping the original meaning.\n")
	if opts.Adequacy >= 1.5 {
		b.WriteString("Stay as close to the original meaning as possible.\n")
	}
	if opts.Fluency >= 1.5 {
		b.WriteString("Prioritize natural, fluent phrasing.\n")
	}
	if opts.Diversity > 1.0 {
		b.WriteString("Use noticeably different vocabulary and sentence structure.\n")
	}
	if index > 0 {
		fmt.Fprintf(&b, "This is variation %d, make it distinct from earlier phrasings.\n", index+1)
	}
	b.WriteString("Respond with the rewritten text only.\n\nText:\n")
	b.WriteString(text)
	return b.String()
}

// temperatureFor diversity 0-2 映射到采样温度 0.3-0.9
func temperatureFor(diversity float64) float32 {
	t := 0.3 + diversity*0.3
	if t > 0.9 {
		t = 0.9
	}
	return float32(t)
}

// maxTokensFor 按输入词数给出回复预算，区间 64-256
func maxTokensFor(text string) int {
	n := len(strings.Fields(text)) * 2
	if n < 64 {
		n = 64
	}
	if n > 256 {
		n = 256
	}
	return n
}

// modelConfidence 远程变体置信度：参数加权 0.4/0.4/0.1 加长度分 0.1，
// 下限 0.1，保留三位小数
func modelConfidence(opts Options, variation string) float64 {
	normAdequacy := math.Min(opts.Adequacy/2.0, 1.0)
	normFluency := math.Min(opts.Fluency/2.0, 1.0)
	normDiversity := math.Min(opts.Diversity/2.0, 1.0)
	lengthScore := math.Min(float64(len(variation))/100.0, 1.0)

	confidence := normAdequacy*0.4 + normFluency*0.4 + normDiversity*0.1 + lengthScore*0.1
	return round3(clamp01(confidence, 0.1))
}

// fallbackConfidence 启发式变体置信度：参数加权 0.3/0.5/0.2 加 ±0.05 抖动
func (s *Service) fallbackConfidence(opts Options) float64 {
	normAdequacy := math.Min(opts.Adequacy/2.0, 1.0)
	normFluency := math.Min(opts.Fluency/2.0, 1.0)
	normDiversity := math.Min(opts.Diversity/2.0, 1.0)

	confidence := normAdequacy*0.3 + normFluency*0.5 + normDiversity*0.2
	confidence += s.rng.Float64()*0.1 - 0.05
	return round3(clamp01(confidence, 0.0))
}

func clamp01(v, floor float64) float64 {
	return math.Max(floor, math.Min(1.0, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
