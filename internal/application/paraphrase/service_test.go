package paraphrase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-article-api/internal/config"
	"seo-article-api/internal/infrastructure/llm"
	"seo-article-api/pkg/randutil"
)

type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	return "", &llm.RemoteError{Reason: llm.ReasonMissingCredential, Err: errors.New("api key not set")}
}

type echoCompleter struct{}

func (echoCompleter) Complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	return "A rephrased rendition of the input text.", nil
}

func newService(completer llm.Completer) *Service {
	return NewService(completer, randutil.New(42), &config.ParaphraseConfig{
		Timeout:        30 * time.Second,
		MaxConcurrency: 2,
	})
}

func TestService_Paraphrase(t *testing.T) {
	t.Run("short input yields empty result", func(t *testing.T) {
		result := newService(failingCompleter{}).Paraphrase(context.Background(), "too short", Options{MaxVariations: 3})
		assert.Empty(t, result.Variations)
		assert.Empty(t, result.Confidences)
	})

	t.Run("remote path returns requested variation count", func(t *testing.T) {
		result := newService(echoCompleter{}).Paraphrase(context.Background(), "The quick brown fox jumps over the lazy dog.", Options{
			Adequacy: 1.0, Fluency: 1.0, Diversity: 1.0, MaxVariations: 4,
		})
		require.Len(t, result.Variations, 4)
		require.Len(t, result.Confidences, 4)
		for _, c := range result.Confidences {
			assert.GreaterOrEqual(t, c, 0.1)
			assert.LessOrEqual(t, c, 1.0)
		}
	})

	t.Run("remote failure falls back to heuristics", func(t *testing.T) {
		result := newService(failingCompleter{}).Paraphrase(context.Background(), "This content is good and very important to us.", Options{
			Adequacy: 1.0, Fluency: 1.0, Diversity: 1.0, MaxVariations: 5,
		})
		// 启发式路径封顶 3 个变体
		require.Len(t, result.Variations, 3)
		require.Len(t, result.Confidences, 3)
	})
}

func TestFallbackHeuristics(t *testing.T) {
	svc := newService(failingCompleter{})

	t.Run("first variation replaces synonyms", func(t *testing.T) {
		result := svc.Paraphrase(context.Background(), "This approach is good and very effective today.", Options{MaxVariations: 1})
		require.Len(t, result.Variations, 1)
		assert.Contains(t, result.Variations[0], "excellent")
		assert.Contains(t, result.Variations[0], "efficient")
	})

	t.Run("second variation reshapes sentence structure", func(t *testing.T) {
		result := svc.Paraphrase(context.Background(), "The committee announced the decision.", Options{MaxVariations: 2})
		require.Len(t, result.Variations, 2)
		assert.Equal(t, "committee announced the decision. serves as the main subject.", result.Variations[1])
	})

	t.Run("third variation uses a template", func(t *testing.T) {
		result := svc.Paraphrase(context.Background(), "Paraphrasing helps rephrase sentences.", Options{MaxVariations: 3})
		require.Len(t, result.Variations, 3)
		assert.True(t, strings.HasSuffix(result.Variations[2], "Paraphrasing helps rephrase sentences."))
	})

	t.Run("confidence stays clamped with jitter", func(t *testing.T) {
		result := svc.Paraphrase(context.Background(), "A perfectly ordinary sentence for scoring purposes.", Options{
			Adequacy: 2.0, Fluency: 2.0, Diversity: 2.0, MaxVariations: 3,
		})
		for _, c := range result.Confidences {
			assert.GreaterOrEqual(t, c, 0.0)
			assert.LessOrEqual(t, c, 1.0)
		}
	})
}

func TestChangeStructure(t *testing.T) {
	assert.Equal(t, "committee decided. serves as the main subject.", changeStructure("The committee decided."))
	assert.Equal(t, "The subject involves a shared responsibility.", changeStructure("Security is a shared responsibility"))
	assert.Equal(t, "Regarding No patterns here, this is important to note.", changeStructure("No patterns here"))
}

func TestReplaceSynonyms(t *testing.T) {
	assert.Equal(t, "This is excellent, quick, and crucial.", replaceSynonyms("This is good, fast, and important."))
	// 大写词形不匹配小写键，保持原样
	assert.Equal(t, "Good ideas matter.", replaceSynonyms("Good ideas matter."))
}
