package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"seo-article-api/internal/application/textmetrics"
	"seo-article-api/pkg/randutil"
)

func TestAdjuster_Expand(t *testing.T) {
	adjuster := NewAdjuster(randutil.New(42))

	t.Run("adds words up to requested amount", func(t *testing.T) {
		text := "First sentence here. Second sentence follows. Third one closes."
		before := textmetrics.WordCount(text)
		out := adjuster.Expand(text, 30)
		assert.Greater(t, textmetrics.WordCount(out), before)
	})

	t.Run("never exceeds sentence cap", func(t *testing.T) {
		text := "First sentence here. Second sentence follows. Third one closes."
		out := adjuster.Expand(text, 10000)
		assert.LessOrEqual(t, len(textmetrics.SplitSentences(out)), 20)
	})

	t.Run("filler never lands at the start", func(t *testing.T) {
		text := "Opening statement stays put. Middle part. Closing part."
		for i := 0; i < 50; i++ {
			out := adjuster.Expand(text, 20)
			assert.True(t, strings.HasPrefix(out, "Opening statement stays put"))
		}
	})

	t.Run("single sentence input gets filler appended", func(t *testing.T) {
		out := adjuster.Expand("Just one sentence without trailing period", 10)
		assert.True(t, strings.HasPrefix(out, "Just one sentence without trailing period. "))
	})
}

func TestAdjuster_Condense(t *testing.T) {
	adjuster := NewAdjuster(randutil.New(42))

	t.Run("removes shortest sentence first", func(t *testing.T) {
		sentences := []string{
			"This opening sentence has quite a few words in it",
			"Short one",
			"Another reasonably long sentence keeps the paragraph moving along",
			"Yet another reasonably long sentence adds more substance here",
			"A fifth long sentence keeps the count above the floor",
			"The sixth long sentence closes the paragraph out entirely",
		}
		out := adjuster.Condense(strings.Join(sentences, ". "), 1)
		assert.NotContains(t, out, "Short one")
		assert.Contains(t, out, "This opening sentence")
	})

	t.Run("stops at the sentence floor", func(t *testing.T) {
		sentences := []string{
			"Sentence number one has several words",
			"Sentence number two has several words",
			"Sentence number three has several words",
			"Sentence number four has several words",
			"Sentence number five has several words",
			"Sentence number six has several words",
			"Sentence number seven has several words",
			"Sentence number eight has several words",
		}
		out := adjuster.Condense(strings.Join(sentences, ". "), 100000)
		assert.Len(t, textmetrics.SplitSentences(out), 5)
	})

	t.Run("survivors keep original relative order", func(t *testing.T) {
		sentences := []string{
			"Alpha is the very first sentence of this block",
			"Tiny",
			"Beta follows alpha in the original ordering",
			"Mini",
			"Gamma follows beta in the original ordering",
			"Delta follows gamma in the original ordering",
			"Epsilon follows delta in the original ordering",
		}
		out := adjuster.Condense(strings.Join(sentences, ". "), 2)

		idxAlpha := strings.Index(out, "Alpha")
		idxBeta := strings.Index(out, "Beta")
		idxGamma := strings.Index(out, "Gamma")
		idxDelta := strings.Index(out, "Delta")
		assert.True(t, idxAlpha < idxBeta && idxBeta < idxGamma && idxGamma < idxDelta)
	})
}
