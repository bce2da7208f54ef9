package textmetrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Run("strips punctuation and collapses separators", func(t *testing.T) {
		assert.Equal(t, "hello-world-2024", Slugify("Hello, World!  2024"))
	})

	t.Run("empty input falls back to sentinel", func(t *testing.T) {
		assert.Equal(t, "untitled", Slugify(""))
		assert.Equal(t, "untitled", Slugify("!!!"))
	})

	t.Run("long titles truncate on word boundaries", func(t *testing.T) {
		title := strings.Repeat("keyword ", 20)
		slug := Slugify(title)
		assert.LessOrEqual(t, len(slug), 60)
		assert.False(t, strings.HasSuffix(slug, "-"))
		for _, token := range strings.Split(slug, "-") {
			assert.Equal(t, "keyword", token)
		}
	})

	t.Run("never exceeds sixty characters", func(t *testing.T) {
		slug := Slugify("A Very Long Article Title About Search Engine Optimization Techniques For Beginners")
		assert.LessOrEqual(t, len(slug), 60)
	})
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 4, WordCount("one two  three\tfour"))
}

func TestKeywordDensity(t *testing.T) {
	// 10 词文本，cloud 出现两次，security 一次
	text := "Cloud security matters a lot. Cloud adoption keeps growing fast."

	t.Run("case-insensitive substring counting", func(t *testing.T) {
		densities := KeywordDensity(text, []string{"cloud", "security"})
		m := densities.Map()
		assert.InDelta(t, 20.0, m["cloud"], 0.01)
		assert.InDelta(t, 10.0, m["security"], 0.01)
	})

	t.Run("preserves request order", func(t *testing.T) {
		densities := KeywordDensity(text, []string{"security", "cloud"})
		assert.Equal(t, "security", densities[0].Keyword)
		assert.Equal(t, "cloud", densities[1].Keyword)
	})

	t.Run("zero for empty text", func(t *testing.T) {
		densities := KeywordDensity("", []string{"cloud"})
		assert.Equal(t, 0.0, densities[0].Percent)
	})

	t.Run("average over all keywords", func(t *testing.T) {
		densities := Densities{
			{Keyword: "a", Percent: 1.0},
			{Keyword: "b", Percent: 3.0},
		}
		assert.InDelta(t, 2.0, densities.Average(), 0.001)
	})
}

func TestReadabilityScore(t *testing.T) {
	t.Run("empty text scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ReadabilityScore(""))
	})

	t.Run("short simple sentences score high", func(t *testing.T) {
		score := ReadabilityScore("The cat sat. The dog ran. We all win.")
		assert.Greater(t, score, 80.0)
		assert.LessOrEqual(t, score, 100.0)
	})

	t.Run("long dense sentences score lower", func(t *testing.T) {
		simple := ReadabilityScore("The cat sat. The dog ran.")
		dense := ReadabilityScore("Extraordinarily complicated terminological constructions demonstrably diminish comprehensibility. Interdisciplinary organizational restructuring necessitates comprehensive documentation.")
		assert.Less(t, dense, simple)
	})

	t.Run("clamped to valid range", func(t *testing.T) {
		score := ReadabilityScore(strings.Repeat("incomprehensibility ", 40))
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	})
}

func TestMetaDescriptionFrom(t *testing.T) {
	t.Run("uses first sentence", func(t *testing.T) {
		meta := MetaDescriptionFrom("First sentence here. Second sentence there.")
		assert.Equal(t, "First sentence here", meta)
	})

	t.Run("truncates long first sentence", func(t *testing.T) {
		meta := MetaDescriptionFrom(strings.Repeat("word ", 60) + ". Next.")
		assert.LessOrEqual(t, len(meta), 160)
		assert.True(t, strings.HasSuffix(meta, "..."))
	})
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("One. Two.  . Three.")
	assert.Equal(t, []string{"One", "Two", "Three."}, sentences)
}
