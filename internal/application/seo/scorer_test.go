package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seo-article-api/internal/application/textmetrics"
)

func densitiesOf(values map[string]float64, order ...string) textmetrics.Densities {
	out := make(textmetrics.Densities, 0, len(order))
	for _, k := range order {
		out = append(out, textmetrics.Density{Keyword: k, Percent: values[k]})
	}
	return out
}

func TestScore(t *testing.T) {
	t.Run("optimal article scores full marks", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"cloud": 2.0}, "cloud")
		assert.Equal(t, 100.0, Score(500, d, 70))
	})

	t.Run("weak article lands in the bottom band", func(t *testing.T) {
		assert.Equal(t, 30.0, Score(100, nil, 30))
	})

	t.Run("word count bands", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"k": 2.0}, "k")
		assert.Equal(t, 100.0, Score(300, d, 70))
		assert.Equal(t, 90.0, Score(250, d, 70))
		assert.Equal(t, 90.0, Score(1200, d, 70))
		assert.Equal(t, 80.0, Score(50, d, 70))
		assert.Equal(t, 80.0, Score(2000, d, 70))
	})

	t.Run("density bands", func(t *testing.T) {
		assert.Equal(t, 85.0, Score(500, densitiesOf(map[string]float64{"k": 0.7}, "k"), 70))
		assert.Equal(t, 85.0, Score(500, densitiesOf(map[string]float64{"k": 4.0}, "k"), 70))
		assert.Equal(t, 75.0, Score(500, densitiesOf(map[string]float64{"k": 8.0}, "k"), 70))
		assert.Equal(t, 70.0, Score(500, nil, 70))
	})

	t.Run("readability bands", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"k": 2.0}, "k")
		assert.Equal(t, 90.0, Score(500, d, 50))
		assert.Equal(t, 90.0, Score(500, d, 85))
		assert.Equal(t, 80.0, Score(500, d, 95))
	})

	t.Run("average drives the density band", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"a": 0.5, "b": 3.5}, "a", "b")
		assert.Equal(t, 100.0, Score(500, d, 70))
	})
}

func TestSuggestions(t *testing.T) {
	t.Run("well-optimized article gets the positive confirmation", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"cloud": 2.0}, "cloud")
		suggestions := Suggestions(500, d, 70)
		assert.Equal(t, []string{"Your article is well-optimized for SEO!"}, suggestions)
	})

	t.Run("thin keywordless article collects every hint", func(t *testing.T) {
		suggestions := Suggestions(100, nil, 30)
		assert.Equal(t, []string{
			"Consider expanding the article to at least 300 words for better SEO performance.",
			"Add relevant keywords to improve SEO optimization.",
			"Simplify sentence structure and use shorter words to improve readability.",
		}, suggestions)
	})

	t.Run("per-keyword density hints keep keyword order", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"rare": 0.2, "stuffed": 7.0}, "rare", "stuffed")
		suggestions := Suggestions(500, d, 70)
		assert.Equal(t, []string{
			"Consider increasing mentions of 'rare' to improve keyword density.",
			"Consider reducing mentions of 'stuffed' to avoid keyword stuffing.",
		}, suggestions)
	})

	t.Run("overlong and overly simple article", func(t *testing.T) {
		d := densitiesOf(map[string]float64{"k": 2.0}, "k")
		suggestions := Suggestions(1600, d, 95)
		assert.Equal(t, []string{
			"Consider condensing the article to under 1500 words for better reader engagement.",
			"Consider adding more complex sentences to engage advanced readers.",
		}, suggestions)
	})
}
