package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"seo-article-api/pkg/randutil"
)

func newTemplateGenerator(seed int64) *TemplateGenerator {
	rng := randutil.New(seed)
	return NewTemplateGenerator(rng, NewAdjuster(rng))
}

func TestTemplateGenerator_GenerateBody(t *testing.T) {
	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := newTemplateGenerator(7).GenerateBody("Cloud Security", []string{"cloud", "security"}, 400)
		b := newTemplateGenerator(7).GenerateBody("Cloud Security", []string{"cloud", "security"}, 400)
		assert.Equal(t, a, b)
	})

	t.Run("mentions the topic", func(t *testing.T) {
		out := newTemplateGenerator(7).GenerateBody("Cloud Security", []string{"encryption"}, 400)
		assert.Contains(t, out, "Cloud Security")
	})

	t.Run("works without keywords", func(t *testing.T) {
		out := newTemplateGenerator(7).GenerateBody("Cloud Security", nil, 300)
		assert.NotEmpty(t, out)
		assert.NotContains(t, out, "Keywords such as")
	})
}

func TestTemplateGenerator_GenerateBodyWithOutline(t *testing.T) {
	headings := []string{
		"What is Cloud Security and Why Does it Matter?",
		"Key Benefits of Cloud Security",
		"Effective Cloud Security Strategies",
	}

	t.Run("renders one section per heading", func(t *testing.T) {
		out := newTemplateGenerator(7).GenerateBodyWithOutline("Cloud Security", []string{"cloud"}, 600, headings)
		for _, h := range headings {
			assert.Contains(t, out, "## "+h)
		}
	})

	t.Run("falls back to plain body without headings", func(t *testing.T) {
		out := newTemplateGenerator(7).GenerateBodyWithOutline("Cloud Security", nil, 300, nil)
		assert.NotEmpty(t, out)
		assert.NotContains(t, out, "## ")
	})
}

func TestTemplateGenerator_SectionContent(t *testing.T) {
	gen := newTemplateGenerator(7)

	t.Run("picks the bucket matching the heading", func(t *testing.T) {
		out := gen.SectionContent("Key Benefits of Testing", "Testing", nil, "")
		assert.Contains(t, out, "benefits of Testing")
	})

	t.Run("unknown headings use the default bucket", func(t *testing.T) {
		out := gen.SectionContent("Emerging Trends in Testing", "Testing", nil, "")
		assert.NotEmpty(t, out)
	})

	t.Run("keyword mention sits after the first sentence", func(t *testing.T) {
		out := gen.SectionContent("Key Benefits of Testing", "Testing", []string{"qa", "ci"}, "")
		sentences := strings.SplitAfter(out, ". ")
		assert.Greater(t, len(sentences), 1)
		assert.NotContains(t, sentences[0], "Keywords such as")
		assert.Contains(t, out, "Keywords such as qa, ci")
	})

	t.Run("caps at four sentences", func(t *testing.T) {
		out := gen.SectionContent("Key Benefits of Testing", "Testing", []string{"qa"}, "")
		assert.LessOrEqual(t, strings.Count(out, "."), 5)
	})
}

func TestKeywordMentionSentence(t *testing.T) {
	t.Run("names at most three keywords", func(t *testing.T) {
		out := keywordMentionSentence([]string{"one", "two", "three", "four"})
		assert.Equal(t, "Keywords such as one, two, three are particularly relevant to this discussion.", out)
	})

	t.Run("single keyword", func(t *testing.T) {
		out := keywordMentionSentence([]string{"seo"})
		assert.Equal(t, "Keywords such as seo are particularly relevant to this discussion.", out)
	})
}
