package dto

// ParaphraseConfig 文章生成内嵌的改写参数。
// 指针字段保留显式传入的 0 值，缺省由下游补默认值
type ParaphraseConfig struct {
	Adequacy      *float64 `json:"adequacy" binding:"omitempty,min=0,max=2"`
	Fluency       *float64 `json:"fluency" binding:"omitempty,min=0,max=2"`
	Diversity     *float64 `json:"diversity" binding:"omitempty,min=0,max=2"`
	MaxVariations *int     `json:"max_variations" binding:"omitempty,min=1,max=10"`
}

// GenerateArticleRequest 文章生成请求
type GenerateArticleRequest struct {
	Topic               string            `json:"topic" binding:"required,min=5"`
	TargetLength        int               `json:"target_length" binding:"omitempty,min=100,max=2000"`
	Keywords            []string          `json:"keywords,omitempty"`
	Tone                string            `json:"tone" binding:"omitempty,oneof=professional casual formal"`
	// IncludeParaphrasing 缺省视为 true
	IncludeParaphrasing *bool             `json:"include_paraphrasing,omitempty"`
	IncludeHTML         bool              `json:"include_html"`
	ParaphraseConfig    *ParaphraseConfig `json:"paraphrase_config,omitempty"`
}

// SEOContentResponse 文章随附的 SEO 内容包
type SEOContentResponse struct {
	H1Heading       string   `json:"h1_heading"`
	H2Headings      []string `json:"h2_headings"`
	MetaDescription string   `json:"meta_description"`
	Slug            string   `json:"slug"`
}

// GenerateArticleResponse 文章生成响应
type GenerateArticleResponse struct {
	Topic                string              `json:"topic"`
	GeneratedArticle     string              `json:"generated_article"`
	GeneratedArticleHTML string              `json:"generated_article_html,omitempty"`
	WordCount            int                 `json:"word_count"`
	KeywordDensity       map[string]float64  `json:"keyword_density"`
	MetaDescription      string              `json:"meta_description"`
	ReadabilityScore     float64             `json:"readability_score"`
	SEO                  *SEOContentResponse `json:"seo"`
	Variations           []string            `json:"variations,omitempty"`
	ProcessingTime       float64             `json:"processing_time"`
	CreatedAt            string              `json:"created_at"`
}
