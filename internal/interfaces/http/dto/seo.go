package dto

// SEOAnalysisRequest SEO 分析请求
type SEOAnalysisRequest struct {
	ArticleText    string   `json:"article_text" binding:"required,min=50"`
	TargetKeywords []string `json:"target_keywords,omitempty"`
}

// SEOAnalysisResponse SEO 分析响应
type SEOAnalysisResponse struct {
	WordCount                  int                `json:"word_count"`
	KeywordDensity             map[string]float64 `json:"keyword_density"`
	ReadabilityScore           float64            `json:"readability_score"`
	MetaDescriptionSuggestions []string           `json:"meta_description_suggestions"`
	SEOScore                   float64            `json:"seo_score"`
	Suggestions                []string           `json:"suggestions"`
}
