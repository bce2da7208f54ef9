package dto

// ParaphraseRequest 文本改写请求。
// 三个改写参数用指针区分"显式传 0"与"未传"，未传时由处理器补默认值
type ParaphraseRequest struct {
	Text          string   `json:"text" binding:"required"`
	Adequacy      *float64 `json:"adequacy" binding:"omitempty,min=0,max=2"`
	Fluency       *float64 `json:"fluency" binding:"omitempty,min=0,max=2"`
	Diversity     *float64 `json:"diversity" binding:"omitempty,min=0,max=2"`
	MaxVariations *int     `json:"max_variations" binding:"omitempty,min=1,max=10"`
}

// ParaphraseResponse 文本改写响应
type ParaphraseResponse struct {
	OriginalText          string    `json:"original_text"`
	ParaphrasedVariations []string  `json:"paraphrased_variations"`
	ConfidenceScores      []float64 `json:"confidence_scores"`
	ProcessingTime        float64   `json:"processing_time"`
}
