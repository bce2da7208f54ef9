package seo

import (
	"fmt"
	"math"

	"seo-article-api/internal/application/textmetrics"
)

// Score 基于词数、关键词密度均值与可读性的规则化 SEO 评分，
// 三个分项求和后封顶 100，保留一位小数。
func Score(wordCount int, densities textmetrics.Densities, readability float64) float64 {
	score := 0.0

	// 词数分项，最优区间 300-1000
	switch {
	case wordCount >= 300 && wordCount <= 1000:
		score += 30
	case (wordCount >= 200 && wordCount < 300) || (wordCount > 1000 && wordCount <= 1500):
		score += 20
	default:
		score += 10
	}

	// 关键词密度分项，最优均值 1%-3%
	if len(densities) > 0 {
		avg := densities.Average()
		switch {
		case avg >= 1.0 && avg <= 3.0:
			score += 40
		case (avg >= 0.5 && avg < 1.0) || (avg > 3.0 && avg <= 5.0):
			score += 25
		default:
			score += 15
		}
	} else {
		score += 10
	}

	// 可读性分项，最优区间 60-80
	switch {
	case readability >= 60 && readability <= 80:
		score += 30
	case (readability >= 40 && readability < 60) || (readability > 80 && readability <= 90):
		score += 20
	default:
		score += 10
	}

	return math.Round(math.Min(100.0, score)*10) / 10
}

// Suggestions 生成改进建议。无任何触发项时返回单条正向确认，
// 因此结果永不为空。
func Suggestions(wordCount int, densities textmetrics.Densities, readability float64) []string {
	var suggestions []string

	if wordCount < 300 {
		suggestions = append(suggestions, "Consider expanding the article to at least 300 words for better SEO performance.")
	} else if wordCount > 1500 {
		suggestions = append(suggestions, "Consider condensing the article to under 1500 words for better reader engagement.")
	}

	if len(densities) > 0 {
		for _, d := range densities {
			if d.Percent < 1.0 {
				suggestions = append(suggestions, fmt.Sprintf("Consider increasing mentions of '%s' to improve keyword density.", d.Keyword))
			} else if d.Percent > 5.0 {
				suggestions = append(suggestions, fmt.Sprintf("Consider reducing mentions of '%s' to avoid keyword stuffing.", d.Keyword))
			}
		}
	} else {
		suggestions = append(suggestions, "Add relevant keywords to improve SEO optimization.")
	}

	if readability < 60 {
		suggestions = append(suggestions, "Simplify sentence structure and use shorter words to improve readability.")
	} else if readability > 90 {
		suggestions = append(suggestions, "Consider adding more complex sentences to engage advanced readers.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your article is well-optimized for SEO!")
	}

	return suggestions
}
