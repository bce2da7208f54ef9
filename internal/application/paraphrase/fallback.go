package paraphrase

import (
	"fmt"
	"strings"
)

// fallbackCap 启发式路径最多产出的变体数
const fallbackCap = 3

// synonyms 简单同义词替换表
var synonyms = map[string]string{
	"good":      "excellent",
	"bad":       "poor",
	"big":       "large",
	"small":     "tiny",
	"fast":      "quick",
	"slow":      "gradual",
	"important": "crucial",
	"helpful":   "beneficial",
	"effective": "efficient",
	"new":       "recent",
	"old":       "previous",
	"better":    "improved",
	"best":      "optimal",
}

// fallbackTemplates 兜底改写模板
var fallbackTemplates = []string{
	"Another way to say this is: %s",
	"This can also be expressed as: %s",
	"Alternatively, we could say: %s",
	"In other words: %s",
	"To put it differently: %s",
}

// paraphraseFallback 本地启发式改写：首个变体做同义词替换，第二个
// 变体改句式，其余套模板。
func (s *Service) paraphraseFallback(text string, opts Options) ([]string, []float64) {
	count := opts.MaxVariations
	if count > fallbackCap {
		count = fallbackCap
	}
	if count < 1 {
		count = 1
	}

	variations := make([]string, 0, count)
	confidences := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		var variation string
		switch i {
		case 0:
			variation = replaceSynonyms(text)
		case 1:
			variation = changeStructure(text)
		default:
			variation = fmt.Sprintf(fallbackTemplates[i%len(fallbackTemplates)], text)
		}
		variations = append(variations, variation)
		confidences = append(confidences, s.fallbackConfidence(opts))
	}

	return variations, confidences
}

// replaceSynonyms 逐词查表替换，比较时剥离词尾标点但保留原词形
func replaceSynonyms(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		key := strings.ToLower(strings.Trim(word, ".,!?"))
		if replacement, ok := synonyms[key]; ok {
			words[i] = strings.Replace(word, key, replacement, 1)
		}
	}
	return strings.Join(words, " ")
}

// changeStructure 简单句式变换
func changeStructure(text string) string {
	if rest, ok := strings.CutPrefix(text, "The "); ok {
		return rest + " serves as the main subject."
	}
	if parts := strings.SplitN(text, " is ", 2); len(parts) == 2 && !strings.Contains(parts[1], " is ") {
		return fmt.Sprintf("The subject involves %s.", parts[1])
	}
	return fmt.Sprintf("Regarding %s, this is important to note.", text)
}
