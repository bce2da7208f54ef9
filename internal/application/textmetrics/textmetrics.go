// Package textmetrics 提供文章文本的纯函数指标计算。
package textmetrics

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 约定：句子以字面 ". " 切分。这是对真实分句的粗略近似，
// 上层的可读性评分和摘要提取都依赖同一约定。
const sentenceSep = ". "

// Density 单个关键词的密度结果
type Density struct {
	Keyword string
	Percent float64
}

// Densities 按输入关键词顺序排列的密度序列
type Densities []Density

// Map 转换为 JSON 对象形式
func (d Densities) Map() map[string]float64 {
	out := make(map[string]float64, len(d))
	for _, e := range d {
		out[e.Keyword] = e.Percent
	}
	return out
}

// Average 返回所有密度值的均值，空序列返回 0
func (d Densities) Average() float64 {
	if len(d) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range d {
		sum += e.Percent
	}
	return sum / float64(len(d))
}

// WordCount 统计空白分隔的词数
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitSentences 按 ". " 切分并丢弃空白片段
func SplitSentences(text string) []string {
	parts := strings.Split(text, sentenceSep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// KeywordDensity 计算各关键词在文本中的密度百分比。
// 匹配为大小写不敏感的字面子串计数（不做词边界判断），
// 结果保留两位小数；词数为 0 时所有密度为 0。
func KeywordDensity(text string, keywords []string) Densities {
	wordCount := WordCount(text)
	lowerText := strings.ToLower(text)

	out := make(Densities, 0, len(keywords))
	for _, kw := range keywords {
		percent := 0.0
		if wordCount > 0 && kw != "" {
			n := strings.Count(lowerText, strings.ToLower(kw))
			percent = round2(float64(n) / float64(wordCount) * 100)
		}
		out = append(out, Density{Keyword: kw, Percent: percent})
	}
	return out
}

// ReadabilityScore 计算启发式可读性评分（0-100，越高越易读）。
// 公式为 100 - 1.5*平均句长 - 2*平均词长，不是任何标准可读性模型，
// 仅作为粗略代理使用。空文本返回 0。
func ReadabilityScore(text string) float64 {
	sentences := strings.Split(text, sentenceSep)
	words := strings.Fields(text)

	if len(sentences) == 0 || len(words) == 0 {
		return 0.0
	}

	avgWordsPerSentence := float64(len(words)) / float64(len(sentences))

	totalChars := 0
	for _, w := range words {
		totalChars += utf8.RuneCountInString(w)
	}
	avgCharsPerWord := float64(totalChars) / float64(len(words))

	score := 100 - 1.5*avgWordsPerSentence - 2*avgCharsPerWord
	return round1(clamp(score, 0, 100))
}

// MetaDescriptionFrom 从正文首句提取 meta description，超过 160 字符时
// 截断到 157 字符并补省略号。
func MetaDescriptionFrom(text string) string {
	parts := strings.Split(text, sentenceSep)
	meta := ""
	if len(parts) > 0 {
		meta = parts[0]
	}
	if utf8.RuneCountInString(meta) > 160 {
		meta = TruncateByRunes(meta, 157) + "..."
	}
	return meta
}

// Slugify 从主题生成 URL slug：小写、去除非字母数字/空格/连字符的
// 字符、折叠分隔符、限长 60 字符（按整词截断）。结果为空时返回
// 哨兵值 "untitled"。
func Slugify(topic string) string {
	lowered := strings.ToLower(topic)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' {
			b.WriteRune(r)
		}
	}

	// 折叠空格与连字符
	slug := strings.Trim(collapseSeparators(b.String()), "-")

	if utf8.RuneCountInString(slug) > 60 {
		slug = truncateSlug(slug, 60)
	}

	if slug == "" {
		return "untitled"
	}
	return slug
}

// collapseSeparators 将连续的空格/连字符折叠为单个连字符
func collapseSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSep := false
	for _, r := range s {
		if r == ' ' || r == '-' {
			if !inSep {
				b.WriteByte('-')
				inSep = true
			}
			continue
		}
		inSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// truncateSlug 贪心保留完整的连字符分隔词，直到超出字符预算。
// 绝不从词中间截断。
func truncateSlug(slug string, budget int) string {
	words := strings.Split(slug, "-")
	kept := make([]string, 0, len(words))
	length := 0
	for _, w := range words {
		if length+utf8.RuneCountInString(w)+1 > budget {
			break
		}
		kept = append(kept, w)
		length += utf8.RuneCountInString(w) + 1
	}
	return strings.Join(kept, "-")
}

// TruncateByRunes 按 rune 数量截断字符串。
func TruncateByRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
