package article

import (
	"sort"
	"strings"

	"seo-article-api/internal/application/textmetrics"
	"seo-article-api/pkg/randutil"
)

const (
	// maxSentences Expand 的句数硬上限，防止填充句无法弥补大缺口时死循环；
	// 达到上限即截断，属有意为之的尽力语义。
	maxSentences = 20
	// minSentences Condense 的句数下限，避免文章退化为空
	minSentences = 5
)

// fillerSentences Expand 使用的通用填充句池
var fillerSentences = []string{
	"This aspect deserves further attention and consideration.",
	"It's worth noting that multiple factors contribute to this outcome.",
	"Research continues to evolve in this area, providing new insights.",
	"Practical applications of these concepts have shown promising results.",
}

// Adjuster 以句子级插入/删除将文本逼近目标词数。
// 两个操作都是尽力而为：不保证精确命中目标，受上面的句数上下限约束。
type Adjuster struct {
	rng *randutil.LockedRand
}

// NewAdjuster 创建长度调整器
func NewAdjuster(rng *randutil.LockedRand) *Adjuster {
	return &Adjuster{rng: rng}
}

// Expand 向文本中插入填充句，直到补足 additionalWords 个词
// 或句数达到上限。填充句只插入内部位置，绝不插在句首。
func (a *Adjuster) Expand(text string, additionalWords int) string {
	sentences := textmetrics.SplitSentences(text)

	for additionalWords > 0 && len(sentences) < maxSentences {
		filler := randutil.Pick(a.rng, fillerSentences)

		pos := len(sentences)
		if len(sentences) >= 2 {
			pos = a.rng.IntnRange(1, len(sentences)-1)
		}
		sentences = append(sentences[:pos], append([]string{filler}, sentences[pos:]...)...)
		additionalWords -= textmetrics.WordCount(filler)
	}

	return strings.Join(sentences, ". ")
}

// Condense 反复删除字符数最短的句子，直到累计删除 excessWords 个词
// 或仅剩下限句数。删除顺序按最短优先，输出顺序始终保持原文顺序。
func (a *Adjuster) Condense(text string, excessWords int) string {
	type indexed struct {
		pos  int
		text string
	}

	split := textmetrics.SplitSentences(text)
	sentences := make([]indexed, 0, len(split))
	for i, s := range split {
		sentences = append(sentences, indexed{pos: i, text: s})
	}

	for excessWords > 0 && len(sentences) > minSentences {
		shortest := 0
		for i, s := range sentences {
			if len(s.text) < len(sentences[shortest].text) {
				shortest = i
			}
		}
		excessWords -= textmetrics.WordCount(sentences[shortest].text)
		sentences = append(sentences[:shortest], sentences[shortest+1:]...)

		// 删除后按原文位置恢复相对顺序
		sort.Slice(sentences, func(i, j int) bool {
			return sentences[i].pos < sentences[j].pos
		})
	}

	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s.text)
	}
	return strings.Join(out, ". ")
}
