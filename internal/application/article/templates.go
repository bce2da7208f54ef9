package article

import (
	"fmt"
	"strings"

	"seo-article-api/internal/application/textmetrics"
	"seo-article-api/pkg/randutil"
)

// 正文模板池。全部以 %s 接收主题。
var (
	introTemplates = []string{
		"In today's digital landscape, %s has become increasingly important for businesses and individuals alike.",
		"The world of %s is constantly evolving, bringing new challenges and opportunities.",
		"Understanding %s is crucial for success in today's competitive market.",
		"When it comes to %s, there are several key factors to consider.",
		"The importance of %s cannot be overstated in our modern business environment.",
	}

	conclusionTemplates = []string{
		"In conclusion, %s plays a vital role in achieving success.",
		"To summarize, the key aspects of %s require careful consideration and strategic planning.",
		"Moving forward, staying updated with %s trends will be essential.",
		"The future of %s looks promising, with continuous advancements on the horizon.",
		"By implementing the strategies discussed, organizations can excel in %s.",
	}

	paragraphTopics = []string{
		"Key aspects of %s",
		"Best practices for %s",
		"Common challenges in %s",
		"Future trends in %s",
		"Benefits of implementing %s strategies",
	}

	// continuationSentences 分节内容的通用收尾句池
	continuationSentences = []string{
		"Building on these points, a structured approach delivers the most consistent outcomes.",
		"Taken together, these considerations form a practical foundation for the next steps.",
		"With this groundwork in place, the remaining pieces fall into place more naturally.",
	}
)

// sectionBuckets 分节内容的句子模板桶。匹配按固定优先级检查标题中的
// 关键子串，无匹配时使用 "what" 桶。
var sectionBucketOrder = []string{"what", "why", "how", "benefits", "challenges"}

var sectionBuckets = map[string][]string{
	"what": {
		"At its core, %s describes a set of practices that shape how modern teams operate.",
		"To understand %s, it helps to start with the fundamentals before moving to specifics.",
		"%s covers a broad range of concerns, from day-to-day execution to long-term planning.",
	},
	"why": {
		"The case for %s rests on measurable outcomes rather than trends.",
		"Teams invest in %s because the alternative costs compound over time.",
		"Ignoring %s leaves organizations exposed to risks that are hard to recover from.",
	},
	"how": {
		"Implementing %s starts with a clear assessment of the current state.",
		"A phased rollout of %s keeps disruption low while building momentum.",
		"Success with %s depends on consistent measurement and iteration.",
	},
	"benefits": {
		"Organizations adopting %s report improvements across efficiency and quality.",
		"The benefits of %s extend beyond immediate gains to long-term resilience.",
		"%s pays off most visibly where processes were previously ad hoc.",
	},
	"challenges": {
		"Common obstacles in %s include unclear ownership and inconsistent tooling.",
		"Most difficulties with %s trace back to skipped fundamentals.",
		"Addressing %s challenges early prevents costly rework later.",
	},
}

// TemplateGenerator 模板驱动的回退内容生成器。远程补全不可用时
// 由它产出正文，输出确定性仅受注入的随机源影响。
type TemplateGenerator struct {
	rng      *randutil.LockedRand
	adjuster *Adjuster
}

// NewTemplateGenerator 创建模板生成器
func NewTemplateGenerator(rng *randutil.LockedRand, adjuster *Adjuster) *TemplateGenerator {
	return &TemplateGenerator{rng: rng, adjuster: adjuster}
}

// GenerateBody 生成完整文章正文：引言 + 若干主题段落 + 结语，
// 段落间以空行分隔，最后统一调整到目标词数。
func (g *TemplateGenerator) GenerateBody(topic string, keywords []string, targetLength int) string {
	intro := fmt.Sprintf(randutil.Pick(g.rng, introTemplates), topic)
	conclusion := fmt.Sprintf(randutil.Pick(g.rng, conclusionTemplates), topic)

	parts := []string{intro}
	parts = append(parts, g.generateBodyParagraphs(topic, keywords, targetLength)...)
	parts = append(parts, conclusion)

	return g.adjustToTarget(strings.Join(parts, "\n\n"), targetLength)
}

// GenerateBodyWithOutline 按既有 SEO 大纲生成正文，每个 H2 标题一节，
// 以保持回退路径与 SEO 内容的结构一致。
func (g *TemplateGenerator) GenerateBodyWithOutline(topic string, keywords []string, targetLength int, headings []string) string {
	if len(headings) == 0 {
		return g.GenerateBody(topic, keywords, targetLength)
	}

	intro := fmt.Sprintf(randutil.Pick(g.rng, introTemplates), topic)
	conclusion := fmt.Sprintf(randutil.Pick(g.rng, conclusionTemplates), topic)

	parts := []string{intro}
	prior := intro
	for _, h := range headings {
		section := g.SectionContent(h, topic, keywords, prior)
		parts = append(parts, "## "+h+"\n\n"+section)
		prior = section
	}
	parts = append(parts, conclusion)

	return g.adjustToTarget(strings.Join(parts, "\n\n"), targetLength)
}

// SectionContent 为单个 H2 标题生成节内容。按标题关键词选择句子桶，
// 关键词提及句插在首句之后，结果不超过 4 句。
// priorContext 为上一节内容，仅用于避免重复选取同一收尾句。
func (g *TemplateGenerator) SectionContent(heading, topic string, keywords []string, priorContext string) string {
	bucket := sectionBuckets["what"]
	lowerHeading := strings.ToLower(heading)
	for _, key := range sectionBucketOrder {
		if strings.Contains(lowerHeading, key) {
			bucket = sectionBuckets[key]
			break
		}
	}

	sentences := make([]string, 0, 6)
	for _, tpl := range bucket {
		sentences = append(sentences, fmt.Sprintf(tpl, topic))
	}

	if len(keywords) > 0 {
		kw := keywordMentionSentence(keywords)
		sentences = append(sentences[:1], append([]string{kw}, sentences[1:]...)...)
	}

	cont := randutil.Pick(g.rng, continuationSentences)
	if strings.Contains(priorContext, cont) {
		cont = continuationSentences[(indexOf(continuationSentences, cont)+1)%len(continuationSentences)]
	}
	sentences = append(sentences, cont)

	if len(sentences) > 4 {
		sentences = sentences[:4]
	}
	return strings.Join(sentences, " ")
}

// generateBodyParagraphs 生成主题段落，数量为 max(3, target/100)，
// 受轮换主题标签数量封顶。
func (g *TemplateGenerator) generateBodyParagraphs(topic string, keywords []string, targetLength int) []string {
	numParagraphs := targetLength / 100
	if numParagraphs < 3 {
		numParagraphs = 3
	}
	if numParagraphs > len(paragraphTopics) {
		numParagraphs = len(paragraphTopics)
	}

	paragraphs := make([]string, 0, numParagraphs)
	for i := 0; i < numParagraphs; i++ {
		label := fmt.Sprintf(paragraphTopics[i], topic)
		paragraphs = append(paragraphs, g.generateParagraph(label, keywords))
	}
	return paragraphs
}

// generateParagraph 由固定句池拼装单个段落，关键词提及句
// 插入随机的内部位置，段落长度为 3-5 句。
func (g *TemplateGenerator) generateParagraph(label string, keywords []string) string {
	lower := strings.ToLower(label)
	sentences := []string{
		fmt.Sprintf("%s requires careful consideration of various factors.", label),
		fmt.Sprintf("Many experts agree that %s deserves attention in today's market.", lower),
		fmt.Sprintf("The implementation of %s can lead to significant improvements.", lower),
		fmt.Sprintf("Research has shown that %s impacts multiple areas of business.", lower),
		fmt.Sprintf("Organizations that prioritize %s often see better results.", lower),
	}

	if len(keywords) > 0 {
		kw := keywordMentionSentence(keywords)
		pos := g.rng.IntnRange(1, len(sentences)-1)
		sentences = append(sentences[:pos], append([]string{kw}, sentences[pos:]...)...)
	}

	n := g.rng.IntnRange(3, 5)
	if n > len(sentences) {
		n = len(sentences)
	}
	return strings.Join(sentences[:n], " ")
}

// adjustToTarget 无条件向目标词数调整
func (g *TemplateGenerator) adjustToTarget(body string, targetLength int) string {
	current := textmetrics.WordCount(body)
	if current < targetLength {
		return g.adjuster.Expand(body, targetLength-current)
	}
	if current > targetLength {
		return g.adjuster.Condense(body, current-targetLength)
	}
	return body
}

// keywordMentionSentence 生成点名前三个关键词的提及句
func keywordMentionSentence(keywords []string) string {
	mention := keywords
	if len(mention) > 3 {
		mention = mention[:3]
	}
	return fmt.Sprintf("Keywords such as %s are particularly relevant to this discussion.", strings.Join(mention, ", "))
}

func indexOf(items []string, v string) int {
	for i, s := range items {
		if s == v {
			return i
		}
	}
	return 0
}
