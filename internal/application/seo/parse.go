package seo

import "strings"

// ParseResponse 解析行式模型输出。每行按 H1:/H2:/META:/SLUG:
// 前缀归类，前缀后内容去首尾空白，无法识别的行直接丢弃。
// 解析结果可能字段缺失，由调用方补齐。
func ParseResponse(raw string) *Content {
	content := &Content{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "H1:"):
			content.H1Heading = strings.TrimSpace(strings.TrimPrefix(line, "H1:"))
		case strings.HasPrefix(line, "H2:"):
			if h2 := strings.TrimSpace(strings.TrimPrefix(line, "H2:")); h2 != "" {
				content.H2Headings = append(content.H2Headings, h2)
			}
		case strings.HasPrefix(line, "META:"):
			content.MetaDescription = strings.TrimSpace(strings.TrimPrefix(line, "META:"))
		case strings.HasPrefix(line, "SLUG:"):
			content.Slug = strings.TrimSpace(strings.TrimPrefix(line, "SLUG:"))
		}
	}

	return content
}
