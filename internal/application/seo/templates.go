package seo

// h1Templates H1 标题模板池
var h1Templates = []string{
	"The Ultimate Guide to %s",
	"Mastering %s: Best Practices and Strategies",
	"%s: Everything You Need to Know",
	"A Comprehensive Guide to %s",
	"Understanding %s: Key Insights and Tips",
}

// h2Categories H2 类别，顺序即输出顺序
var h2Categories = []string{"basics", "benefits", "strategies", "challenges", "future"}

// h2Templates 按类别分组的 H2 模板池，模板路径从每类各取一条
var h2Templates = map[string][]string{
	"basics": {
		"What is %s and Why Does it Matter?",
		"Understanding the Fundamentals of %s",
		"Getting Started with %s",
	},
	"benefits": {
		"Key Benefits of %s",
		"Why %s is Essential for Success",
		"The Advantages of Implementing %s",
	},
	"strategies": {
		"Effective %s Strategies",
		"Best Practices for %s",
		"How to Implement %s Successfully",
	},
	"challenges": {
		"Common %s Challenges and Solutions",
		"Overcoming Obstacles in %s",
		"Pitfalls to Avoid in %s",
	},
	"future": {
		"The Future of %s",
		"Emerging Trends in %s",
		"What's Next for %s",
	},
}

// h2ConclusionTemplate 结语模式追加的末位 H2
const h2ConclusionTemplate = "Conclusion: Key Takeaways for %s"

// metaTemplates meta description 模板池
var metaTemplates = []string{
	"Discover comprehensive insights about %s. Learn best practices, strategies, and expert tips to achieve success.",
	"Everything you need to know about %s. Explore proven techniques and actionable advice for optimal results.",
	"Master %s with our in-depth guide. Find practical solutions, expert recommendations, and valuable resources.",
	"Learn about %s and its key benefits. Get professional insights and strategies to implement effectively.",
}
