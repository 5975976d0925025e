package flower

import "strings"

// KeywordDecoration 将一个关键词映射到一组候选装饰
type KeywordDecoration struct {
	Keyword     string
	Decorations []string
}

// KeywordCatalog 关键词装饰目录，声明顺序即关键词的提取顺序
var KeywordCatalog = []KeywordDecoration{
	{Keyword: "工作", Decorations: []string{"💼", "📝", "⚡", "📈", "🧠"}},
	{Keyword: "学习", Decorations: []string{"📚", "✏️", "🎓", "🧪", "🧩"}},
	{Keyword: "朋友", Decorations: []string{"👫", "🤝", "💕", "🎉", "🥳"}},
	{Keyword: "家人", Decorations: []string{"🏠", "❤️", "👨‍👩‍👧‍👦", "🫶"}},
	{Keyword: "运动", Decorations: []string{"🏃‍♀️", "💪", "🌟", "🚴", "🏀"}},
	{Keyword: "美食", Decorations: []string{"🍰", "☕", "🍎", "🍣", "🍫", "🍜"}},
	{Keyword: "旅行", Decorations: []string{"✈️", "🗺️", "🎒", "🏝️", "🏔️"}},
	{Keyword: "音乐", Decorations: []string{"🎵", "🎶", "🎸", "🎹", "🎧"}},
	{Keyword: "电影", Decorations: []string{"🎬", "🍿", "📽️", "🎞️"}},
	{Keyword: "阅读", Decorations: []string{"📖", "📚", "✨", "🖋️"}},
	{Keyword: "睡觉", Decorations: []string{"😴", "🌙", "⭐", "🛌"}},
	{Keyword: "雨天", Decorations: []string{"🌧️", "☔", "💧", "⛈️"}},
	{Keyword: "阳光", Decorations: []string{"☀️", "🌈", "🌞", "🕶️"}},
	{Keyword: "咖啡", Decorations: []string{"☕", "🤎", "☁️", "🫘"}},
	{Keyword: "猫", Decorations: []string{"🐱", "🐾", "😸", "🧶"}},
	{Keyword: "狗", Decorations: []string{"🐶", "🐾", "🦴", "🎾"}},
	{Keyword: "花", Decorations: []string{"🌸", "🌺", "🌻", "💮", "🌷"}},
	{Keyword: "树", Decorations: []string{"🌳", "🍃", "🌿", "🌲"}},
	{Keyword: "科技", Decorations: []string{"💻", "⚙️", "🛰️", "🤖"}},
	{Keyword: "自然", Decorations: []string{"⛰️", "🏞️", "🌊", "🍀"}},
	{Keyword: "艺术", Decorations: []string{"🎨", "🖼️", "🖌️", "🎭"}},
}

// DefaultDecorations 在没有命中任何关键词时使用
var DefaultDecorations = []string{"💖", "✨", "🌟"}

// Auras 光环目录
var Auras = []string{"✨", "💫", "🌟", "⭐", "💖", "🔮", "🌈", "🔥", "❄️", "🫧"}

const (
	maxDecorations      = 3
	fallbackDescription = "美丽的花朵"
	keywordClauseFormat = "%s，承载着关于%s的美好回忆"
	keywordSeparator    = "、"
)

// DescriptionTemplates 按心情 ID 列出描述模板
var DescriptionTemplates = map[string][]string{
	"happy":      {"今天的花朵充满阳光", "绽放着快乐的光芒", "散发着温暖的香气"},
	"peaceful":   {"静谧如湖水般清澈", "带着宁静的力量", "散发着淡雅的芬芳"},
	"excited":    {"充满活力的花朵", "像烟花一样绚烂", "闪闪发光的花瓣"},
	"melancholy": {"带着深沉的美丽", "如诗歌般忧郁", "有着独特的魅力"},
	"grateful":   {"温暖如拥抱的花朵", "散发着感恩的光辉", "充满爱与希望"},
	"dreamy":     {"如梦境般美丽", "飘散着仙气", "充满奇幻色彩"},
	"focused":    {"专注而坚定", "线条简洁有力", "如晨露般清透"},
	"romantic":   {"粉色的气息在空气中流淌", "轻语着浪漫", "如诗如画"},
	"calm":       {"云淡风轻", "安宁在花瓣间蔓延", "呼吸顺滑而温和"},
	"hopeful":    {"带来温暖的希望", "金色光辉轻抚花瓣", "向阳而生"},
	"energetic":  {"跃动的色彩", "充满能量的律动", "像跃起的心跳"},
	"serene":     {"月光般清澈", "静夜的温柔", "悠然自得"},
}

// ExtractKeywords 返回 note 中以子串形式出现的目录关键词，顺序与目录声明顺序一致。
func ExtractKeywords(note string, catalog []KeywordDecoration) []string {
	keywords := make([]string, 0)
	if note == "" {
		return keywords
	}
	for _, item := range catalog {
		if strings.Contains(note, item.Keyword) {
			keywords = append(keywords, item.Keyword)
		}
	}
	return keywords
}

func decorationsFor(catalog []KeywordDecoration, keyword string) []string {
	for _, item := range catalog {
		if item.Keyword == keyword {
			return item.Decorations
		}
	}
	return nil
}
