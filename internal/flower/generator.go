// Package flower derives a decorative flower from a mood and a daily note.
//
// Generation is a pure function of (note, date, mood id): every "random" choice is taken
// from a salted draw over a single 32-bit seed, so the same inputs always produce the same
// flower.
package flower

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout 是条目日期键的格式
const DateLayout = "2006-01-02"

// GeneratedFlower 是生成结果，完全由输入决定
type GeneratedFlower struct {
	BaseEmoji      string   `json:"baseEmoji"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	Decorations    []string `json:"decorations"`
	Aura           string   `json:"aura"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}

// FlowerEntry 是某一天记录的心情、笔记与生成的花朵
type FlowerEntry struct {
	Date     string          `json:"date"`
	Mood     Mood            `json:"mood"`
	Note     string          `json:"note"`
	Flower   GeneratedFlower `json:"flower"`
	Keywords []string        `json:"keywords"`
}

// Generator 持有只读目录和时钟
type Generator struct {
	keywords      []KeywordDecoration
	auras         []string
	customFlowers []CustomFlower
	templates     map[string][]string
	now           func() time.Time
	location      *time.Location
}

// Option 配置 Generator
type Option func(*Generator)

// WithClock 替换时钟，主要面向测试
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocation 指定计算“今天”所用的时区
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.location = loc
		}
	}
}

// WithCustomFlowers 替换自定义花朵库
func WithCustomFlowers(catalog []CustomFlower) Option {
	return func(g *Generator) {
		g.customFlowers = catalog
	}
}

// WithKeywordCatalog 替换关键词装饰目录
func WithKeywordCatalog(catalog []KeywordDecoration) Option {
	return func(g *Generator) {
		g.keywords = catalog
	}
}

// NewGenerator 使用内置目录构造 Generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		keywords:      KeywordCatalog,
		auras:         Auras,
		customFlowers: CustomFlowers,
		templates:     DescriptionTemplates,
		now:           time.Now,
		location:      time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Today 返回当前日期键
func (g *Generator) Today() string {
	return g.now().In(g.location).Format(DateLayout)
}

// Now 返回生成器时钟的当前时间（已转换到配置的时区）
func (g *Generator) Now() time.Time {
	return g.now().In(g.location)
}

// Location 返回计算日期所用的时区
func (g *Generator) Location() *time.Location {
	return g.location
}

// CustomFlowers 返回当前使用的自定义花朵库
func (g *Generator) CustomFlowers() []CustomFlower {
	return g.customFlowers
}

// Keywords 提取 note 中的目录关键词
func (g *Generator) Keywords(note string) []string {
	return ExtractKeywords(note, g.keywords)
}

// Generate 以今天的日期为 mood 与 note 生成花朵
func (g *Generator) Generate(mood Mood, note string) (FlowerEntry, error) {
	return g.GenerateOn(mood, note, g.Today())
}

// GenerateOn 以指定日期键生成花朵，相同输入总是得到相同结果。
func (g *Generator) GenerateOn(mood Mood, note, date string) (FlowerEntry, error) {
	keywords := g.Keywords(note)
	seed := SeedFor(note, date, mood.ID)

	decorations, err := g.decorations(keywords, seed)
	if err != nil {
		return FlowerEntry{}, err
	}

	colors, err := synthesizeColors(seed, mood.Colors)
	if err != nil {
		return FlowerEntry{}, fmt.Errorf("mood %s colors: %w", mood.ID, err)
	}

	aura, err := PickStable(g.auras, seed, saltAura)
	if err != nil {
		return FlowerEntry{}, fmt.Errorf("aura: %w", err)
	}

	base, err := PickStable(mood.BaseFlowers, seed, saltBase)
	if err != nil {
		return FlowerEntry{}, fmt.Errorf("mood %s base flowers: %w", mood.ID, err)
	}

	description, err := g.describe(mood, keywords, seed)
	if err != nil {
		return FlowerEntry{}, err
	}

	generated := GeneratedFlower{
		BaseEmoji:      base,
		PrimaryColor:   colors.Primary,
		SecondaryColor: colors.Secondary,
		Decorations:    decorations,
		Aura:           aura,
		Description:    description,
	}

	if customFlowerEligible(seed, keywords) {
		if custom := pickCustomFlower(g.customFlowers, keywords, seed); custom != nil {
			generated.ImageURL = custom.ImageURL
		}
	}

	return FlowerEntry{
		Date:     date,
		Mood:     mood,
		Note:     note,
		Flower:   generated,
		Keywords: keywords,
	}, nil
}

// decorations 为每个关键词稳定选出 1 个装饰（salt = 100 + 序号），最多保留 3 个
func (g *Generator) decorations(keywords []string, seed uint32) ([]string, error) {
	pool := make([]string, 0, len(keywords))
	for idx, keyword := range keywords {
		list := decorationsFor(g.keywords, keyword)
		if len(list) == 0 {
			continue
		}
		picked, err := PickStable(list, seed, saltDecoration+idx)
		if err != nil {
			return nil, fmt.Errorf("keyword %s decorations: %w", keyword, err)
		}
		pool = append(pool, picked)
	}

	if len(pool) == 0 {
		pool = append(pool, DefaultDecorations...)
	}
	if len(pool) > maxDecorations {
		pool = pool[:maxDecorations]
	}
	return pool, nil
}

func (g *Generator) describe(mood Mood, keywords []string, seed uint32) (string, error) {
	templates, ok := g.templates[mood.ID]
	if !ok || len(templates) == 0 {
		templates = []string{fallbackDescription}
	}

	picked, err := PickStable(templates, seed, saltDescription)
	if err != nil {
		return "", fmt.Errorf("description: %w", err)
	}

	if len(keywords) == 0 {
		return picked, nil
	}
	return fmt.Sprintf(keywordClauseFormat, picked, strings.Join(keywords, keywordSeparator)), nil
}
