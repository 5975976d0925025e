package flower

import "slices"

// Rarity 描述自定义花朵的稀有度，影响抽样权重
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Valid 报告稀有度是否为空或已知取值，大小写必须完全一致
func (r Rarity) Valid() bool {
	switch r {
	case "", RarityCommon, RarityRare, RarityLegendary:
		return true
	}
	return false
}

// Weight 返回稀有度权重：legendary=6，rare=3，其余（含未设置）=1
func (r Rarity) Weight() int {
	switch r {
	case RarityLegendary:
		return 6
	case RarityRare:
		return 3
	default:
		return 1
	}
}

// CustomFlower 是一张策展的花朵图片，可以覆盖默认的 emoji 渲染
type CustomFlower struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	ImageURL string   `json:"imageUrl" yaml:"image_url"`
	Tags     []string `json:"tags" yaml:"tags"`
	Rarity   Rarity   `json:"rarity,omitempty" yaml:"rarity"`
}

// CustomFlowers 内置自定义花朵库，可通过配置文件追加
var CustomFlowers = []CustomFlower{
	{
		ID:       "dream-aqua-001",
		Name:     "梦海蓝",
		ImageURL: "https://example.com/flowers/dream-aqua.svg",
		Tags:     []string{"梦幻", "睡觉", "自然"},
		Rarity:   RarityRare,
	},
	{
		ID:       "sunny-pop-002",
		Name:     "晴彩",
		ImageURL: "https://example.com/flowers/sunny-pop.svg",
		Tags:     []string{"阳光", "开心", "运动"},
		Rarity:   RarityCommon,
	},
	{
		ID:       "dream-serene-001",
		Name:     "梦幻·恬静",
		ImageURL: "https://shellykoi.github.io/Flower-mood/flowers/dream-serene-001.jpg",
		Tags:     []string{"梦幻", "恬静", "平静", "夜色"},
		Rarity:   RarityLegendary,
	},
}

// weightOf 计算单个条目的抽样权重：稀有度权重 × 关键词匹配权重（命中任意 tag 为 3）
func weightOf(f CustomFlower, keywords []string) int {
	match := 1
	for _, tag := range f.Tags {
		if slices.Contains(keywords, tag) {
			match = 3
			break
		}
	}
	return f.Rarity.Weight() * match
}

// customFlowerEligible 判定是否尝试自定义花朵：20% 基础概率，或命中了任意关键词
func customFlowerEligible(seed uint32, keywords []string) bool {
	return Rand01(seed, saltCustomGate) > 0.8 || len(keywords) > 0
}

// pickCustomFlower 按累积权重做一次稳定抽样；目录为空时返回 nil
func pickCustomFlower(catalog []CustomFlower, keywords []string, seed uint32) *CustomFlower {
	if len(catalog) == 0 {
		return nil
	}

	weights := make([]int, len(catalog))
	total := 0
	for i, f := range catalog {
		weights[i] = weightOf(f, keywords)
		total += weights[i]
	}
	if total == 0 {
		return nil
	}

	r := Rand01(seed, saltCustomDraw) * float64(total)
	for i := range catalog {
		r -= float64(weights[i])
		if r <= 0 {
			return &catalog[i]
		}
	}
	// 浮点误差兜底
	return &catalog[len(catalog)-1]
}
