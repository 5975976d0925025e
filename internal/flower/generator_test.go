package flower

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serenityImage = "https://shellykoi.github.io/Flower-mood/flowers/dream-serene-001.jpg"

func fixedGenerator(opts ...Option) *Generator {
	clock := func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC) }
	base := []Option{WithClock(clock), WithLocation(time.UTC)}
	return NewGenerator(append(base, opts...)...)
}

func mustMood(t *testing.T, id string) Mood {
	t.Helper()
	mood, ok := FindMood(id)
	require.True(t, ok, "mood %s should exist", id)
	return mood
}

func TestGenerateGolden(t *testing.T) {
	g := fixedGenerator()
	entry, err := g.Generate(mustMood(t, "happy"), "今天和朋友一起工作")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", entry.Date)
	assert.Equal(t, []string{"工作", "朋友"}, entry.Keywords)
	assert.Equal(t, GeneratedFlower{
		BaseEmoji:      "🌸",
		PrimaryColor:   "#FFD700",
		SecondaryColor: "hsl(9, 62%, 59%)",
		Decorations:    []string{"📝", "🥳"},
		Aura:           "🔮",
		Description:    "今天的花朵充满阳光，承载着关于工作、朋友的美好回忆",
		ImageURL:       serenityImage,
	}, entry.Flower)
}

func TestGenerateDeterministic(t *testing.T) {
	g := fixedGenerator()
	mood := mustMood(t, "dreamy")

	first, err := g.Generate(mood, "下雨天在家看电影，听音乐")
	require.NoError(t, err)
	second, err := g.Generate(mood, "下雨天在家看电影，听音乐")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDependsOnDate(t *testing.T) {
	g := fixedGenerator()
	mood := mustMood(t, "calm")

	seeds := make(map[uint32]struct{})
	for day := 1; day <= 5; day++ {
		date := fmt.Sprintf("2024-05-%02d", day)
		seeds[SeedFor("散步", date, mood.ID)] = struct{}{}
		entry, err := g.GenerateOn(mood, "散步", date)
		require.NoError(t, err)
		assert.Equal(t, date, entry.Date)
	}
	assert.Len(t, seeds, 5)
}

func TestKeywordOrderFollowsCatalog(t *testing.T) {
	keywords := ExtractKeywords("今天和朋友一起工作", KeywordCatalog)
	assert.Equal(t, []string{"工作", "朋友"}, keywords)

	keywords = ExtractKeywords("听音乐、喝咖啡、撸猫", KeywordCatalog)
	assert.Equal(t, []string{"音乐", "咖啡", "猫"}, keywords)
}

func TestDecorationCap(t *testing.T) {
	g := fixedGenerator()
	note := "工作学习朋友家人运动美食旅行"

	entry, err := g.Generate(mustMood(t, "excited"), note)
	require.NoError(t, err)

	require.Len(t, entry.Keywords, 7)
	require.Len(t, entry.Flower.Decorations, 3)
	for i, decoration := range entry.Flower.Decorations {
		candidates := decorationsFor(KeywordCatalog, entry.Keywords[i])
		assert.True(t, slices.Contains(candidates, decoration), "decoration %s should come from %s", decoration, entry.Keywords[i])
	}
}

func TestEmptyNoteFallback(t *testing.T) {
	g := fixedGenerator()
	entry, err := g.Generate(mustMood(t, "happy"), "")
	require.NoError(t, err)

	assert.NotNil(t, entry.Keywords)
	assert.Empty(t, entry.Keywords)
	assert.Equal(t, DefaultDecorations, entry.Flower.Decorations)
	assert.Equal(t, "今天的花朵充满阳光", entry.Flower.Description)
	assert.Equal(t, "hsl(4, 65%, 63%)", entry.Flower.PrimaryColor)
	assert.Equal(t, "#FF1493", entry.Flower.SecondaryColor)
	assert.Equal(t, "❄️", entry.Flower.Aura)
	// 无关键词但命中 20% 的基础概率
	assert.Equal(t, serenityImage, entry.Flower.ImageURL)
}

func TestProceduralColorRanges(t *testing.T) {
	for seed := uint32(0); seed < 20000; seed += 13 {
		primary, secondary := proceduralColors(seed)

		require.GreaterOrEqual(t, primary.H, 0)
		require.Less(t, primary.H, 360)
		require.GreaterOrEqual(t, primary.S, 60)
		require.Less(t, primary.S, 90)
		require.GreaterOrEqual(t, primary.L, 55)
		require.Less(t, primary.L, 75)

		require.GreaterOrEqual(t, secondary.S, 40)
		require.GreaterOrEqual(t, secondary.L, 40)
		require.Less(t, secondary.H, 360)

		shift := (secondary.H - primary.H + 360) % 360
		require.GreaterOrEqual(t, shift, 20)
		require.Less(t, shift, 60)
	}
}

func TestColorsWithoutPaletteAreProcedural(t *testing.T) {
	g := fixedGenerator()
	mood := Mood{ID: "plain", Name: "素", Emoji: "⚪", BaseFlowers: []string{"🌼"}}

	entry, err := g.Generate(mood, "普通的一天")
	require.NoError(t, err)

	primary, secondary := proceduralColors(SeedFor("普通的一天", "2024-05-01", "plain"))
	assert.Equal(t, primary.String(), entry.Flower.PrimaryColor)
	assert.Equal(t, secondary.String(), entry.Flower.SecondaryColor)
	assert.Equal(t, fallbackDescription, entry.Flower.Description)
}

func TestEmptyBaseFlowersIsInvalidCatalog(t *testing.T) {
	g := fixedGenerator()
	_, err := g.Generate(Mood{ID: "broken", Name: "坏"}, "工作")
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestCustomFlowerWeightedSamplingBias(t *testing.T) {
	catalog := []CustomFlower{
		{ID: "common-travel", ImageURL: "common.svg", Tags: []string{"旅行"}},
		{ID: "legendary-music", ImageURL: "legendary.svg", Tags: []string{"音乐"}, Rarity: RarityLegendary},
	}
	g := fixedGenerator(WithCustomFlowers(catalog))
	mood := mustMood(t, "romantic")

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		entry, err := g.Generate(mood, fmt.Sprintf("第%d天，一起听音乐", i))
		require.NoError(t, err)
		counts[entry.Flower.ImageURL]++
	}

	assert.Equal(t, 1000, counts["legendary.svg"]+counts["common.svg"])
	assert.Greater(t, counts["legendary.svg"], counts["common.svg"])
}

func TestCustomFlowerWeights(t *testing.T) {
	f := CustomFlower{Tags: []string{"音乐", "旅行"}, Rarity: RarityRare}
	assert.Equal(t, 9, weightOf(f, []string{"旅行"}))
	assert.Equal(t, 3, weightOf(f, []string{"工作"}))
	assert.Equal(t, 1, weightOf(CustomFlower{}, nil))
	assert.Equal(t, 6, RarityLegendary.Weight())
	assert.Equal(t, 1, Rarity("Legendary").Weight())
	assert.True(t, Rarity("").Valid())
	assert.False(t, Rarity("Legendary").Valid())
	assert.Nil(t, pickCustomFlower(nil, nil, 1))
}

func TestEmptyCustomCatalogNeverOverrides(t *testing.T) {
	g := fixedGenerator(WithCustomFlowers(nil))
	entry, err := g.Generate(mustMood(t, "happy"), "和朋友去旅行")
	require.NoError(t, err)
	assert.Empty(t, entry.Flower.ImageURL)
}

func TestGeneratorLocationDrivesToday(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	clock := func() time.Time { return time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) }
	g := NewGenerator(WithClock(clock), WithLocation(tokyo))

	assert.Equal(t, tokyo, g.Location())
	assert.Equal(t, "2024-05-02", g.Today())
	assert.Equal(t, tokyo, g.Now().Location())
	assert.Equal(t, time.UTC, fixedGenerator().Location())
}
