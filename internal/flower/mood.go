package flower

import "strings"

// Mood 定义了一种可选心情
// Colors 为预设色盘，可为空（为空时颜色完全走 HSL 程序化生成）
// BaseFlowers 为候选花朵基底，必须非空
type Mood struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Emoji       string   `json:"emoji" yaml:"emoji"`
	Colors      []string `json:"colors,omitempty" yaml:"colors"`
	BaseFlowers []string `json:"baseFlowers" yaml:"base_flowers"`
}

// Moods 是内置心情目录，启动后只读
var Moods = []Mood{
	{
		ID:          "happy",
		Name:        "开心",
		Emoji:       "😊",
		Colors:      []string{"#FFD700", "#FF69B4", "#FFA500", "#FF1493"},
		BaseFlowers: []string{"🌸", "🌼", "🌻", "💐"},
	},
	{
		ID:          "peaceful",
		Name:        "平静",
		Emoji:       "😌",
		Colors:      []string{"#87CEEB", "#98FB98", "#E0E6FF", "#B0E0E6"},
		BaseFlowers: []string{"🌿", "🍃", "🍀"},
	},
	{
		ID:          "excited",
		Name:        "兴奋",
		Emoji:       "🤩",
		Colors:      []string{"#FF4500", "#FF6347", "#FFB6C1", "#FF69B4"},
		BaseFlowers: []string{"🌺", "💮", "🌷"},
	},
	{
		ID:          "melancholy",
		Name:        "忧郁",
		Emoji:       "😔",
		Colors:      []string{"#9370DB", "#6A5ACD", "#483D8B", "#8A2BE2"},
		BaseFlowers: []string{"🥀", "🪻", "🌾"},
	},
	{
		ID:          "grateful",
		Name:        "感恩",
		Emoji:       "🙏",
		Colors:      []string{"#F0E68C", "#DDA0DD", "#FFFFE0", "#F5DEB3"},
		BaseFlowers: []string{"🌻", "🌼"},
	},
	{
		ID:          "dreamy",
		Name:        "梦幻",
		Emoji:       "✨",
		Colors:      []string{"#E6E6FA", "#DDA0DD", "#F0E68C", "#FFB6C1"},
		BaseFlowers: []string{"🌙", "🪽", "🦋"},
	},
	{
		ID:          "focused",
		Name:        "专注",
		Emoji:       "🎯",
		Colors:      []string{"#6EE7B7", "#34D399", "#10B981", "#059669"},
		BaseFlowers: []string{"🌵", "🌿"},
	},
	{
		ID:          "romantic",
		Name:        "浪漫",
		Emoji:       "💞",
		Colors:      []string{"#FF7EB6", "#FF4D8D", "#FFC0CB", "#FF99CC"},
		BaseFlowers: []string{"🌹", "🌷", "💐"},
	},
	{
		ID:          "calm",
		Name:        "安宁",
		Emoji:       "🧘",
		Colors:      []string{"#A7F3D0", "#93C5FD", "#C7D2FE", "#BFDBFE"},
		BaseFlowers: []string{"🪷", "🌿"},
	},
	{
		ID:          "hopeful",
		Name:        "希望",
		Emoji:       "🌟",
		Colors:      []string{"#FDE68A", "#FCD34D", "#F59E0B", "#FBBF24"},
		BaseFlowers: []string{"🌼", "🌻"},
	},
	{
		ID:          "energetic",
		Name:        "元气",
		Emoji:       "⚡",
		Colors:      []string{"#F87171", "#FB923C", "#FBBF24", "#34D399"},
		BaseFlowers: []string{"🌺", "🌷", "🌻"},
	},
	{
		ID:          "serene",
		Name:        "恬静",
		Emoji:       "🌙",
		Colors:      []string{"#C4B5FD", "#A78BFA", "#93C5FD", "#60A5FA"},
		BaseFlowers: []string{"🪻", "🪷"},
	},
}

// FindMood 按 ID 查找内置心情，大小写与首尾空白不敏感
func FindMood(id string) (Mood, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, mood := range Moods {
		if mood.ID == key {
			return mood, true
		}
	}
	return Mood{}, false
}
