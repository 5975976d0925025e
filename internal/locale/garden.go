package locale

import "time"

type stageText struct {
	emoji          string
	nameZH, nameEN string
	descZH, descEN string
}

var stageTexts = map[string]stageText{
	"seed":   {emoji: "🌱", nameZH: "种子", nameEN: "Seed", descZH: "等待发芽", descEN: "Waiting to sprout"},
	"sprout": {emoji: "🌿", nameZH: "发芽", nameEN: "Sprout", descZH: "正在成长", descEN: "Growing"},
	"small":  {emoji: "🌸", nameZH: "小苗", nameEN: "Seedling", descZH: "茁壮成长", descEN: "Thriving"},
	"bloom":  {emoji: "🌺", nameZH: "盛开", nameEN: "Bloom", descZH: "美丽绽放", descEN: "In full bloom"},
}

var weekdaysZH = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// StageEmoji 返回成长阶段对应的 emoji，未知阶段按种子处理
func StageEmoji(stage string) string {
	return stageTextFor(stage).emoji
}

// StageLabel 返回成长阶段的显示名
func StageLabel(language, stage string) string {
	text := stageTextFor(stage)
	return Pick(language, text.nameEN, text.nameZH)
}

// StageDescription 返回成长阶段的一句话描述
func StageDescription(language, stage string) string {
	text := stageTextFor(stage)
	return Pick(language, text.descEN, text.descZH)
}

// WeekdayShort 返回星期的短标签，如 周三 / Wed
func WeekdayShort(language string, day time.Weekday) string {
	return Pick(language, day.String()[:3], weekdaysZH[day%7])
}

func stageTextFor(stage string) stageText {
	if text, ok := stageTexts[stage]; ok {
		return text
	}
	return stageTexts["seed"]
}
