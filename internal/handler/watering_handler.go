package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/locale"
	"github.com/moodgarden/internal/service"
)

type wateringRecordPayload struct {
	Date             string  `json:"date"`
	Stage            string  `json:"stage"`
	StageEmoji       string  `json:"stageEmoji"`
	StageLabel       string  `json:"stageLabel"`
	StageDescription string  `json:"stageDescription"`
	Watered          bool    `json:"watered"`
	WaterCount       int     `json:"waterCount"`
	Progress         float64 `json:"progress"`
}

type recentWateringDayPayload struct {
	Date    string                `json:"date"`
	Weekday string                `json:"weekday"`
	IsToday bool                  `json:"isToday"`
	Record  wateringRecordPayload `json:"record"`
}

type wateringStatsPayload struct {
	TotalWatered    int  `json:"totalWatered"`
	TotalBloomed    int  `json:"totalBloomed"`
	CurrentStreak   int  `json:"currentStreak"`
	TotalWaterCount int  `json:"totalWaterCount"`
	VeteranGardener bool `json:"veteranGardener"`
}

func wateringRecordToPayload(language string, record service.WateringRecord) wateringRecordPayload {
	stage := string(record.Stage)
	return wateringRecordPayload{
		Date:             record.Date,
		Stage:            stage,
		StageEmoji:       locale.StageEmoji(stage),
		StageLabel:       locale.StageLabel(language, stage),
		StageDescription: locale.StageDescription(language, stage),
		Watered:          record.Watered,
		WaterCount:       record.WaterCount,
		Progress:         record.Progress(),
	}
}

// WaterFlower 为今天的花浇水，重复浇水返回当前状态
func (a *API) WaterFlower(c *gin.Context) {
	result, err := a.watering.Water(c.Request.Context())
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	var message string
	switch {
	case !result.Accepted:
		message = pick(c, "Already watered today, come back tomorrow", "今天已经浇过水了，明天再来吧")
	case result.Grew:
		message = pick(c, "Your flower grew!", "你的花长大了！")
	default:
		message = pick(c, "Watered", "浇水成功")
	}

	c.JSON(http.StatusOK, gin.H{
		"record":   wateringRecordToPayload(requestLanguage(c), result.Record),
		"accepted": result.Accepted,
		"grew":     result.Grew,
		"message":  message,
	})
}

// GetTodayWatering 返回今天的浇水记录
func (a *API) GetTodayWatering(c *gin.Context) {
	record, err := a.watering.Today(c.Request.Context())
	if err != nil {
		a.handleGardenError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": wateringRecordToPayload(requestLanguage(c), record)})
}

// GetRecentWatering 返回最近几天的浇水记录，最早的在前
func (a *API) GetRecentWatering(c *gin.Context) {
	days, err := a.watering.Recent(c.Request.Context(), parseDaysQuery(c))
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	language := requestLanguage(c)
	items := make([]recentWateringDayPayload, 0, len(days))
	for _, day := range days {
		items = append(items, recentWateringDayPayload{
			Date:    day.Date,
			Weekday: locale.WeekdayShort(language, day.Weekday),
			IsToday: day.IsToday,
			Record:  wateringRecordToPayload(language, day.Record),
		})
	}
	c.JSON(http.StatusOK, gin.H{"days": items})
}

// GetWateringStats 返回浇水花园统计
func (a *API) GetWateringStats(c *gin.Context) {
	stats, err := a.watering.Stats(c.Request.Context())
	if err != nil {
		a.handleGardenError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": wateringStatsPayload{
		TotalWatered:    stats.TotalWatered,
		TotalBloomed:    stats.TotalBloomed,
		CurrentStreak:   stats.CurrentStreak,
		TotalWaterCount: stats.TotalWaterCount,
		VeteranGardener: stats.VeteranGardener,
	}})
}
