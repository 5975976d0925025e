package router

import (
	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/handler"
	"go.uber.org/zap"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(handler.RequestLogger(logger), gin.Recovery(), api.LocaleMiddleware())

	r.GET("/ping", api.Ping)

	group := r.Group("/api")
	{
		group.GET("/moods", api.ListMoods)
		group.GET("/custom-flowers", api.ListCustomFlowers)

		// 心情花园
		mood := group.Group("/mood")
		{
			mood.POST("/entries", api.RecordMood)
			mood.GET("/entries/:date", api.GetMoodEntry)
			mood.GET("/today", api.GetTodayMood)
			mood.GET("/recent", api.GetRecentMoods)
			mood.GET("/stats", api.GetMoodStats)
			mood.GET("/journal", api.GetMoodJournal)
			mood.POST("/import", api.ImportMoodGarden)
		}

		// 浇水花园
		watering := group.Group("/watering")
		{
			watering.POST("/water", api.WaterFlower)
			watering.GET("/today", api.GetTodayWatering)
			watering.GET("/recent", api.GetRecentWatering)
			watering.GET("/stats", api.GetWateringStats)
		}
	}

	return r
}
