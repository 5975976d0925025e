package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/config"
	"github.com/moodgarden/internal/db"
	"github.com/moodgarden/internal/flower"
	"github.com/moodgarden/internal/handler"
	"github.com/moodgarden/internal/logging"
	"github.com/moodgarden/internal/router"
	"github.com/moodgarden/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	location, err := cfg.Location()
	if err != nil {
		logger.Fatal("invalid garden timezone", zap.String("timezone", cfg.TimeZone), zap.Error(err))
	}

	customFlowers, err := cfg.CustomFlowers()
	if err != nil {
		logger.Fatal("failed to load custom flowers", zap.String("path", cfg.CustomFlowersPath), zap.Error(err))
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.String("path", cfg.DatabasePath), zap.Error(err))
	}

	generator := flower.NewGenerator(
		flower.WithLocation(location),
		flower.WithCustomFlowers(customFlowers),
	)
	api := handler.NewAPI(service.NewGormSlotStore(db.DB), generator, logger)

	gin.SetMode(cfg.GinMode)
	r := router.SetupRouter(api, logger)

	logger.Info("mood garden listening",
		zap.String("addr", cfg.ListenAddr),
		zap.String("database", cfg.DatabasePath),
		zap.String("timezone", generator.Location().String()),
		zap.Int("custom_flowers", len(customFlowers)))

	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
