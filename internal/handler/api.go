package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/flower"
	"github.com/moodgarden/internal/service"
	"go.uber.org/zap"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	moods     *service.MoodGardenService
	watering  *service.WateringService
	generator *flower.Generator
	logger    *zap.Logger
}

// NewAPI constructs a handler set over one slot store. The generator doubles as the
// watering garden clock so both gardens agree on "today".
func NewAPI(store service.SlotStore, generator *flower.Generator, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &API{
		moods:     service.NewMoodGardenService(store, generator, logger.Named("mood")),
		watering:  service.NewWateringService(store, generator, logger.Named("watering")),
		generator: generator,
		logger:    logger,
	}
}

// Ping 健康检查
func (a *API) Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
