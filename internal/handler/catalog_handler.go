package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/flower"
)

// ListMoods 返回心情目录
func (a *API) ListMoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moods": flower.Moods})
}

// ListCustomFlowers 返回当前生效的自定义花朵库
func (a *API) ListCustomFlowers(c *gin.Context) {
	flowers := a.generator.CustomFlowers()
	if flowers == nil {
		flowers = []flower.CustomFlower{}
	}
	c.JSON(http.StatusOK, gin.H{"flowers": flowers})
}
