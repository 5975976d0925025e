package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/service"
)

const maxRecentDays = 31

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// parseDaysQuery 读取 ?days=，缺省或非法时使用最近一周
func parseDaysQuery(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query("days"))
	if raw == "" {
		return service.RecentWindowDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return service.RecentWindowDays
	}
	return min(days, maxRecentDays)
}
