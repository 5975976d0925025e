package handler

import (
	"bytes"
	"errors"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/moodgarden/internal/flower"
	"github.com/moodgarden/internal/locale"
	"github.com/moodgarden/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

const maxImportBytes = 4 << 20

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(goldhtml.WithHardWraps(), goldhtml.WithXHTML()),
	)
	journalSanitizer = bluemonday.UGCPolicy()
	// 笔记只保留纯文本
	notePolicy = bluemonday.StrictPolicy()
)

type recordMoodPayload struct {
	MoodID string `json:"mood_id" binding:"required"`
	Note   string `json:"note"`
}

type recentMoodDayPayload struct {
	Date    string              `json:"date"`
	Weekday string              `json:"weekday"`
	IsToday bool                `json:"isToday"`
	Entry   *flower.FlowerEntry `json:"entry"`
}

type moodStatsPayload struct {
	TotalFlowers    int                   `json:"totalFlowers"`
	CurrentStreak   int                   `json:"currentStreak"`
	TopMood         string                `json:"topMood"`
	TopKeywords     []string              `json:"topKeywords"`
	MoodCounts      []service.RankedCount `json:"moodCounts"`
	KeywordCounts   []service.RankedCount `json:"keywordCounts"`
	BeautifulGarden bool                  `json:"beautifulGarden"`
}

// sanitizeNote 去掉笔记中的 HTML 标签，并还原被转义的字符
func sanitizeNote(raw string) string {
	return strings.TrimSpace(html.UnescapeString(notePolicy.Sanitize(raw)))
}

// RecordMood 记录今天的心情并返回生成的花朵
func (a *API) RecordMood(c *gin.Context) {
	var payload recordMoodPayload
	if !bindJSON(c, &payload, pick(c, "Invalid request body", "请求参数错误")) {
		return
	}

	entry, err := a.moods.Record(c.Request.Context(), payload.MoodID, sanitizeNote(payload.Note))
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetTodayMood 返回今天的条目
func (a *API) GetTodayMood(c *gin.Context) {
	entry, err := a.moods.Today(c.Request.Context())
	if err != nil {
		a.handleGardenError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// GetMoodEntry 按日期返回条目
func (a *API) GetMoodEntry(c *gin.Context) {
	entry, err := a.moods.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		a.handleGardenError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// GetRecentMoods 返回最近几天的花园，最早的在前
func (a *API) GetRecentMoods(c *gin.Context) {
	days, err := a.moods.Recent(c.Request.Context(), parseDaysQuery(c))
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	language := requestLanguage(c)
	items := make([]recentMoodDayPayload, 0, len(days))
	for _, day := range days {
		items = append(items, recentMoodDayPayload{
			Date:    day.Date,
			Weekday: locale.WeekdayShort(language, day.Weekday),
			IsToday: day.IsToday,
			Entry:   day.Entry,
		})
	}

	c.JSON(http.StatusOK, gin.H{"days": items})
}

// GetMoodStats 返回心情花园统计
func (a *API) GetMoodStats(c *gin.Context) {
	stats, err := a.moods.Stats(c.Request.Context())
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": moodStatsPayload{
		TotalFlowers:    stats.TotalFlowers,
		CurrentStreak:   stats.CurrentStreak,
		TopMood:         stats.TopMood,
		TopKeywords:     stats.TopKeywords,
		MoodCounts:      stats.MoodCounts,
		KeywordCounts:   stats.KeywordCounts,
		BeautifulGarden: stats.BeautifulGarden,
	}})
}

// GetMoodJournal 导出 Markdown 日记，format=html 时渲染为净化后的 HTML
func (a *API) GetMoodJournal(c *gin.Context) {
	journal, err := a.moods.Journal(c.Request.Context())
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	if strings.EqualFold(strings.TrimSpace(c.Query("format")), "html") {
		rendered, err := renderMarkdown(journal)
		if err != nil {
			c.Error(err)
			respondError(c, http.StatusInternalServerError, pick(c, "Failed to render journal", "日记渲染失败"))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", rendered)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(journal))
}

// ImportMoodGarden 用浏览器导出的花园映射整体替换当前花园
func (a *API) ImportMoodGarden(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, pick(c, "Import is too large", "导入内容过大"))
			return
		}
		respondError(c, http.StatusBadRequest, pick(c, "Failed to read import", "导入内容读取失败"))
		return
	}

	imported, err := a.moods.Import(c.Request.Context(), body)
	if err != nil {
		a.handleGardenError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func renderMarkdown(content string) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return nil, err
	}
	return journalSanitizer.SanitizeBytes(buf.Bytes()), nil
}

func (a *API) handleGardenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownMood):
		respondError(c, http.StatusBadRequest, pick(c, "Unknown mood", "未知的心情"))
	case errors.Is(err, service.ErrEmptyNote):
		respondError(c, http.StatusBadRequest, pick(c, "Please write a few words about today", "请写下今天的心情"))
	case errors.Is(err, service.ErrNoteTooLong):
		respondError(c, http.StatusBadRequest, pick(c, "Note is too long", "笔记内容过长"))
	case errors.Is(err, service.ErrInvalidDate):
		respondError(c, http.StatusBadRequest, pick(c, "Invalid date", "日期格式无效"))
	case errors.Is(err, service.ErrInvalidImport):
		respondError(c, http.StatusBadRequest, pick(c, "Invalid garden data", "花园数据格式无效"))
	case errors.Is(err, service.ErrEntryNotFound):
		respondError(c, http.StatusNotFound, pick(c, "No flower recorded for this day", "这一天还没有花朵"))
	default:
		c.Error(err)
		a.logger.Error("garden operation failed", zap.String("request_id", requestID(c)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, pick(c, "Operation failed", "操作失败"))
	}
}
