package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/moodgarden/internal/db"
	"github.com/moodgarden/internal/flower"
	"go.uber.org/zap"
)

const (
	// MaxNoteUnits 是单条笔记允许的最大长度，按 UTF-16 码元计，emoji 等代理对占两个
	MaxNoteUnits = 200
	// RecentWindowDays 是“最近一周”视图的天数
	RecentWindowDays = 7

	beautifulGardenThreshold = 7
	topKeywordLimit          = 3
)

var (
	// ErrUnknownMood 在心情 ID 不在目录中时返回
	ErrUnknownMood = errors.New("unknown mood")
	// ErrEmptyNote 在笔记去除空白后为空时返回
	ErrEmptyNote = errors.New("note is required")
	// ErrNoteTooLong 在笔记超过 MaxNoteUnits 时返回
	ErrNoteTooLong = errors.New("note is too long")
	// ErrEntryNotFound 在指定日期没有记录时返回
	ErrEntryNotFound = errors.New("entry not found")
	// ErrInvalidDate 在日期键不是 YYYY-MM-DD 时返回
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidImport 在导入内容无法解析时返回
	ErrInvalidImport = errors.New("invalid garden import")
)

// MoodGardenService 维护“日期 -> FlowerEntry”的心情花园
// 状态在首次使用时从槽位加载一次，之后每次修改都整体写回槽位
type MoodGardenService struct {
	store     SlotStore
	generator *flower.Generator
	logger    *zap.Logger

	mu      sync.Mutex
	entries map[string]flower.FlowerEntry
	loaded  bool
}

// MoodGardenStats 汇总心情花园统计
type MoodGardenStats struct {
	TotalFlowers    int
	CurrentStreak   int
	TopMood         string
	TopKeywords     []string
	MoodCounts      []RankedCount
	KeywordCounts   []RankedCount
	BeautifulGarden bool
}

// RecentMoodDay 是最近一周视图中的一天，Entry 为空表示未记录
type RecentMoodDay struct {
	RecentDay
	Entry *flower.FlowerEntry
}

// NewMoodGardenService 构造 MoodGardenService
func NewMoodGardenService(store SlotStore, generator *flower.Generator, logger *zap.Logger) *MoodGardenService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodGardenService{
		store:     store,
		generator: generator,
		logger:    logger,
	}
}

// ensureLoaded 在持锁状态下加载槽位；槽位缺失或内容损坏时降级为空花园
func (s *MoodGardenService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	raw, ok, err := s.store.Get(ctx, db.SlotKeyMoodGarden)
	if err != nil {
		return fmt.Errorf("load mood garden: %w", err)
	}

	entries := make(map[string]flower.FlowerEntry)
	if ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			s.logger.Warn("mood garden slot is malformed, starting empty",
				zap.String("slot", db.SlotKeyMoodGarden), zap.Error(err))
			entries = nil
		}
	}
	if entries == nil {
		entries = make(map[string]flower.FlowerEntry)
	}

	s.entries = entries
	s.loaded = true
	return nil
}

func (s *MoodGardenService) persist(ctx context.Context, next map[string]flower.FlowerEntry) error {
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode mood garden: %w", err)
	}
	if err := s.store.Set(ctx, db.SlotKeyMoodGarden, string(payload)); err != nil {
		return fmt.Errorf("persist mood garden: %w", err)
	}
	s.entries = next
	return nil
}

// Record 为今天生成并保存一朵花，同一天再次记录会覆盖之前的条目
func (s *MoodGardenService) Record(ctx context.Context, moodID, note string) (flower.FlowerEntry, error) {
	mood, ok := flower.FindMood(moodID)
	if !ok {
		return flower.FlowerEntry{}, fmt.Errorf("%w: %s", ErrUnknownMood, moodID)
	}

	note = strings.TrimSpace(note)
	if note == "" {
		return flower.FlowerEntry{}, ErrEmptyNote
	}
	if noteLength(note) > MaxNoteUnits {
		return flower.FlowerEntry{}, fmt.Errorf("%w: max %d characters", ErrNoteTooLong, MaxNoteUnits)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return flower.FlowerEntry{}, err
	}

	entry, err := s.generator.Generate(mood, note)
	if err != nil {
		return flower.FlowerEntry{}, fmt.Errorf("generate flower: %w", err)
	}

	_, replaced := s.entries[entry.Date]
	next := maps.Clone(s.entries)
	next[entry.Date] = entry
	if err := s.persist(ctx, next); err != nil {
		return flower.FlowerEntry{}, err
	}

	s.logger.Info("mood recorded",
		zap.String("date", entry.Date),
		zap.String("mood", mood.ID),
		zap.Strings("keywords", entry.Keywords),
		zap.Bool("replaced", replaced),
		zap.Bool("custom_flower", entry.Flower.ImageURL != ""))

	return entry, nil
}

// Today 返回今天的条目
func (s *MoodGardenService) Today(ctx context.Context) (flower.FlowerEntry, error) {
	return s.Get(ctx, s.generator.Today())
}

// Get 按日期键读取条目
func (s *MoodGardenService) Get(ctx context.Context, date string) (flower.FlowerEntry, error) {
	if _, err := parseDateKey(date); err != nil {
		return flower.FlowerEntry{}, err
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return flower.FlowerEntry{}, err
	}

	entry, ok := entries[date]
	if !ok {
		return flower.FlowerEntry{}, ErrEntryNotFound
	}
	return entry, nil
}

// Entries 返回当前花园的一份拷贝
func (s *MoodGardenService) Entries(ctx context.Context) (map[string]flower.FlowerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return maps.Clone(s.entries), nil
}

// Recent 返回截止今天的最近 days 天
func (s *MoodGardenService) Recent(ctx context.Context, days int) ([]RecentMoodDay, error) {
	if days <= 0 {
		days = RecentWindowDays
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RecentMoodDay, 0, days)
	for _, day := range recentDays(s.generator.Now(), days) {
		item := RecentMoodDay{RecentDay: day}
		if entry, ok := entries[day.Date]; ok {
			item.Entry = &entry
		}
		result = append(result, item)
	}
	return result, nil
}

// Stats 计算花朵总数、连续天数以及常见心情和热门关键词
// 频次相同时按日期升序遍历中的首次出现顺序排列
func (s *MoodGardenService) Stats(ctx context.Context) (MoodGardenStats, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return MoodGardenStats{}, err
	}

	dates := slices.Sorted(maps.Keys(entries))
	moodNames := make([]string, 0, len(dates))
	keywords := make([]string, 0)
	for _, date := range dates {
		entry := entries[date]
		moodNames = append(moodNames, entry.Mood.Name)
		keywords = append(keywords, entry.Keywords...)
	}

	stats := MoodGardenStats{
		TotalFlowers: len(entries),
		CurrentStreak: currentStreak(s.generator.Now(), func(date string) bool {
			_, ok := entries[date]
			return ok
		}),
		MoodCounts:    rankByCount(moodNames),
		KeywordCounts: rankByCount(keywords),
	}
	if len(stats.MoodCounts) > 0 {
		stats.TopMood = stats.MoodCounts[0].Key
	}
	stats.TopKeywords = topKeys(stats.KeywordCounts, topKeywordLimit)
	stats.BeautifulGarden = stats.TotalFlowers >= beautifulGardenThreshold

	return stats, nil
}

// Import 用一份序列化的花园映射整体替换当前花园，返回导入条目数。
// 每个键必须是合法日期，条目日期以键为准。
func (s *MoodGardenService) Import(ctx context.Context, raw []byte) (int, error) {
	var incoming map[string]flower.FlowerEntry
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	next := make(map[string]flower.FlowerEntry, len(incoming))
	for date, entry := range incoming {
		if _, err := parseDateKey(date); err != nil {
			return 0, fmt.Errorf("%w: bad date key %q", ErrInvalidImport, date)
		}
		entry.Date = date
		if entry.Keywords == nil {
			entry.Keywords = []string{}
		}
		next[date] = entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	if err := s.persist(ctx, next); err != nil {
		return 0, err
	}

	s.logger.Info("mood garden imported", zap.Int("entries", len(next)))
	return len(next), nil
}

func noteLength(note string) int {
	return len(utf16.Encode([]rune(note)))
}
