package service

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/moodgarden/internal/db"
	"go.uber.org/zap"
)

// Stage 是浇水花园中花朵的成长阶段，按 seed < sprout < small < bloom 排序
type Stage string

const (
	StageSeed   Stage = "seed"
	StageSprout Stage = "sprout"
	StageSmall  Stage = "small"
	StageBloom  Stage = "bloom"
)

const (
	sproutThreshold          = 1
	smallThreshold           = 3
	bloomThreshold           = 5
	veteranGardenerThreshold = 5
)

// Stages 按成长顺序列出全部阶段
var Stages = []Stage{StageSeed, StageSprout, StageSmall, StageBloom}

// Rank 返回阶段序号，未知阶段视为 seed
func (s Stage) Rank() int {
	if idx := slices.Index(Stages, s); idx >= 0 {
		return idx
	}
	return 0
}

// WateringRecord 记录某一天的浇水状态
// Watered 是当天的浇水闩锁；WaterCount 与 Stage 跨天累积
type WateringRecord struct {
	Date       string `json:"date"`
	Stage      Stage  `json:"stage"`
	Watered    bool   `json:"watered"`
	WaterCount int    `json:"waterCount"`
}

// Water 执行一次浇水转换：已浇水则原样返回；否则计数加一，并按阈值最多推进一个阶段。
// grew 表示阶段是否发生了变化。
func (r WateringRecord) Water() (next WateringRecord, grew bool) {
	if r.Watered {
		return r, false
	}

	next = r
	next.Watered = true
	next.WaterCount = r.WaterCount + 1
	if next.Stage == "" {
		next.Stage = StageSeed
	}
	before := next.Stage

	switch {
	case next.Stage == StageSeed && next.WaterCount >= sproutThreshold:
		next.Stage = StageSprout
	case next.Stage == StageSprout && next.WaterCount >= smallThreshold:
		next.Stage = StageSmall
	case next.Stage == StageSmall && next.WaterCount >= bloomThreshold:
		next.Stage = StageBloom
	}

	return next, next.Stage != before
}

// Progress 返回成长进度 min(waterCount/5, 1)
func (r WateringRecord) Progress() float64 {
	return min(float64(r.WaterCount)/bloomThreshold, 1)
}

func emptyRecord(date string) WateringRecord {
	return WateringRecord{Date: date, Stage: StageSeed}
}

// WaterResult 是一次浇水操作的结果
type WaterResult struct {
	Record WateringRecord
	// Accepted 为 false 表示今天已经浇过水，本次为空操作
	Accepted bool
	Grew     bool
}

// WateringStats 汇总浇水花园统计
type WateringStats struct {
	TotalWatered    int
	TotalBloomed    int
	CurrentStreak   int
	TotalWaterCount int
	VeteranGardener bool
}

// RecentWateringDay 是最近一周视图中的一天
type RecentWateringDay struct {
	RecentDay
	Record WateringRecord
}

// WateringService 维护“日期 -> WateringRecord”的浇水花园
type WateringService struct {
	store  SlotStore
	clock  Clock
	logger *zap.Logger

	mu      sync.Mutex
	records map[string]WateringRecord
	loaded  bool
}

// NewWateringService 构造 WateringService
func NewWateringService(store SlotStore, clock Clock, logger *zap.Logger) *WateringService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WateringService{store: store, clock: clock, logger: logger}
}

func (s *WateringService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	raw, ok, err := s.store.Get(ctx, db.SlotKeyWateringGarden)
	if err != nil {
		return fmt.Errorf("load watering garden: %w", err)
	}

	var records map[string]WateringRecord
	if ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &records); err != nil {
			s.logger.Warn("watering garden slot is malformed, starting empty",
				zap.String("slot", db.SlotKeyWateringGarden), zap.Error(err))
			records = nil
		}
	}
	if records == nil {
		records = make(map[string]WateringRecord)
	}

	s.records = records
	s.loaded = true
	return nil
}

// todayRecord 返回今天的记录；今天尚无记录时沿用最近一条更早记录的阶段与累计次数
func (s *WateringService) todayRecord(today string) WateringRecord {
	if record, ok := s.records[today]; ok {
		return record
	}

	latest := ""
	for date := range s.records {
		if date < today && date > latest {
			latest = date
		}
	}
	if latest == "" {
		return emptyRecord(today)
	}

	prev := s.records[latest]
	return WateringRecord{Date: today, Stage: prev.Stage, WaterCount: prev.WaterCount}
}

// Water 为今天浇水；同一天重复浇水是空操作，不返回错误
func (s *WateringService) Water(ctx context.Context) (WaterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return WaterResult{}, err
	}

	today := dayKey(s.clock.Now(), 0)
	current := s.todayRecord(today)
	if current.Watered {
		return WaterResult{Record: current}, nil
	}

	next, grew := current.Water()
	updated := maps.Clone(s.records)
	updated[today] = next

	payload, err := json.Marshal(updated)
	if err != nil {
		return WaterResult{}, fmt.Errorf("encode watering garden: %w", err)
	}
	if err := s.store.Set(ctx, db.SlotKeyWateringGarden, string(payload)); err != nil {
		return WaterResult{}, fmt.Errorf("persist watering garden: %w", err)
	}
	s.records = updated

	s.logger.Info("flower watered",
		zap.String("date", today),
		zap.String("stage", string(next.Stage)),
		zap.Int("water_count", next.WaterCount),
		zap.Bool("grew", grew))

	return WaterResult{Record: next, Accepted: true, Grew: grew}, nil
}

// Today 返回今天的记录（尚未浇水时为沿用后的记录）
func (s *WateringService) Today(ctx context.Context) (WateringRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return WateringRecord{}, err
	}
	return s.todayRecord(dayKey(s.clock.Now(), 0)), nil
}

// Records 返回当前花园的一份拷贝
func (s *WateringService) Records(ctx context.Context) (map[string]WateringRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return maps.Clone(s.records), nil
}

// Recent 返回截止今天的最近 days 天，今天使用沿用后的记录，其余缺失日期为空记录
func (s *WateringService) Recent(ctx context.Context, days int) ([]RecentWateringDay, error) {
	if days <= 0 {
		days = RecentWindowDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := make([]RecentWateringDay, 0, days)
	for _, day := range recentDays(now, days) {
		record, ok := s.records[day.Date]
		switch {
		case day.IsToday:
			record = s.todayRecord(day.Date)
		case !ok:
			record = emptyRecord(day.Date)
		}
		result = append(result, RecentWateringDay{RecentDay: day, Record: record})
	}
	return result, nil
}

// Stats 计算浇水天数、盛开数、连续浇水天数与总浇水次数。
// WaterCount 跨天累积，总浇水次数取最大的累计值；盛开数按日期升序统计进入 bloom 的次数。
func (s *WateringService) Stats(ctx context.Context) (WateringStats, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return WateringStats{}, err
	}

	var stats WateringStats
	prev := StageSeed
	for _, date := range slices.Sorted(maps.Keys(records)) {
		record := records[date]
		if record.Watered {
			stats.TotalWatered++
		}
		if record.Stage == StageBloom && prev.Rank() < StageBloom.Rank() {
			stats.TotalBloomed++
		}
		prev = record.Stage
		stats.TotalWaterCount = max(stats.TotalWaterCount, record.WaterCount)
	}
	stats.CurrentStreak = currentStreak(s.clock.Now(), func(date string) bool {
		return records[date].Watered
	})
	stats.VeteranGardener = stats.TotalBloomed >= veteranGardenerThreshold

	return stats, nil
}
