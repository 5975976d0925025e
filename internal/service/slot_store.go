package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/moodgarden/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotStore 是一个按名称存取整段字符串的持久化槽位
// ok=false 表示槽位不存在
type SlotStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// GormSlotStore 基于 garden_slots 表实现 SlotStore
type GormSlotStore struct {
	db *gorm.DB
}

// NewGormSlotStore 构造 GormSlotStore
func NewGormSlotStore(gdb *gorm.DB) *GormSlotStore {
	return &GormSlotStore{db: gdb}
}

// Get 读取槽位，不存在时返回 ok=false
func (s *GormSlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var slot db.GardenSlot
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get slot %s: %w", key, err)
	}
	return slot.Value, true, nil
}

// Set 以 upsert 方式整体覆盖槽位内容
func (s *GormSlotStore) Set(ctx context.Context, key, value string) error {
	slot := db.GardenSlot{Key: key, Value: value}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&slot).Error; err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// MemorySlotStore 是进程内的 SlotStore，用于测试与临时会话
type MemorySlotStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemorySlotStore 构造空的 MemorySlotStore
func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{values: make(map[string]string)}
}

func (s *MemorySlotStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemorySlotStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
