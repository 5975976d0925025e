package db

import "gorm.io/gorm"

// GardenSlot 存储花园状态的键值槽位，每个槽位保存一整份序列化后的花园映射。
type GardenSlot struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (GardenSlot) TableName() string {
	return "garden_slots"
}

const (
	// SlotKeyMoodGarden 表示心情花园的状态槽位。
	SlotKeyMoodGarden = "dreamFlowerGarden"
	// SlotKeyWateringGarden 表示浇水花园的状态槽位。
	SlotKeyWateringGarden = "flowerGarden"
)
