package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm/logger"
)

func TestOpenCreatesParentDirAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "garden.db")

	gdb, err := Open(path, logger.Silent)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	defer sqlDB.Close()

	if !gdb.Migrator().HasTable(&GardenSlot{}) {
		t.Fatal("expected garden_slots table to exist")
	}

	slot := GardenSlot{Key: SlotKeyMoodGarden, Value: "{}"}
	if err := gdb.Create(&slot).Error; err != nil {
		t.Fatalf("failed to insert slot: %v", err)
	}

	dup := GardenSlot{Key: SlotKeyMoodGarden, Value: "{}"}
	if err := gdb.Create(&dup).Error; err == nil {
		t.Fatal("expected unique key violation for duplicate slot")
	}
}

func TestEnsureParentDirRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	gdb, err := Open(file, logger.Silent)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.Close()
	}

	if err := ensureParentDir(filepath.Join(file, "garden.db")); err == nil {
		t.Fatal("expected error when parent path is a file")
	}
}
