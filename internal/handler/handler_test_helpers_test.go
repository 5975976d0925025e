package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moodgarden/internal/db"
	"github.com/moodgarden/internal/flower"
	"github.com/moodgarden/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.GardenSlot{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	generator := flower.NewGenerator(
		flower.WithClock(func() time.Time { return testNow }),
		flower.WithLocation(time.UTC),
	)
	api := NewAPI(service.NewGormSlotStore(gdb), generator, nil)

	return api, func() {
		gdb.Exec("DELETE FROM garden_slots")
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func newTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		encoded, _ := json.Marshal(v)
		reader = bytes.NewReader(encoded)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
