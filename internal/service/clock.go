package service

import (
	"time"

	"github.com/moodgarden/internal/flower"
)

// Clock 提供花园时区下的当前时间
type Clock interface {
	Now() time.Time
}

// dayKey 返回 t 所在日期往前 offset 天的日期键。取当天正午计算，避免夏令时切换导致跳日。
func dayKey(t time.Time, offset int) string {
	return dayAt(t, offset).Format(flower.DateLayout)
}

func dayAt(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-offset, 12, 0, 0, 0, t.Location())
}

// parseDateKey 校验日期键格式 YYYY-MM-DD
func parseDateKey(date string) (time.Time, error) {
	parsed, err := time.Parse(flower.DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}
