package service

import (
	"slices"
	"time"
)

const streakWindowDays = 365

// RankedCount 是一次频次统计的结果项
type RankedCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// currentStreak 从今天开始向前最多 365 天统计连续满足 qualifies 的天数，今天不满足即为 0。
func currentStreak(today time.Time, qualifies func(date string) bool) int {
	streak := 0
	for i := 0; i < streakWindowDays; i++ {
		if !qualifies(dayKey(today, i)) {
			break
		}
		streak++
	}
	return streak
}

// rankByCount 统计 keys 中各值出现次数并按次数降序排列；次数相同时保持首次出现的顺序。
func rankByCount(keys []string) []RankedCount {
	index := make(map[string]int)
	ranked := make([]RankedCount, 0)
	for _, key := range keys {
		if pos, ok := index[key]; ok {
			ranked[pos].Count++
			continue
		}
		index[key] = len(ranked)
		ranked = append(ranked, RankedCount{Key: key, Count: 1})
	}

	slices.SortStableFunc(ranked, func(a, b RankedCount) int {
		return b.Count - a.Count
	})
	return ranked
}

func topKeys(ranked []RankedCount, n int) []string {
	keys := make([]string, 0, n)
	for i := 0; i < len(ranked) && i < n; i++ {
		keys = append(keys, ranked[i].Key)
	}
	return keys
}

// RecentDay 描述最近 N 天中的一天
type RecentDay struct {
	Date    string
	Weekday time.Weekday
	IsToday bool
}

// recentDays 返回截止今天的最近 n 天，最早的在前
func recentDays(today time.Time, n int) []RecentDay {
	days := make([]RecentDay, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := dayAt(today, i)
		days = append(days, RecentDay{
			Date:    dayKey(today, i),
			Weekday: day.Weekday(),
			IsToday: i == 0,
		})
	}
	return days
}
