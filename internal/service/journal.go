package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/moodgarden/internal/flower"
)

const journalTitle = "心情花园日记"

// Journal 将花园导出为 Markdown 日记，日期新的在前
func (s *MoodGardenService) Journal(ctx context.Context) (string, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return "", err
	}

	dates := slices.Sorted(maps.Keys(entries))
	slices.Reverse(dates)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", journalTitle)
	if len(dates) == 0 {
		b.WriteString("\n还没有记录。\n")
		return b.String(), nil
	}

	for _, date := range dates {
		writeJournalEntry(&b, entries[date])
	}
	return b.String(), nil
}

func writeJournalEntry(b *strings.Builder, entry flower.FlowerEntry) {
	fmt.Fprintf(b, "\n## %s %s %s\n\n", entry.Date, entry.Mood.Emoji, entry.Mood.Name)
	fmt.Fprintf(b, "%s %s %s\n\n", entry.Flower.Aura, entry.Flower.BaseEmoji, entry.Flower.Description)

	for _, line := range strings.Split(entry.Note, "\n") {
		fmt.Fprintf(b, "> %s\n", line)
	}

	if len(entry.Flower.Decorations) > 0 {
		fmt.Fprintf(b, "\n装饰：%s\n", strings.Join(entry.Flower.Decorations, " "))
	}
	if len(entry.Keywords) > 0 {
		fmt.Fprintf(b, "\n关键词：%s\n", strings.Join(entry.Keywords, "、"))
	}
	if entry.Flower.ImageURL != "" {
		fmt.Fprintf(b, "\n![%s](%s)\n", entry.Flower.Description, entry.Flower.ImageURL)
	}
}
