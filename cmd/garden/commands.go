package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/moodgarden/internal/config"
	"github.com/moodgarden/internal/flower"
	"github.com/moodgarden/internal/locale"
	"github.com/moodgarden/internal/service"
	"github.com/spf13/cobra"
)

func newMoodsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the moods you can record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, mood := range flower.Moods {
				fmt.Fprintf(out, "%-11s %s %s\n", mood.ID, mood.Emoji, mood.Name)
			}
			return nil
		},
	}
}

func newRecordCmd(opts *cliOptions, cfg config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "record <mood-id> <note...>",
		Short: "Record today's mood and grow a flower",
		Long:  "Record today's mood with a short note. Recording again on the same day replaces the earlier flower.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer g.close()

			entry, err := g.moods.Record(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func newTodayCmd(opts *cliOptions, cfg config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's flower and watering state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer g.close()

			out := cmd.OutOrStdout()
			entry, err := g.moods.Today(cmd.Context())
			switch {
			case err == nil:
				printEntry(out, entry)
			case errors.Is(err, service.ErrEntryNotFound):
				fmt.Fprintln(out, locale.Pick(g.language, "No flower recorded today yet.", "今天还没有记录心情。"))
			default:
				return err
			}

			record, err := g.watering.Today(cmd.Context())
			if err != nil {
				return err
			}
			printWatering(out, g.language, record)
			return nil
		},
	}
}

func newWaterCmd(opts *cliOptions, cfg config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "water",
		Short: "Water today's flower",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer g.close()

			result, err := g.watering.Water(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !result.Accepted:
				fmt.Fprintln(out, locale.Pick(g.language, "Already watered today, come back tomorrow.", "今天已经浇过水了，明天再来吧。"))
			case result.Grew:
				fmt.Fprintln(out, locale.Pick(g.language, "Your flower grew!", "你的花长大了！"))
			default:
				fmt.Fprintln(out, locale.Pick(g.language, "Watered.", "浇水成功。"))
			}
			printWatering(out, g.language, result.Record)
			return nil
		},
	}
}

func newStatsCmd(opts *cliOptions, cfg config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show garden statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer g.close()

			moodStats, err := g.moods.Stats(cmd.Context())
			if err != nil {
				return err
			}
			wateringStats, err := g.watering.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lang := g.language
			fmt.Fprintf(out, "%s: %d\n", locale.Pick(lang, "Flowers", "花朵总数"), moodStats.TotalFlowers)
			fmt.Fprintf(out, "%s: %d\n", locale.Pick(lang, "Mood streak", "连续记录"), moodStats.CurrentStreak)
			if moodStats.TopMood != "" {
				fmt.Fprintf(out, "%s: %s\n", locale.Pick(lang, "Top mood", "最常见心情"), moodStats.TopMood)
			}
			if len(moodStats.TopKeywords) > 0 {
				fmt.Fprintf(out, "%s: %s\n", locale.Pick(lang, "Top keywords", "热门关键词"), strings.Join(moodStats.TopKeywords, "、"))
			}
			fmt.Fprintf(out, "%s: %d\n", locale.Pick(lang, "Days watered", "浇水天数"), wateringStats.TotalWatered)
			fmt.Fprintf(out, "%s: %d\n", locale.Pick(lang, "Flowers bloomed", "盛开花朵"), wateringStats.TotalBloomed)
			fmt.Fprintf(out, "%s: %d\n", locale.Pick(lang, "Watering streak", "连续浇水"), wateringStats.CurrentStreak)
			fmt.Fprintf(out, "%s: %d\n", locale.Pick(lang, "Total waterings", "总浇水次数"), wateringStats.TotalWaterCount)
			if moodStats.BeautifulGarden {
				fmt.Fprintln(out, locale.Pick(lang, "🏆 Beautiful garden", "🏆 美丽花园"))
			}
			if wateringStats.VeteranGardener {
				fmt.Fprintln(out, locale.Pick(lang, "🏆 Veteran gardener", "🏆 资深园丁"))
			}
			return nil
		},
	}
}

func newRecentCmd(opts *cliOptions, cfg config.AppConfig) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the last days of both gardens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer g.close()

			moodDays, err := g.moods.Recent(cmd.Context(), days)
			if err != nil {
				return err
			}
			wateringDays, err := g.watering.Recent(cmd.Context(), days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, day := range moodDays {
				flowerGlyph := "·"
				if day.Entry != nil {
					flowerGlyph = day.Entry.Flower.BaseEmoji
				}
				marker := " "
				if day.IsToday {
					marker = "*"
				}
				record := wateringDays[i].Record
				waterGlyph := "·"
				if record.Watered {
					waterGlyph = "💧"
				}
				fmt.Fprintf(out, "%s %s %s %s %s\n", marker, day.Date, locale.WeekdayShort(g.language, day.Weekday), flowerGlyph, waterGlyph)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", service.RecentWindowDays, "number of days to show")
	return cmd
}

func newJournalCmd(opts *cliOptions, cfg config.AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "journal",
		Short: "Export the mood garden as a markdown journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer g.close()

			journal, err := g.moods.Journal(cmd.Context())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), journal)
			return err
		},
	}
}

func printEntry(out io.Writer, entry flower.FlowerEntry) {
	fmt.Fprintf(out, "%s %s %s %s\n", entry.Date, entry.Mood.Emoji, entry.Mood.Name, entry.Flower.BaseEmoji)
	fmt.Fprintf(out, "  %s %s\n", entry.Flower.Aura, entry.Flower.Description)
	fmt.Fprintf(out, "  %s / %s  %s\n", entry.Flower.PrimaryColor, entry.Flower.SecondaryColor, strings.Join(entry.Flower.Decorations, ""))
	if entry.Flower.ImageURL != "" {
		fmt.Fprintf(out, "  %s\n", entry.Flower.ImageURL)
	}
}

func printWatering(out io.Writer, language string, record service.WateringRecord) {
	stage := string(record.Stage)
	fmt.Fprintf(out, "%s %s · %s (%d/5, %.0f%%)\n",
		locale.StageEmoji(stage),
		locale.StageLabel(language, stage),
		locale.StageDescription(language, stage),
		record.WaterCount,
		record.Progress()*100)
}
