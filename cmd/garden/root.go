package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moodgarden/internal/config"
	"github.com/moodgarden/internal/db"
	"github.com/moodgarden/internal/flower"
	"github.com/moodgarden/internal/locale"
	"github.com/moodgarden/internal/logging"
	"github.com/moodgarden/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

type cliOptions struct {
	dbPath  string
	lang    string
	verbose bool
	memory  bool

	// now 仅供测试固定时钟
	now func() time.Time
}

// garden 是一次命令执行期间使用的服务集合
type garden struct {
	moods    *service.MoodGardenService
	watering *service.WateringService
	language string
	logger   *zap.Logger
	close    func()
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:           "garden",
		Short:         "Record a daily mood and grow a flower garden from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", cfg.DatabasePath, "path to the sqlite database")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", "", "label language (zh|en), defaults to $LANG")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.memory, "memory", false, "keep the garden in memory for this run only")

	rootCmd.AddCommand(
		newMoodsCmd(opts),
		newRecordCmd(opts, cfg),
		newTodayCmd(opts, cfg),
		newWaterCmd(opts, cfg),
		newStatsCmd(opts, cfg),
		newRecentCmd(opts, cfg),
		newJournalCmd(opts, cfg),
	)
	return rootCmd
}

func (o *cliOptions) language() string {
	return locale.Resolve(o.lang, envLanguage()).Language
}

// envLanguage 读取 LC_ALL / LANG，例如 en_US.UTF-8
func envLanguage() string {
	for _, key := range []string{"LC_ALL", "LANG"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

// open 按命令行参数构造存储、生成器与服务
func (o *cliOptions) open(cfg config.AppConfig) (*garden, error) {
	level, format := "warn", "console"
	if o.verbose {
		level = "debug"
	}
	log, err := logging.New(level, format)
	if err != nil {
		return nil, err
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	customFlowers, err := cfg.CustomFlowers()
	if err != nil {
		return nil, err
	}

	var store service.SlotStore
	closeStore := func() {}
	if o.memory {
		store = service.NewMemorySlotStore()
	} else {
		gormLevel := logger.Silent
		if o.verbose {
			gormLevel = logger.Info
		}
		gdb, err := db.Open(o.dbPath, gormLevel)
		if err != nil {
			return nil, fmt.Errorf("open garden database: %w", err)
		}
		store = service.NewGormSlotStore(gdb)
		closeStore = func() {
			if sqlDB, err := gdb.DB(); err == nil {
				sqlDB.Close()
			}
		}
	}

	genOpts := []flower.Option{flower.WithLocation(location), flower.WithCustomFlowers(customFlowers)}
	if o.now != nil {
		genOpts = append(genOpts, flower.WithClock(o.now))
	}
	generator := flower.NewGenerator(genOpts...)

	log.Debug("garden opened",
		zap.String("db", o.dbPath),
		zap.Bool("memory", o.memory),
		zap.String("timezone", generator.Location().String()))

	return &garden{
		moods:    service.NewMoodGardenService(store, generator, log),
		watering: service.NewWateringService(store, generator, log),
		language: o.language(),
		logger:   log,
		close: func() {
			closeStore()
			_ = log.Sync()
		},
	}, nil
}
