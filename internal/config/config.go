package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moodgarden/internal/flower"
	"gopkg.in/yaml.v3"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	GinMode           string
	LogLevel          string
	LogFormat         string
	TimeZone          string
	CustomFlowersPath string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOrDefault("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      envOrDefault("DATABASE_PATH", "moodgarden.db"),
		GinMode:           envOrDefault("GIN_MODE", "release"),
		LogLevel:          envOrDefault("LOG_LEVEL", "info"),
		LogFormat:         envOrDefault("LOG_FORMAT", "json"),
		TimeZone:          strings.TrimSpace(os.Getenv("GARDEN_TIMEZONE")),
		CustomFlowersPath: strings.TrimSpace(os.Getenv("CUSTOM_FLOWERS_PATH")),
	}
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

// Location 解析花园使用的时区，未配置时使用本地时区。
func (c AppConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.TimeZone, err)
	}
	return loc, nil
}

type customFlowerFile struct {
	Flowers []flower.CustomFlower `yaml:"flowers"`
}

// CustomFlowers 返回内置自定义花朵库，并追加 CustomFlowersPath 指向的 YAML 文件中的条目。
// 内置条目在前，文件条目按声明顺序追加；ID 重复或缺少图片链接的条目会被拒绝。
func (c AppConfig) CustomFlowers() ([]flower.CustomFlower, error) {
	catalog := make([]flower.CustomFlower, 0, len(flower.CustomFlowers))
	catalog = append(catalog, flower.CustomFlowers...)
	if c.CustomFlowersPath == "" {
		return catalog, nil
	}

	raw, err := os.ReadFile(c.CustomFlowersPath)
	if err != nil {
		return nil, fmt.Errorf("read custom flowers: %w", err)
	}

	var file customFlowerFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse custom flowers: %w", err)
	}

	seen := make(map[string]struct{}, len(catalog))
	for _, item := range catalog {
		seen[item.ID] = struct{}{}
	}

	for _, item := range file.Flowers {
		item.ID = strings.TrimSpace(item.ID)
		item.ImageURL = strings.TrimSpace(item.ImageURL)
		if item.ID == "" || item.ImageURL == "" {
			return nil, fmt.Errorf("custom flower %q: id and image_url are required", item.Name)
		}
		if !item.Rarity.Valid() {
			return nil, fmt.Errorf("custom flower %s: unknown rarity %q", item.ID, item.Rarity)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("custom flower %s: duplicate id", item.ID)
		}
		seen[item.ID] = struct{}{}
		catalog = append(catalog, item)
	}

	return catalog, nil
}
