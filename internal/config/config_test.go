package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moodgarden/internal/flower"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "DATABASE_PATH", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "GARDEN_TIMEZONE", "CUSTOM_FLOWERS_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr: %s", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "moodgarden.db" {
		t.Fatalf("unexpected database path: %s", cfg.DatabasePath)
	}
	if cfg.GinMode != "release" || cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location returned error: %v", err)
	}
	if loc != time.Local {
		t.Fatalf("expected local timezone, got %v", loc)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DATABASE_PATH", "  data/garden.db ")
	t.Setenv("GARDEN_TIMEZONE", "Asia/Shanghai")

	cfg := Load()
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("unexpected listen addr: %s", cfg.ListenAddr)
	}
	if cfg.DatabasePath != "data/garden.db" {
		t.Fatalf("expected trimmed path, got %q", cfg.DatabasePath)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location returned error: %v", err)
	}
	if loc.String() != "Asia/Shanghai" {
		t.Fatalf("unexpected location: %s", loc)
	}

	bad := AppConfig{TimeZone: "Mars/Olympus"}
	if _, err := bad.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestCustomFlowersFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowers.yaml")
	content := `flowers:
  - id: rain-jazz-003
    name: 雨夜爵士
    image_url: https://example.com/flowers/rain-jazz.svg
    tags: [雨天, 音乐]
    rarity: legendary
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	catalog, err := AppConfig{CustomFlowersPath: path}.CustomFlowers()
	if err != nil {
		t.Fatalf("CustomFlowers returned error: %v", err)
	}

	if len(catalog) != len(flower.CustomFlowers)+1 {
		t.Fatalf("expected builtin catalog plus one entry, got %d", len(catalog))
	}

	added := catalog[len(catalog)-1]
	if added.ID != "rain-jazz-003" || added.Rarity != flower.RarityLegendary || len(added.Tags) != 2 {
		t.Fatalf("unexpected entry: %+v", added)
	}
}

func TestCustomFlowersRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowers.yaml")
	content := "flowers:\n  - id: sunny-pop-002\n    image_url: https://example.com/x.svg\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	if _, err := (AppConfig{CustomFlowersPath: path}).CustomFlowers(); err == nil {
		t.Fatal("expected duplicate id error")
	}

	catalog, err := AppConfig{}.CustomFlowers()
	if err != nil {
		t.Fatalf("CustomFlowers returned error: %v", err)
	}
	if len(catalog) != len(flower.CustomFlowers) {
		t.Fatalf("expected builtin catalog only, got %d", len(catalog))
	}
}

func TestCustomFlowersRejectsUnknownRarity(t *testing.T) {
	for _, rarity := range []string{"Legendary", "epic"} {
		path := filepath.Join(t.TempDir(), "flowers.yaml")
		content := "flowers:\n  - id: moon-glow-004\n    image_url: https://example.com/moon.svg\n    rarity: " + rarity + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write yaml: %v", err)
		}

		if _, err := (AppConfig{CustomFlowersPath: path}).CustomFlowers(); err == nil {
			t.Fatalf("expected error for rarity %q", rarity)
		}
	}
}
