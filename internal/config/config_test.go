package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  address: ":9000"
database:
  url: "postgres://file/db"
feed:
  search_ceiling_meters: 3000
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()

	if cfg.Server.Address != ":9000" {
		t.Errorf("address mismatch: %q", cfg.Server.Address)
	}
	if cfg.Database.URL != "postgres://env/db" {
		t.Errorf("env must override file, got %q", cfg.Database.URL)
	}
	if cfg.Feed.SearchCeilingMeters != 3000 {
		t.Errorf("search ceiling mismatch: %v", cfg.Feed.SearchCeilingMeters)
	}
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()

	if cfg.Feed.SearchCeilingMeters != 5000 {
		t.Errorf("default search ceiling mismatch: %v", cfg.Feed.SearchCeilingMeters)
	}
	if cfg.Posts.MinRadiusMeters != 100 || cfg.Posts.MaxRadiusMeters != 15000 {
		t.Errorf("default radius bounds mismatch: %v..%v", cfg.Posts.MinRadiusMeters, cfg.Posts.MaxRadiusMeters)
	}
	if cfg.Redis.GeoKey != "posts:geo" {
		t.Errorf("default geo key mismatch: %q", cfg.Redis.GeoKey)
	}
}
