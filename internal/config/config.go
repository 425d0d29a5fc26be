package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		GeoKey   string `yaml:"geo_key"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Feed struct {
		SearchCeilingMeters float64 `yaml:"search_ceiling_meters"`
		CandidateLimit      int     `yaml:"candidate_limit"`
	} `yaml:"feed"`
	Posts struct {
		MinRadiusMeters float64 `yaml:"min_radius_meters"`
		MaxRadiusMeters float64 `yaml:"max_radius_meters"`
	} `yaml:"posts"`
	Geo struct {
		ReconcileIntervalMinutes int `yaml:"reconcile_interval_minutes"`
	} `yaml:"geo"`
}

// LoadConfig reads the yaml config (path overridable via CONFIG_PATH) and
// applies environment overrides. A missing file falls back to defaults so the
// service can run from env alone.
func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not read config file %s: %v", path, err)
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.GeoKey == "" {
		cfg.Redis.GeoKey = "posts:geo"
	}
	if cfg.Feed.SearchCeilingMeters == 0 {
		cfg.Feed.SearchCeilingMeters = 5000
	}
	if cfg.Feed.CandidateLimit == 0 {
		cfg.Feed.CandidateLimit = 200
	}
	if cfg.Posts.MinRadiusMeters == 0 {
		cfg.Posts.MinRadiusMeters = 100
	}
	if cfg.Posts.MaxRadiusMeters == 0 {
		cfg.Posts.MaxRadiusMeters = 15000
	}
	if cfg.Geo.ReconcileIntervalMinutes == 0 {
		cfg.Geo.ReconcileIntervalMinutes = 30
	}
	return cfg
}
