package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for generated links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:reelscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Catalog CatalogConfig `yaml:"catalog" json:"catalog" jsonschema:"description=External catalog service configuration"`

	Recommend RecommendConfig `yaml:"recommend" json:"recommend" jsonschema:"description=Recommendation engine configuration"`
}

// CatalogConfig holds catalog service client settings
type CatalogConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=Catalog API base URL"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=Catalog API key (can use environment variable)"`
	Language string        `yaml:"language" json:"language" jsonschema:"default=en-US,description=Preferred language for catalog metadata"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout per catalog request"`
}

// RecommendConfig holds recommendation engine settings
type RecommendConfig struct {
	DefaultLimit   int    `yaml:"default_limit" json:"default_limit" jsonschema:"default=20,minimum=1,description=Number of recommendations returned when no limit is given"`
	HistoryCap     int    `yaml:"history_cap" json:"history_cap" jsonschema:"default=500,minimum=1,description=Maximum consumption records kept per user"`
	TrendingWindow string `yaml:"trending_window" json:"trending_window" jsonschema:"default=day,description=Trending window (day or week)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:reelscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for catalog
	if cfg.Catalog.Language == "" {
		cfg.Catalog.Language = "en-US"
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 10 * time.Second
	}

	// set defaults for recommendations
	if cfg.Recommend.DefaultLimit == 0 {
		cfg.Recommend.DefaultLimit = 20
	}
	if cfg.Recommend.HistoryCap == 0 {
		cfg.Recommend.HistoryCap = 500
	}
	if cfg.Recommend.TrendingWindow == "" {
		cfg.Recommend.TrendingWindow = "day"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate catalog config
	if cfg.Catalog.Endpoint == "" {
		return fmt.Errorf("catalog.endpoint is required")
	}
	if cfg.Catalog.Timeout < time.Second {
		return fmt.Errorf("catalog.timeout must be at least 1 second")
	}

	// validate recommendation config
	if cfg.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be at least 1")
	}
	if cfg.Recommend.HistoryCap < 1 {
		return fmt.Errorf("recommend.history_cap must be at least 1")
	}
	if cfg.Recommend.TrendingWindow != "day" && cfg.Recommend.TrendingWindow != "week" {
		return fmt.Errorf("recommend.trending_window must be day or week")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the base URL for generated links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetCatalogConfig returns catalog client configuration
func (c *Config) GetCatalogConfig() CatalogConfig {
	return c.Catalog
}

// GetRecommendConfig returns recommendation engine configuration
func (c *Config) GetRecommendConfig() RecommendConfig {
	return c.Recommend
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
