package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
	"github.com/spf13/viper"
)

type Config struct {
	Seed           int64          `json:"seed" mapstructure:"seed"`
	ExportPath     string         `json:"export_path" mapstructure:"export_path"`
	OrderYearStart int            `json:"order_year_start" mapstructure:"order_year_start"`
	OrderYearEnd   int            `json:"order_year_end" mapstructure:"order_year_end"`
	Counts         dataset.Counts `json:"counts" mapstructure:"counts"`
	Database       Database       `json:"database" mapstructure:"database"`
}

// Database holds connection parameters. URLEnv names an environment
// variable carrying a full connection URL; when it is set it wins over the
// individual fields.
type Database struct {
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
	Name     string `json:"name" mapstructure:"name"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "db/export"
	}
	if cfg.OrderYearStart == 0 {
		cfg.OrderYearStart = 2023
	}
	if cfg.OrderYearEnd == 0 {
		cfg.OrderYearEnd = 2024
	}
	if !viper.IsSet("counts") {
		cfg.Counts = dataset.DefaultCounts()
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OrderYearEnd < c.OrderYearStart {
		return fmt.Errorf("order_year_end (%d) must not precede order_year_start (%d)",
			c.OrderYearEnd, c.OrderYearStart)
	}
	return c.Counts.Validate()
}

// GetDatabaseURL resolves the connection URL: the URLEnv environment
// variable when present, otherwise a URL assembled from the individual
// connection fields.
func (c *Config) GetDatabaseURL() (string, error) {
	if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
		return dbURL, nil
	}

	db := c.Database
	if db.Host == "" || db.User == "" || db.Name == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s and host/user/name are not configured", db.URLEnv)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     fmt.Sprintf("%s:%s", db.Host, db.Port),
		Path:     "/" + db.Name,
		RawQuery: "sslmode=" + db.SSLMode,
	}
	return u.String(), nil
}
