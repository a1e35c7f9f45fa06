package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// Origin allowed to call the API from a browser.
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		// Access token lifetime in minutes.
		TTL int `yaml:"ttl"`
		// Refresh token lifetime in hours.
		RefreshTTL int `yaml:"refresh_ttl"`
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type"` // local, minio
		BasePath  string `yaml:"base_path"`
		Bucket    string `yaml:"bucket"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"storage"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Alerts struct {
		// Staff mailbox that receives certificate expiry alerts.
		Recipient string `yaml:"recipient"`
		// Look-ahead window for the expiring_soon band, in days.
		ExpiryLookAheadDays int `yaml:"expiry_look_ahead_days"`
		// Worker sweep interval in minutes.
		SweepIntervalMinutes int `yaml:"sweep_interval_minutes"`
	} `yaml:"alerts"`

	Seed struct {
		Enabled       bool   `yaml:"enabled"`
		AdminEmail    string `yaml:"admin_email"`
		AdminPassword string `yaml:"admin_password"`
	} `yaml:"seed"`
}

// Load reads config.yaml (path from CONFIG_PATH, default config/config.yaml),
// then applies environment overrides. A missing file is fine as long as the
// required values arrive via environment.
func Load() (*Config, error) {
	// Best-effort .env preload for local development.
	_ = godotenv.Load()

	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database url is not configured (DATABASE_URL)")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (JWT_SECRET)")
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Server.CORSOrigin = "*"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 30 * 24
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Email.SMTPPort = 587
	cfg.Email.UseTLS = true
	cfg.Alerts.ExpiryLookAheadDays = 28
	cfg.Alerts.SweepIntervalMinutes = 60
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("STORAGE_BASE_PATH"); v != "" {
		cfg.Storage.BasePath = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.Storage.Endpoint = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.Storage.Bucket = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.Storage.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.Storage.SecretKey = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("ALERT_RECIPIENT"); v != "" {
		cfg.Alerts.Recipient = v
	}
}

// AccessTTL returns the access token lifetime.
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

// RefreshTTL returns the refresh token lifetime.
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTL) * time.Hour
}

// ExpiryLookAhead returns the expiring_soon window.
func (c *Config) ExpiryLookAhead() time.Duration {
	return time.Duration(c.Alerts.ExpiryLookAheadDays) * 24 * time.Hour
}

// SweepInterval returns the certificate worker interval.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Alerts.SweepIntervalMinutes) * time.Minute
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
