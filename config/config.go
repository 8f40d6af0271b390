package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port    string `yaml:"port"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// Enabled reports whether a scrape-history database has been configured at all.
// The service runs fine without one; history logging just becomes a no-op.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != "" && d.DBName != ""
}

type CacheConfig struct {
	Dir string `yaml:"dir"`
}

type ScraperConfig struct {
	FetchTimeoutStr   string `yaml:"fetch_timeout"`
	BrowserTimeoutStr string `yaml:"browser_timeout"`
	RedditMinDelayStr string `yaml:"reddit_min_delay"`
	UserAgent         string `yaml:"user_agent"`
	BrowserEnabled    bool   `yaml:"browser_enabled"`

	FetchTimeout   time.Duration `yaml:"-"`
	BrowserTimeout time.Duration `yaml:"-"`
	RedditMinDelay time.Duration `yaml:"-"`
}

type CronConfig struct {
	Secret string `yaml:"secret"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
	Scraper  ScraperConfig  `yaml:"scraper"`
	Cron     CronConfig     `yaml:"cron"`
}

var AppConfig Config

// SetupEnvironment loads .env (if present) and configures zerolog output and level.
func SetupEnvironment() {
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	switch strings.ToLower(os.Getenv("LOGLEVEL")) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file")
	} else {
		log.Debug().Msg("No .env file found; using existing environment")
	}
}

// LoadConfig reads the YAML config file, applies environment overrides and
// parses duration strings. Environment variables always win over the file so
// deployments can keep secrets out of it.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides()
	applyDefaults()

	if err := parseDurations(); err != nil {
		return err
	}

	if AppConfig.Cache.Dir != "" {
		if err := os.MkdirAll(AppConfig.Cache.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory %s: %w", AppConfig.Cache.Dir, err)
		}
	}

	return nil
}

func applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		AppConfig.Server.BaseURL = v
	}
	if v := os.Getenv("CRON_SECRET"); v != "" {
		AppConfig.Cron.Secret = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		AppConfig.Database.Host = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		AppConfig.Database.Password = v
	}
}

func applyDefaults() {
	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}
	if AppConfig.Server.BaseURL == "" {
		AppConfig.Server.BaseURL = "http://localhost:" + AppConfig.Server.Port
	}
	if AppConfig.Cache.Dir == "" {
		AppConfig.Cache.Dir = filepath.Join(".", "cache")
	}
	if AppConfig.Cron.Secret == "" {
		// Dev placeholder, same default the cron endpoint documents.
		AppConfig.Cron.Secret = "dev-secret"
	}
	if AppConfig.Scraper.UserAgent == "" {
		AppConfig.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
}

func parseDurations() error {
	var err error
	if AppConfig.Scraper.FetchTimeout, err = parseDurationOr(AppConfig.Scraper.FetchTimeoutStr, 10*time.Second); err != nil {
		return fmt.Errorf("failed to parse fetch_timeout: %w", err)
	}
	if AppConfig.Scraper.BrowserTimeout, err = parseDurationOr(AppConfig.Scraper.BrowserTimeoutStr, 30*time.Second); err != nil {
		return fmt.Errorf("failed to parse browser_timeout: %w", err)
	}
	if AppConfig.Scraper.RedditMinDelay, err = parseDurationOr(AppConfig.Scraper.RedditMinDelayStr, 2*time.Second); err != nil {
		return fmt.Errorf("failed to parse reddit_min_delay: %w", err)
	}
	return nil
}

func parseDurationOr(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}
