package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTargetURL = "https://www.cmegroup.com/markets/metals/precious/gold.volume.html"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	AppName = "cme-gold-scraper"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Port                int
	TargetURL           string
	UserAgent           string
	FetchTimeoutSecs    int
	ShutdownTimeoutSecs int
	LogLevel            string
	AppVersion          string
}

func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSecs) * time.Second
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func Load() *Config {
	cfg := &Config{}

	cfg.Port = 8080
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 65535 {
			cfg.Port = n
		} else {
			log.Printf("Warning: invalid PORT=%q, defaulting to 8080", v)
		}
	}

	cfg.TargetURL = strings.TrimSpace(os.Getenv("SCRAPER_TARGET_URL"))
	if cfg.TargetURL == "" {
		cfg.TargetURL = DefaultTargetURL
	}
	if u, err := url.Parse(cfg.TargetURL); err != nil || u.Scheme == "" || u.Host == "" {
		log.Printf("Warning: invalid SCRAPER_TARGET_URL=%q, defaulting to %s", cfg.TargetURL, DefaultTargetURL)
		cfg.TargetURL = DefaultTargetURL
	}

	cfg.UserAgent = strings.TrimSpace(os.Getenv("SCRAPER_USER_AGENT"))
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	cfg.FetchTimeoutSecs = 20
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutSecs = n
		} else {
			log.Printf("Warning: invalid FETCH_TIMEOUT_SECS=%q, defaulting to 20", v)
		}
	}

	cfg.ShutdownTimeoutSecs = 5
	if v := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeoutSecs = n
		} else {
			log.Printf("Warning: invalid SHUTDOWN_TIMEOUT_SECS=%q, defaulting to 5", v)
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.AppVersion = strings.TrimSpace(os.Getenv("APP_VERSION"))
	if cfg.AppVersion == "" {
		cfg.AppVersion = "1.0.0"
	}

	return cfg
}
