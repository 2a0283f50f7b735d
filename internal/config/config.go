package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Content  ContentConfig
	Carousel CarouselConfig
	Session  SessionConfig
	Visits   VisitsConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port      string
	GinMode   string
	ImagesDir string // empty disables /images
}

type ContentConfig struct {
	File string // empty means the built-in content
}

type CarouselConfig struct {
	Interval time.Duration
}

type SessionConfig struct {
	IdleTTL     time.Duration
	ReapEvery   string
	Rate        float64
	Burst       int
	MaxSessions int
}

type VisitsConfig struct {
	DB          string // "off" disables tracking
	Retention   time.Duration
	CleanupSpec string
}

type AdminConfig struct {
	Token string
}

// Enabled reports whether visit tracking should run.
func (v VisitsConfig) Enabled() bool {
	return v.DB != "" && !strings.EqualFold(v.DB, "off")
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			GinMode:   getEnv("GIN_MODE", "release"),
			ImagesDir: getEnv("IMAGES_DIR", "./images"),
		},
		Content: ContentConfig{
			File: getEnv("CONTENT_FILE", ""),
		},
		Carousel: CarouselConfig{
			Interval: getEnvAsDuration("CAROUSEL_INTERVAL", 10*time.Second),
		},
		Session: SessionConfig{
			IdleTTL:     getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute),
			ReapEvery:   getEnv("SESSION_REAP_SPEC", "@every 1m"),
			Rate:        getEnvAsFloat("SESSION_RATE", 5),
			Burst:       getEnvAsInt("SESSION_BURST", 10),
			MaxSessions: getEnvAsInt("SESSION_MAX", 10000),
		},
		Visits: VisitsConfig{
			DB:          getEnv("VISITS_DB", "portfolio.db"),
			Retention:   time.Duration(getEnvAsInt("VISITS_RETENTION_DAYS", 365)) * 24 * time.Hour,
			CleanupSpec: getEnv("VISITS_CLEANUP_SPEC", "@daily"),
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be a number, got %q", c.Server.Port)
	}
	if c.Carousel.Interval <= 0 {
		return fmt.Errorf("CAROUSEL_INTERVAL must be positive")
	}
	if c.Session.Rate <= 0 || c.Session.Burst <= 0 {
		return fmt.Errorf("SESSION_RATE and SESSION_BURST must be positive")
	}
	if c.Visits.Enabled() && c.Visits.Retention <= 0 {
		return fmt.Errorf("VISITS_RETENTION_DAYS must be positive")
	}
	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.Server.GinMode)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
