package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

// Storage drivers understood by StorageDriver.
const (
	DriverPostgres = "postgres"
	DriverMongoDB  = "mongodb"
	DriverMemory   = "memory"
)

// Config holds application configuration values. Values come from an optional
// YAML file first and are then overridden by environment variables.
type Config struct {
	Port          string `yaml:"port"`
	StorageDriver string `yaml:"storage_driver"`

	DBHost          string `yaml:"db_host"`
	DBPort          string `yaml:"db_port"`
	DBUser          string `yaml:"db_user"`
	DBPassword      string `yaml:"db_password"`
	DBSSLMode       string `yaml:"db_sslmode"`
	PetDBName       string `yaml:"pet_db_name"`
	PostDBName      string `yaml:"post_db_name"`
	ReactionsDBName string `yaml:"reactions_db_name"`
	MongoURI        string `yaml:"mongodb_uri"`

	RedisURL             string `yaml:"redis_url"`
	LikesCacheTTLSeconds int    `yaml:"likes_cache_ttl_seconds"`

	JWTSecret string `yaml:"jwt_secret"`

	WebhookURL            string `yaml:"webhook_notifications_url"`
	WebhookTimeoutSeconds int    `yaml:"webhook_timeout_seconds"`
	NotificationPolicy    string `yaml:"notification_policy"`
	NATSURL               string `yaml:"nats_url"`

	RateLimitPerSecond float64 `yaml:"rate_limit_per_second"`
	LogLevel           string  `yaml:"log_level"`
	LogFormat          string  `yaml:"log_format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:                  "6001",
		StorageDriver:         DriverPostgres,
		DBHost:                "localhost",
		DBPort:                "5432",
		DBSSLMode:             "disable",
		PetDBName:             "pets",
		PostDBName:            "posts",
		ReactionsDBName:       "reactions",
		MongoURI:              "mongodb://localhost:27017",
		LikesCacheTTLSeconds:  60,
		WebhookTimeoutSeconds: 5,
		NotificationPolicy:    string(usecasecontract.NotificationPolicyGating),
		RateLimitPerSecond:    10,
		LogLevel:              "info",
		LogFormat:             "text",
	}
}

// Load builds the configuration. path may be empty; CONFIG_FILE is used then.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", c.StorageDriver))
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBSSLMode = getEnv("DB_SSLMODE", c.DBSSLMode)
	c.PetDBName = getEnv("PET_DB_NAME", c.PetDBName)
	c.PostDBName = getEnv("POST_DB_NAME", c.PostDBName)
	c.ReactionsDBName = getEnv("REACTIONS_DB_NAME", c.ReactionsDBName)
	c.MongoURI = getEnv("MONGODB_URI", c.MongoURI)
	c.RedisURL = getEnv("REDIS_URL", c.RedisURL)
	c.LikesCacheTTLSeconds = getEnvAsInt("LIKES_CACHE_TTL_SECONDS", c.LikesCacheTTLSeconds)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.WebhookURL = strings.TrimSpace(getEnv("WEBHOOK_NOTIFICATIONS_URL", c.WebhookURL))
	c.WebhookTimeoutSeconds = getEnvAsInt("WEBHOOK_TIMEOUT_SECONDS", c.WebhookTimeoutSeconds)
	c.NotificationPolicy = strings.ToLower(getEnv("NOTIFICATION_POLICY", c.NotificationPolicy))
	c.NATSURL = getEnv("NATS_URL", c.NATSURL)
	c.RateLimitPerSecond = getEnvAsFloat("RATE_LIMIT_PER_SECOND", c.RateLimitPerSecond)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET must be set")
	}
	switch c.StorageDriver {
	case DriverPostgres, DriverMongoDB, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	switch usecasecontract.NotificationPolicy(c.NotificationPolicy) {
	case usecasecontract.NotificationPolicyGating, usecasecontract.NotificationPolicyBestEffort:
	default:
		return fmt.Errorf("unknown notification policy %q", c.NotificationPolicy)
	}
	if c.LikesCacheTTLSeconds <= 0 {
		return errors.New("LIKES_CACHE_TTL_SECONDS must be positive")
	}
	if c.WebhookTimeoutSeconds <= 0 {
		return errors.New("WEBHOOK_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// PostgresDSN builds the connection URL for one of the three databases.
func (c *Config) PostgresDSN(dbName string) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + dbName,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	q := url.Values{}
	if c.DBSSLMode != "" {
		q.Set("sslmode", c.DBSSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// GetNotificationPolicy returns the add-path notification policy.
func (c *Config) GetNotificationPolicy() usecasecontract.NotificationPolicy {
	return usecasecontract.NotificationPolicy(c.NotificationPolicy)
}

// GetLikesCacheTTL returns how long a cached counter stays valid.
func (c *Config) GetLikesCacheTTL() time.Duration {
	return time.Duration(c.LikesCacheTTLSeconds) * time.Second
}

// GetWebhookURL returns the notifications endpoint; empty disables notifications.
func (c *Config) GetWebhookURL() string {
	return c.WebhookURL
}

// GetWebhookTimeout returns the notification call deadline.
func (c *Config) GetWebhookTimeout() time.Duration {
	return time.Duration(c.WebhookTimeoutSeconds) * time.Second
}

// GetRateLimitPerSecond returns the per-IP request budget.
func (c *Config) GetRateLimitPerSecond() float64 {
	return c.RateLimitPerSecond
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}
