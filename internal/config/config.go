package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Cache          CacheConfig          `mapstructure:"cache"`
	Events         EventsConfig         `mapstructure:"events"`
	Auth           AuthConfig           `mapstructure:"auth"`
	Logging        LoggingConfig        `mapstructure:"logging"`
	Artifacts      ArtifactsConfig      `mapstructure:"artifacts"`
	Rating         RatingConfig         `mapstructure:"rating"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Interactions   InteractionsConfig   `mapstructure:"interactions"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig points at the source relational store. Only the extraction
// tool connects to it; the serving path works from artifact files alone.
type DatabaseConfig struct {
	URL            string        `mapstructure:"url"`
	MaxConnections int           `mapstructure:"max_connections"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	URL        string        `mapstructure:"url"`
	MaxRetries int           `mapstructure:"max_retries"`
	PoolSize   int           `mapstructure:"pool_size"`
	Timeout    time.Duration `mapstructure:"timeout"`
	TTL        time.Duration `mapstructure:"ttl"`
}

type EventsConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ArtifactsConfig struct {
	Dir string `mapstructure:"dir"`
}

// RatingConfig is the closed rating scale shared by the grade mapping, the
// predictor, and collaborative score normalization.
type RatingConfig struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// Midpoint is the neutral rating used when the predictor carries no trained
// signal at all.
func (r RatingConfig) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

type RecommendationConfig struct {
	ContentWeight       float64 `mapstructure:"content_weight"`
	CollaborativeWeight float64 `mapstructure:"collaborative_weight"`
	DefaultCount        int     `mapstructure:"default_count"`
	MaxCount            int     `mapstructure:"max_count"`
}

type InteractionsConfig struct {
	// IncludeFailed controls whether failed attempts count as "taken" and are
	// excluded from candidates. Source data treats only status=complete as
	// taken by default.
	IncludeFailed bool `mapstructure:"include_failed"`
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations that would make scoring undefined.
func (c *Config) Validate() error {
	if c.Rating.Max <= c.Rating.Min {
		return fmt.Errorf("rating scale invalid: max (%.1f) must exceed min (%.1f)",
			c.Rating.Max, c.Rating.Min)
	}

	weightSum := c.Recommendation.ContentWeight + c.Recommendation.CollaborativeWeight
	if math.Abs(weightSum-1.0) > 1e-9 {
		return fmt.Errorf("fusion weights must sum to 1, got %.3f", weightSum)
	}
	if c.Recommendation.ContentWeight < 0 || c.Recommendation.CollaborativeWeight < 0 {
		return fmt.Errorf("fusion weights must be non-negative")
	}

	if c.Recommendation.DefaultCount <= 0 {
		return fmt.Errorf("recommendation.default_count must be positive")
	}
	if c.Recommendation.MaxCount < c.Recommendation.DefaultCount {
		return fmt.Errorf("recommendation.max_count must be >= default_count")
	}

	return nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "development")

	// Database defaults (extraction tool only)
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.connect_timeout", "10s")

	// Cache defaults
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.url", "localhost:6379")
	viper.SetDefault("cache.max_retries", 3)
	viper.SetDefault("cache.pool_size", 10)
	viper.SetDefault("cache.timeout", "5s")
	viper.SetDefault("cache.ttl", "15m")

	// Events defaults
	viper.SetDefault("events.enabled", false)
	viper.SetDefault("events.brokers", []string{"localhost:9092"})
	viper.SetDefault("events.topic", "recommendation-served")

	// Auth defaults
	viper.SetDefault("auth.enabled", false)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// Artifact defaults
	viper.SetDefault("artifacts.dir", "./artifacts")

	// Rating scale: grades map onto [1, 10]
	viper.SetDefault("rating.min", 1.0)
	viper.SetDefault("rating.max", 10.0)

	// Fusion defaults
	viper.SetDefault("recommendation.content_weight", 0.5)
	viper.SetDefault("recommendation.collaborative_weight", 0.5)
	viper.SetDefault("recommendation.default_count", 10)
	viper.SetDefault("recommendation.max_count", 100)

	// Interaction policy
	viper.SetDefault("interactions.include_failed", false)
}
