package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT       JWTConfig
	Kakao     KakaoConfig
	Encrypter EncrypterConfig

	// Domain Configuration
	Catalog CatalogConfig
	Watcher WatcherConfig
	Push    PushConfig
	Mailer  MailerConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP API server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is the configuration for session tokens.
type JWTConfig struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// KakaoConfig is the configuration for Kakao token verification.
type KakaoConfig struct {
	BaseURL string
	Timeout time.Duration
}

// EncrypterConfig is the configuration for PII encryption at rest.
type EncrypterConfig struct {
	Key string
}

// CatalogConfig is the configuration for the operation catalog.
type CatalogConfig struct {
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	SnapshotTTL     time.Duration
	FreshFor        time.Duration
}

// WatcherConfig is the configuration for the availability watcher.
type WatcherConfig struct {
	Interval     time.Duration
	SweepEvery   time.Duration
	Workers      int
	DispatchWait time.Duration
}

// PushConfig is the configuration for the Expo push channel.
type PushConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MailerConfig is the configuration for the email channel.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// DiscordConfig is the configuration for Discord webhook bug reports.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("seatwatch-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/seatwatch/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// HTTP server
	cfg.HTTPServer.Host = viper.GetString("server.host")
	cfg.HTTPServer.Port = viper.GetInt("server.port")
	cfg.HTTPServer.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	// Kakao
	cfg.Kakao.BaseURL = viper.GetString("kakao.base_url")
	cfg.Kakao.Timeout = viper.GetDuration("kakao.timeout")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Catalog
	cfg.Catalog.UpstreamBaseURL = viper.GetString("catalog.upstream_base_url")
	cfg.Catalog.UpstreamTimeout = viper.GetDuration("catalog.upstream_timeout")
	cfg.Catalog.SnapshotTTL = viper.GetDuration("catalog.snapshot_ttl")
	cfg.Catalog.FreshFor = viper.GetDuration("catalog.fresh_for")

	// Watcher
	cfg.Watcher.Interval = viper.GetDuration("watcher.interval")
	cfg.Watcher.SweepEvery = viper.GetDuration("watcher.sweep_every")
	cfg.Watcher.Workers = viper.GetInt("watcher.workers")
	cfg.Watcher.DispatchWait = viper.GetDuration("watcher.dispatch_wait")

	// Push
	cfg.Push.BaseURL = viper.GetString("push.base_url")
	cfg.Push.Timeout = viper.GetDuration("push.timeout")

	// Mailer
	cfg.Mailer.Host = viper.GetString("mailer.host")
	cfg.Mailer.Port = viper.GetInt("mailer.port")
	cfg.Mailer.Username = viper.GetString("mailer.username")
	cfg.Mailer.Password = viper.GetString("mailer.password")
	cfg.Mailer.From = viper.GetString("mailer.from")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "seatwatch")
	viper.SetDefault("postgres.dbname", "seatwatch")
	viper.SetDefault("postgres.sslmode", "disable")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// JWT
	viper.SetDefault("jwt.issuer", "seatwatch-srv")
	viper.SetDefault("jwt.ttl", 24*time.Hour)

	// Kakao
	viper.SetDefault("kakao.base_url", "")
	viper.SetDefault("kakao.timeout", 10*time.Second)

	// Catalog
	viper.SetDefault("catalog.upstream_timeout", 10*time.Second)
	viper.SetDefault("catalog.snapshot_ttl", 24*time.Hour)
	viper.SetDefault("catalog.fresh_for", 2*time.Minute)

	// Watcher
	viper.SetDefault("watcher.interval", 30*time.Second)
	viper.SetDefault("watcher.sweep_every", 10*time.Minute)
	viper.SetDefault("watcher.workers", 8)
	viper.SetDefault("watcher.dispatch_wait", 15*time.Second)

	// Push
	viper.SetDefault("push.base_url", "")
	viper.SetDefault("push.timeout", 10*time.Second)

	// Mailer
	viper.SetDefault("mailer.port", 465)
}

func validate(cfg *Config) error {
	// Validate JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}

	// Validate Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate encrypter key when set (16/24/32 bytes for AES)
	if key := cfg.Encrypter.Key; key != "" {
		switch len(key) {
		case 16, 24, 32:
		default:
			return fmt.Errorf("encrypter.key must be 16, 24, or 32 bytes")
		}
	}

	return nil
}
