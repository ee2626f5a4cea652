package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Studio   StudioConfig   `mapstructure:"studio"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Twilio   TwilioConfig   `mapstructure:"twilio"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Passkey  PasskeyConfig  `mapstructure:"passkey"`
	OTel     OTelConfig     `mapstructure:"otel"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"` // development, staging, production
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the Redis address
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// KafkaConfig holds Kafka connection settings for the lifecycle event stream.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers  []string `mapstructure:"brokers"`
	ClientID string   `mapstructure:"client_id"`
	Topic    string   `mapstructure:"topic"`
}

// StudioConfig identifies the single active tenant
type StudioConfig struct {
	Slug string `mapstructure:"slug"`
}

// AuthConfig holds session token settings
type AuthConfig struct {
	Secret          string        `mapstructure:"secret"`
	SessionTokenTTL time.Duration `mapstructure:"session_token_ttl"`
	Issuer          string        `mapstructure:"issuer"`
}

// TwilioConfig holds SMS/voice provider credentials.
// All three values must be set for dispatch to be attempted.
type TwilioConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`
}

// Configured reports whether telephony credentials are present
func (t *TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// StripeConfig holds payment provider credentials
type StripeConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// PasskeyConfig holds WebAuthn relying-party settings and the bootstrap
// token secret. TokenSecret falls back to the auth secret when unset.
type PasskeyConfig struct {
	RPID          string        `mapstructure:"rp_id"`
	RPDisplayName string        `mapstructure:"rp_display_name"`
	RPOrigins     []string      `mapstructure:"rp_origins"`
	TokenSecret   string        `mapstructure:"token_secret"`
	ChallengeTTL  time.Duration `mapstructure:"challenge_ttl"`
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ServiceName   string `mapstructure:"service_name"`
	CollectorAddr string `mapstructure:"collector_addr"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// .env is optional, environment variables may carry everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			_ = err
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadWithPath loads configuration from a specific env file
func LoadWithPath(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}
	if err := bindConfig(v, cfg); err != nil {
		return nil, fmt.Errorf("failed to bind config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("APP_NAME", "studio-api")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "1.0.0")

	// Server defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "30s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	// Database defaults
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_DBNAME", "studio")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_CONNS", 25)
	v.SetDefault("DATABASE_MIN_CONNS", 5)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("DATABASE_CONN_MAX_IDLE_TIME", "30m")

	// Redis defaults
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 50)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 5)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")
	v.SetDefault("REDIS_READ_TIMEOUT", "3s")
	v.SetDefault("REDIS_WRITE_TIMEOUT", "3s")

	// Kafka defaults: no brokers means the publisher stays disabled
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_CLIENT_ID", "studio-api")
	v.SetDefault("KAFKA_TOPIC", "studio.request-lifecycle")

	// Studio defaults
	v.SetDefault("STUDIO_SLUG", "big-russ")

	// Auth defaults
	v.SetDefault("AUTH_SECRET", "change-me-in-production")
	v.SetDefault("AUTH_SESSION_TOKEN_TTL", "24h")
	v.SetDefault("AUTH_ISSUER", "studio-api")

	// Twilio defaults: unset means notification dispatch degrades gracefully
	v.SetDefault("TWILIO_ACCOUNT_SID", "")
	v.SetDefault("TWILIO_AUTH_TOKEN", "")
	v.SetDefault("TWILIO_FROM_NUMBER", "")

	// Stripe defaults
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_WEBHOOK_SECRET", "")

	// Passkey defaults
	v.SetDefault("PASSKEY_RP_ID", "localhost")
	v.SetDefault("PASSKEY_RP_DISPLAY_NAME", "Big Russ Tattoo")
	v.SetDefault("PASSKEY_RP_ORIGINS", "http://localhost:8080")
	v.SetDefault("PASSKEY_TOKEN_SECRET", "")
	v.SetDefault("PASSKEY_CHALLENGE_TTL", "5m")

	// OTel defaults
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SERVICE_NAME", "studio-api")
	v.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
}

func bindConfig(v *viper.Viper, cfg *Config) error {
	// App
	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENVIRONMENT")
	cfg.App.Debug = v.GetBool("APP_DEBUG")
	cfg.App.Version = v.GetString("APP_VERSION")

	// Server
	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	cfg.Server.IdleTimeout = v.GetDuration("SERVER_IDLE_TIMEOUT")

	// Database
	cfg.Database.Host = v.GetString("DATABASE_HOST")
	cfg.Database.Port = v.GetInt("DATABASE_PORT")
	cfg.Database.User = v.GetString("DATABASE_USER")
	cfg.Database.Password = v.GetString("DATABASE_PASSWORD")
	cfg.Database.DBName = v.GetString("DATABASE_DBNAME")
	cfg.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	cfg.Database.MaxConns = v.GetInt("DATABASE_MAX_CONNS")
	cfg.Database.MinConns = v.GetInt("DATABASE_MIN_CONNS")
	cfg.Database.ConnMaxLifetime = v.GetDuration("DATABASE_CONN_MAX_LIFETIME")
	cfg.Database.ConnMaxIdleTime = v.GetDuration("DATABASE_CONN_MAX_IDLE_TIME")

	// Redis
	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = v.GetInt("REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")
	cfg.Redis.MinIdleConns = v.GetInt("REDIS_MIN_IDLE_CONNS")
	cfg.Redis.DialTimeout = v.GetDuration("REDIS_DIAL_TIMEOUT")
	cfg.Redis.ReadTimeout = v.GetDuration("REDIS_READ_TIMEOUT")
	cfg.Redis.WriteTimeout = v.GetDuration("REDIS_WRITE_TIMEOUT")

	// Kafka
	if brokers := v.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.ClientID = v.GetString("KAFKA_CLIENT_ID")
	cfg.Kafka.Topic = v.GetString("KAFKA_TOPIC")

	// Studio
	cfg.Studio.Slug = v.GetString("STUDIO_SLUG")

	// Auth
	cfg.Auth.Secret = v.GetString("AUTH_SECRET")
	cfg.Auth.SessionTokenTTL = v.GetDuration("AUTH_SESSION_TOKEN_TTL")
	cfg.Auth.Issuer = v.GetString("AUTH_ISSUER")

	// Twilio
	cfg.Twilio.AccountSID = v.GetString("TWILIO_ACCOUNT_SID")
	cfg.Twilio.AuthToken = v.GetString("TWILIO_AUTH_TOKEN")
	cfg.Twilio.FromNumber = v.GetString("TWILIO_FROM_NUMBER")

	// Stripe
	cfg.Stripe.SecretKey = v.GetString("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = v.GetString("STRIPE_WEBHOOK_SECRET")

	// Passkey
	cfg.Passkey.RPID = v.GetString("PASSKEY_RP_ID")
	cfg.Passkey.RPDisplayName = v.GetString("PASSKEY_RP_DISPLAY_NAME")
	if origins := v.GetString("PASSKEY_RP_ORIGINS"); origins != "" {
		cfg.Passkey.RPOrigins = strings.Split(origins, ",")
	}
	cfg.Passkey.TokenSecret = v.GetString("PASSKEY_TOKEN_SECRET")
	cfg.Passkey.ChallengeTTL = v.GetDuration("PASSKEY_CHALLENGE_TTL")

	// OTel
	cfg.OTel.Enabled = v.GetBool("OTEL_ENABLED")
	cfg.OTel.ServiceName = v.GetString("OTEL_SERVICE_NAME")
	cfg.OTel.CollectorAddr = v.GetString("OTEL_COLLECTOR_ADDR")

	return nil
}

// Validate checks that required configuration values are present
func (c *Config) Validate() error {
	if c.Studio.Slug == "" {
		return fmt.Errorf("studio slug is required")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	return nil
}

// PasskeyTokenSecret returns the passkey bootstrap token secret,
// falling back to the auth signing secret when unset.
func (c *Config) PasskeyTokenSecret() string {
	if c.Passkey.TokenSecret != "" {
		return c.Passkey.TokenSecret
	}
	return c.Auth.Secret
}

// IsDevelopment returns true when running in the development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
