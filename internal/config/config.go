package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Email     EmailConfig     `mapstructure:"email"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Client    ClientConfig    `mapstructure:"client"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// MaxBodyBytes caps the size of a submission payload
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EmailConfig holds email sending configuration
type EmailConfig struct {
	// Provider is the email provider to use: "resend", "gmail" or "log".
	// "log" records messages in memory and only logs them.
	Provider string `mapstructure:"provider"`
	// From is the fixed sender address of submission emails
	From string `mapstructure:"from"`
	// To is the fixed recipient of submission emails
	To     string            `mapstructure:"to"`
	Resend ResendEmailConfig `mapstructure:"resend"`
	Gmail  GmailEmailConfig  `mapstructure:"gmail"`
}

// ResendEmailConfig holds Resend API configuration
type ResendEmailConfig struct {
	// APIKey is also read from RESEND_API_KEY
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// GmailEmailConfig holds Gmail API configuration
type GmailEmailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	// SenderAddress is the mailbox the messages are sent from
	SenderAddress string `mapstructure:"sender_address"`
}

// RateLimitConfig holds rate limiting configuration for the submission endpoint
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
	// TrustProxy keys clients on the first X-Forwarded-For hop. Enable only
	// behind a reverse proxy that sets the header.
	TrustProxy bool `mapstructure:"trust_proxy"`
}

// RedisConfig holds Redis configuration, used only when rate limiting is enabled
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig holds the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ClientConfig holds settings for the terminal questionnaire
type ClientConfig struct {
	// Endpoint is the URL of the send-email endpoint
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/webquest")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("WEBQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The Resend key keeps the name used by the hosting platform
	if err := v.BindEnv("email.resend.api_key", "WEBQUEST_EMAIL_RESEND_API_KEY", "RESEND_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.max_body_bytes", 64<<10)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Email defaults
	v.SetDefault("email.provider", "resend")
	v.SetDefault("email.from", "onboarding@resend.dev")
	v.SetDefault("email.to", "tinadigital.ok@gmail.com")
	v.SetDefault("email.resend.api_key", "")
	v.SetDefault("email.resend.base_url", "")
	v.SetDefault("email.gmail.sender_address", "")

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.limit", 5)
	v.SetDefault("rate_limit.window", "10m")
	v.SetDefault("rate_limit.trust_proxy", false)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// CORS defaults
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	// Client defaults
	v.SetDefault("client.endpoint", "http://localhost:8080/api/send-email")
	v.SetDefault("client.timeout", "15s")
}
