// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me-to-a-32-byte-secret-key"

// MinJWTSecretLength is the shortest signing secret accepted in production.
const MinJWTSecretLength = 32

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL string `env:"DATABASE_URL"`

	Server    ServerConfig    `envPrefix:"SERVER_"`
	Database  DatabaseConfig  `envPrefix:"DB_"`
	JWT       JWTConfig       `envPrefix:"JWT_"`
	Storage   StorageConfig   `envPrefix:"STORAGE_"`
	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Email     EmailConfig     `envPrefix:"SMTP_"`
	Bootstrap BootstrapConfig `envPrefix:"ADMIN_"`
	CORS      CORSConfig      `envPrefix:"CORS_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

type ServerConfig struct {
	Port         string `env:"PORT" envDefault:"8080"`
	Host         string `env:"HOST" envDefault:"0.0.0.0"`
	ReadTimeout  int    `env:"READ_TIMEOUT" envDefault:"15"`
	WriteTimeout int    `env:"WRITE_TIMEOUT" envDefault:"30"`
	IdleTimeout  int    `env:"IDLE_TIMEOUT" envDefault:"60"`
}

type DatabaseConfig struct {
	URL          string `env:"URL"`
	Driver       string `env:"DRIVER" envDefault:"pgx"`
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         string `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"postgres"`
	Password     string `env:"PASSWORD"`
	Database     string `env:"NAME" envDefault:"federation"`
	SSLMode      string `env:"SSL_MODE" envDefault:"disable"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxLifetime  int    `env:"MAX_LIFETIME" envDefault:"300"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
}

type JWTConfig struct {
	SecretKey string `env:"SECRET"`
	TTLHours  int    `env:"TTL_HOURS" envDefault:"8"`
	Issuer    string `env:"ISSUER" envDefault:"federation-site"`
}

func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// StorageConfig selects the object store used for uploads. Provider is
// "s3", "supabase" or empty (uploads disabled).
type StorageConfig struct {
	Provider    string `env:"PROVIDER"`
	MaxUploadMB int64  `env:"MAX_UPLOAD_MB" envDefault:"5"`
	Folder      string `env:"FOLDER" envDefault:"uploads"`

	S3       S3Config       `envPrefix:"S3_"`
	Supabase SupabaseConfig `envPrefix:"SUPABASE_"`
}

func (c StorageConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

type S3Config struct {
	Region          string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Bucket          string `env:"BUCKET"`
	Endpoint        string `env:"ENDPOINT"`
	PublicURL       string `env:"PUBLIC_URL"`
}

type SupabaseConfig struct {
	URL        string `env:"URL"`
	ServiceKey string `env:"SERVICE_KEY"`
	Bucket     string `env:"BUCKET" envDefault:"images"`
}

type RedisConfig struct {
	URL      string `env:"URL"`
	Prefix   string `env:"PREFIX" envDefault:"fedsite:"`
	CacheTTL int    `env:"CACHE_TTL" envDefault:"300"`
}

func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

type EmailConfig struct {
	Host      string `env:"HOST"`
	Port      string `env:"PORT" envDefault:"587"`
	Username  string `env:"USERNAME"`
	Password  string `env:"PASSWORD"`
	FromEmail string `env:"FROM_EMAIL" envDefault:"noreply@federation.local"`
	FromName  string `env:"FROM_NAME" envDefault:"Federation Website"`
	NotifyTo  string `env:"NOTIFY_TO"`
}

func (c EmailConfig) Enabled() bool {
	return c.Host != "" && c.NotifyTo != ""
}

// BootstrapConfig holds the credentials of the protected super-admin that
// is guaranteed to exist at startup.
type BootstrapConfig struct {
	Name     string `env:"NAME" envDefault:"Super Admin"`
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// RateLimitConfig sets the per-IP request budgets.
type RateLimitConfig struct {
	Enabled          bool    `env:"ENABLED" envDefault:"true"`
	GeneralRPS       float64 `env:"GENERAL_RPS" envDefault:"10"`
	GeneralBurst     int     `env:"GENERAL_BURST" envDefault:"20"`
	AuthPerMinute    int     `env:"AUTH_PER_MINUTE" envDefault:"5"`
	UploadPerMinute  int     `env:"UPLOAD_PER_MINUTE" envDefault:"10"`
	ContactPerMinute int     `env:"CONTACT_PER_MINUTE" envDefault:"3"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = cfg.DatabaseURL
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error

	switch {
	case c.JWT.SecretKey == "":
		errs = append(errs, errors.New("JWT_SECRET is required"))
	case c.IsProduction() && c.JWT.SecretKey == defaultJWTSecret:
		errs = append(errs, errors.New("JWT_SECRET must be changed in production"))
	case c.IsProduction() && len(c.JWT.SecretKey) < MinJWTSecretLength:
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes in production", MinJWTSecretLength))
	}

	if c.JWT.TTLHours <= 0 {
		errs = append(errs, errors.New("JWT_TTL_HOURS must be positive"))
	}

	if c.Database.URL == "" && c.Database.Host == "" {
		errs = append(errs, errors.New("DB_URL or DB_HOST is required"))
	}
	if c.Database.URL == "" && c.Database.Password == "" && c.IsProduction() {
		errs = append(errs, errors.New("database password is required in production"))
	}
	switch c.Database.Driver {
	case "pgx", "postgres":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported", c.Database.Driver))
	}

	switch strings.ToLower(c.Storage.Provider) {
	case "":
	case "s3":
		if c.Storage.S3.Bucket == "" {
			errs = append(errs, errors.New("STORAGE_S3_BUCKET is required for the s3 provider"))
		}
	case "supabase":
		if c.Storage.Supabase.URL == "" || c.Storage.Supabase.ServiceKey == "" {
			errs = append(errs, errors.New("STORAGE_SUPABASE_URL and STORAGE_SUPABASE_SERVICE_KEY are required for the supabase provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_PROVIDER %q is not supported", c.Storage.Provider))
	}
	if c.Storage.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("STORAGE_MAX_UPLOAD_MB must be positive"))
	}

	if c.RateLimit.Enabled && (c.RateLimit.GeneralRPS <= 0 || c.RateLimit.GeneralBurst <= 0 ||
		c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.UploadPerMinute <= 0 || c.RateLimit.ContactPerMinute <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_* values must be positive"))
	}

	if (c.Bootstrap.Email == "") != (c.Bootstrap.Password == "") {
		errs = append(errs, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together"))
	}

	return errors.Join(errs...)
}
