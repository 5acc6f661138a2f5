package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8, cfg.JWT.TTLHours)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxUploadBytes())
	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.AuthPerMinute)
}

func TestLoadDatabaseURLFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/fed")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/fed", cfg.Database.DSN())
}

func TestLoadNestedPrefixes(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_PROVIDER", "s3")
	t.Setenv("STORAGE_S3_BUCKET", "federation-images")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "federation-images", cfg.Storage.S3.Bucket)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: "development",
			Database:    DatabaseConfig{Host: "localhost", Driver: "pgx"},
			JWT:         JWTConfig{SecretKey: "dev-secret", TTLHours: 8},
			Storage:     StorageConfig{MaxUploadMB: 5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.SecretKey = "" }, wantErr: "JWT_SECRET is required"},
		{
			name: "default secret in production",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.Database.Password = "pw"
				c.JWT.SecretKey = defaultJWTSecret
			},
			wantErr: "must be changed in production",
		},
		{
			name: "short secret in production",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.Database.Password = "pw"
				c.JWT.SecretKey = "short"
			},
			wantErr: "at least 32 bytes",
		},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "DB_DRIVER"},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Storage.Provider = "s3" }, wantErr: "STORAGE_S3_BUCKET"},
		{name: "supabase without key", mutate: func(c *Config) { c.Storage.Provider = "supabase" }, wantErr: "STORAGE_SUPABASE_URL"},
		{name: "unknown provider", mutate: func(c *Config) { c.Storage.Provider = "ftp" }, wantErr: "not supported"},
		{
			name: "zero rate limit",
			mutate: func(c *Config) {
				c.RateLimit = RateLimitConfig{Enabled: true, GeneralRPS: 10, GeneralBurst: 20, AuthPerMinute: 0, UploadPerMinute: 10, ContactPerMinute: 3}
			},
			wantErr: "RATE_LIMIT_",
		},
		{name: "rate limit disabled", mutate: func(c *Config) { c.RateLimit = RateLimitConfig{} }},
		{name: "half bootstrap", mutate: func(c *Config) { c.Bootstrap.Email = "root@fed.org" }, wantErr: "ADMIN_EMAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
		})
	}
}
