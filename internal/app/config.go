package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/yungbote/artistdash-backend/internal/clients/redis"
	dbpkg "github.com/yungbote/artistdash-backend/internal/data/db"
	apphttp "github.com/yungbote/artistdash-backend/internal/http"
	httpMW "github.com/yungbote/artistdash-backend/internal/http/middleware"
	"github.com/yungbote/artistdash-backend/internal/observability"
	"github.com/yungbote/artistdash-backend/internal/services"
)

const envPrefix = "ARTISTDASH"

type Config struct {
	Server  apphttp.ServerConfig     `mapstructure:"server"`
	Log     LogConfig                `mapstructure:"log"`
	DB      dbpkg.Config             `mapstructure:"db"`
	Auth    services.AuthConfig      `mapstructure:"auth"`
	Redis   redis.Config             `mapstructure:"redis"`
	Otel    observability.OtelConfig `mapstructure:"otel"`
	CORS    httpMW.CORSConfig        `mapstructure:"cors"`
	Metrics MetricsConfig            `mapstructure:"metrics"`
}

type LogConfig struct {
	Mode     string `mapstructure:"mode"`
	Level    string `mapstructure:"level"`
	Redact   bool   `mapstructure:"redact"`
	HashSalt string `mapstructure:"hash_salt"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("log.mode", "development")
	v.SetDefault("log.level", "")
	v.SetDefault("log.redact", true)
	v.SetDefault("log.hash_salt", "")

	v.SetDefault("db.driver", dbpkg.DriverPostgres)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "artistdash")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.slow_threshold", time.Second)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.issuer", "artistdash")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "")

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.service_name", "artistdash")
	v.SetDefault("otel.environment", "")
	v.SetDefault("otel.version", "")
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.insecure", false)
	v.SetDefault("otel.sample_ratio", 1.0)

	v.SetDefault("cors.allow_origins", []string{})

	v.SetDefault("metrics.enabled", true)
}

// LoadConfig reads defaults, then the optional yaml file, then ARTISTDASH_*
// environment variables (ARTISTDASH_DB_DSN, ARTISTDASH_AUTH_JWT_SECRET, ...).
// An empty path looks for config.yaml in the working directory.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case dbpkg.DriverPostgres, dbpkg.DriverSQLite:
	default:
		return fmt.Errorf("db.driver must be %q or %q, got %q", dbpkg.DriverPostgres, dbpkg.DriverSQLite, c.DB.Driver)
	}
	if c.DB.Driver == dbpkg.DriverSQLite && strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("db.dsn must be set for sqlite")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
