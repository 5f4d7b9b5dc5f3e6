package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const DefaultFile = "./configs/config.yaml"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	Sessions SessionsConfig `mapstructure:"sessions"`
	Export   ExportConfig   `mapstructure:"export"`
}

type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	StaticDir   string   `mapstructure:"static_dir"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"` // sqlite|postgres
	DSN    string `mapstructure:"dsn"`
}

type AuthConfig struct {
	// AdminKey gates the admin endpoints. Empty disables admin access.
	AdminKey string `mapstructure:"admin_key"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type MongoConfig struct {
	URI string `mapstructure:"uri"`
	DB  string `mapstructure:"db"`
}

type SessionsConfig struct {
	Store    string        `mapstructure:"store"` // sql|mongo
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type ExportConfig struct {
	Bucket string `mapstructure:"bucket"`
}

var envBindings = map[string][]string{
	"server.port":         {"PORT"},
	"server.static_dir":   {"STATIC_DIR"},
	"server.cors_origins": {"CORS_ORIGINS"},
	"db.driver":           {"DB_DRIVER"},
	"db.dsn":              {"DATABASE_URL", "DB_DSN"},
	"auth.admin_key":      {"ADMIN_KEY"},
	"logger.level":        {"LOG_LEVEL"},
	"redis.addr":          {"REDIS_ADDR", "REDIS_URI", "REDIS_URL"},
	"mongo.uri":           {"MONGO_URI"},
	"mongo.db":            {"MONGO_DB"},
	"sessions.store":      {"SESSION_STORE"},
	"sessions.cache_ttl":  {"SESSION_CACHE_TTL"},
	"export.bucket":       {"EXPORT_BUCKET"},
}

// Load reads file when it exists and lets environment variables override it.
// A missing file is not an error; every key has an env binding or a default.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "jardam.db")
	v.SetDefault("logger.level", "info")
	v.SetDefault("mongo.db", "jardam")
	v.SetDefault("sessions.store", "sql")
	v.SetDefault("sessions.cache_ttl", "10m")

	var errs []error
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to bind environment: %w", errors.Join(errs...))
	}

	if file != "" {
		if _, err := os.Stat(file); err == nil {
			v.SetConfigFile(file)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is empty"))
	}
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported db.driver %q", c.DB.Driver))
	}
	if c.DB.DSN == "" {
		errs = append(errs, errors.New("db.dsn is empty"))
	}
	switch c.Sessions.Store {
	case SessionStoreSQL:
	case SessionStoreMongo:
		if c.Mongo.URI == "" {
			errs = append(errs, errors.New("mongo.uri is required when sessions.store is mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported sessions.store %q", c.Sessions.Store))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
