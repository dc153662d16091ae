package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Storage drivers. "json" keeps the collection in a single document on disk;
// the rest are database/sql drivers.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Storage struct {
		Driver string
		Path   string
	}
	DB struct {
		DSN string
	}
	Log struct {
		Level  string
		Format string
	}
}

// IsSQL reports whether the configured driver stores albums in a database.
func (c *Config) IsSQL() bool {
	return c.Storage.Driver != DriverJSON
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"http-addr":      "http.addr",
	"storage-driver": "storage.driver",
	"storage-path":   "storage.path",
	"db-dsn":         "db.dsn",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// Load reads config from flags, environment (PHOTOS_ prefix) and an optional
// joe-photos.yaml, in that order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PHOTOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("joe-photos")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", DriverJSON)
	v.SetDefault("storage.path", "albums.json")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(v.GetString("storage.driver")))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	switch cfg.Storage.Driver {
	case DriverJSON:
		if cfg.Storage.Path == "" {
			return nil, fmt.Errorf("PHOTOS_STORAGE_PATH is required for the json driver")
		}
	case DriverSQLite, DriverMySQL, DriverPostgres:
		if cfg.DB.DSN == "" {
			return nil, fmt.Errorf("PHOTOS_DB_DSN is required for the %s driver", cfg.Storage.Driver)
		}
	default:
		return nil, fmt.Errorf("unsupported PHOTOS_STORAGE_DRIVER %q (json, sqlite3, mysql, postgres)", cfg.Storage.Driver)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return nil, fmt.Errorf("unsupported PHOTOS_LOG_FORMAT %q (console, json)", cfg.Log.Format)
	}

	return cfg, nil
}
