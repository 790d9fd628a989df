package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "CHOPREST"

// Config holds the configuration settings for the restaurant backend.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Server: The HTTP API server settings.
// - Provider: Which geocoding provider to call and with which credentials.
// - RateLimit: Throttling of outbound provider calls.
// - Batch: Retry and scheduling of location update passes.
// - API: Per-client limits of the inbound HTTP API.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env       string          `yaml:"env"       mapstructure:"env"`       // Env is the current environment: local, development, production.
	Server    ServerConfig    `yaml:"server"    mapstructure:"server"`    // Server holds the HTTP server configuration.
	Provider  ProviderConfig  `yaml:"provider"  mapstructure:"provider"`  // Provider holds the geocoding provider configuration.
	RateLimit RateLimitConfig `yaml:"ratelimit" mapstructure:"ratelimit"` // RateLimit throttles outbound provider calls.
	Batch     BatchConfig     `yaml:"batch"     mapstructure:"batch"`     // Batch controls location update passes.
	API       APIConfig       `yaml:"api"       mapstructure:"api"`       // API limits inbound requests per client.
	Database  PostgresConfig  `yaml:"postgres"  mapstructure:"postgres"`  // Database holds the postgres database configuration.
}

type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// ProviderConfig selects the geocoding provider.
type ProviderConfig struct {
	Type    string        `yaml:"type"    mapstructure:"type"`    // Type is one of kakao, google, nominatim.
	Keys    []string      `yaml:"keys"    mapstructure:"keys"`    // Keys are rotated round-robin across calls.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"` // Timeout of a single provider request.
}

type RateLimitConfig struct {
	Delay        time.Duration `yaml:"delay"          mapstructure:"delay"`
	MaxPerMinute int           `yaml:"max_per_minute" mapstructure:"max_per_minute"`
	Cooldown     time.Duration `yaml:"cooldown"       mapstructure:"cooldown"`
}

type BatchConfig struct {
	MaxRetries int           `yaml:"max_retries" mapstructure:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
	Interval   time.Duration `yaml:"interval"    mapstructure:"interval"` // Interval of automatic passes, zero disables them.
}

type APIConfig struct {
	RPS   float64 `yaml:"rps"   mapstructure:"rps"`
	Burst int     `yaml:"burst" mapstructure:"burst"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"     mapstructure:"host"`     // Host is the database server address.
	Port     string `yaml:"port"     mapstructure:"port"`     // Port is the database server port.
	User     string `yaml:"user"     mapstructure:"user"`     // User is the database user.
	Password string `yaml:"password" mapstructure:"password"` // Password is the database user's password.
	Name     string `yaml:"db_name"  mapstructure:"db_name"`  // Name is the name of the database.
}

// MustLoad loads the configuration from the optional YAML file and CHOPREST_* environment variables.
// An empty path looks for config.yaml in the working directory.
func MustLoad(path string) *Config {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("failed to read configuration file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("failed to parse configuration")
	}

	cfg.Provider.Keys = splitKeys(cfg.Provider.Keys)

	if len(cfg.Provider.Keys) == 0 && cfg.Provider.Type != "nominatim" {
		panic("no provider API keys configured")
	}
	if cfg.Batch.MaxRetries < 1 {
		panic("batch max retries must be at least 1")
	}
	if cfg.RateLimit.MaxPerMinute < 0 {
		panic("rate limit per minute must not be negative")
	}

	return &cfg
}

// setDefaults registers every key so that environment variables are picked up on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("server.port", 8080)
	v.SetDefault("provider.type", "kakao")
	v.SetDefault("provider.keys", []string{})
	v.SetDefault("provider.timeout", 10*time.Second)
	v.SetDefault("ratelimit.delay", time.Second)
	v.SetDefault("ratelimit.max_per_minute", 30)
	v.SetDefault("ratelimit.cooldown", time.Minute)
	v.SetDefault("batch.max_retries", 3)
	v.SetDefault("batch.retry_delay", 5*time.Second)
	v.SetDefault("batch.interval", time.Duration(0))
	v.SetDefault("api.rps", 20.0)
	v.SetDefault("api.burst", 40)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db_name", "choprest")
}

// splitKeys flattens comma separated entries and drops blanks.
func splitKeys(raw []string) []string {
	keys := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, key := range strings.Split(entry, ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}
	}

	return keys
}
