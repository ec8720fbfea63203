package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	DriverBolt  = "bolt"
	DriverMongo = "mongo"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "COOKSHOW_"

// Config is the full runtime configuration of a cookshow server
type Config struct {
	API     APIConfig     `yaml:"api"`
	Metrics MetricsConfig `yaml:"metrics"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig configures the HTTP API listener
type APIConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	RateLimit       float64       `yaml:"rateLimit"`
	RateLimitBurst  int           `yaml:"rateLimitBurst"`
}

// MetricsConfig configures the separate health/metrics listener.
// An empty Addr serves them on the API listener only.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// StorageConfig selects and configures the backing store
type StorageConfig struct {
	Driver        string        `yaml:"driver"`
	DataDir       string        `yaml:"dataDir"`
	MongoURI      string        `yaml:"mongoURI"`
	MongoDatabase string        `yaml:"mongoDatabase"`
	Timeout       time.Duration `yaml:"timeout"`
}

// LogConfig configures the global logger
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		API: APIConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RateLimit:       100,
			RateLimitBurst:  200,
		},
		Metrics: MetricsConfig{
			Addr: ":9090",
		},
		Storage: StorageConfig{
			Driver:        DriverBolt,
			DataDir:       "./data",
			MongoDatabase: "cookshow",
			Timeout:       10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  true,
		},
	}
}

// Load builds a configuration from defaults, the optional YAML file at path,
// and the environment (including a .env file in the working directory)
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// A missing .env file is fine
	_ = godotenv.Load()

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from COOKSHOW_* variables found by lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = d
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	str("API_ADDR", &c.API.Addr)
	dur("API_READ_TIMEOUT", &c.API.ReadTimeout)
	dur("API_WRITE_TIMEOUT", &c.API.WriteTimeout)
	dur("API_IDLE_TIMEOUT", &c.API.IdleTimeout)
	dur("API_SHUTDOWN_TIMEOUT", &c.API.ShutdownTimeout)
	float("API_RATE_LIMIT", &c.API.RateLimit)
	integer("API_RATE_LIMIT_BURST", &c.API.RateLimitBurst)
	str("METRICS_ADDR", &c.Metrics.Addr)
	str("STORAGE_DRIVER", &c.Storage.Driver)
	str("DATA_DIR", &c.Storage.DataDir)
	str("MONGO_URI", &c.Storage.MongoURI)
	str("MONGO_DATABASE", &c.Storage.MongoDatabase)
	dur("STORAGE_TIMEOUT", &c.Storage.Timeout)
	str("LOG_LEVEL", &c.Log.Level)
	boolean("LOG_JSON", &c.Log.JSON)

	return errors.Join(errs...)
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	var errs []error

	if c.API.Addr == "" {
		errs = append(errs, errors.New("api.addr is required"))
	}
	if c.API.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("api.rateLimit must be positive, got %v", c.API.RateLimit))
	}
	if c.API.RateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("api.rateLimitBurst must be positive, got %d", c.API.RateLimitBurst))
	}
	for name, d := range map[string]time.Duration{
		"api.readTimeout":     c.API.ReadTimeout,
		"api.writeTimeout":    c.API.WriteTimeout,
		"api.idleTimeout":     c.API.IdleTimeout,
		"api.shutdownTimeout": c.API.ShutdownTimeout,
		"storage.timeout":     c.Storage.Timeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}

	switch c.Storage.Driver {
	case DriverBolt:
		if c.Storage.DataDir == "" {
			errs = append(errs, errors.New("storage.dataDir is required for the bolt driver"))
		}
	case DriverMongo:
		if c.Storage.MongoURI == "" {
			errs = append(errs, errors.New("storage.mongoURI is required for the mongo driver"))
		}
		if c.Storage.MongoDatabase == "" {
			errs = append(errs, errors.New("storage.mongoDatabase is required for the mongo driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q (want %s or %s)",
			c.Storage.Driver, DriverBolt, DriverMongo))
	}

	return errors.Join(errs...)
}
