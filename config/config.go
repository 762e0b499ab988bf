package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all chefreel configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Auth    AuthConfig    `yaml:"auth"`
	Booking BookingConfig `yaml:"booking"`
	Feed    FeedConfig    `yaml:"feed"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// RateLimit is requests per second per client on mutating routes.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver"` // memory, mongo
	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`
}

// RedisConfig enables the Redis-backed stores when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	JWTSecret  string `yaml:"jwt_secret"`
	DemoUserID string `yaml:"demo_user_id"`
}

type BookingConfig struct {
	StrictValidation bool          `yaml:"strict_validation"`
	SessionTTL       time.Duration `yaml:"session_ttl"`
}

type FeedConfig struct {
	TransitionLock time.Duration `yaml:"transition_lock"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, console
}

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

var ErrInvalid = errors.New("config: invalid")

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       5,
			RateBurst:       10,
		},
		Storage: StorageConfig{
			Driver:   DriverMemory,
			MongoURI: "mongodb://localhost:27017",
			MongoDB:  "chefreel",
		},
		Auth: AuthConfig{
			DemoUserID: "user-1",
		},
		Booking: BookingConfig{
			SessionTTL: 30 * time.Minute,
		},
		Feed: FeedConfig{
			TransitionLock: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. An empty or missing path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		c.Storage.Driver = driver
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		c.Storage.MongoURI = uri
	}
	if name := os.Getenv("MONGO_DB"); name != "" {
		c.Storage.MongoDB = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
	}
	if pw := os.Getenv("REDIS_PASSWORD"); pw != "" {
		c.Redis.Password = pw
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		c.Auth.JWTSecret = secret
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("STRICT_VALIDATION"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STRICT_VALIDATION=%q: %w", v, ErrInvalid)
		}
		c.Booking.StrictValidation = strict
	}
	return nil
}

// Addr returns the listen address, adding the leading colon to a bare port.
func (c *Config) Addr() string {
	if c.Server.Port != "" && !strings.Contains(c.Server.Port, ":") {
		return ":" + c.Server.Port
	}
	return c.Server.Port
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverMongo:
		if c.Storage.MongoURI == "" || c.Storage.MongoDB == "" {
			return fmt.Errorf("storage.driver mongo needs mongo_uri and mongo_db: %w", ErrInvalid)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q: %w", c.Storage.Driver, ErrInvalid)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}
	if c.Server.RateLimit <= 0 || c.Server.RateBurst <= 0 {
		return fmt.Errorf("server rate limit must be positive: %w", ErrInvalid)
	}
	if c.Booking.SessionTTL <= 0 {
		return fmt.Errorf("booking.session_ttl must be positive: %w", ErrInvalid)
	}
	if c.Feed.TransitionLock < 0 {
		return fmt.Errorf("feed.transition_lock must not be negative: %w", ErrInvalid)
	}
	if c.Auth.DemoUserID == "" {
		return fmt.Errorf("auth.demo_user_id is required: %w", ErrInvalid)
	}
	return nil
}
