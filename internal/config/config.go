package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMongo    = "mongo"
)

type Config struct {
	Addr string `env:"ADDR,default=:5000" description:"listen address"`

	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET,required" description:"HMAC secret used to sign access tokens"`
	AccessTokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL,default=0s" description:"access token lifetime, 0 issues tokens without expiry"`

	StoreDriver   string `env:"STORE_DRIVER,default=postgres" description:"postgres, sqlite or mongo"`
	DatabaseURL   string `env:"DATABASE_URL,optional" description:"DSN for the postgres or sqlite store"`
	MongoURI      string `env:"MONGO_URI,default=mongodb://localhost:27017" description:"connection string for the mongo store"`
	MongoDatabase string `env:"MONGO_DATABASE,default=learnit" description:"database name for the mongo store"`

	RedisURL string `env:"REDIS_URL,optional" description:"redis url for the profile cache, empty disables it"`
	NatsURL  string `env:"NATS_URL,optional" description:"nats url for post events, empty disables them"`

	LogLevel  string `env:"LOG_LEVEL,default=info" description:"debug, info, warning or error"`
	LogFormat string `env:"LOG_FORMAT,default=text" description:"text or json"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" description:"graceful shutdown budget"`
}

// Load reads an optional .env file, then decodes the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StorePostgres, StoreSQLite:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for store driver %q", c.StoreDriver)
		}
	case StoreMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return errors.New("MONGO_URI and MONGO_DATABASE are required for the mongo store")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.AccessTokenTTL < 0 {
		return errors.New("ACCESS_TOKEN_TTL must not be negative")
	}
	return nil
}
