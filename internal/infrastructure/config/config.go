package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie token. The default exists so
	// the server boots out of the box; production must override it.
	SessionSecret string        `env:"SESSION_SECRET, default=floctet-secret-key"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=24h"`

	// StoreBackend selects the record store: "memory" or "mongo".
	StoreBackend string `env:"STORE_BACKEND,   default=memory"`
	// SessionBackend selects the session store: "memory" or "redis".
	SessionBackend string `env:"SESSION_BACKEND, default=memory"`

	NotifyWorkers int `env:"NOTIFY_WORKERS, default=4"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

// AdminConfig seeds the bootstrap administrator as an ordinary store record.
type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin123"`
	Password string `env:"ADMIN_PASSWORD, default=admin1234567890"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@floctet.com"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=studio"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SMTPConfig configures the notification sink. An empty Host disables
// delivery; submissions still succeed.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=noreply@floctettechnologies.com"`
	To       string `env:"SMTP_TO,   default=floctettechnologies@gmail.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
