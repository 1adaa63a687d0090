package config

import (
	"fmt"
	"time"

	"go-hrms/internal/shared/connection"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"development"`
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Auth     Auth
	Outbox   Outbox
}

type HTTP struct {
	Port            string        `env:"PORT" env-default:"3000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimit       float64       `env:"RATE_LIMIT_RPS" env-default:"10"`
	RateBurst       int           `env:"RATE_LIMIT_BURST" env-default:"20"`
}

type Postgres struct {
	Host       string `env:"DB_HOST" env-default:"localhost"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	User       string `env:"DB_USER" env-required:"true"`
	Password   string `env:"DB_PASSWORD" env-required:"true"`
	Name       string `env:"DB_NAME" env-required:"true"`
	SSLMode    string `env:"DB_SSLMODE" env-default:"disable"`
	MaxRetries int    `env:"DB_MAX_RETRIES" env-default:"5"`
}

type Redis struct {
	Addr       string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password   string `env:"REDIS_PASSWORD"`
	MaxRetries int    `env:"REDIS_MAX_RETRIES" env-default:"5"`
}

type Kafka struct {
	Broker        string `env:"KAFKA_BROKER" env-default:"localhost:9092"`
	ConsumerGroup string `env:"KAFKA_CONSUMER_GROUP" env-default:"go-hrms-notifications"`
	MaxRetries    int    `env:"KAFKA_MAX_RETRIES" env-default:"5"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET" env-required:"true"`
}

type Outbox struct {
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" env-default:"3s"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (p Postgres) Options() connection.PostgresOptions {
	return connection.PostgresOptions{
		Host:     p.Host,
		User:     p.User,
		Password: p.Password,
		DBName:   p.Name,
		Port:     p.Port,
		SSLMode:  p.SSLMode,
	}
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return &cfg, nil
}
