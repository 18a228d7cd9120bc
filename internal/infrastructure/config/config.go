package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string `env:"JWT_SECRET"`
	AdminKey  string `env:"ADMIN_KEY"`

	Stripe  StripeConfig
	Dynadot DynadotConfig
	Namecom NamecomConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Sites   SitesConfig
}

type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

type DynadotConfig struct {
	APIKey  string `env:"DYNADOT_API_KEY"`
	BaseURL string `env:"DYNADOT_BASE_URL, default=https://api.dynadot.com"`
}

type NamecomConfig struct {
	Username string `env:"NAMECOM_USERNAME"`
	Token    string `env:"NAMECOM_TOKEN"`
	BaseURL  string `env:"NAMECOM_BASE_URL, default=https://api.name.com"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=site_builder"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SitesConfig struct {
	Dir string `env:"SITES_DIR, default=data/sites"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
