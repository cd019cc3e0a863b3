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

	Mongo     MongoConfig
	Redis     RedisConfig
	Anthropic AnthropicConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mission_control"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AnthropicConfig carries the fixed upstream generation parameters. Every
// relay request uses the same model, output cap, and temperature.
type AnthropicConfig struct {
	APIKey      string  `env:"ANTHROPIC_API_KEY"`
	BaseURL     string  `env:"ANTHROPIC_BASE_URL, default=https://api.anthropic.com"`
	Model       string  `env:"ANTHROPIC_MODEL,    default=claude-sonnet-4-5"`
	MaxTokens   int     `env:"ANTHROPIC_MAX_TOKENS,  default=4096"`
	Temperature float64 `env:"ANTHROPIC_TEMPERATURE, default=0.2"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
