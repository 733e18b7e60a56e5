package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. Rotating it invalidates every
	// outstanding token; there is no revocation list.
	JWTSecret string `env:"JWT_SECRET"`

	// CORSOrigins is the comma-separated allow-list of frontend origins.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:5000,http://localhost:5173,http://localhost:5174,https://justice-buddyai.vercel.app"`

	Mongo  MongoConfig
	Gemini GeminiConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=justicebuddy"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-2.0-flash"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the service runs in development mode, which
// switches the logger to pretty console output.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
