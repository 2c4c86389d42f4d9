package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=5000"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	Debug     bool   `env:"DEBUG,      default=false"`
	MockMode  bool   `env:"MOCK_MODE,  default=false"`

	// BodyLimit caps JSON request bodies, echo BodyLimit syntax.
	BodyLimit string `env:"BODY_LIMIT, default=5M"`
	// UploadDir is where uploads are spooled for the request lifetime.
	// Empty means the OS temp directory.
	UploadDir string `env:"UPLOAD_DIR"`

	Mongo  MongoConfig
	Gemini GeminiConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resumesync"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	BaseURL string        `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com/v1"`
	Model   string        `env:"GEMINI_MODEL,    default=gemini-2.5-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT,  default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
