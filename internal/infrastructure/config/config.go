package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// CookieName is the HTTP-only session cookie holding the JWT.
	CookieName string        `env:"AUTH_COOKIE_NAME, default=authToken"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,        default=1h"`
	// SignedURLTTL is the expiry window for presigned upload/download URLs.
	SignedURLTTL time.Duration `env:"SIGNED_URL_TTL, default=1h"`
	CORSOrigin   string        `env:"CORS_ORIGIN,    default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
	AWS   AWSConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_platform"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type AWSConfig struct {
	Region          string `env:"AWS_REGION, default=us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	Bucket          string `env:"AWS_S3_BUCKET"`
	Endpoint        string `env:"AWS_S3_ENDPOINT"`
	DisableSSL      bool   `env:"AWS_S3_DISABLE_SSL, default=false"`
}

// IsDevelopment reports whether the service runs in local development.
// Controls cookie Secure flag and pretty logging.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
