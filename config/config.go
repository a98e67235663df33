package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every externally supplied setting. Handlers receive it at
// construction instead of reading the environment themselves.
type Config struct {
	Port        string
	Env         string // "development" or "production"
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	JWTSecret   []byte
	TokenExpiry time.Duration
	UploadDir   string
	FrontendURL string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		Env:         getenv("APP_ENV", "development"),
		MongoURI:    getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getenv("MONGO_DB", "tabudb"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		TokenExpiry: parseDuration(getenv("JWT_EXPIRE", "168h")),
		UploadDir:   getenv("UPLOAD_DIR", "./static/uploads"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
	}

	if len(cfg.JWTSecret) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}
	return cfg
}

// IsProduction reports whether stack traces should be withheld from 500 bodies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 168 * time.Hour
	}
	return d
}
