package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	Port             string
	MongoURI         string
	MongoDB          string
	MongoTransaction bool
	DBTimeout        time.Duration
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	UploadDir        string
	BodyLimit        int
	RedisAddr        string
	RedisPass        string
	RedisDB          int
	AllowOrigins     string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// LoadConfig reads .env (when present) and the process environment.
// JWT_SECRET has no default.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using system environment variables")
	}

	cfg := Config{
		Env:              getEnv("APP_ENV", "local"),
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "blog"),
		MongoTransaction: getEnvBool("MONGO_TRANSACTIONS", false),
		DBTimeout:        getEnvDuration("DB_TIMEOUT", 5*time.Second),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenTTL:         getEnvDuration("TOKEN_TTL", 72*time.Hour),
		BcryptCost:       getEnvInt("BCRYPT_COST", 12),
		UploadDir:        getEnv("UPLOAD_DIR", "./public"),
		BodyLimit:        getEnvInt("BODY_LIMIT", 10*1024*1024),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		AllowOrigins:     getEnv("CORS_ORIGINS", "*"),
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}
