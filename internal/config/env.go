package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret   string
	JWTTTLHours int

	CORSAllowedOrigins []string
}

// LoadEnv reads process env, with optional .env file for local development.
func LoadEnv() Env {
	_ = godotenv.Load()

	e := Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     getenv("GIN_MODE", ""),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "3306"),
		DBUser:      getenv("DB_USER", "root"),
		DBPassword:  getenv("DB_PASSWORD", ""),
		DBName:      getenv("DB_NAME", "travel_app"),
		JWTSecret:   getenv("JWT_SECRET", "super-secret-key-change-me"),
		JWTTTLHours: getenvInt("JWT_TTL_HOURS", 168),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				e.CORSAllowedOrigins = append(e.CORSAllowedOrigins, o)
			}
		}
	}

	return e
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
