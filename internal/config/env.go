package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPass     string
	DBHost     string
	DBName     string
	JWTSecret  string
	CORSOrigin []string
}

// Loaded menyimpan hasil LoadEnv terakhir untuk fallback service yang
// tidak disuntik konfigurasi eksplisit.
var Loaded Env

// LoadEnv membaca .env kalau ada (best effort), lalu environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:    getenv("DB_USER", "root"),
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:    getenv("DB_NAME", "backoffice"),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigin = append(env.CORSOrigin, o)
			}
		}
	}
	Loaded = env
	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
