package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := App{
		Port:      getenv("PORT", "3750"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBName:    must("DB_NAME"),
		DBUser:    must("DB_USER"),
		DBPass:    must("DB_PASS"),
		JWTSecret: getenv("JWT_SECRET", "local_dev_secret"),
		Env:       getenv("APP_ENV", "dev"),
	}
	return cfg
}

// DatabaseURL assembles the Postgres DSN from the discrete DB_* settings.
func (a App) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		a.DBUser, a.DBPass, a.DBHost, a.DBPort, a.DBName)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
