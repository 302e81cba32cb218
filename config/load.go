package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Load() App {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return App{
		Port:    getenv("APP_PORT", "3001"),
		DataDir: getenv("DATA_DIR", "data"),
		Env:     getenv("APP_ENV", "dev"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
