package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config returns the value of an environment variable, loading .env once on
// first use so local development works without exporting anything.
func Config(key string) string {
	loadEnv.Do(func() { godotenv.Load(".env") })
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
