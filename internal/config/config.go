package config

import (
	"fmt"
	"os"
)

type Config struct {
	// APIBaseURL is the remote mm-shop API the console talks to.
	APIBaseURL string
	// ListenAddr is where the local console shell serves.
	ListenAddr string
	// FlashSecret signs the toast cookie.
	FlashSecret string
}

func FromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		ListenAddr:  envOr("LISTEN_ADDR", ":7080"),
		FlashSecret: envOr("FLASH_SECRET", "dev-only-flash-secret"),
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL environment variable is required")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
