package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting the app reads.
type Config struct {
	Port              string
	ScoringServiceURL string
	SampleURL         string

	// PrintReadyDelay is how long the printable report waits before
	// triggering the browser print dialog. The print context has no
	// readiness event, so a tunable delay stands in for one.
	PrintReadyDelay time.Duration

	// ToastInterval is how long a toast notice stays visible.
	ToastInterval time.Duration

	RequestTimeout time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	return &Config{
		Port:              getenv("PORT", "3000"),
		ScoringServiceURL: getenv("SCORING_SERVICE_URL", "http://localhost:5000/evaluate"),
		SampleURL:         os.Getenv("SAMPLE_URL"),
		PrintReadyDelay:   millis("PRINT_READY_DELAY_MS", 500),
		ToastInterval:     millis("TOAST_INTERVAL_MS", 3000),
		RequestTimeout:    millis("REQUEST_TIMEOUT_MS", 30000),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func millis(key string, fallback int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(n) * time.Millisecond
}
