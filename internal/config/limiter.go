package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"
)

type LimiterConfig struct {
	Max     int
	Window  time.Duration
	PostMax int
}

var (
	limiterConfig *LimiterConfig
	limiterOnce   sync.Once
)

func LoadLimiterConfig() *LimiterConfig {
	limiterOnce.Do(func() {
		limiterConfig = &LimiterConfig{
			Max:     atoi("RATE_LIMIT_MAX", 50),
			Window:  duration("RATE_LIMIT_WINDOW", time.Minute),
			PostMax: atoi("POST_LIMIT_MAX", 10),
		}
	})
	return limiterConfig
}

func atoi(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, defaulting to %d", key, v, fallback)
		return fallback
	}
	return n
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, defaulting to %s", key, v, fallback)
		return fallback
	}
	return d
}
