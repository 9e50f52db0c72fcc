package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	CompanyName     string
	AutoTurnEvery   time.Duration
	ManualTurnDelay time.Duration
	Seed            int64
}

func LoadFromEnv() Config {
	return Config{
		CompanyName:     envDefault("CEOSIM_COMPANY_NAME", ""),
		AutoTurnEvery:   envDurationDefault("CEOSIM_AUTO_TURN_EVERY", 1500*time.Millisecond),
		ManualTurnDelay: envDurationDefault("CEOSIM_MANUAL_TURN_DELAY", 500*time.Millisecond),
		Seed:            envInt64Default("CEOSIM_SEED", 0),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envInt64Default(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
