package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port          string
	DBPath        string
	MockLatencyMS int
	AllowOrigins  []string
}

func LoadConfig() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "oilfield.db"),
		MockLatencyMS: 500,
		AllowOrigins:  []string{"http://localhost:4200"},
	}

	if v := strings.TrimSpace(os.Getenv("MOCK_LATENCY_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			cfg.MockLatencyMS = ms
		}
	}

	if v := strings.TrimSpace(os.Getenv("ALLOW_ORIGINS")); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowOrigins = origins
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
