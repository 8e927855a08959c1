package config

import (
	"os"
	"strings"
)

// Config collects the env-driven settings main needs to wire the service.
type Config struct {
	Port        string
	CORSOrigins []string
	JWTSecret   string
	// MockLatency keeps the original per-operation store delays on. Turn it
	// off (MOCK_LATENCY=off) for local benchmarking.
	MockLatency bool
}

func Load() Config {
	return Config{
		Port:        envOrDefault("PORT", "8080"),
		CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		JWTSecret:   envOrDefault("JWT_SECRET", "staylux-dev-secret"),
		MockLatency: !strings.EqualFold(strings.TrimSpace(os.Getenv("MOCK_LATENCY")), "off"),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func parseCORSOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
