package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit for one method and path.
type EndpointConfig struct {
	Path   string        // exact path, or a prefix when it ends in "/"
	Method string        // HTTP method
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration // refill window
	Burst  int           // bucket capacity, Limit when 0
}

// LoadConfig reads RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(
			getEnvInt("RATE_LIMIT_CHAT_LIMIT", 60),
			getEnvInt("RATE_LIMIT_WRITE_LIMIT", 100),
		),
	}
}

// DefaultEndpointConfigs returns the per-route limits.
// Chat calls the model and gets chatLimit per hour; writes get writeLimit per minute.
// Reads fall through to the default limit.
func DefaultEndpointConfigs(chatLimit, writeLimit int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/chat", Method: "POST", Limit: chatLimit, Window: time.Hour, Burst: 5},

		{Path: "/api/cv/parse", Method: "POST", Limit: writeLimit, Window: time.Minute, Burst: 10},
		{Path: "/api/cv-profiles", Method: "POST", Limit: writeLimit, Window: time.Minute, Burst: 10},

		// one bucket for all history lookups rather than one per profile id
		{Path: "/api/chat/history/", Method: "GET", Limit: 300, Window: time.Minute},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
