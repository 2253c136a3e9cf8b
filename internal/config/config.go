package config

import (
	"os"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	CatalogPath     string
	SportsDBBaseURL string
	ProxyBaseURL    string
	HTTPTimeout     Duration
	DigestWorkers   int
	RefreshEnabled  bool
	RefreshInterval Duration
	Metrics         MetricsConfig
}

// MetricsConfig controls the telemetry exporters.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible
// defaults. The team/sport catalog itself lives in the YAML file named by
// CATALOG_PATH and is loaded separately via LoadCatalog.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		CatalogPath:     envOrDefault(envCatalogPath, defaultCatalogPath),
		SportsDBBaseURL: os.Getenv(envSportsDBBaseURL),
		ProxyBaseURL:    os.Getenv(envProxyBaseURL),
		HTTPTimeout:     durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		DigestWorkers:   intEnvOrDefault(envDigestWorkers, defaultDigestWorkers),
		RefreshEnabled:  boolEnvOrDefault(envRefreshEnabled, false),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Metrics:         loadMetrics(),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, "fixtures-service"),
		OtlpEndpoint: os.Getenv(envOtelEndpoint),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
