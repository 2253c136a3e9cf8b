package config

import "time"

const (
	envPort            = "PORT"
	envCatalogPath     = "CATALOG_PATH"
	envSportsDBBaseURL = "SPORTSDB_BASE_URL"
	envProxyBaseURL    = "PROXY_BASE_URL"
	envHTTPTimeout     = "UPSTREAM_HTTP_TIMEOUT"
	envDigestWorkers   = "DIGEST_WORKERS"
	envRefreshInterval = "REFRESH_INTERVAL"
	envRefreshEnabled  = "REFRESH_ENABLED"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultCatalogPath = "config.yaml"
	// Per-call budget so one slow upstream cannot stall a whole aggregation
	// pass.
	defaultHTTPTimeout = 10 * time.Second
	// Bounded fan-out for the today digest; the catalog is small, so a
	// handful of workers saturates upstream latency without hammering it.
	defaultDigestWorkers   = 4
	defaultRefreshInterval = 10 * time.Minute
	defaultMetricsPort     = "9090"

	// Catalog defaults.
	defaultZone     = "Europe/London"
	defaultCacheTTL = 15 * time.Minute
)
