package config

import (
	"os"
	"strings"
	"time"
)

// Server captures process-level configuration. Every field has a development
// default so the binary runs with no environment at all (memory stores, mock
// upstreams).
type Server struct {
	Addr          string
	JWTSigningKey string

	// PostgresDSN selects the durable ledger; empty means in-memory stores.
	PostgresDSN string

	// RedisURL enables the per-salesman issuance lock; empty means the
	// process-local mutex locker.
	RedisURL string

	// KafkaBrokers enables audit event publishing; empty means audit events
	// stay in the local store only.
	KafkaBrokers []string
	AuditTopic   string

	// LicenseServiceURL and UserServiceURL are the upstream bases. MockUpstreams
	// substitutes deterministic in-process clients for local runs.
	LicenseServiceURL string
	UserServiceURL    string
	UpstreamTimeout   time.Duration
	MockUpstreams     bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:              getenv("SALESCREDIT_ADDR", ":8080"),
		JWTSigningKey:     getenv("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		PostgresDSN:       os.Getenv("POSTGRES_DSN"),
		RedisURL:          os.Getenv("REDIS_URL"),
		AuditTopic:        getenv("AUDIT_TOPIC", "salescredit.audit"),
		LicenseServiceURL: getenv("LICENSE_SERVICE_URL", "http://localhost:3101"),
		UserServiceURL:    getenv("USER_SERVICE_URL", "http://localhost:3100"),
		UpstreamTimeout:   5 * time.Second,
		MockUpstreams:     os.Getenv("MOCK_UPSTREAMS") == "true",
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	if d, err := time.ParseDuration(os.Getenv("UPSTREAM_TIMEOUT")); err == nil && d > 0 {
		cfg.UpstreamTimeout = d
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
