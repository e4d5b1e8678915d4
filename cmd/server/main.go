package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"salescredit/internal/audit"
	"salescredit/internal/credit"
	"salescredit/internal/httpapi"
	"salescredit/internal/platform/config"
	"salescredit/internal/platform/httpserver"
	"salescredit/internal/platform/kafka"
	"salescredit/internal/platform/lock"
	"salescredit/internal/platform/logger"
	"salescredit/internal/platform/metrics"
	"salescredit/internal/platform/middleware"
	"salescredit/internal/platform/postgres"
	"salescredit/internal/platform/redis"
	"salescredit/internal/salesman"
	"salescredit/internal/upstream"
	id "salescredit/pkg/domain"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	m := metrics.New()

	// Stores: durable when a DSN is configured, in-memory otherwise.
	var (
		salesmanStore salesman.Store
		creditStore   credit.Store
		auditStore    audit.Store
		healthCheck   func(r *http.Request) error
	)
	if cfg.PostgresDSN != "" {
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		salesmanStore = salesman.NewPostgres(db)
		creditStore = credit.NewPostgres(db)
		auditStore = audit.NewPostgres(db)
		healthCheck = func(r *http.Request) error { return db.PingContext(r.Context()) }
		log.Info("using postgres stores")
	} else {
		salesmanStore = salesman.NewInMemoryStore()
		creditStore = credit.NewInMemoryStore()
		auditStore = audit.NewInMemoryStore()
		log.Warn("no POSTGRES_DSN set, using in-memory stores")
	}

	// Issuance lock: shared via Redis when configured, process-local otherwise.
	var locker lock.Locker = lock.NewMemory()
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		locker = lock.NewRedis(redisClient.Client)
		log.Info("using redis issuance lock")
	}

	// Upstream clients.
	var (
		licenses upstream.LicenseClient
		sales    upstream.SalesClient
		users    upstream.UserClient
	)
	if cfg.MockUpstreams {
		mock := upstream.NewMockLicenseService()
		seedMockLicenses(mock)
		licenses, sales = mock, mock
		users = upstream.MockUserClient{}
		log.Warn("using mock upstream services")
	} else {
		licenseClient := upstream.NewHTTPLicenseClient(cfg.LicenseServiceURL, cfg.UpstreamTimeout)
		licenses, sales = licenseClient, licenseClient
		users = upstream.NewHTTPUserClient(cfg.UserServiceURL, cfg.UpstreamTimeout)
	}

	// Audit pipeline: publisher -> worker -> store, plus an optional Kafka sink.
	publisher := audit.NewPublisher(log, 256)
	worker := audit.NewWorker(auditStore, publisher.Events(), log)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(ctx, cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			return err
		}
		defer producer.Close()
		worker.WithSink(producer)
		log.Info("audit events mirrored to kafka", "topic", cfg.AuditTopic)
	}
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	salesmanService := salesman.NewService(salesmanStore, users,
		salesman.WithLogger(log),
		salesman.WithAuditRecorder(publisher),
	)
	engine := credit.NewEngine(creditStore, salesmanService, licenses, sales,
		credit.WithLogger(log),
		credit.WithAuditRecorder(publisher),
		credit.WithMetrics(m),
		credit.WithLocker(locker),
	)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:    log,
		Validator: middleware.NewValidator(cfg.JWTSigningKey),
		Credits:   engine,
		Salesmen:  salesmanService,
		Health:    healthCheck,
	})

	server := httpserver.New(cfg.Addr, router)
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// seedMockLicenses gives local runs something to issue credits against.
func seedMockLicenses(mock *upstream.MockLicenseService) {
	for i, price := range []string{"100.00", "250.50", "999.99", "1500.00"} {
		mock.AddLicense(upstream.License{
			ID:     id.LicenseID("lic-" + string(rune('a'+i))),
			Price:  decimal.RequireFromString(price),
			Status: upstream.LicenseAvailable,
		})
	}
}
