package di

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"FinDash/internal/domain/repository"
	domsvc "FinDash/internal/domain/service"
	"FinDash/internal/handler/api"
	"FinDash/internal/mockdata"
	internalrepo "FinDash/internal/repository"
	"FinDash/internal/service/backend"
	"FinDash/internal/service/ratelimit"
	"FinDash/internal/services/history"
	"FinDash/internal/services/randsrc"
	"FinDash/internal/services/seasonal"
	"FinDash/internal/services/synth"
	"FinDash/internal/usecase"
	"FinDash/pkg/cache"
	"FinDash/pkg/config"
	xhttp "FinDash/pkg/http"
	"FinDash/pkg/http/middleware"
	pkgkafka "FinDash/pkg/kafka"
	applogger "FinDash/pkg/logger"
	"FinDash/pkg/metrics"
	"FinDash/pkg/server"
)

// ProvideRegistry creates the Prometheus registry served on /metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when Kafka is disabled.
func ProvideKafkaProducer(cfg *config.Config, reg *prometheus.Registry) (*pkgkafka.Producer, func(), error) {
	if !cfg.Kafka.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithMetrics(reg),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, func() { _ = producer.Close() }, nil
}

// ProvideLogger builds the application logger. With Kafka enabled and a log
// topic set, repeated warnings and errors are aggregated and shipped there.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, func(), error) {
	l, err := applogger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	if producer == nil || cfg.Kafka.LogTopic == "" {
		return l, func() {}, nil
	}
	l.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   30 * time.Second,
		CountThreshold: 100,
		Topic:          cfg.Kafka.LogTopic,
		Publisher:      producer,
	})
	return l, l.RemoveCollector, nil
}

// ProvideEventPublisher returns nil when Kafka is disabled.
func ProvideEventPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.EventPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaFallbackPublisher(producer, cfg.Kafka.Topic)
}

// ProvideCache returns nil when caching is disabled. The redis driver puts
// a small memory layer in front of Redis.
func ProvideCache(cfg *config.Config) (cache.Service, func(), error) {
	if !cfg.Cache.Enabled {
		return nil, func() {}, nil
	}

	var svc cache.Service
	switch cfg.Cache.Driver {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx,
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		svc = cache.NewLayeredCache(rc,
			cache.WithLayeredMemorySize(cfg.Cache.MemorySize),
			cache.WithLayeredMemoryTTL(cfg.Cache.TTL),
		)
	default:
		svc = cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemorySize))
	}
	return svc, func() { _ = svc.Close() }, nil
}

// ProvideBackendClient returns nil when no upstream URL is configured.
func ProvideBackendClient(cfg *config.Config, l *applogger.Logger) *backend.Client {
	if cfg.Backend.BaseURL == "" {
		return nil
	}
	opts := []backend.Option{
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(l.Component("backend")),
	}
	if b := cfg.Backend.Breaker; b.Enabled {
		opts = append(opts, backend.WithBreaker(backend.BreakerSettings{
			Failures:    b.Failures,
			OpenTimeout: b.OpenTimeout,
			HalfOpenMax: b.HalfOpenMax,
		}))
	}
	return backend.New(cfg.Backend.BaseURL, opts...)
}

// ProvideBackend picks the upstream implementation: offline, direct or cached.
func ProvideBackend(client *backend.Client, c cache.Service, cfg *config.Config, l *applogger.Logger) repository.Backend {
	if client == nil {
		l.Warn("no backend configured, serving fallback data only")
		return internalrepo.OfflineBackend{}
	}
	if c == nil {
		return client
	}
	return internalrepo.NewCachedBackend(client, c, cfg.Cache.TTL, l.Component("backend.cache"))
}

// ProvideCatalog loads the curated catalog file, or the built-in one.
func ProvideCatalog(cfg *config.Config) (*mockdata.Catalog, error) {
	if cfg.Mock.CatalogFile == "" {
		return mockdata.Default(), nil
	}
	c, err := mockdata.LoadFile(cfg.Mock.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// ProvideRandom returns a reproducible source when mock.seed is set.
func ProvideRandom(cfg *config.Config) domsvc.RandomSource {
	if cfg.Mock.Seed != 0 {
		return randsrc.Seeded(cfg.Mock.Seed)
	}
	return randsrc.Global{}
}

func ProvideSynthesizer(cfg *config.Config, rnd domsvc.RandomSource) *synth.Synthesizer {
	gen := history.New(history.WithRandom(rnd))
	return synth.New(gen, seasonal.New(seasonal.WithRandom(rnd)),
		synth.WithRandom(rnd),
		synth.WithHistoryDays(cfg.History.Days),
	)
}

// ProvideServiceOptions collects the options shared by both services.
func ProvideServiceOptions(cfg *config.Config, l *applogger.Logger, m repository.Metrics, events repository.EventPublisher) []usecase.Option {
	return []usecase.Option{
		usecase.WithLogger(l.Component("usecase")),
		usecase.WithMetrics(m),
		usecase.WithEvents(events),
		usecase.WithTimeout(cfg.Backend.Timeout),
	}
}

func ProvideFuturesService(b repository.Backend, c *mockdata.Catalog, s *synth.Synthesizer, opts []usecase.Option) *usecase.FuturesService {
	return usecase.NewFuturesService(b, c, s, opts...)
}

func ProvideDashboardService(b repository.Backend, c *mockdata.Catalog, opts []usecase.Option) *usecase.DashboardService {
	return usecase.NewDashboardService(b, c, opts...)
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

func ProvideHandlers(
	cfg *config.Config,
	l *applogger.Logger,
	client *backend.Client,
	futures *usecase.FuturesService,
	dashboard *usecase.DashboardService,
) []xhttp.Handler {
	// keep the interface nil rather than holding a nil *Client
	var upstream api.StateReporter
	if client != nil {
		upstream = client
	}
	var streamOpts []api.StreamOption
	if cfg.Server.CORS {
		// same policy as the REST CORS config: any origin
		streamOpts = append(streamOpts, api.WithCheckOrigin(func(*http.Request) bool { return true }))
	}
	return []xhttp.Handler{
		api.NewHealthHandler(upstream, futures.Symbols),
		api.NewFuturesHandler(l, futures),
		api.NewDashboardHandler(dashboard),
		api.NewStreamHandler(l, futures, streamOpts...),
	}
}

func ProvideHTTPServer(
	cfg *config.Config,
	l *applogger.Logger,
	reg *prometheus.Registry,
	handlers []xhttp.Handler,
	limiter *ratelimit.Limiter,
) *xhttp.Server {
	httpLog := l.Component("http")
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(httpLog),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts,
			xhttp.WithMetricsEndpoint(reg),
			xhttp.WithMiddleware(middleware.NewHTTPMetrics(reg).Middleware(httpLog, cfg.Server.SlowRequest)),
		)
	}
	if limiter != nil {
		opts = append(opts, xhttp.WithMiddleware(limiter.Middleware()))
	}
	return xhttp.NewServer(handlers, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	futures *usecase.FuturesService,
	dashboard *usecase.DashboardService,
	limiter *ratelimit.Limiter,
) *server.App {
	return server.New(cfg, l, httpServer, futures, dashboard, limiter)
}
