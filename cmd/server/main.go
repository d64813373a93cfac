package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/voltcart/addressd/internal"
	"github.com/voltcart/addressd/internal/address"
	"github.com/voltcart/addressd/internal/domain"
	"github.com/voltcart/addressd/internal/handler/api"
	"github.com/voltcart/addressd/internal/middleware"
	"github.com/voltcart/addressd/internal/pincode"
	"github.com/voltcart/addressd/internal/router"
	"github.com/voltcart/addressd/internal/routes"
	"github.com/voltcart/addressd/internal/telemetry"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize Sentry: %w", err)
	}
	defer sentryCleanup()

	// Initialize lookup metrics
	telemetry.InitLookupMetrics("addressd")

	// Build the PIN lookup provider chain. Every configured URL is expected
	// to speak the postalpincode.in response shape; unrecognized responses
	// fall through to the next provider.
	logger.Info("Initializing PIN lookup providers...")
	providers := make([]pincode.Provider, 0, len(cfg.Pincode.ProviderURLs))
	for _, url := range cfg.Pincode.ProviderURLs {
		provider, err := pincode.NewPostalPincodeProvider(pincode.PostalPincodeConfig{
			BaseURL: url,
			Logger:  logger,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize PIN provider %q: %w", url, err)
		}
		providers = append(providers, provider)
	}

	chain, err := pincode.NewChain(pincode.ChainConfig{
		Providers: providers,
		Timeout:   cfg.Pincode.LookupTimeout,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize PIN lookup chain: %w", err)
	}
	logger.Info("PIN lookup chain initialized",
		"providers", len(providers),
		"timeout", cfg.Pincode.LookupTimeout,
	)

	// Initialize address validation service
	addressService := address.NewService(chain, logger)
	logger.Info("Address validation service initialized")

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	apiDeps := routes.APIDeps{
		AddressHandler: api.NewAddressHandler(addressService),
	}

	// ==========================================================================
	// Initialize middleware
	// ==========================================================================

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("addressd")

	globalMiddleware := []router.Middleware{
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		router.CORS(cfg.CORS.AllowedOrigins),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	}
	if cfg.RateLimit.Enabled {
		// Per-client rate limiting, keyed on client IP
		rlCfg := middleware.DefaultRateLimiterConfig()
		rlCfg.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rlCfg.BurstSize = cfg.RateLimit.BurstSize
		limiter := middleware.NewRateLimiter(rlCfg)
		defer limiter.Stop()
		globalMiddleware = append(globalMiddleware, limiter.Middleware)
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(globalMiddleware...)

	// Metrics endpoint (no auth required, should be protected in production via firewall)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterAPIRoutes(r, apiDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting address validation server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		if domain.IsCode(err, domain.EINVALID) {
			log.Fatalf("configuration error: %v", err)
		}
		log.Fatal(err)
	}
}
