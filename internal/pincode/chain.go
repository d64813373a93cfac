package pincode

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"github.com/voltcart/addressd/internal/telemetry"
)

// DefaultLookupTimeout bounds each individual provider call.
const DefaultLookupTimeout = 5 * time.Second

// Chain tries an ordered list of providers until one returns a usable
// result. Provider failures are absorbed: logged, counted, and followed by
// the next provider. Only total exhaustion surfaces to the caller, as
// ErrAllProvidersUnavailable.
//
// Providers are tried strictly in sequence, each under its own timeout.
// No retries are issued against an individual provider.
type Chain struct {
	providers []Provider
	timeout   time.Duration
	logger    *slog.Logger
}

// ChainConfig contains configuration for a provider chain.
type ChainConfig struct {
	Providers []Provider

	// Timeout bounds each provider call. Defaults to DefaultLookupTimeout.
	Timeout time.Duration

	// Logger is optional; defaults to slog.Default().
	Logger *slog.Logger
}

// NewChain creates a provider fallback chain.
func NewChain(cfg ChainConfig) (*Chain, error) {
	if len(cfg.Providers) == 0 {
		return nil, ErrNoProviders
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Chain{
		providers: cfg.Providers,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// Name identifies the chain in logs and metrics.
func (c *Chain) Name() string {
	return "chain"
}

// pinShape is the minimal format a provider URL path can safely carry.
var pinShape = regexp.MustCompile(`^[1-9]\d{5}$`)

// Lookup resolves a PIN through the first provider that answers usably.
// Malformed PINs are rejected before any provider is contacted.
func (c *Chain) Lookup(ctx context.Context, pin string) (*Info, error) {
	if !pinShape.MatchString(pin) {
		return nil, ErrInvalidPin
	}

	for _, provider := range c.providers {
		info := c.tryProvider(ctx, provider, pin)
		if info != nil {
			if telemetry.Lookup != nil {
				telemetry.Lookup.Resolved.WithLabelValues(provider.Name()).Inc()
			}
			return info, nil
		}

		if ctx.Err() != nil {
			// The caller's own deadline is gone; further providers would
			// only fail the same way.
			break
		}
	}

	c.logger.Warn("all PIN code providers exhausted", "pincode", pin)
	if telemetry.Lookup != nil {
		telemetry.Lookup.Exhausted.Inc()
	}
	telemetry.CaptureError(ErrAllProvidersUnavailable, map[string]interface{}{
		"pincode":   pin,
		"providers": len(c.providers),
	})

	return nil, ErrAllProvidersUnavailable
}

// tryProvider runs a single provider under the chain's per-call timeout.
// Returns nil when the provider failed or did not recognize the response.
func (c *Chain) tryProvider(ctx context.Context, provider Provider, pin string) *Info {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if telemetry.Lookup != nil {
		telemetry.Lookup.Attempts.WithLabelValues(provider.Name()).Inc()
	}

	start := time.Now()
	info, err := provider.Lookup(callCtx, pin)
	elapsed := time.Since(start)

	if telemetry.Lookup != nil {
		telemetry.Lookup.Duration.WithLabelValues(provider.Name()).Observe(elapsed.Seconds())
	}

	if err != nil {
		reason := "error"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "timeout"
		}
		c.logger.Warn("PIN code provider failed",
			"provider", provider.Name(),
			"pincode", pin,
			"duration", elapsed,
			"reason", reason,
			"error", err,
		)
		if telemetry.Lookup != nil {
			telemetry.Lookup.Failures.WithLabelValues(provider.Name(), reason).Inc()
		}
		telemetry.AddBreadcrumb("pincode", "provider failed", map[string]interface{}{
			"provider": provider.Name(),
			"reason":   reason,
		})
		return nil
	}

	if info == nil {
		if telemetry.Lookup != nil {
			telemetry.Lookup.Failures.WithLabelValues(provider.Name(), "unrecognized").Inc()
		}
		telemetry.AddBreadcrumb("pincode", "provider failed", map[string]interface{}{
			"provider": provider.Name(),
			"reason":   "unrecognized",
		})
		return nil
	}

	return info
}
