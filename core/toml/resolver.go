package toml

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/core/net"
	"github.com/marwen-abid/stellartoml-go/errors"
	"github.com/marwen-abid/stellartoml-go/store/memory"
)

const defaultCacheTTL = 5 * time.Minute

// Resolver fetches, parses, and caches stellar.toml files from domains.
type Resolver struct {
	fetcher  stellartoml.Fetcher
	cache    stellartoml.DocumentCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFetcher replaces the HTTP fetcher, e.g. with a stub in tests.
func WithFetcher(f stellartoml.Fetcher) ResolverOption {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

// WithCache replaces the in-memory cache. A nil cache disables caching.
func WithCache(c stellartoml.DocumentCache) ResolverOption {
	return func(r *Resolver) {
		r.cache = c
	}
}

// WithCacheTTL sets how long resolved documents are cached (default: 5m).
// Zero or negative disables caching.
func WithCacheTTL(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.cacheTTL = d
	}
}

// WithLogger sets the resolver logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver fetching over client.
func NewResolver(client *net.Client, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fetcher:  NewHTTPFetcher(client),
		cache:    memory.NewDocumentCache(),
		cacheTTL: defaultCacheTTL,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the parsed stellar.toml published by domain, from cache
// when an unexpired entry exists.
func (r *Resolver) Resolve(ctx context.Context, domain string) (*stellartoml.StellarToml, error) {
	key := normalizeDomain(domain)
	caching := r.cache != nil && r.cacheTTL > 0

	if caching {
		doc, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.Warn("stellar.toml cache lookup failed", "domain", key, "error", err)
		} else if ok {
			r.logger.Debug("stellar.toml cache hit", "domain", key)
			return doc, nil
		}
	}

	raw, err := r.fetcher.Fetch(ctx, key)
	if err != nil {
		var se *errors.StellarTomlError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, errors.New(errors.TOML_FETCH_FAILED, fmt.Sprintf("failed to fetch stellar.toml from %s", key), err)
	}

	doc, err := ParseBytes(raw)
	if err != nil {
		r.logger.Warn("stellar.toml rejected", "domain", key, "error", err)
		return nil, err
	}

	if caching {
		if err := r.cache.Put(ctx, key, doc, time.Now().Add(r.cacheTTL)); err != nil {
			r.logger.Warn("stellar.toml cache store failed", "domain", key, "error", err)
		}
	}

	r.logger.Debug("stellar.toml resolved",
		"domain", key,
		"currencies", len(doc.Currencies),
		"validators", len(doc.Validators),
	)
	return doc, nil
}
