package toml

import (
	"bytes"
	"context"
	goerrors "errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/errors"
	"github.com/marwen-abid/stellartoml-go/store/memory"
)

const resolvedToml = `
SIGNING_KEY = "GCKFBEIYV2U22IO2BJ4KVJOIP7XPWQGQFKKWXR6DOSJBV7STMAQSMTGG"
[[CURRENCIES]]
code = "USDC"
issuer = "GBBD47IF6LWK7P7MDEVSCWR7DPUWV3NY3DTQEVFL4NAT4AQH3ZLLFLA5"
`

// countingFetcher serves body for every domain and counts calls.
func countingFetcher(body string, calls *atomic.Int32, seen *string) stellartoml.Fetcher {
	return stellartoml.FetcherFunc(func(ctx context.Context, domain string) ([]byte, error) {
		calls.Add(1)
		if seen != nil {
			*seen = domain
		}
		return []byte(body), nil
	})
}

func TestResolverResolve(t *testing.T) {
	var calls atomic.Int32
	var seen string
	r := NewResolver(nil, WithFetcher(countingFetcher(resolvedToml, &calls, &seen)))

	doc, err := r.Resolve(context.Background(), "https://Example.com/")
	require.NoError(t, err)
	assert.Equal(t, "example.com", seen)
	assert.Equal(t, keySigning, doc.SigningKey.String())
	require.Len(t, doc.Currencies, 1)

	t.Run("second resolve is served from cache", func(t *testing.T) {
		cached, err := r.Resolve(context.Background(), "example.com")
		require.NoError(t, err)
		assert.Equal(t, doc, cached)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestResolverCacheDisabled(t *testing.T) {
	var calls atomic.Int32
	r := NewResolver(nil,
		WithFetcher(countingFetcher(resolvedToml, &calls, nil)),
		WithCacheTTL(0),
	)

	for i := 0; i < 3; i++ {
		_, err := r.Resolve(context.Background(), "example.com")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestResolverUsesProvidedCache(t *testing.T) {
	var calls atomic.Int32
	cache := memory.NewDocumentCache()
	r := NewResolver(nil,
		WithFetcher(countingFetcher(resolvedToml, &calls, nil)),
		WithCache(cache),
		WithCacheTTL(time.Hour),
	)

	_, err := r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Delete(context.Background(), "example.com"))
	_, err = r.Resolve(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

// brokenCache fails every operation.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (*stellartoml.StellarToml, bool, error) {
	return nil, false, goerrors.New("cache unavailable")
}

func (brokenCache) Put(context.Context, string, *stellartoml.StellarToml, time.Time) error {
	return goerrors.New("cache unavailable")
}

func TestResolverToleratesCacheFailure(t *testing.T) {
	var calls atomic.Int32
	var logs bytes.Buffer
	r := NewResolver(nil,
		WithFetcher(countingFetcher(resolvedToml, &calls, nil)),
		WithCache(brokenCache{}),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	for i := 0; i < 2; i++ {
		doc, err := r.Resolve(context.Background(), "example.com")
		require.NoError(t, err)
		assert.Equal(t, keySigning, doc.SigningKey.String())
	}
	assert.Equal(t, int32(2), calls.Load())
	assert.Contains(t, logs.String(), "stellar.toml cache lookup failed")
	assert.Contains(t, logs.String(), "stellar.toml cache store failed")
}

func TestResolverErrors(t *testing.T) {
	t.Run("parse failure is returned and not cached", func(t *testing.T) {
		var calls atomic.Int32
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		cache := memory.NewDocumentCache()
		r := NewResolver(nil,
			WithFetcher(countingFetcher(`SIGNING_KEY = "not-a-key"`, &calls, nil)),
			WithCache(cache),
			WithLogger(logger),
		)

		doc, err := r.Resolve(context.Background(), "example.com")
		assert.Nil(t, doc)
		requireCode(t, err, errors.INVALID_PUBLIC_KEY, "SIGNING_KEY")
		assert.Equal(t, 0, cache.Len())
		assert.Contains(t, logs.String(), "stellar.toml rejected")
	})

	t.Run("untyped fetch error is wrapped", func(t *testing.T) {
		boom := goerrors.New("connection refused")
		r := NewResolver(nil, WithFetcher(stellartoml.FetcherFunc(func(context.Context, string) ([]byte, error) {
			return nil, boom
		})))

		_, err := r.Resolve(context.Background(), "example.com")
		requireCode(t, err, errors.TOML_FETCH_FAILED, "")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("typed fetch error is passed through", func(t *testing.T) {
		typed := errors.New(errors.NETWORK_ERROR, "circuit breaker is open", nil)
		r := NewResolver(nil, WithFetcher(stellartoml.FetcherFunc(func(context.Context, string) ([]byte, error) {
			return nil, typed
		})))

		_, err := r.Resolve(context.Background(), "example.com")
		assert.Same(t, typed, err)
	})
}
