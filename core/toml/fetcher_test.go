package toml

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/core/net"
	"github.com/marwen-abid/stellartoml-go/errors"
)

func TestURL(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"foo.bar.example.org", "https://foo.bar.example.org/.well-known/stellar.toml"},
		{"https://example.org/", "https://example.org/.well-known/stellar.toml"},
		{"  Example.ORG ", "https://example.org/.well-known/stellar.toml"},
		{"localhost:8000", "https://localhost:8000/.well-known/stellar.toml"},
		{"HTTPS://Example.com/", "https://example.com/.well-known/stellar.toml"},
		{"Http://Example.com", "https://example.com/.well-known/stellar.toml"},
	}
	for _, tt := range tests {
		u, err := URL(tt.domain)
		require.NoError(t, err)
		assert.Equal(t, tt.want, u.String())
	}

	u, err := InsecureURL("foo.bar.example.org")
	require.NoError(t, err)
	assert.Equal(t, "http://foo.bar.example.org/.well-known/stellar.toml", u.String())

	_, err = URL("")
	assert.ErrorIs(t, err, errors.ErrInvalidURI)
}

func newTestFetcher(t *testing.T, handler http.HandlerFunc) (*HTTPFetcher, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := net.NewClient(net.WithMaxRetries(1), net.WithRetryBackoff(time.Millisecond))
	return NewHTTPFetcher(client, WithInsecure()), strings.TrimPrefix(srv.URL, "http://")
}

func TestHTTPFetcher(t *testing.T) {
	t.Run("fetches the well-known path", func(t *testing.T) {
		var path string
		f, domain := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Write([]byte(resolvedToml))
		})

		body, err := f.Fetch(context.Background(), domain)
		require.NoError(t, err)
		assert.Equal(t, stellartoml.WellKnownPath, path)
		assert.Equal(t, resolvedToml, string(body))
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		f, domain := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})

		_, err := f.Fetch(context.Background(), domain)
		se := requireCode(t, err, errors.TOML_FETCH_FAILED, "")
		assert.Equal(t, http.StatusNotFound, se.Context["status"])
	})

	t.Run("oversized body fails", func(t *testing.T) {
		f, domain := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(strings.Repeat("#", MaxTomlSize+1)))
		})

		_, err := f.Fetch(context.Background(), domain)
		requireCode(t, err, errors.TOML_FETCH_FAILED, "")
	})

	t.Run("server errors exhaust retries", func(t *testing.T) {
		f, domain := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := f.Fetch(context.Background(), domain)
		requireCode(t, err, errors.TOML_FETCH_FAILED, "")
		assert.ErrorIs(t, err, errors.ErrNetwork)
	})
}

func TestHTTPFetcherFetchURL(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if r.URL.Path != "/custom/stellar.toml" {
			w.WriteHeader(http.StatusGone)
			return
		}
		w.Write([]byte(resolvedToml))
	}))
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher(net.NewClient(net.WithMaxRetries(0)))

	body, err := f.FetchURL(context.Background(), stellartoml.MustParseURI(srv.URL+"/custom/stellar.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/custom/stellar.toml", path)
	assert.Equal(t, resolvedToml, string(body))

	_, err = f.FetchURL(context.Background(), stellartoml.MustParseURI(srv.URL+"/moved"))
	se := requireCode(t, err, errors.TOML_FETCH_FAILED, "")
	assert.Equal(t, http.StatusGone, se.Context["status"])
	assert.Equal(t, srv.URL+"/moved", se.Context["url"])

	_, err = f.FetchURL(context.Background(), stellartoml.URI{})
	assert.ErrorIs(t, err, errors.ErrInvalidURI)
}

func TestResolverOverHTTP(t *testing.T) {
	f, domain := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resolvedToml))
	})

	doc, err := NewResolver(nil, WithFetcher(f)).Resolve(context.Background(), domain)
	require.NoError(t, err)
	assert.Equal(t, keySigning, doc.SigningKey.String())
}
