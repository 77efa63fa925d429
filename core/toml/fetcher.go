package toml

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/core/net"
	"github.com/marwen-abid/stellartoml-go/errors"
)

// MaxTomlSize is the largest stellar.toml SEP-1 allows (100 KiB).
const MaxTomlSize = 100 * 1024

// URL returns the https location of the stellar.toml published by domain.
func URL(domain string) (stellartoml.URI, error) {
	return wellKnownURL("https", domain)
}

// InsecureURL returns the plain http location of the stellar.toml published
// by domain. Only use it against local test servers.
func InsecureURL(domain string) (stellartoml.URI, error) {
	return wellKnownURL("http", domain)
}

func wellKnownURL(scheme, domain string) (stellartoml.URI, error) {
	host := normalizeDomain(domain)
	if host == "" {
		return stellartoml.URI{}, errors.New(errors.INVALID_URI, "empty domain", nil)
	}
	return stellartoml.ParseURI(scheme + "://" + host + stellartoml.WellKnownPath)
}

// normalizeDomain lowercases domain and strips any scheme and trailing slash.
func normalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	return strings.TrimSuffix(d, "/")
}

// HTTPFetcher implements stellartoml.Fetcher over HTTP(S) using a net.Client.
type HTTPFetcher struct {
	client   *net.Client
	insecure bool
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithInsecure fetches over plain http instead of https.
func WithInsecure() FetcherOption {
	return func(f *HTTPFetcher) {
		f.insecure = true
	}
}

// NewHTTPFetcher creates a fetcher backed by client. A nil client gets the
// net package defaults.
func NewHTTPFetcher(client *net.Client, opts ...FetcherOption) *HTTPFetcher {
	if client == nil {
		client = net.NewClient()
	}
	f := &HTTPFetcher{client: client}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the raw stellar.toml published by domain.
func (f *HTTPFetcher) Fetch(ctx context.Context, domain string) ([]byte, error) {
	location, err := URL(domain)
	if f.insecure {
		location, err = InsecureURL(domain)
	}
	if err != nil {
		return nil, err
	}
	return f.FetchURL(ctx, location)
}

// FetchURL downloads a raw stellar.toml from an explicit location, for files
// hosted outside the well-known path. 4xx responses fail with the status in
// the error context; 5xx responses are retried by the client and surface as
// a wrapped NETWORK_ERROR.
func (f *HTTPFetcher) FetchURL(ctx context.Context, location stellartoml.URI) ([]byte, error) {
	if location.IsZero() {
		return nil, errors.New(errors.INVALID_URI, "empty stellar.toml location", nil)
	}

	resp, err := f.client.Get(ctx, location.String())
	if err != nil {
		return nil, errors.New(errors.TOML_FETCH_FAILED, fmt.Sprintf("failed to fetch %s", location), err).
			With("url", location.String())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.TOML_FETCH_FAILED, fmt.Sprintf("stellar.toml fetch returned status %d", resp.StatusCode), nil).
			With("url", location.String()).
			With("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxTomlSize+1))
	if err != nil {
		return nil, errors.New(errors.TOML_FETCH_FAILED, "failed to read stellar.toml response", err)
	}
	if len(body) > MaxTomlSize {
		return nil, errors.New(errors.TOML_FETCH_FAILED, fmt.Sprintf("stellar.toml exceeds %d bytes", MaxTomlSize), nil).
			With("url", location.String())
	}

	return body, nil
}

var _ stellartoml.Fetcher = (*HTTPFetcher)(nil)
