// Package stellartoml provides a typed model of the stellar.toml file (SEP-1)
// published by organizations in the Stellar ecosystem to declare their
// issuer accounts, validators, currencies and service endpoints.
//
// The root package holds the document model and the two validated scalar
// types it is built from, PublicKey and URI. Parsing, rendering and
// resolving documents live in core/toml; fetching and caching are delegated
// to the Fetcher and DocumentCache collaborators defined here.
package stellartoml

import (
	"context"
	"time"
)

// WellKnownPath is where SEP-1 requires stellar.toml to be published.
const WellKnownPath = "/.well-known/stellar.toml"

// Fetcher retrieves the raw stellar.toml published by a domain.
// The SDK does not prescribe transport, retry, or timeout policy; the caller
// provides a Fetcher, or uses the HTTP implementation in core/toml.
type Fetcher interface {
	Fetch(ctx context.Context, domain string) ([]byte, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, domain string) ([]byte, error)

// Fetch calls f(ctx, domain).
func (f FetcherFunc) Fetch(ctx context.Context, domain string) ([]byte, error) {
	return f(ctx, domain)
}

// DocumentCache stores parsed documents keyed by domain.
// Implementations must be safe for concurrent use.
type DocumentCache interface {
	// Get returns the cached document for domain. The boolean is false when
	// no unexpired entry exists. Callers must not modify the returned
	// document's slices or pointed-to values.
	Get(ctx context.Context, domain string) (*StellarToml, bool, error)

	// Put stores doc for domain until expiresAt.
	Put(ctx context.Context, domain string, doc *StellarToml, expiresAt time.Time) error
}
