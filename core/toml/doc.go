// Package toml provides functionality for fetching, parsing, and generating
// stellar.toml files as specified in SEP-1.
//
// Parse converts raw TOML into a typed stellartoml.StellarToml, validating
// URIs, public keys and currency codes. The Resolver fetches, parses and
// caches stellar.toml files from domains, while the Publisher generates
// stellar.toml content for anchor servers.
package toml
