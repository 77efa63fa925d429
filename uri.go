package stellartoml

import (
	"net/url"
	"strconv"

	"github.com/marwen-abid/stellartoml-go/errors"
)

// URI is a validated absolute URI. It keeps the text it was parsed from so
// that re-serialization never rewrites what the publisher wrote.
type URI struct {
	raw string
}

// ParseURI validates s as an absolute URI with both a scheme and an authority.
// Relative references fail with an INVALID_URI error.
func ParseURI(s string) (URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, errors.New(errors.INVALID_URI, "not a valid URI", err)
	}
	if u.Scheme == "" {
		return URI{}, errors.New(errors.INVALID_URI, "missing scheme in "+strconv.Quote(s), nil)
	}
	if u.Host == "" {
		return URI{}, errors.New(errors.INVALID_URI, "missing authority in "+strconv.Quote(s), nil)
	}
	return URI{raw: s}, nil
}

// MustParseURI is like ParseURI but panics on error.
func MustParseURI(s string) URI {
	u, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

// String returns the URI exactly as it was parsed.
func (u URI) String() string {
	return u.raw
}

// URL returns a freshly parsed copy of the URI.
func (u URI) URL() *url.URL {
	parsed, _ := url.Parse(u.raw)
	return parsed
}

// IsZero reports whether u is the zero value.
func (u URI) IsZero() bool {
	return u.raw == ""
}

// MarshalText implements encoding.TextMarshaler.
func (u URI) MarshalText() ([]byte, error) {
	return []byte(u.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := ParseURI(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
