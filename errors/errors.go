// Package errors defines the error taxonomy for stellartoml.
//
// All errors returned by the module are represented as StellarTomlError, which provides:
//   - Code: Machine-readable error identifier
//   - Message: Human-readable error description
//   - Field: Path of the stellar.toml field that failed, if any (e.g. "CURRENCIES[0].issuer")
//   - Cause: Underlying error, if any
//   - Context: Additional error details (line number, expected type, domain, etc.)
//
// Errors compare equal under errors.Is when their codes match, so callers can
// test against the exported sentinels:
//
//	if errors.Is(err, stellarerrors.ErrInvalidPublicKey) { ... }
package errors

import "fmt"

// Code is a machine-readable error identifier.
type Code string

// Error codes - Document parsing
const (
	TOML_MALFORMED     Code = "TOML_MALFORMED"
	INVALID_PUBLIC_KEY Code = "INVALID_PUBLIC_KEY"
	INVALID_URI        Code = "INVALID_URI"
	INVALID_FIELD      Code = "INVALID_FIELD"
)

// Error codes - Resolution
const (
	TOML_FETCH_FAILED    Code = "TOML_FETCH_FAILED"
	NETWORK_ERROR        Code = "NETWORK_ERROR"
	ACCOUNT_CHECK_FAILED Code = "ACCOUNT_CHECK_FAILED"
)

// Error codes - Publishing
const (
	RENDER_FAILED Code = "RENDER_FAILED"
)

// Sentinels for use with errors.Is.
var (
	ErrMalformedToml      = &StellarTomlError{Code: TOML_MALFORMED}
	ErrInvalidPublicKey   = &StellarTomlError{Code: INVALID_PUBLIC_KEY}
	ErrInvalidURI         = &StellarTomlError{Code: INVALID_URI}
	ErrInvalidField       = &StellarTomlError{Code: INVALID_FIELD}
	ErrFetchFailed        = &StellarTomlError{Code: TOML_FETCH_FAILED}
	ErrNetwork            = &StellarTomlError{Code: NETWORK_ERROR}
	ErrAccountCheckFailed = &StellarTomlError{Code: ACCOUNT_CHECK_FAILED}
	ErrRenderFailed       = &StellarTomlError{Code: RENDER_FAILED}
)

// StellarTomlError is the base error type for all module errors.
type StellarTomlError struct {
	Code    Code
	Message string
	Field   string // stellar.toml key path, empty when not field specific
	Cause   error
	Context map[string]any
}

// Error returns a formatted error string.
func (e *StellarTomlError) Error() string {
	msg := string(e.Code)
	if e.Field != "" {
		msg = fmt.Sprintf("%s(%s)", e.Code, e.Field)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error, enabling error chain inspection.
func (e *StellarTomlError) Unwrap() error {
	return e.Cause
}

// New creates an error that is not tied to a particular document field.
func New(code Code, message string, cause error) *StellarTomlError {
	return &StellarTomlError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// NewFieldError creates an error for the stellar.toml field at path.
func NewFieldError(code Code, field, message string, cause error) *StellarTomlError {
	e := New(code, message, cause)
	e.Field = field
	return e
}

// WithField returns a copy of e reporting the given field path. Errors built
// by the scalar parsers carry no field; the document parser attaches it.
func (e *StellarTomlError) WithField(field string) *StellarTomlError {
	c := *e
	c.Field = field
	c.Context = make(map[string]any, len(e.Context))
	for k, v := range e.Context {
		c.Context[k] = v
	}
	return &c
}

// With records an additional context value and returns e.
func (e *StellarTomlError) With(key string, value any) *StellarTomlError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Is checks if the target error is a StellarTomlError with the same code.
func (e *StellarTomlError) Is(target error) bool {
	if target == nil {
		return false
	}
	other, ok := target.(*StellarTomlError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// As checks if err is a StellarTomlError and assigns it.
// Unlike the standard library helper it does not walk the Unwrap chain.
func As(err error, target **StellarTomlError) bool {
	if err == nil {
		return false
	}
	if v, ok := err.(*StellarTomlError); ok {
		*target = v
		return true
	}
	return false
}
