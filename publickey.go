package stellartoml

import (
	"fmt"

	"github.com/stellar/go/strkey"

	"github.com/marwen-abid/stellartoml-go/errors"
)

// PublicKeyLength is the length of a strkey-encoded Ed25519 account ID.
const PublicKeyLength = 56

// PublicKey is an Ed25519 account public key (G...).
// The zero value is not a valid key; use ParsePublicKey or PublicKeyFromBytes.
type PublicKey struct {
	key [32]byte
}

// ParsePublicKey decodes a strkey account ID. It fails with an
// INVALID_PUBLIC_KEY error when the length, base32 alphabet, version byte or
// CRC16-XMODEM checksum is wrong.
func ParsePublicKey(s string) (PublicKey, error) {
	if len(s) != PublicKeyLength {
		return PublicKey{}, errors.New(
			errors.INVALID_PUBLIC_KEY,
			fmt.Sprintf("expected %d characters, got %d", PublicKeyLength, len(s)),
			nil,
		)
	}

	raw, err := strkey.Decode(strkey.VersionByteAccountID, s)
	if err != nil {
		return PublicKey{}, errors.New(errors.INVALID_PUBLIC_KEY, "not a valid strkey account ID", err)
	}

	return PublicKeyFromBytes(raw)
}

// PublicKeyFromBytes wraps a raw 32-byte Ed25519 public key.
func PublicKeyFromBytes(raw []byte) (PublicKey, error) {
	var k PublicKey
	if len(raw) != len(k.key) {
		return PublicKey{}, errors.New(
			errors.INVALID_PUBLIC_KEY,
			fmt.Sprintf("expected %d key bytes, got %d", len(k.key), len(raw)),
			nil,
		)
	}
	copy(k.key[:], raw)
	return k, nil
}

// Bytes returns a copy of the raw key.
func (k PublicKey) Bytes() []byte {
	b := make([]byte, len(k.key))
	copy(b, k.key[:])
	return b
}

// IsZero reports whether k is the zero value.
func (k PublicKey) IsZero() bool {
	return k.key == [32]byte{}
}

// String returns the strkey encoding of the key.
func (k PublicKey) String() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, k.key[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
