package crypto

import (
	"crypto/subtle"
	"reflect"
)

// Key is an abstract interface for all types of keys
type Key interface {
	// AlgorithmName returns the name of the algorithm the key belongs to
	AlgorithmName() string
	// Hex returns lowercase hex representation of the key
	Hex() string
	// Bytes returns a copy of the raw key
	Bytes() []byte
	// Equals returns if the keys are equal
	Equals(Key) bool
}

// PrivateKey is a key that is used for signing and public key derivation
type PrivateKey interface {
	Key
	privateKey()
}

// PublicKey is a key that is used for signature verification
type PublicKey interface {
	Key
	publicKey()
}

// KeyEquals reports whether both keys belong to the same algorithm and hold the same bytes
func KeyEquals(k1, k2 Key) bool {
	if isNilKey(k1) || isNilKey(k2) {
		return false
	}
	if k1.AlgorithmName() != k2.AlgorithmName() {
		return false
	}
	return subtle.ConstantTimeCompare(k1.Bytes(), k2.Bytes()) == 1
}

// rawKey owns a copy of the key bytes, it is never mutated after construction
type rawKey struct {
	algorithm string
	raw       []byte
}

func newRawKey(algorithm string, raw []byte, size int) (rawKey, error) {
	if len(raw) != size {
		return rawKey{}, newParseError("invalid key length", -1)
	}
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return rawKey{algorithm: algorithm, raw: buf}, nil
}

func (k rawKey) AlgorithmName() string {
	return k.algorithm
}

func (k rawKey) Hex() string {
	return EncodeHex(k.raw)
}

func (k rawKey) Bytes() []byte {
	buf := make([]byte, len(k.raw))
	copy(buf, k.raw)
	return buf
}

// slice gives algorithms access to the key without copying
func (k rawKey) slice() []byte {
	return k.raw
}

type rawKeyHolder interface {
	slice() []byte
}

// keyBytes returns key bytes for the given algorithm or ErrIncorrectKeyType
func keyBytes(k Key, algorithm string) ([]byte, error) {
	if isNilKey(k) || k.AlgorithmName() != algorithm {
		return nil, ErrIncorrectKeyType
	}
	if h, ok := k.(rawKeyHolder); ok {
		return h.slice(), nil
	}
	return k.Bytes(), nil
}

// isNilKey is true for a nil interface and for a nil pointer stored in it
func isNilKey(k Key) bool {
	if k == nil {
		return true
	}
	v := reflect.ValueOf(k)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
