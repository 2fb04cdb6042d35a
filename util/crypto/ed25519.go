package crypto

import (
	"crypto/ed25519"
	"fmt"

	"filippo.io/edwards25519"
)

const (
	Ed25519Name = "ed25519"

	// Ed25519PrivateKeySize is the size of the seed, the expanded key is never stored
	Ed25519PrivateKeySize = ed25519.SeedSize
	Ed25519PublicKeySize  = ed25519.PublicKeySize
	Ed25519SignatureSize  = ed25519.SignatureSize
)

var _ Algorithm = (*Ed25519Algorithm)(nil)

// Ed25519PrivateKey is an ed25519 seed.
type Ed25519PrivateKey struct {
	rawKey
}

// Ed25519PublicKey is an ed25519 public key.
type Ed25519PublicKey struct {
	rawKey
}

func NewEd25519PrivateKeyFromBytes(b []byte) (*Ed25519PrivateKey, error) {
	k, err := newRawKey(Ed25519Name, b, Ed25519PrivateKeySize)
	if err != nil {
		return nil, err
	}
	return &Ed25519PrivateKey{rawKey: k}, nil
}

func NewEd25519PrivateKeyFromHex(s string) (*Ed25519PrivateKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewEd25519PrivateKeyFromBytes(b)
}

// Equals compares two ed25519 private keys.
func (k *Ed25519PrivateKey) Equals(o Key) bool {
	return KeyEquals(k, o)
}

func (k *Ed25519PrivateKey) privateKey() {}

func NewEd25519PublicKeyFromBytes(b []byte) (*Ed25519PublicKey, error) {
	k, err := newRawKey(Ed25519Name, b, Ed25519PublicKeySize)
	if err != nil {
		return nil, err
	}
	return &Ed25519PublicKey{rawKey: k}, nil
}

func NewEd25519PublicKeyFromHex(s string) (*Ed25519PublicKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewEd25519PublicKeyFromBytes(b)
}

// Equals compares two ed25519 public keys.
func (k *Ed25519PublicKey) Equals(o Key) bool {
	return KeyEquals(k, o)
}

func (k *Ed25519PublicKey) publicKey() {}

// Ed25519Algorithm signs messages as is, ed25519 hashes them internally with sha512.
type Ed25519Algorithm struct{}

func NewEd25519Algorithm() *Ed25519Algorithm {
	return &Ed25519Algorithm{}
}

func (a *Ed25519Algorithm) Name() string {
	return Ed25519Name
}

// Sign returns a signature from an input message.
func (a *Ed25519Algorithm) Sign(message []byte, key PrivateKey) (string, error) {
	priv, err := ed25519PrivKey(key)
	if err != nil {
		return "", err
	}
	return EncodeHex(ed25519.Sign(priv, message)), nil
}

// Verify checks a signature against the input data.
// Non-canonical signatures and public keys that are not curve points are errors.
func (a *Ed25519Algorithm) Verify(signature string, message []byte, key PublicKey) (bool, error) {
	sig, err := DecodeHex(signature)
	if err != nil {
		return false, err
	}
	if len(sig) != Ed25519SignatureSize {
		return false, newSigningError(ErrInvalidSignature)
	}
	if _, err = edwards25519.NewScalar().SetCanonicalBytes(sig[32:]); err != nil {
		return false, newSigningError(fmt.Errorf("%w: %v", ErrInvalidSignature, err))
	}
	raw, err := keyBytes(key, Ed25519Name)
	if err != nil {
		return false, newSigningError(err)
	}
	if len(raw) != Ed25519PublicKeySize {
		return false, newSigningError(ErrInvalidPublicKey)
	}
	if _, err = new(edwards25519.Point).SetBytes(raw); err != nil {
		return false, newSigningError(fmt.Errorf("%w: %v", ErrInvalidPublicKey, err))
	}
	return ed25519.Verify(raw, message, sig), nil
}

// PublicKey returns an ed25519 public key from a private key.
func (a *Ed25519Algorithm) PublicKey(key PrivateKey) (PublicKey, error) {
	priv, err := ed25519PrivKey(key)
	if err != nil {
		return nil, err
	}
	pub, err := NewEd25519PublicKeyFromBytes(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, newSigningError(err)
	}
	return pub, nil
}

func ed25519PrivKey(key PrivateKey) (ed25519.PrivateKey, error) {
	raw, err := keyBytes(key, Ed25519Name)
	if err != nil {
		return nil, newSigningError(err)
	}
	if len(raw) != Ed25519PrivateKeySize {
		return nil, newSigningError(ErrInvalidScalar)
	}
	return ed25519.NewKeyFromSeed(raw), nil
}
