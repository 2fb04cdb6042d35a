package crypto

import (
	"fmt"
	"hash"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/minio/sha256-simd"
)

const (
	Secp256k1Name = "secp256k1"

	Secp256k1PrivateKeySize = 32
	// Secp256k1PublicKeySize is the size of the compressed point: parity prefix and x-coordinate
	Secp256k1PublicKeySize = 33
	Secp256k1SignatureSize = 64
)

var _ Algorithm = (*Secp256k1Algorithm)(nil)

// Secp256k1PrivateKey is a big-endian secp256k1 scalar.
// The scalar range is checked on first use by the algorithm.
type Secp256k1PrivateKey struct {
	rawKey
}

// Secp256k1PublicKey is a compressed secp256k1 point
type Secp256k1PublicKey struct {
	rawKey
}

func NewSecp256k1PrivateKeyFromBytes(b []byte) (*Secp256k1PrivateKey, error) {
	k, err := newRawKey(Secp256k1Name, b, Secp256k1PrivateKeySize)
	if err != nil {
		return nil, err
	}
	return &Secp256k1PrivateKey{rawKey: k}, nil
}

func NewSecp256k1PrivateKeyFromHex(s string) (*Secp256k1PrivateKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewSecp256k1PrivateKeyFromBytes(b)
}

// NewSecp256k1PrivateKeyFromWIF decodes the key with DecodeWIF, the checksum is not verified
func NewSecp256k1PrivateKeyFromWIF(s string) (*Secp256k1PrivateKey, error) {
	b, err := DecodeWIF(s)
	if err != nil {
		return nil, err
	}
	return NewSecp256k1PrivateKeyFromBytes(b)
}

// NewSecp256k1PrivateKeyFromWIFStrict decodes the key with DecodeWIFStrict
func NewSecp256k1PrivateKeyFromWIFStrict(s string, net *chaincfg.Params) (*Secp256k1PrivateKey, error) {
	b, err := DecodeWIFStrict(s, net)
	if err != nil {
		return nil, err
	}
	return NewSecp256k1PrivateKeyFromBytes(b)
}

func (k *Secp256k1PrivateKey) Equals(o Key) bool {
	return KeyEquals(k, o)
}

func (k *Secp256k1PrivateKey) privateKey() {}

func NewSecp256k1PublicKeyFromBytes(b []byte) (*Secp256k1PublicKey, error) {
	k, err := newRawKey(Secp256k1Name, b, Secp256k1PublicKeySize)
	if err != nil {
		return nil, err
	}
	return &Secp256k1PublicKey{rawKey: k}, nil
}

func NewSecp256k1PublicKeyFromHex(s string) (*Secp256k1PublicKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return NewSecp256k1PublicKeyFromBytes(b)
}

func (k *Secp256k1PublicKey) Equals(o Key) bool {
	return KeyEquals(k, o)
}

func (k *Secp256k1PublicKey) publicKey() {}

// Secp256k1Algorithm signs sha256 digests of messages with deterministic (RFC6979) ECDSA
// and exchanges signatures in the 64-byte compact r||s form.
// It is safe for concurrent use.
type Secp256k1Algorithm struct {
	digests sync.Pool
}

// NewSecp256k1Algorithm creates the algorithm and warms up the base point tables,
// so the first Sign or PublicKey call does not pay for it
func NewSecp256k1Algorithm() *Secp256k1Algorithm {
	a := &Secp256k1Algorithm{
		digests: sync.Pool{
			New: func() any {
				return sha256.New()
			},
		},
	}
	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.NewPrivateKey(&one).PubKey()
	return a
}

func (a *Secp256k1Algorithm) Name() string {
	return Secp256k1Name
}

func (a *Secp256k1Algorithm) Sign(message []byte, key PrivateKey) (string, error) {
	priv, err := a.privKey(key)
	if err != nil {
		return "", err
	}
	defer priv.Zero()
	sig := ecdsa.Sign(priv, a.digest(message))
	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()
	compact := make([]byte, 0, Secp256k1SignatureSize)
	compact = append(compact, rb[:]...)
	compact = append(compact, sb[:]...)
	return EncodeHex(compact), nil
}

// Verify returns false only when the signature is well-formed and does not match the message and key.
// Malformed signatures and public keys are reported as errors.
func (a *Secp256k1Algorithm) Verify(signature string, message []byte, key PublicKey) (bool, error) {
	digest := a.digest(message)
	sigBytes, err := DecodeHex(signature)
	if err != nil {
		return false, err
	}
	sig, highS, err := parseCompactSignature(sigBytes)
	if err != nil {
		return false, newSigningError(err)
	}
	raw, err := keyBytes(key, Secp256k1Name)
	if err != nil {
		return false, newSigningError(err)
	}
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return false, newSigningError(fmt.Errorf("%w: %v", ErrInvalidPublicKey, err))
	}
	if highS {
		// malleated form of a valid signature, only the lower S is accepted
		return false, nil
	}
	return sig.Verify(digest, pub), nil
}

func (a *Secp256k1Algorithm) PublicKey(key PrivateKey) (PublicKey, error) {
	priv, err := a.privKey(key)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	pub, err := NewSecp256k1PublicKeyFromHex(EncodeHex(priv.PubKey().SerializeCompressed()))
	if err != nil {
		return nil, err
	}
	return pub, nil
}

func (a *Secp256k1Algorithm) digest(message []byte) []byte {
	h := a.digests.Get().(hash.Hash)
	defer a.digests.Put(h)
	h.Reset()
	h.Write(message)
	return h.Sum(nil)
}

func (a *Secp256k1Algorithm) privKey(key PrivateKey) (*secp256k1.PrivateKey, error) {
	raw, err := keyBytes(key, Secp256k1Name)
	if err != nil {
		return nil, newSigningError(err)
	}
	if len(raw) != Secp256k1PrivateKeySize {
		return nil, newSigningError(ErrInvalidScalar)
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return nil, newSigningError(ErrInvalidScalar)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}

// parseCompactSignature also reports whether S is in the upper half of the order
func parseCompactSignature(b []byte) (sig *ecdsa.Signature, highS bool, err error) {
	if len(b) != Secp256k1SignatureSize {
		return nil, false, ErrInvalidSignature
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(b[:32]); overflow {
		return nil, false, ErrInvalidSignature
	}
	if overflow := s.SetByteSlice(b[32:]); overflow {
		return nil, false, ErrInvalidSignature
	}
	return ecdsa.NewSignature(&r, &s), s.IsOverHalfOrder(), nil
}
