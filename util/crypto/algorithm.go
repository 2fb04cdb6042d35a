//go:generate mockgen -destination mock_crypto/mock_crypto.go github.com/anyproto/any-sign/util/crypto Algorithm
package crypto

import (
	"fmt"
	"sort"
)

// Algorithm is a signature scheme bound to one curve.
// Implementations keep their expensive state for the whole lifetime of the instance
// and must be safe for concurrent use.
type Algorithm interface {
	// Name returns the algorithm identifier, e.g. "secp256k1"
	Name() string
	// Sign hashes the message and returns the hex encoded signature
	Sign(message []byte, key PrivateKey) (string, error)
	// Verify checks the hex encoded signature of the message.
	// false means the signature is well-formed but does not match, anything that prevents
	// the check is returned as an error
	Verify(signature string, message []byte, key PublicKey) (bool, error)
	// PublicKey derives the public key from the private key
	PublicKey(key PrivateKey) (PublicKey, error)
}

type algorithmEntry struct {
	newAlgorithm  func() Algorithm
	newPrivateKey func(b []byte) (PrivateKey, error)
	newPublicKey  func(b []byte) (PublicKey, error)
}

var algorithms = map[string]algorithmEntry{
	Secp256k1Name: {
		newAlgorithm: func() Algorithm { return NewSecp256k1Algorithm() },
		newPrivateKey: func(b []byte) (PrivateKey, error) {
			k, err := NewSecp256k1PrivateKeyFromBytes(b)
			if err != nil {
				return nil, err
			}
			return k, nil
		},
		newPublicKey: func(b []byte) (PublicKey, error) {
			k, err := NewSecp256k1PublicKeyFromBytes(b)
			if err != nil {
				return nil, err
			}
			return k, nil
		},
	},
	Ed25519Name: {
		newAlgorithm: func() Algorithm { return NewEd25519Algorithm() },
		newPrivateKey: func(b []byte) (PrivateKey, error) {
			k, err := NewEd25519PrivateKeyFromBytes(b)
			if err != nil {
				return nil, err
			}
			return k, nil
		},
		newPublicKey: func(b []byte) (PublicKey, error) {
			k, err := NewEd25519PublicKeyFromBytes(b)
			if err != nil {
				return nil, err
			}
			return k, nil
		},
	},
}

func lookup(name string) (algorithmEntry, error) {
	e, ok := algorithms[name]
	if !ok {
		return algorithmEntry{}, fmt.Errorf("%w: %s", ErrAlgorithmNotFound, name)
	}
	return e, nil
}

// NewAlgorithm creates a new instance of the algorithm with the exact given name
func NewAlgorithm(name string) (Algorithm, error) {
	e, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return e.newAlgorithm(), nil
}

// AlgorithmNames returns sorted names of all supported algorithms
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPrivateKeyFromHex parses a hex private key of the named algorithm
func NewPrivateKeyFromHex(algorithm, s string) (PrivateKey, error) {
	e, err := lookup(algorithm)
	if err != nil {
		return nil, err
	}
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return e.newPrivateKey(b)
}

// NewPublicKeyFromHex parses a hex public key of the named algorithm
func NewPublicKeyFromHex(algorithm, s string) (PublicKey, error) {
	e, err := lookup(algorithm)
	if err != nil {
		return nil, err
	}
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return e.newPublicKey(b)
}
