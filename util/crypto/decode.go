package crypto

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// WIFOptions controls how DecodePrivateKey treats WIF input
type WIFOptions struct {
	// Strict enables checksum and compressed-flag handling
	Strict bool
	// Net, if set, restricts strict decoding to the network's version byte
	Net *chaincfg.Params
}

// DecodePrivateKey parses a private key of the named algorithm.
// secp256k1 keys are accepted as hex or WIF, other algorithms as hex only.
// A string made of hex digits only is always treated as hex.
func DecodePrivateKey(algorithm, s string, opts WIFOptions) (PrivateKey, error) {
	if algorithm != Secp256k1Name || isHexString(s) {
		return NewPrivateKeyFromHex(algorithm, s)
	}
	var (
		k   *Secp256k1PrivateKey
		err error
	)
	if opts.Strict {
		k, err = NewSecp256k1PrivateKeyFromWIFStrict(s, opts.Net)
	} else {
		k, err = NewSecp256k1PrivateKeyFromWIF(s)
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}

// DecodePublicKey parses a hex public key of the named algorithm
func DecodePublicKey(algorithm, s string) (PublicKey, error) {
	return NewPublicKeyFromHex(algorithm, s)
}

func isHexString(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if _, ok := fromHexChar(c); !ok {
			return false
		}
	}
	return true
}
