package crypto

// CryptoFactory binds an algorithm so signers can be created for different keys
type CryptoFactory struct {
	algorithm Algorithm
}

func NewCryptoFactory(algorithm Algorithm) *CryptoFactory {
	return &CryptoFactory{algorithm: algorithm}
}

func (f *CryptoFactory) Algorithm() Algorithm {
	return f.algorithm
}

// NewSigner returns a signer bound to the factory's algorithm and the given key
func (f *CryptoFactory) NewSigner(key PrivateKey) *Signer {
	return &Signer{algorithm: f.algorithm, key: key}
}

// Signer signs messages with one key
type Signer struct {
	algorithm Algorithm
	key       PrivateKey
}

func (s *Signer) Sign(message []byte) (string, error) {
	return s.algorithm.Sign(message, s.key)
}

func (s *Signer) PublicKey() (PublicKey, error) {
	return s.algorithm.PublicKey(s.key)
}

func (s *Signer) Algorithm() Algorithm {
	return s.algorithm
}
