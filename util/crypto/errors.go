package crypto

import (
	"errors"
	"fmt"
)

var (
	ErrIncorrectKeyType  = errors.New("incorrect key type")
	ErrAlgorithmNotFound = errors.New("algorithm not found")
	ErrInvalidScalar     = errors.New("invalid private key scalar")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidPublicKey  = errors.New("invalid public key")
)

// ParseError is returned for malformed textual input: hex strings, WIF strings and hex signatures.
// Position is the index of the offending character or -1 when the failure has no position.
type ParseError struct {
	Reason   string
	Position int
	Err      error
}

func newParseError(reason string, position int) *ParseError {
	return &ParseError{Reason: reason, Position: position}
}

func (e *ParseError) Error() string {
	msg := "parse error: " + e.Reason
	if e.Position >= 0 {
		msg = fmt.Sprintf("%s at position %d", msg, e.Position)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SigningError is returned when the curve computation fails.
// The cause is meant for logs, callers should not match on it.
type SigningError struct {
	Cause error
}

func newSigningError(cause error) *SigningError {
	return &SigningError{Cause: cause}
}

func (e *SigningError) Error() string {
	if e.Cause == nil {
		return "signing error"
	}
	return "signing error: " + e.Cause.Error()
}

func (e *SigningError) Unwrap() error {
	return e.Cause
}
