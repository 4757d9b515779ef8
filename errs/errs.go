// Package errs collects the sentinel error values shared across this
// module's transcript, proof, and signature surfaces (spec.md §7). Every
// component reports failures as one of these flat sentinel values, wrapped
// with fmt.Errorf("%w: ...") where extra context helps a caller, rather
// than a family of per-package error types — the same plain
// errors.New/%w style thyrse.go used for ErrInvalidCiphertext.
package errs

import "errors"

var (
	// ErrInvalidEncoding covers malformed compressed points, non-canonical
	// byte encodings, or a scalar >= l.
	ErrInvalidEncoding = errors.New("toscrypto: invalid encoding")

	// ErrNotInGroup is returned when a Ristretto255 decode is rejected by
	// the prime-order check.
	ErrNotInGroup = errors.New("toscrypto: point is not a valid group element")

	// ErrBadProof is returned when a transcript-derived verification
	// equation fails, or a proof scalar is non-canonical.
	ErrBadProof = errors.New("toscrypto: proof verification failed")

	// ErrSignatureInvalid is returned when a signature does not verify.
	ErrSignatureInvalid = errors.New("toscrypto: signature is invalid")

	// ErrBufferTooSmall is returned by peripheral encoders when a
	// caller-supplied output buffer is smaller than required.
	ErrBufferTooSmall = errors.New("toscrypto: output buffer too small")

	// ErrNotInitialized is returned when a one-time initialization
	// required before use has not completed (peripheral use only; the
	// core's own tables are initialized eagerly at package init).
	ErrNotInitialized = errors.New("toscrypto: not initialized")
)
