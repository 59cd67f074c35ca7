package jwtx

import "errors"

var (
	// ErrMalformed reports a token that could not be parsed at all.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrSignature reports a token whose signature did not verify.
	ErrSignature = errors.New("jwtx: invalid signature")

	// ErrExpired reports a token past its exp claim.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNotYetValid reports a token used before its nbf claim.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrIssuer reports an unexpected iss claim.
	ErrIssuer = errors.New("jwtx: unexpected issuer")
)
