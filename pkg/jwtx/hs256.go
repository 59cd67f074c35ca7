package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// HS256KeyLength is the recommended key size for the HMAC signing key.
const HS256KeyLength = 32

// Signer signs session claims into compact JWT strings.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier parses and verifies a compact JWT string into claims.
// Expiry is checked separately via Claims.ValidateExpiry so callers can
// decide how strict to be about clock skew.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HS256Signer implements Signer and Verifier using HMAC SHA-256 with a
// single symmetric key. The key should come from cryptox.DeriveKey so a
// restart with the same master secret keeps existing tokens valid.
type HS256Signer struct {
	key    []byte
	issuer string
}

// NewHS256Signer wraps a derived symmetric key.
func NewHS256Signer(key []byte, issuer string) (*HS256Signer, error) {
	if len(key) < HS256KeyLength {
		return nil, errors.New("jwtx: HS256 key too short")
	}
	return &HS256Signer{key: key, issuer: issuer}, nil
}

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}

// Verify parses the token, checks the signature and issuer. Expiry is left
// to the caller via Claims.ValidateExpiry.
func (s *HS256Signer) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSignature
		}
		return s.key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return Claims{}, ErrSignature
		}
		return Claims{}, ErrMalformed
	}

	if !token.Valid {
		return Claims{}, ErrSignature
	}

	if err := claims.ValidateIssuer(s.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
