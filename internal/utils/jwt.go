package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/bachelormess/mess-manager/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by ValidateAndParseJWTToken for every
// verification failure: bad signature, expired token, wrong issuer, or a
// structurally malformed payload. Malformed input never panics; it is
// always reported through this error so the transport layer can answer
// with a clean 401 rather than a 500.
var ErrInvalidToken = errors.New("token is invalid")

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token carries the standard claims (iss, sub, iat, exp) plus the
// account role as a custom claim, so that role checks on later requests
// need no database lookup.
//
// All parameters are required. Returns an error if any of them are empty
// or zero.
func GenerateJWTToken(issuer, userID string, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Role: role}, nil
}

// ValidateAndParseJWTToken verifies the given token string and extracts
// its claims.
//
// Validation includes signature verification with signKey, the issuer
// claim check against tokenIssuer, and the expiry check; expiry is
// enforced on every verification, not just at issuance. Extra parser
// options may be supplied by tests to inject a clock via
// [jwt.WithTimeFunc].
//
// Every failure mode is collapsed into [ErrInvalidToken] (wrapped with
// the underlying cause) so callers can treat all invalid tokens the same.
func ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer string, opts ...jwt.ParserOption) (models.Token, error) {
	opts = append(opts, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: claims.Subject, Role: claims.Role}, nil
}
