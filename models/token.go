package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by every issued session token.
// It extends the registered JWT claims (sub, iss, iat, exp) with the
// account role so that the authorization gate can enforce role checks
// without a database round trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the account role at issuance time. A role change only takes
	// effect on the next login, when a fresh token is minted.
	Role Role `json:"role"`
}

// Token wraps a JWT session token with convenience accessors used by both
// the issuing and the verifying side.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Role is the role claim extracted from the verified token payload.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
