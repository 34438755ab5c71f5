package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type reported to clients on login.
const TokenTypeBearer = "bearer"

// Claims is the JWT claim set issued on login.
//
// Email identifies the user the token was issued for; it is duplicated into
// the registered "sub" claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Email returns the email claim of the token.
func (t *Token) Email() string {
	return t.Claims.Email
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
