package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set embedded in every session token.
//
// The subject ("sub") holds the user ID; Role is carried as a private claim so
// that downstream handlers can authorize without a storage round-trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Role is the role of the user at the moment the token was issued.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to the client.
//
// UserID and Role are parsed copies of the "sub" and "role" claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Role is the role extracted from the "role" claim.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
