package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by bearer tokens issued after a
// successful login.
//
// The "sub" claim holds the principal's login name; "authorities" holds the
// authority names captured at verification time.
type TokenClaims struct {
	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// Authorities is the authority snapshot of the principal.
	Authorities []string `json:"authorities"`
}

// Principal rebuilds the [Principal] encoded in the claims.
func (c *TokenClaims) Principal() Principal {
	authorities := make([]string, len(c.Authorities))
	copy(authorities, c.Authorities)

	return Principal{LoginName: c.Subject, Authorities: authorities}
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Principal is the identity the token was issued for or parsed from.
	Principal Principal `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
