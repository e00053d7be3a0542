package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the signed, stateless credential held client-side in a
// cookie. It bridges the browser session to the upstream API: identity and
// role for presentation, APIToken for authorization.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     Role   `json:"role"`
	APIToken string `json:"api_token,omitempty"`
	jwt.RegisteredClaims
}

// Authorized reports whether this session can authorize upstream calls.
// A session without a bearer token is anonymous for API purposes even when
// the identity fields are populated.
func (c *SessionClaims) Authorized() bool {
	return c != nil && c.APIToken != ""
}
