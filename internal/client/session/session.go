// Package session owns the client-side auth session: decoding the bearer
// token, deciding expiry, persisting the token across runs, and watching
// for expiry in the background. It is the single authority every view goes
// through for auth state and role — nothing else reads the token store.
package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the identity embedded in a bearer token.
type Session struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// claims mirrors the backend's token payload: registered claims plus a
// custom role.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Decode extracts the session from a token string. The signature is not
// verified client-side: only the payload segment is base64url-decoded and
// parsed as JSON. Any malformed input yields nil, never a panic or error —
// a bad token is simply "no session".
func Decode(token string) *Session {
	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil
	}
	s := &Session{Subject: c.Subject, Role: strings.ToUpper(c.Role)}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}

// Expired reports whether s is unusable at the given instant. A nil session
// and a session without an exp claim both count as expired.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return true
	}
	return !now.Before(s.ExpiresAt)
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == "ADMIN"
}
