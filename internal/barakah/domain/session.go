package domain

import "time"

// Session is one authenticated browser session. The cookie the client holds
// is a signed token whose subject is the session ID; the row here is the
// source of truth for expiry and revocation.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the session is usable at the given instant.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
