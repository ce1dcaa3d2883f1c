package models

import "time"

// Session is the authenticated connection handle issued by the backend after
// a successful login. The Secret ties all subsequent requests to the account;
// the client treats it as opaque apart from reading its expiry.
type Session struct {
	// ID identifies the session server-side; DeleteSession accepts it or
	// the "current" alias.
	ID string `json:"$id"`

	// AccountID is the account this session authenticates.
	AccountID string `json:"userId"`

	// Secret is the token attached to authenticated requests. Never logged.
	Secret string `json:"secret"`

	// ExpiresAt is when the backend stops honouring the secret.
	ExpiresAt time.Time `json:"expire"`

	CreatedAt time.Time `json:"$createdAt"`
}

// Expired reports whether the session secret is past its expiry at the given
// instant. Sessions without a known expiry never report expired.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Account is the auth-service record behind a session. It is distinct from
// the User profile document, which lives in the document store and is looked
// up by AccountID.
type Account struct {
	ID    string `json:"$id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
