package models

import "time"

// User is the profile document stored for every registered account. It is
// created once during registration and treated as read-only by the client
// afterwards.
type User struct {
	// ID is the backend-assigned document identifier.
	ID string `json:"$id"`

	// AccountID is the opaque identifier issued by the backend auth service.
	// Exactly one User document exists per account; lookups by AccountID
	// must return zero or one result.
	AccountID string `json:"accountId"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// Username is the display name shown next to posts.
	Username string `json:"username"`

	// AvatarURL is derived from the username initials at registration time.
	AvatarURL string `json:"avatar"`

	// CreatedAt is the backend-assigned creation timestamp.
	CreatedAt time.Time `json:"$createdAt"`
}

// UserFromDocument maps a raw profile document onto a User.
func UserFromDocument(doc Document) User {
	return User{
		ID:        doc.ID,
		AccountID: doc.String("accountId"),
		Email:     doc.String("email"),
		Username:  doc.String("username"),
		AvatarURL: doc.String("avatar"),
		CreatedAt: doc.CreatedAt,
	}
}
