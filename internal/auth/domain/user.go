package domain

import "time"

// Account is the slice of a users row the login flow reads.
type Account struct {
	ID           int64
	PasswordHash string
}

type RefreshToken struct {
	ID        string
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}
