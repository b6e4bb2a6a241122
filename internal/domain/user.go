package domain

import "time"

type UserId = int64

type User struct {
	Id        UserId
	Name      string
	Email     string
	PassHash  string
	CreatedAt time.Time
}

// Credentials is what a user presents at login.
// Password is the plaintext; it never gets persisted.
type Credentials struct {
	Email    string
	Password string
}
