package model

import "time"

// User represents an application user record as stored in the `users`
// table. Each field corresponds to a column in the database. Usernames
// are case-sensitive and unique; the uniqueness is enforced by a unique
// index so that concurrent registrations cannot race past a lookup.
// The raw password never reaches this struct, only its bcrypt hash.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Username     – unique username.
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
