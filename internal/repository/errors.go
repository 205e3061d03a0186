// Package repository provides database access for users and songs over
// a standard *sql.DB. Sentinel errors defined here let handlers map
// storage failures onto HTTP statuses without string matching.
package repository

import "errors"

// ErrUsernameExists is returned when an insert hits the unique index on
// users.username. Handlers translate this into an HTTP 400 response
// telling the caller the name is taken.
var ErrUsernameExists = errors.New("username already exists")
