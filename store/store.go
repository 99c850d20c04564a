// Package store wraps the database handle behind explicit, injectable
// query types. Handlers receive store instances instead of reaching for a
// package-level connection.
package store

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when an insert would duplicate a user email.
	ErrEmailTaken = errors.New("email already registered")
)
