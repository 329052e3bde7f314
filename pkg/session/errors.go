package session

import "errors"

var (
	// ErrUnauthenticated is returned when the host has not signed the user in.
	ErrUnauthenticated = errors.New("session: unauthenticated")
	// ErrNilUpdate is returned when Apply receives no update function.
	ErrNilUpdate = errors.New("session: update is nil")
)
