package library

import "errors"

var (
	// ErrNotFound means no item has the requested ID.
	ErrNotFound = errors.New("item not found")

	// ErrDuplicate means another item already uses the same catalog entry.
	ErrDuplicate = errors.New("item already exists")

	// ErrConstraint means the item breaks a schema rule (blank title,
	// unknown kind or status).
	ErrConstraint = errors.New("invalid item")
)
