package autoadd

import "errors"

var (
	// ErrMissingTitle means the request carried no title to search for.
	ErrMissingTitle = errors.New("title is required")

	// ErrNoSuitableMatch means no catalog result matched closely enough.
	// Callers should ask the user to search manually rather than guess.
	ErrNoSuitableMatch = errors.New("no suitable match, try searching manually")

	// ErrAlreadyInLibrary means the matched book is already tracked.
	ErrAlreadyInLibrary = errors.New("already in library")
)
