package model

import "errors"

var (
	// ErrTournamentNotFound indicates that no tournament exists for the requested year.
	ErrTournamentNotFound = errors.New("tournament not found")
	// ErrInvalidYear indicates that the supplied year could not be parsed.
	ErrInvalidYear = errors.New("invalid year")
)
