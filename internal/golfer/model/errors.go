package model

import "errors"

var (
	// ErrGolferNotFound indicates that the name matches neither a golfer
	// record nor any tournament winner.
	ErrGolferNotFound = errors.New("golfer not found")
)
