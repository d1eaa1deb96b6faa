package model

import "errors"

var (
	// ErrThemeNotFound is returned when a requested themeId is not in the
	// catalog.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrNoFeasibleRoute is returned when a themed crawl produced no stops
	// even after the relaxed retry. An empty route from a single engine run
	// is a valid value, not this error.
	ErrNoFeasibleRoute = errors.New("no feasible route")

	// ErrNotFound is the generic missing-record error for persistence
	// lookups.
	ErrNotFound = errors.New("not found")
)
