package search

import "errors"

var (
	// ErrRepositoryRequired is returned when a lesson repository is not provided.
	ErrRepositoryRequired = errors.New("lesson repository required")

	// ErrQueryRequired is returned when a nil query profile is ranked.
	ErrQueryRequired = errors.New("query profile required")
)
