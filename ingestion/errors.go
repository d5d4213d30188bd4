package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a lesson repository is not provided.
	ErrRepositoryRequired = errors.New("lesson repository required")

	// ErrResolverRequired is returned when a vocabulary resolver is not provided.
	ErrResolverRequired = errors.New("vocabulary resolver required")

	// ErrInvalidCatalog is returned when a catalog file cannot be decoded.
	ErrInvalidCatalog = errors.New("invalid catalog file")
)
