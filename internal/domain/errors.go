package domain

import "errors"

var (
	// ErrInvalidClusterCount is returned at index-build time when the
	// requested cluster count is below 1 or above the document count.
	ErrInvalidClusterCount = errors.New("cluster count must be between 1 and the document count")

	// ErrEmptyIndex is returned when routing is attempted against an index
	// with no communities.
	ErrEmptyIndex = errors.New("index has no communities")
)
