package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrItemNotFound indicates the requested catalog entry does not exist
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrCatalogUnreachable indicates the catalog API is unreachable
	ErrCatalogUnreachable = errors.New("catalog API is unreachable")

	// ErrRateLimited indicates the catalog API rejected the request for quota reasons
	ErrRateLimited = errors.New("catalog API rate limit exceeded")
)
