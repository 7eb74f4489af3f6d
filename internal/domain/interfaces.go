package domain

import "context"

// Catalog is the fail-soft browsing boundary consumed by the UI.
// Implementations never surface transport or payload errors: a failed
// list fetch degrades to an empty page, a failed lookup to nil, and a
// failed sub-listing to an empty slice. Errors are logged internally.
type Catalog interface {
	// Trending returns the currently-airing top titles.
	Trending(ctx context.Context, page int) Page

	// Popular returns titles ranked by popularity.
	Popular(ctx context.Context, page int) Page

	// TopRated returns titles ranked by score.
	TopRated(ctx context.Context, page int) Page

	// Upcoming returns titles from the upcoming season.
	Upcoming(ctx context.Context, page int) Page

	// Search runs a free-text query. A blank query returns an empty
	// page without issuing a request.
	Search(ctx context.Context, query string, page int) Page

	// Details fetches a single title by id, or nil.
	Details(ctx context.Context, id int) *MediaItem

	// Characters lists the cast for a title in upstream role order.
	Characters(ctx context.Context, id int) []CastMember

	// Recommendations lists similar titles (slim entries).
	Recommendations(ctx context.Context, id int) []MediaItem

	// Genres returns the genre catalog.
	Genres(ctx context.Context) []Genre
}

// KeyValue is the persistence boundary for app state slices. Save
// swallows failures; Load reports false when the key is absent or the
// stored value cannot be decoded, leaving dest untouched so callers
// keep their fallback.
type KeyValue interface {
	Save(key string, value any)
	Load(key string, dest any) bool
}
