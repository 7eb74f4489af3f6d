package tui

import (
	"github.com/okatsune/mania/internal/app"
	"github.com/okatsune/mania/internal/domain"
)

// Category identifies one home-screen section.
type Category int

const (
	CategoryTrending Category = iota
	CategoryPopular
	CategoryTopRated
	CategoryUpcoming
)

// categories lists the sections in display order.
var categories = []Category{CategoryTrending, CategoryPopular, CategoryTopRated, CategoryUpcoming}

// String returns the section heading.
func (c Category) String() string {
	switch c {
	case CategoryTrending:
		return "Trending"
	case CategoryPopular:
		return "Popular"
	case CategoryTopRated:
		return "Top Rated"
	case CategoryUpcoming:
		return "Upcoming"
	default:
		return "Unknown"
	}
}

// StateHydratedMsg signals that the persisted state finished loading.
// The model re-reads the store on receipt; the snapshot here may
// predate dispatches from section loads racing the hydration.
type StateHydratedMsg struct {
	State app.State
}

// CategoryLoadedMsg signals that one home section finished loading.
// A failed fetch arrives as an empty page, never as an error.
type CategoryLoadedMsg struct {
	Category Category
	Page     domain.Page
}

// GenresLoadedMsg carries the genre catalog.
type GenresLoadedMsg struct {
	Genres []domain.Genre
}

// SearchDebounceMsg fires when the search quiet period elapses. Seq
// identifies the keystroke generation it belongs to; a stale Seq means
// the user has typed since and the tick is ignored.
type SearchDebounceMsg struct {
	Seq int
}

// SearchResultsMsg carries results for one submitted query. Stale Seq
// values are discarded so superseded searches never clobber newer ones.
type SearchResultsMsg struct {
	Seq   int
	Query string
	Page  domain.Page
}

// DetailLoadedMsg carries a full title record, or nil when the lookup
// degraded.
type DetailLoadedMsg struct {
	ID   int
	Item *domain.MediaItem
}

// CastLoadedMsg carries a title's character listing.
type CastLoadedMsg struct {
	ID   int
	Cast []domain.CastMember
}

// RecommendationsLoadedMsg carries similar titles for a detail view.
type RecommendationsLoadedMsg struct {
	ID    int
	Items []domain.MediaItem
}

// StatusMsg sets a transient status bar message.
type StatusMsg struct {
	Message string
}

// ClearStatusMsg clears the status bar.
type ClearStatusMsg struct{}
