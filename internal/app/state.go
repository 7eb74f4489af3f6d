// Package app holds the process-wide application state: favorites,
// watchlist, theme, search history, and the transient movie list. All
// mutation flows through a single reducer that derives a fresh snapshot
// from the previous state plus an action.
package app

import (
	"strings"

	"github.com/okatsune/mania/internal/domain"
)

// maxSearchHistory caps the retained query history.
const maxSearchHistory = 10

// State is one immutable snapshot of the application state.
type State struct {
	Movies        []domain.MediaItem
	Loading       bool
	Favorites     []int // media item ids, display order preserved
	Watchlist     []int
	Theme         domain.Theme
	SearchHistory []string // most-recent-first, deduplicated
}

// InitialState returns the hard-coded baseline used before hydration.
func InitialState() State {
	return State{
		Movies:        []domain.MediaItem{},
		Favorites:     []int{},
		Watchlist:     []int{},
		Theme:         domain.ThemeDark,
		SearchHistory: []string{},
	}
}

// Action is a discriminated mutation request. The reducer switches on
// the concrete type; unrecognized actions leave the state unchanged.
type Action interface{}

type (
	// SetMovies replaces the transient movie list.
	SetMovies struct{ Movies []domain.MediaItem }

	// SetLoading replaces the transient loading flag.
	SetLoading struct{ Loading bool }

	// ToggleFavorite flips membership for one id: present becomes
	// absent, absent is appended.
	ToggleFavorite struct{ ID int }

	// SetFavorites replaces the favorites slice (hydration).
	SetFavorites struct{ IDs []int }

	// ToggleWatchlist flips watchlist membership for one id.
	ToggleWatchlist struct{ ID int }

	// SetWatchlist replaces the watchlist slice (hydration).
	SetWatchlist struct{ IDs []int }

	// SetTheme replaces the theme.
	SetTheme struct{ Theme domain.Theme }

	// ToggleTheme flips dark and light.
	ToggleTheme struct{}

	// AddSearchHistory prepends a query, deduplicating and capping the
	// history. Blank queries are a no-op.
	AddSearchHistory struct{ Query string }

	// SetSearchHistory replaces the history (hydration).
	SetSearchHistory struct{ Queries []string }

	// ClearSearchHistory empties the history.
	ClearSearchHistory struct{}
)

// reduce computes the next state. It never mutates prev: any slice it
// changes is rebuilt, so callers holding an old snapshot are safe.
func reduce(prev State, action Action) State {
	next := prev

	switch a := action.(type) {
	case SetMovies:
		next.Movies = a.Movies

	case SetLoading:
		next.Loading = a.Loading

	case ToggleFavorite:
		next.Favorites = toggleID(prev.Favorites, a.ID)

	case SetFavorites:
		next.Favorites = orEmpty(a.IDs)

	case ToggleWatchlist:
		next.Watchlist = toggleID(prev.Watchlist, a.ID)

	case SetWatchlist:
		next.Watchlist = orEmpty(a.IDs)

	case SetTheme:
		if a.Theme.Valid() {
			next.Theme = a.Theme
		}

	case ToggleTheme:
		next.Theme = prev.Theme.Toggle()

	case AddSearchHistory:
		if strings.TrimSpace(a.Query) == "" {
			return prev
		}
		history := make([]string, 0, len(prev.SearchHistory)+1)
		history = append(history, a.Query)
		for _, q := range prev.SearchHistory {
			if q != a.Query {
				history = append(history, q)
			}
		}
		if len(history) > maxSearchHistory {
			history = history[:maxSearchHistory]
		}
		next.SearchHistory = history

	case SetSearchHistory:
		if a.Queries == nil {
			next.SearchHistory = []string{}
		} else {
			next.SearchHistory = a.Queries
		}

	case ClearSearchHistory:
		next.SearchHistory = []string{}

	default:
		// Unknown actions are no-ops, not errors.
		return prev
	}

	return next
}

// toggleID removes id when present, preserving the relative order of
// the remaining ids, and appends it when absent.
func toggleID(ids []int, id int) []int {
	for i, existing := range ids {
		if existing == id {
			out := make([]int, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			out = append(out, ids[i+1:]...)
			return out
		}
	}
	out := make([]int, 0, len(ids)+1)
	out = append(out, ids...)
	out = append(out, id)
	return out
}

func orEmpty(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}
