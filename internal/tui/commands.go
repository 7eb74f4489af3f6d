package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okatsune/mania/internal/app"
	"github.com/okatsune/mania/internal/domain"
)

const (
	// searchDebounce is the quiet period after the last keystroke
	// before a search request fires.
	searchDebounce = 500 * time.Millisecond

	// fetchTimeout bounds one catalog operation end to end. The HTTP
	// client applies its own per-request timeout underneath.
	fetchTimeout = 15 * time.Second

	statusTTL = 3 * time.Second
)

// Command factories for async operations. Catalog calls are fail-soft,
// so commands always deliver a result message, never an error message.

// HydrateCmd loads the persisted state slices into the store.
func HydrateCmd(store *app.Store) tea.Cmd {
	return func() tea.Msg {
		return StateHydratedMsg{State: store.Hydrate()}
	}
}

// LoadCategoryCmd loads one home section.
func LoadCategoryCmd(catalog domain.Catalog, category Category, page int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var result domain.Page
		switch category {
		case CategoryTrending:
			result = catalog.Trending(ctx, page)
		case CategoryPopular:
			result = catalog.Popular(ctx, page)
		case CategoryTopRated:
			result = catalog.TopRated(ctx, page)
		case CategoryUpcoming:
			result = catalog.Upcoming(ctx, page)
		}
		return CategoryLoadedMsg{Category: category, Page: result}
	}
}

// LoadAllCategoriesCmd fires the four section fetches concurrently.
// Each section degrades independently on failure.
func LoadAllCategoriesCmd(catalog domain.Catalog) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(categories))
	for _, c := range categories {
		cmds = append(cmds, LoadCategoryCmd(catalog, c, 1))
	}
	return tea.Batch(cmds...)
}

// LoadGenresCmd loads the genre catalog.
func LoadGenresCmd(catalog domain.Catalog) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return GenresLoadedMsg{Genres: catalog.Genres(ctx)}
	}
}

// DebounceCmd schedules the end of the search quiet period for one
// keystroke generation.
func DebounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

// SearchCmd runs a query, tagging the result with its sequence number
// so stale responses can be dropped.
func SearchCmd(catalog domain.Catalog, query string, page, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return SearchResultsMsg{Seq: seq, Query: query, Page: catalog.Search(ctx, query, page)}
	}
}

// LoadDetailCmd loads a single title.
func LoadDetailCmd(catalog domain.Catalog, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return DetailLoadedMsg{ID: id, Item: catalog.Details(ctx, id)}
	}
}

// LoadCastCmd loads a title's character listing.
func LoadCastCmd(catalog domain.Catalog, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return CastLoadedMsg{ID: id, Cast: catalog.Characters(ctx, id)}
	}
}

// LoadRecommendationsCmd loads similar titles.
func LoadRecommendationsCmd(catalog domain.Catalog, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return RecommendationsLoadedMsg{ID: id, Items: catalog.Recommendations(ctx, id)}
	}
}

// ClearStatusCmd clears the status bar after its TTL.
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
