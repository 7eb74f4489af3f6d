package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/mania/internal/app"
	"github.com/okatsune/mania/internal/domain"
)

// fakeCatalog serves canned pages for model tests.
type fakeCatalog struct {
	page domain.Page
}

func (f *fakeCatalog) Trending(context.Context, int) domain.Page { return f.page }

func (f *fakeCatalog) Popular(context.Context, int) domain.Page { return f.page }

func (f *fakeCatalog) TopRated(context.Context, int) domain.Page { return f.page }

func (f *fakeCatalog) Upcoming(context.Context, int) domain.Page { return f.page }

func (f *fakeCatalog) Search(context.Context, string, int) domain.Page { return f.page }

func (f *fakeCatalog) Details(context.Context, int) *domain.MediaItem { return nil }

func (f *fakeCatalog) Characters(context.Context, int) []domain.CastMember { return nil }

func (f *fakeCatalog) Recommendations(context.Context, int) []domain.MediaItem { return nil }

func (f *fakeCatalog) Genres(context.Context) []domain.Genre { return nil }

func newTestModel() *Model {
	page := domain.Page{
		Results: []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}},
		Page:    1,
	}
	return NewModel(&fakeCatalog{page: page}, app.NewStore(nil, nil))
}

func TestStaleSearchResultsAreDropped(t *testing.T) {
	m := newTestModel()
	m.view = ViewSearch
	m.searchSeq = 3
	m.searchPending = true

	// A result from an older query generation arrives late.
	stale := domain.Page{Results: []domain.MediaItem{{ID: 99, Title: "Old Query Hit"}}}
	m.Update(SearchResultsMsg{Seq: 2, Query: "old", Page: stale})
	assert.Empty(t, m.searchResults.Results, "stale results must be discarded")
	assert.True(t, m.searchPending)

	fresh := domain.Page{Results: []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}}}
	m.Update(SearchResultsMsg{Seq: 3, Query: "bebop", Page: fresh})
	require.Len(t, m.searchResults.Results, 1)
	assert.Equal(t, 1, m.searchResults.Results[0].ID)
	assert.False(t, m.searchPending)
}

func TestSupersededDebounceTickIsIgnored(t *testing.T) {
	m := newTestModel()
	m.view = ViewSearch
	m.input.SetValue("bebop")
	m.searchSeq = 5

	_, cmd := m.handleDebounce(SearchDebounceMsg{Seq: 4})
	assert.Nil(t, cmd, "a tick from before the latest keystroke fires nothing")

	_, cmd = m.handleDebounce(SearchDebounceMsg{Seq: 5})
	assert.NotNil(t, cmd, "the surviving tick triggers the search")
	assert.Equal(t, []string{"bebop"}, m.state.SearchHistory)
}

func TestDebounceWithEmptyQueryClearsResults(t *testing.T) {
	m := newTestModel()
	m.view = ViewSearch
	m.searchSeq = 1
	m.searchPending = true
	m.searchResults = domain.Page{Results: []domain.MediaItem{{ID: 1}}}

	_, cmd := m.handleDebounce(SearchDebounceMsg{Seq: 1})
	assert.Nil(t, cmd)
	assert.Empty(t, m.searchResults.Results)
	assert.Empty(t, m.state.SearchHistory, "blank queries never enter history")
}

func TestCategoryLoadingCompletes(t *testing.T) {
	m := newTestModel()
	m.Init()
	assert.True(t, m.state.Loading)

	page := domain.Page{Results: []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}}}
	for _, c := range categories {
		m.Update(CategoryLoadedMsg{Category: c, Page: page})
	}

	assert.False(t, m.state.Loading, "loading clears once every section landed")
	assert.Len(t, m.state.Movies, 1, "merged cache deduplicates across sections")
}

func TestFailedCategoryRendersEmptyWhileOthersLoad(t *testing.T) {
	m := newTestModel()
	m.Init()

	ok := domain.Page{Results: []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}}}
	m.Update(CategoryLoadedMsg{Category: CategoryTrending, Page: ok})
	m.Update(CategoryLoadedMsg{Category: CategoryPopular, Page: domain.EmptyPage()})
	m.Update(CategoryLoadedMsg{Category: CategoryTopRated, Page: domain.EmptyPage()})
	m.Update(CategoryLoadedMsg{Category: CategoryUpcoming, Page: domain.EmptyPage()})

	assert.Len(t, m.sections[CategoryTrending].Results, 1)
	assert.Empty(t, m.sections[CategoryPopular].Results)
	assert.False(t, m.state.Loading)
}

func TestLateHydrationKeepsLoadingCleared(t *testing.T) {
	m := newTestModel()
	m.Init()

	page := domain.Page{Results: []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}}}
	for _, c := range categories {
		m.Update(CategoryLoadedMsg{Category: c, Page: page})
	}
	require.False(t, m.state.Loading)

	// Hydration finishing after the sections must not roll the model
	// back to the snapshot taken before they landed.
	m.Update(StateHydratedMsg{State: app.State{Loading: true}})
	assert.False(t, m.state.Loading)
}

func TestNextPageExtendsSection(t *testing.T) {
	m := newTestModel()
	m.Init()

	first := domain.Page{
		Results:     []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}},
		Page:        1,
		HasNextPage: true,
	}
	m.Update(CategoryLoadedMsg{Category: CategoryTrending, Page: first})
	m.Update(CategoryLoadedMsg{Category: CategoryPopular, Page: domain.EmptyPage()})
	m.Update(CategoryLoadedMsg{Category: CategoryTopRated, Page: domain.EmptyPage()})
	m.Update(CategoryLoadedMsg{Category: CategoryUpcoming, Page: domain.EmptyPage()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd, "a section with a next page fetches it")

	second := domain.Page{
		Results: []domain.MediaItem{{ID: 2, Title: "Trigun"}},
		Page:    2,
	}
	m.Update(CategoryLoadedMsg{Category: CategoryTrending, Page: second})

	results := m.sections[CategoryTrending].Results
	require.Len(t, results, 2, "the later page extends the section")
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, 2, results[1].ID)
	assert.False(t, m.sections[CategoryTrending].HasNextPage)
	assert.Len(t, m.state.Movies, 2, "the merged cache picks up later pages")
}

func TestNextPageIgnoredOnLastPage(t *testing.T) {
	m := newTestModel()
	m.sections[CategoryTrending] = domain.Page{
		Results: []domain.MediaItem{{ID: 1}},
		Page:    1,
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Nil(t, cmd)
}

func TestSearchNextPageAppendsResults(t *testing.T) {
	m := newTestModel()
	m.view = ViewSearch
	m.input.Focus()
	m.searchSeq = 2
	m.searchQuery = "bebop"
	m.searchCursor = 0
	m.searchResults = domain.Page{
		Results:     []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}},
		Page:        1,
		HasNextPage: true,
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd, "more results are available")

	second := domain.Page{
		Results: []domain.MediaItem{{ID: 2, Title: "Cowboy Bebop: The Movie"}},
		Page:    2,
	}
	m.Update(SearchResultsMsg{Seq: 2, Query: "bebop", Page: second})

	require.Len(t, m.searchResults.Results, 2)
	assert.Equal(t, 2, m.searchResults.Results[1].ID)
	assert.Equal(t, 0, m.searchCursor, "appending keeps the cursor in place")
}

func TestGenreCatalogResolvesBareIds(t *testing.T) {
	m := newTestModel()
	m.Update(GenresLoadedMsg{Genres: []domain.Genre{
		{ID: 1, Name: "Action"},
		{ID: 4, Name: "Comedy"},
	}})

	item := domain.MediaItem{Genres: []domain.Genre{
		{ID: 1},                 // bare id, resolved from the catalog
		{ID: 4, Name: "Comedy"}, // inline name wins
		{ID: 99},                // unknown, dropped
	}}
	assert.Equal(t, []string{"Action", "Comedy"}, m.genreNames(item))
}

func TestToggleFavoriteUpdatesStateAndStatus(t *testing.T) {
	m := newTestModel()
	item := domain.MediaItem{ID: 7, Title: "Monster"}

	m.toggleFavorite(item)
	assert.Equal(t, []int{7}, m.state.Favorites)
	assert.Contains(t, m.status, "Added to favorites")

	m.toggleFavorite(item)
	assert.Empty(t, m.state.Favorites)
	assert.Contains(t, m.status, "Removed from favorites")
}

func TestDetailMessagesForOtherItemsIgnored(t *testing.T) {
	m := newTestModel()
	m.detailID = 1

	other := domain.MediaItem{ID: 2, Title: "Monster"}
	m.Update(DetailLoadedMsg{ID: 2, Item: &other})
	assert.Nil(t, m.detail)

	m.Update(CastLoadedMsg{ID: 2, Cast: []domain.CastMember{{ID: 1}}})
	assert.Nil(t, m.cast)
}
