// Package tui implements the terminal UI: an event-driven model whose
// update loop owns all interaction, backed by the application store for
// durable state and the fail-soft catalog for data.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okatsune/mania/internal/app"
	"github.com/okatsune/mania/internal/domain"
	"github.com/okatsune/mania/internal/medialist"
	"github.com/okatsune/mania/internal/tui/styles"
)

// View identifies the active screen.
type View int

const (
	ViewHome View = iota
	ViewSearch
	ViewDetail
	ViewLibrary
)

// sectionRows is how many rows one home section shows at a time.
const sectionRows = 8

// Model is the bubbletea application model.
type Model struct {
	catalog domain.Catalog
	store   *app.Store
	state   app.State

	keys   KeyMap
	styles styles.Styles
	spin   spinner.Model
	input  textinput.Model

	width  int
	height int

	view     View
	prevView View

	// Home sections
	sections        map[Category]domain.Page
	pendingSections int
	sectionIdx      int
	rowIdx          map[Category]int
	sortOption      medialist.SortOption

	// Search
	searchSeq     int
	searchQuery   string
	searchPending bool
	searchResults domain.Page
	searchCursor  int

	// Library
	libTab    int // 0 = favorites, 1 = watchlist
	libCursor int

	// Detail
	detailID int
	detail   *domain.MediaItem
	cast     []domain.CastMember
	recs     []domain.MediaItem

	// Genre catalog as an id-to-name index, for payloads that carry
	// bare genre ids.
	genreIndex map[int]string

	// Every item the session has seen, for resolving library ids.
	items map[int]domain.MediaItem

	status string
}

// NewModel creates the application model.
func NewModel(catalog domain.Catalog, store *app.Store) *Model {
	state := store.State()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "Search anime..."
	ti.CharLimit = 100

	return &Model{
		catalog:  catalog,
		store:    store,
		state:    state,
		keys:     DefaultKeyMap(),
		styles:   styles.ForTheme(state.Theme),
		spin:     sp,
		input:    ti,
		view:     ViewHome,
		sections: make(map[Category]domain.Page),
		rowIdx:   make(map[Category]int),
		items:    make(map[int]domain.MediaItem),
	}
}

// Init hydrates persisted state and fires the four section fetches
// concurrently. Each section degrades independently on failure.
func (m *Model) Init() tea.Cmd {
	m.pendingSections = len(categories)
	m.state = m.store.Dispatch(app.SetLoading{Loading: true})
	return tea.Batch(
		m.spin.Tick,
		HydrateCmd(m.store),
		LoadAllCategoriesCmd(m.catalog),
		LoadGenresCmd(m.catalog),
	)
}

// Update is the single mutation path for the UI.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case StateHydratedMsg:
		// Re-read the store rather than trusting the message snapshot:
		// section loads may have dispatched since it was taken, and a
		// stale snapshot would resurrect their cleared Loading flag.
		m.state = m.store.State()
		m.styles = styles.ForTheme(m.state.Theme)
		return m, nil

	case CategoryLoadedMsg:
		page := msg.Page
		if page.Page > 1 {
			// A later page extends the section already on screen.
			page.Results = append(m.sections[msg.Category].Results, page.Results...)
		}
		m.sections[msg.Category] = page
		m.cacheItems(msg.Page.Results)
		if m.pendingSections > 0 {
			m.pendingSections--
			if m.pendingSections == 0 {
				m.state = m.store.Dispatch(app.SetMovies{Movies: m.mergedSections()})
				m.state = m.store.Dispatch(app.SetLoading{Loading: false})
			}
			return m, nil
		}
		m.state = m.store.Dispatch(app.SetMovies{Movies: m.mergedSections()})
		return m, nil

	case GenresLoadedMsg:
		m.genreIndex = make(map[int]string, len(msg.Genres))
		for _, g := range msg.Genres {
			m.genreIndex[g.ID] = g.Name
		}
		return m, nil

	case SearchDebounceMsg:
		return m.handleDebounce(msg)

	case SearchResultsMsg:
		if msg.Seq != m.searchSeq {
			// A newer query started since this one; drop the result.
			return m, nil
		}
		m.searchPending = false
		page := msg.Page
		if page.Page > 1 && msg.Query == m.searchQuery {
			// Load-more for the same query keeps the cursor in place.
			page.Results = append(m.searchResults.Results, page.Results...)
		} else {
			m.searchCursor = 0
		}
		m.searchResults = page
		m.cacheItems(msg.Page.Results)
		return m, nil

	case DetailLoadedMsg:
		if msg.ID != m.detailID {
			return m, nil
		}
		if msg.Item != nil {
			m.detail = msg.Item
			m.items[msg.Item.ID] = *msg.Item
		}
		return m, nil

	case CastLoadedMsg:
		if msg.ID == m.detailID {
			m.cast = msg.Cast
		}
		return m, nil

	case RecommendationsLoadedMsg:
		if msg.ID == m.detailID {
			m.recs = msg.Items
			m.cacheItems(msg.Items)
		}
		return m, nil

	case StatusMsg:
		m.status = msg.Message
		return m, ClearStatusCmd()

	case ClearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The search input captures printable keys while focused.
	if m.view == ViewSearch && m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.input.Blur()
			m.input.SetValue("")
			m.view = ViewHome
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveSearchCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveSearchCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if item, ok := m.selectedSearchResult(); ok {
				return m, m.openDetail(item.ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.ClearHist):
			m.state = m.store.Dispatch(app.ClearSearchHistory{})
			return m, nil
		case key.Matches(msg, m.keys.NextPage):
			if m.searchResults.HasNextPage && !m.searchPending {
				return m, SearchCmd(m.catalog, m.searchQuery, m.searchResults.Page+1, m.searchSeq)
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			// Keystroke: restart the quiet period. Only the tick that
			// survives uninterrupted triggers a request.
			m.searchSeq++
			m.searchPending = true
			return m, tea.Batch(cmd, DebounceCmd(m.searchSeq))
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Theme):
		m.state = m.store.Dispatch(app.ToggleTheme{})
		m.styles = styles.ForTheme(m.state.Theme)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.prevView = m.view
		m.view = ViewSearch
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Library):
		m.view = ViewLibrary
		m.libCursor = 0
		return m, m.loadMissingLibraryItems()

	case key.Matches(msg, m.keys.Back):
		switch m.view {
		case ViewDetail:
			m.view = m.prevView
		case ViewHome:
			// nothing to go back to
		default:
			m.view = ViewHome
		}
		return m, nil
	}

	switch m.view {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewLibrary:
		return m.handleLibraryKey(msg)
	case ViewDetail:
		return m.handleDetailKey(msg)
	}
	return m, nil
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.sectionIdx > 0 {
			m.sectionIdx--
		}
	case key.Matches(msg, m.keys.Right):
		if m.sectionIdx < len(categories)-1 {
			m.sectionIdx++
		}
	case key.Matches(msg, m.keys.Up):
		m.moveHomeCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveHomeCursor(1)
	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()
	case key.Matches(msg, m.keys.NextPage):
		cat := categories[m.sectionIdx]
		if page := m.sections[cat]; page.HasNextPage {
			return m, LoadCategoryCmd(m.catalog, cat, page.Page+1)
		}
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.selectedHomeItem(); ok {
			return m, m.openDetail(item.ID)
		}
	case key.Matches(msg, m.keys.Favorite):
		if item, ok := m.selectedHomeItem(); ok {
			return m, m.toggleFavorite(item)
		}
	case key.Matches(msg, m.keys.Watchlist):
		if item, ok := m.selectedHomeItem(); ok {
			return m, m.toggleWatchlist(item)
		}
	}
	return m, nil
}

func (m *Model) handleLibraryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.libraryIDs()
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.libTab = 1 - m.libTab
		m.libCursor = 0
		return m, m.loadMissingLibraryItems()
	case key.Matches(msg, m.keys.Up):
		if m.libCursor > 0 {
			m.libCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.libCursor < len(ids)-1 {
			m.libCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if id, ok := m.selectedLibraryID(); ok {
			return m, m.openDetail(id)
		}
	case key.Matches(msg, m.keys.Favorite):
		if id, ok := m.selectedLibraryID(); ok {
			return m, m.toggleFavorite(m.itemOrStub(id))
		}
	case key.Matches(msg, m.keys.Watchlist):
		if id, ok := m.selectedLibraryID(); ok {
			return m, m.toggleWatchlist(m.itemOrStub(id))
		}
	}
	return m, nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Favorite):
		return m, m.toggleFavorite(*m.detail)
	case key.Matches(msg, m.keys.Watchlist):
		return m, m.toggleWatchlist(*m.detail)
	}
	return m, nil
}

func (m *Model) handleDebounce(msg SearchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.searchSeq {
		// The user typed again; a later tick is pending.
		return m, nil
	}
	query := m.input.Value()
	m.searchQuery = query
	if query == "" {
		m.searchPending = false
		m.searchResults = domain.Page{}
		return m, nil
	}
	m.state = m.store.Dispatch(app.AddSearchHistory{Query: query})
	return m, SearchCmd(m.catalog, query, 1, msg.Seq)
}

// === helpers ===

func (m *Model) loading() bool {
	return m.state.Loading || m.searchPending
}

// genreNames resolves display names for an item's genres. Full records
// carry names inline; slimmer payloads may carry bare ids, which are
// looked up in the fetched genre catalog. Unresolvable entries are
// dropped.
func (m *Model) genreNames(item domain.MediaItem) []string {
	var names []string
	for _, g := range item.Genres {
		name := g.Name
		if name == "" {
			name = m.genreIndex[g.ID]
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (m *Model) cacheItems(items []domain.MediaItem) {
	for _, item := range items {
		m.items[item.ID] = item
	}
}

func (m *Model) mergedSections() []domain.MediaItem {
	seen := make(map[int]struct{})
	var merged []domain.MediaItem
	for _, c := range categories {
		for _, item := range m.sections[c].Results {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			merged = append(merged, item)
		}
	}
	return merged
}

// currentSection returns the selected section's items with the active
// sort applied. Sorting copies, so the cached page stays untouched.
func (m *Model) currentSection() []domain.MediaItem {
	items := m.sections[categories[m.sectionIdx]].Results
	if m.sortOption == "" {
		return items
	}
	return medialist.ApplySorting(items, m.sortOption)
}

func (m *Model) selectedHomeItem() (domain.MediaItem, bool) {
	items := m.currentSection()
	idx := m.rowIdx[categories[m.sectionIdx]]
	if idx < 0 || idx >= len(items) {
		return domain.MediaItem{}, false
	}
	return items[idx], true
}

func (m *Model) moveHomeCursor(delta int) {
	cat := categories[m.sectionIdx]
	idx := m.rowIdx[cat] + delta
	if idx < 0 {
		idx = 0
	}
	if max := len(m.sections[cat].Results) - 1; idx > max {
		idx = max
	}
	if idx < 0 {
		idx = 0
	}
	m.rowIdx[cat] = idx
}

func (m *Model) moveSearchCursor(delta int) {
	m.searchCursor += delta
	if m.searchCursor < 0 {
		m.searchCursor = 0
	}
	if max := len(m.searchResults.Results) - 1; m.searchCursor > max && max >= 0 {
		m.searchCursor = max
	}
}

func (m *Model) selectedSearchResult() (domain.MediaItem, bool) {
	if m.searchCursor < 0 || m.searchCursor >= len(m.searchResults.Results) {
		return domain.MediaItem{}, false
	}
	return m.searchResults.Results[m.searchCursor], true
}

func (m *Model) cycleSort() {
	order := []medialist.SortOption{
		"",
		medialist.RatingDesc,
		medialist.DateDesc,
		medialist.TitleAsc,
		medialist.PopularityDesc,
	}
	for i, opt := range order {
		if opt == m.sortOption {
			m.sortOption = order[(i+1)%len(order)]
			return
		}
	}
	m.sortOption = ""
}

func (m *Model) libraryIDs() []int {
	if m.libTab == 0 {
		return m.state.Favorites
	}
	return m.state.Watchlist
}

func (m *Model) selectedLibraryID() (int, bool) {
	ids := m.libraryIDs()
	if m.libCursor < 0 || m.libCursor >= len(ids) {
		return 0, false
	}
	return ids[m.libCursor], true
}

func (m *Model) itemOrStub(id int) domain.MediaItem {
	if item, ok := m.items[id]; ok {
		return item
	}
	return domain.MediaItem{ID: id}
}

// loadMissingLibraryItems fetches details for saved ids the session has
// not seen yet, so the library can show titles after a fresh start.
func (m *Model) loadMissingLibraryItems() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.libraryIDs() {
		if _, ok := m.items[id]; !ok {
			cmds = append(cmds, LoadDetailCmd(m.catalog, id))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) openDetail(id int) tea.Cmd {
	if m.view != ViewDetail {
		m.prevView = m.view
	}
	m.view = ViewDetail
	m.detailID = id
	m.cast = nil
	m.recs = nil
	if item, ok := m.items[id]; ok {
		m.detail = &item
	} else {
		m.detail = nil
	}
	// Three independent fetches; any one may degrade without taking
	// down the others.
	return tea.Batch(
		LoadDetailCmd(m.catalog, id),
		LoadCastCmd(m.catalog, id),
		LoadRecommendationsCmd(m.catalog, id),
	)
}

func (m *Model) toggleFavorite(item domain.MediaItem) tea.Cmd {
	m.state = m.store.Dispatch(app.ToggleFavorite{ID: item.ID})
	if m.store.IsFavorite(item.ID) {
		m.status = "Added to favorites: " + item.DisplayTitle()
	} else {
		m.status = "Removed from favorites: " + item.DisplayTitle()
	}
	m.clampLibraryCursor()
	return ClearStatusCmd()
}

func (m *Model) toggleWatchlist(item domain.MediaItem) tea.Cmd {
	m.state = m.store.Dispatch(app.ToggleWatchlist{ID: item.ID})
	if m.store.OnWatchlist(item.ID) {
		m.status = "Added to watchlist: " + item.DisplayTitle()
	} else {
		m.status = "Removed from watchlist: " + item.DisplayTitle()
	}
	m.clampLibraryCursor()
	return ClearStatusCmd()
}

func (m *Model) clampLibraryCursor() {
	if max := len(m.libraryIDs()) - 1; m.libCursor > max {
		m.libCursor = max
	}
	if m.libCursor < 0 {
		m.libCursor = 0
	}
}
