package app

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/okatsune/mania/internal/domain"
)

// Persistence keys for the four durable state slices.
const (
	keyFavorites     = "favorites"
	keyWatchlist     = "watchlist"
	keyTheme         = "theme"
	keySearchHistory = "searchHistory"
)

// Store owns the application state. Dispatch serializes transitions
// with a mutex, so no two reductions interleave, and fires a detached
// persistence write for the slice an action touched. Writes carry no
// ordering guarantee across slices; two rapid toggles may land out of
// order, and the in-memory state stays authoritative for the session.
type Store struct {
	mu     sync.Mutex
	state  State
	kv     domain.KeyValue
	logger *slog.Logger
}

// NewStore creates a store holding the baseline state.
func NewStore(kv domain.KeyValue, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{state: InitialState(), kv: kv, logger: logger}
}

// State returns a snapshot safe for the caller to keep: the durable
// slices are cloned so later dispatches cannot alias into it.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Favorites = slices.Clone(s.state.Favorites)
	snap.Watchlist = slices.Clone(s.state.Watchlist)
	snap.SearchHistory = slices.Clone(s.state.SearchHistory)
	return snap
}

// Dispatch applies one action and returns the resulting snapshot.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(action, snap)
	return snap
}

// persist fires a detached write for the slice the action touched.
// Failures are swallowed inside the adapter; nothing is awaited.
func (s *Store) persist(action Action, snap State) {
	if s.kv == nil {
		return
	}
	switch action.(type) {
	case ToggleFavorite, SetFavorites:
		go s.kv.Save(keyFavorites, snap.Favorites)
	case ToggleWatchlist, SetWatchlist:
		go s.kv.Save(keyWatchlist, snap.Watchlist)
	case SetTheme, ToggleTheme:
		go s.kv.Save(keyTheme, snap.Theme)
	case AddSearchHistory, SetSearchHistory, ClearSearchHistory:
		go s.kv.Save(keySearchHistory, snap.SearchHistory)
	}
}

// Hydrate loads the four persisted slices concurrently and dispatches
// the corresponding SET actions. Slices that fail to load keep their
// baseline defaults. Callers typically run this off the UI loop, so
// readers may observe the defaults briefly; that race is expected.
func (s *Store) Hydrate() State {
	if s.kv == nil {
		return s.State()
	}

	var (
		favorites = []int{}
		watchlist = []int{}
		theme     = domain.ThemeDark
		history   = []string{}
	)

	// A false Load resets the slice: the adapter promises to leave dest
	// untouched on failure, but a corrupt value must never hydrate no
	// matter what the persistence layer did to the target.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		if !s.kv.Load(keyFavorites, &favorites) {
			favorites = []int{}
		}
	}()
	go func() {
		defer wg.Done()
		if !s.kv.Load(keyWatchlist, &watchlist) {
			watchlist = []int{}
		}
	}()
	go func() {
		defer wg.Done()
		if !s.kv.Load(keyTheme, &theme) {
			theme = domain.ThemeDark
		}
	}()
	go func() {
		defer wg.Done()
		if !s.kv.Load(keySearchHistory, &history) {
			history = []string{}
		}
	}()
	wg.Wait()

	if !theme.Valid() {
		theme = domain.ThemeDark
	}

	s.Dispatch(SetFavorites{IDs: favorites})
	s.Dispatch(SetWatchlist{IDs: watchlist})
	s.Dispatch(SetTheme{Theme: theme})
	snap := s.Dispatch(SetSearchHistory{Queries: history})

	s.logger.Info("state hydrated",
		"favorites", len(snap.Favorites),
		"watchlist", len(snap.Watchlist),
		"theme", snap.Theme,
		"searchHistory", len(snap.SearchHistory))
	return snap
}

// IsFavorite reports membership in the current favorites slice.
func (s *Store) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.state.Favorites, id)
}

// OnWatchlist reports membership in the current watchlist slice.
func (s *Store) OnWatchlist(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.state.Watchlist, id)
}
