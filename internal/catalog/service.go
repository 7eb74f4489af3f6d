// Package catalog wraps the Jikan client behind the fail-soft browsing
// boundary: transport and payload errors never reach the UI. A failing
// list fetch degrades to an empty page, a failing lookup to nil, and a
// failing sub-listing to an empty slice. Every catch site logs.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/okatsune/mania/internal/domain"
	"github.com/okatsune/mania/internal/jikan"
)

const defaultPageSize = 20

// Service implements domain.Catalog over a Jikan client.
type Service struct {
	client *jikan.Client
	logger *slog.Logger

	genreMu sync.Mutex
	genres  []domain.Genre // cached after first successful fetch
}

// NewService creates a catalog service.
func NewService(client *jikan.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Trending returns the currently-airing top titles.
func (s *Service) Trending(ctx context.Context, page int) domain.Page {
	resp, err := s.client.TopAnime(ctx, jikan.FilterAiring, page, defaultPageSize)
	if err != nil {
		s.logger.Error("failed to fetch trending", "page", page, "error", err)
		return domain.EmptyPage()
	}
	return jikan.MapPage(resp, page)
}

// Popular returns titles ranked by popularity.
func (s *Service) Popular(ctx context.Context, page int) domain.Page {
	resp, err := s.client.TopAnime(ctx, jikan.FilterByPopularity, page, defaultPageSize)
	if err != nil {
		s.logger.Error("failed to fetch popular", "page", page, "error", err)
		return domain.EmptyPage()
	}
	return jikan.MapPage(resp, page)
}

// TopRated returns titles ranked by score (the default top ranking).
func (s *Service) TopRated(ctx context.Context, page int) domain.Page {
	resp, err := s.client.TopAnime(ctx, "", page, defaultPageSize)
	if err != nil {
		s.logger.Error("failed to fetch top rated", "page", page, "error", err)
		return domain.EmptyPage()
	}
	return jikan.MapPage(resp, page)
}

// Upcoming returns titles from the upcoming season.
func (s *Service) Upcoming(ctx context.Context, page int) domain.Page {
	resp, err := s.client.SeasonUpcoming(ctx, page, defaultPageSize)
	if err != nil {
		s.logger.Error("failed to fetch upcoming", "page", page, "error", err)
		return domain.EmptyPage()
	}
	return jikan.MapPage(resp, page)
}

// Search runs a free-text query. Blank queries short-circuit to an
// empty page without touching the network.
func (s *Service) Search(ctx context.Context, query string, page int) domain.Page {
	if strings.TrimSpace(query) == "" {
		return domain.EmptyPage()
	}
	resp, err := s.client.SearchAnime(ctx, query, page, defaultPageSize)
	if err != nil {
		s.logger.Error("search failed", "query", query, "page", page, "error", err)
		return domain.EmptyPage()
	}
	return jikan.MapPage(resp, page)
}

// Details fetches a single title, or nil on any failure.
func (s *Service) Details(ctx context.Context, id int) *domain.MediaItem {
	resp, err := s.client.AnimeByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch details", "id", id, "error", err)
		return nil
	}
	return jikan.MapAnime(resp.Data)
}

// Characters lists the cast for a title in upstream role order.
func (s *Service) Characters(ctx context.Context, id int) []domain.CastMember {
	resp, err := s.client.AnimeCharacters(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch characters", "id", id, "error", err)
		return []domain.CastMember{}
	}
	return jikan.MapCharacters(resp.Data)
}

// Recommendations lists similar titles as slim entries.
func (s *Service) Recommendations(ctx context.Context, id int) []domain.MediaItem {
	resp, err := s.client.AnimeRecommendations(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch recommendations", "id", id, "error", err)
		return []domain.MediaItem{}
	}
	return jikan.MapRecommendations(resp.Data)
}

// Genres returns the genre catalog, cached after the first successful
// fetch. Failures before that degrade to an empty slice.
func (s *Service) Genres(ctx context.Context) []domain.Genre {
	s.genreMu.Lock()
	cached := s.genres
	s.genreMu.Unlock()
	if cached != nil {
		return cached
	}

	resp, err := s.client.GenresAnime(ctx)
	if err != nil {
		s.logger.Error("failed to fetch genres", "error", err)
		return []domain.Genre{}
	}
	genres := jikan.MapGenres(resp.Data)

	s.genreMu.Lock()
	s.genres = genres
	s.genreMu.Unlock()

	s.logger.Info("loaded genre catalog", "count", len(genres))
	return genres
}

var _ domain.Catalog = (*Service)(nil)
