package jikan

import (
	"strings"

	"github.com/okatsune/mania/internal/domain"
)

// MapAnime converts a Jikan anime record into the canonical media item.
// Missing fields map to zero values; a nil record maps to nil.
func MapAnime(a *Anime) *domain.MediaItem {
	if a == nil {
		return nil
	}

	item := domain.MediaItem{
		ID:             a.MalID,
		Title:          a.Title,
		TitleEnglish:   a.TitleEnglish,
		PosterURL:      a.Images.JPG.ImageURL,
		PosterURLLarge: a.Images.JPG.LargeImageURL,
		BackdropURL:    a.Trailer.Images.MaximumImageURL,
		Synopsis:       a.Synopsis,
		ReleaseDate:    a.Aired.From,
		Aired:          a.Aired.String,
		Year:           a.Year,
		Score:          a.Score,
		ScoredBy:       a.ScoredBy,
		Popularity:     a.Popularity,
		Episodes:       a.Episodes,
		Status:         a.Status,
		Duration:       a.Duration,
		ContentRating:  a.Rating,
		Studios:        joinStudios(a.Studios),
		TrailerURL:     a.Trailer.URL,
	}

	// Genre entries pass through as-is; upstream does not validate them
	// and neither do we. A malformed entry becomes a zero-valued Genre.
	if len(a.Genres) > 0 {
		item.Genres = make([]domain.Genre, 0, len(a.Genres))
		for _, g := range a.Genres {
			item.Genres = append(item.Genres, domain.Genre{ID: g.MalID, Name: g.Name})
		}
	}

	return &item
}

// MapAnimeList converts a listing, skipping nothing.
func MapAnimeList(data []Anime) []domain.MediaItem {
	items := make([]domain.MediaItem, 0, len(data))
	for i := range data {
		items = append(items, *MapAnime(&data[i]))
	}
	return items
}

// MapPage converts a list response into a result page. The effective
// page number falls back to the requested one when pagination metadata
// is absent.
func MapPage(resp *ListResponse, requestedPage int) domain.Page {
	if resp == nil {
		return domain.EmptyPage()
	}
	page := resp.Pagination.CurrentPage
	if page == 0 {
		page = requestedPage
	}
	return domain.Page{
		Results:     MapAnimeList(resp.Data),
		Page:        page,
		HasNextPage: resp.Pagination.HasNextPage,
	}
}

// MapCharacters flattens character entries, preserving upstream role order.
func MapCharacters(entries []CharacterEntry) []domain.CastMember {
	cast := make([]domain.CastMember, 0, len(entries))
	for _, e := range entries {
		cast = append(cast, domain.CastMember{
			ID:         e.Character.MalID,
			Name:       e.Character.Name,
			Role:       e.Role,
			ProfileURL: e.Character.Images.JPG.ImageURL,
		})
	}
	return cast
}

// MapRecommendations converts recommendation entries into slim media
// items. Entries without a record are dropped.
func MapRecommendations(entries []RecommendationEntry) []domain.MediaItem {
	items := make([]domain.MediaItem, 0, len(entries))
	for _, e := range entries {
		if e.Entry == nil {
			continue
		}
		items = append(items, *MapAnime(e.Entry))
	}
	return items
}

// MapGenres converts the genre catalog.
func MapGenres(data []MALEntity) []domain.Genre {
	genres := make([]domain.Genre, 0, len(data))
	for _, g := range data {
		genres = append(genres, domain.Genre{ID: g.MalID, Name: g.Name})
	}
	return genres
}

// joinStudios collapses the studio list into one display string,
// joining distinct names with ", ".
func joinStudios(studios []MALEntity) string {
	if len(studios) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(studios))
	names := make([]string, 0, len(studios))
	for _, s := range studios {
		if s.Name == "" {
			continue
		}
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
