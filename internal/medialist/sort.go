// Package medialist provides pure ordering and filtering helpers over
// media item lists. Every function returns a new slice and leaves its
// input untouched, so cached or shared lists can be reused safely.
package medialist

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/okatsune/mania/internal/domain"
)

// SortOption names a sort criterion for ApplySorting.
type SortOption string

const (
	RatingDesc     SortOption = "rating_desc"
	RatingAsc      SortOption = "rating_asc"
	DateDesc       SortOption = "date_desc"
	DateAsc        SortOption = "date_asc"
	TitleAsc       SortOption = "title_asc"
	TitleDesc      SortOption = "title_desc"
	PopularityDesc SortOption = "popularity_desc"
)

// newCollator builds a locale-aware, case-insensitive comparator. A
// collator carries internal buffers and is not safe for concurrent
// use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// SortByRating orders by score. An absent score counts as 0, so
// unrated items sort last in descending order.
func SortByRating(items []domain.MediaItem, ascending bool) []domain.MediaItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b domain.MediaItem) int {
		return compareFloat(a.Score, b.Score, ascending)
	})
	return out
}

// SortByReleaseDate orders by release date. Missing or unparseable
// dates count as the earliest possible date, sorting last when
// descending.
func SortByReleaseDate(items []domain.MediaItem, ascending bool) []domain.MediaItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b domain.MediaItem) int {
		ta, tb := parseReleaseDate(a.ReleaseDate), parseReleaseDate(b.ReleaseDate)
		if ta.Equal(tb) {
			return 0
		}
		if ascending {
			if ta.Before(tb) {
				return -1
			}
			return 1
		}
		if ta.After(tb) {
			return -1
		}
		return 1
	})
	return out
}

// SortByTitle orders titles case-insensitively using locale-aware
// collation.
func SortByTitle(items []domain.MediaItem, ascending bool) []domain.MediaItem {
	out := slices.Clone(items)
	collator := newCollator()
	slices.SortStableFunc(out, func(a, b domain.MediaItem) int {
		c := collator.CompareString(a.Title, b.Title)
		if !ascending {
			c = -c
		}
		return c
	})
	return out
}

// SortByPopularity orders by the popularity score. Missing counts as 0.
func SortByPopularity(items []domain.MediaItem, ascending bool) []domain.MediaItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b domain.MediaItem) int {
		return compareFloat(float64(a.Popularity), float64(b.Popularity), ascending)
	})
	return out
}

// ApplySorting maps a named sort option to the matching sort. An
// unrecognized option returns the input unchanged.
func ApplySorting(items []domain.MediaItem, option SortOption) []domain.MediaItem {
	switch option {
	case RatingDesc:
		return SortByRating(items, false)
	case RatingAsc:
		return SortByRating(items, true)
	case DateDesc:
		return SortByReleaseDate(items, false)
	case DateAsc:
		return SortByReleaseDate(items, true)
	case TitleAsc:
		return SortByTitle(items, true)
	case TitleDesc:
		return SortByTitle(items, false)
	case PopularityDesc:
		return SortByPopularity(items, false)
	default:
		return items
	}
}

func compareFloat(a, b float64, ascending bool) int {
	if a == b {
		return 0
	}
	less := a < b
	if !ascending {
		less = !less
	}
	if less {
		return -1
	}
	return 1
}

// parseReleaseDate accepts the ISO-8601 forms the catalog emits. The
// zero time stands in for missing or malformed dates.
func parseReleaseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
