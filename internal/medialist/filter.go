package medialist

import (
	"strings"

	"github.com/okatsune/mania/internal/domain"
)

// Filter returns the items whose title, English title, or synopsis
// contains query, case-insensitively. An empty or whitespace-only
// query returns the input unchanged; a nil list returns an empty list.
func Filter(items []domain.MediaItem, query string) []domain.MediaItem {
	if items == nil {
		return []domain.MediaItem{}
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]domain.MediaItem, 0, len(items))
	for _, item := range items {
		if matchesQuery(item, q) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery(item domain.MediaItem, q string) bool {
	for _, field := range []string{item.Title, item.TitleEnglish, item.Synopsis} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
