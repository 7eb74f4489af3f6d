// Package search ranks cached media items against a query for the
// instant local filter, without touching the network.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/okatsune/mania/internal/domain"
)

// Match pairs a media item with its fuzzy match metadata.
type Match struct {
	Item           domain.MediaItem
	Score          int   // higher is better
	MatchedIndexes []int // rune positions in the display title, for highlighting
}

// Rank fuzzy-matches query against the display titles of items and
// returns matches ordered best-first. An empty query matches nothing.
func Rank(query string, items []domain.MediaItem) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(items) == 0 {
		return nil
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.DisplayTitle()
	}

	results := fuzzy.Find(query, titles)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Item:           items[r.Index],
			Score:          r.Score,
			MatchedIndexes: r.MatchedIndexes,
		}
	}
	return matches
}
