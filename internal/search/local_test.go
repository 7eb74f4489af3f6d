package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/mania/internal/domain"
)

func TestRankEmptyQuery(t *testing.T) {
	items := []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}}
	assert.Nil(t, Rank("", items))
	assert.Nil(t, Rank("   ", items))
}

func TestRankMatchesTitles(t *testing.T) {
	items := []domain.MediaItem{
		{ID: 1, Title: "Cowboy Bebop"},
		{ID: 2, Title: "Samurai Champloo"},
		{ID: 3, Title: "Monster"},
	}

	matches := Rank("bebop", items)
	require.NotEmpty(t, matches)
	assert.Equal(t, 1, matches[0].Item.ID)
}

func TestRankUsesEnglishTitle(t *testing.T) {
	items := []domain.MediaItem{
		{ID: 2, Title: "Shingeki no Kyojin", TitleEnglish: "Attack on Titan"},
	}
	matches := Rank("titan", items)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Item.ID)
}

func TestRankNoMatch(t *testing.T) {
	items := []domain.MediaItem{{ID: 1, Title: "Cowboy Bebop"}}
	assert.Empty(t, Rank("zzzzz", items))
}
