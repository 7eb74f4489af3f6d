package jikan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnimeNil(t *testing.T) {
	assert.Nil(t, MapAnime(nil))
}

func TestMapAnimeFullRecord(t *testing.T) {
	a := &Anime{
		MalID:        1,
		Title:        "Cowboy Bebop",
		TitleEnglish: "Cowboy Bebop",
		Images: Images{JPG: ImageSet{
			ImageURL:      "https://cdn.example/1.jpg",
			LargeImageURL: "https://cdn.example/1l.jpg",
		}},
		Trailer: Trailer{
			URL:    "https://youtube.example/watch?v=x",
			Images: TrailerImages{MaximumImageURL: "https://cdn.example/max.jpg"},
		},
		Synopsis:   "Bounty hunters in space.",
		Aired:      Aired{From: "1998-04-03T00:00:00+00:00", String: "Apr 3, 1998 to Apr 24, 1999"},
		Year:       1998,
		Score:      8.75,
		ScoredBy:   900000,
		Popularity: 43,
		Episodes:   26,
		Status:     "Finished Airing",
		Duration:   "24 min per ep",
		Rating:     "R - 17+",
		Genres: []MALEntity{
			{MalID: 1, Name: "Action"},
			{MalID: 24, Name: "Sci-Fi"},
		},
		Studios: []MALEntity{{MalID: 14, Name: "Sunrise"}},
	}

	item := MapAnime(a)
	require.NotNil(t, item)

	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "Cowboy Bebop", item.Title)
	assert.Equal(t, "https://cdn.example/1.jpg", item.PosterURL)
	assert.Equal(t, "https://cdn.example/1l.jpg", item.PosterURLLarge)
	assert.Equal(t, "https://cdn.example/1l.jpg", item.Poster(), "large variant preferred")
	assert.Equal(t, "https://cdn.example/max.jpg", item.BackdropURL)
	assert.Equal(t, "1998-04-03T00:00:00+00:00", item.ReleaseDate)
	assert.Equal(t, "Apr 3, 1998 to Apr 24, 1999", item.Aired)
	assert.Equal(t, 8.75, item.Score)
	assert.Equal(t, 26, item.Episodes)
	assert.Equal(t, "R - 17+", item.ContentRating)
	assert.Equal(t, "Sunrise", item.Studios)
	assert.Equal(t, "https://youtube.example/watch?v=x", item.TrailerURL)
	require.Len(t, item.Genres, 2)
	assert.Equal(t, "Action", item.Genres[0].Name)
}

func TestMapAnimeMissingImages(t *testing.T) {
	// A payload with no images at all must degrade, not fail.
	var a Anime
	require.NoError(t, json.Unmarshal([]byte(`{"mal_id": 5, "title": "Monster"}`), &a))

	item := MapAnime(&a)
	require.NotNil(t, item)
	assert.Equal(t, 5, item.ID)
	assert.Empty(t, item.PosterURL)
	assert.Empty(t, item.PosterURLLarge)
	assert.Empty(t, item.Poster())
	assert.Empty(t, item.BackdropURL)
	assert.Empty(t, item.Studios)
	assert.Empty(t, item.Genres)
}

func TestMapAnimePosterFallsBackToStandard(t *testing.T) {
	a := &Anime{MalID: 2, Images: Images{JPG: ImageSet{ImageURL: "https://cdn.example/std.jpg"}}}
	item := MapAnime(a)
	assert.Equal(t, "https://cdn.example/std.jpg", item.Poster())
}

func TestJoinStudiosDistinct(t *testing.T) {
	a := &Anime{
		MalID: 3,
		Studios: []MALEntity{
			{Name: "Bones"},
			{Name: "Madhouse"},
			{Name: "Bones"}, // duplicate collapses
			{Name: ""},      // nameless entry dropped
		},
	}
	item := MapAnime(a)
	assert.Equal(t, "Bones, Madhouse", item.Studios)
}

func TestMapPage(t *testing.T) {
	resp := &ListResponse{
		Data:       []Anime{{MalID: 1}, {MalID: 2}},
		Pagination: Pagination{CurrentPage: 3, HasNextPage: true},
	}
	page := MapPage(resp, 99)
	assert.Equal(t, 3, page.Page)
	assert.True(t, page.HasNextPage)
	assert.Len(t, page.Results, 2)
}

func TestMapPageFallsBackToRequestedPage(t *testing.T) {
	page := MapPage(&ListResponse{Data: []Anime{{MalID: 1}}}, 4)
	assert.Equal(t, 4, page.Page)
	assert.False(t, page.HasNextPage)
}

func TestMapCharactersPreservesRoleOrder(t *testing.T) {
	entries := []CharacterEntry{
		{Role: "Main", Character: Character{MalID: 1, Name: "Spike Spiegel",
			Images: Images{JPG: ImageSet{ImageURL: "https://cdn.example/spike.jpg"}}}},
		{Role: "Supporting", Character: Character{MalID: 2, Name: "Jet Black"}},
	}

	cast := MapCharacters(entries)
	require.Len(t, cast, 2)
	assert.Equal(t, "Spike Spiegel", cast[0].Name)
	assert.Equal(t, "Main", cast[0].Role)
	assert.Equal(t, "https://cdn.example/spike.jpg", cast[0].ProfileURL)
	assert.Equal(t, "Jet Black", cast[1].Name)
	assert.Empty(t, cast[1].ProfileURL)
}

func TestMapRecommendationsDropsEmptyEntries(t *testing.T) {
	entries := []RecommendationEntry{
		{Entry: &Anime{MalID: 30, Title: "Trigun"}},
		{Entry: nil},
	}
	items := MapRecommendations(entries)
	require.Len(t, items, 1)
	assert.Equal(t, 30, items[0].ID)
}

func TestMapGenres(t *testing.T) {
	genres := MapGenres([]MALEntity{{MalID: 1, Name: "Action"}, {MalID: 4, Name: "Comedy"}})
	require.Len(t, genres, 2)
	assert.Equal(t, 4, genres[1].ID)
	assert.Equal(t, "Comedy", genres[1].Name)
}
