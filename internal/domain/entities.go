package domain

import "fmt"

// MediaItem is the canonical catalog entry. Only ID is required for
// identity; every other field may be zero-valued when the upstream
// payload omits it.
type MediaItem struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	TitleEnglish   string  `json:"title_english,omitempty"`
	PosterURL      string  `json:"poster_url,omitempty"`
	PosterURLLarge string  `json:"poster_url_large,omitempty"`
	BackdropURL    string  `json:"backdrop_url,omitempty"`
	Synopsis       string  `json:"synopsis,omitempty"`
	ReleaseDate    string  `json:"release_date,omitempty"` // ISO-8601 start date
	Aired          string  `json:"aired,omitempty"`        // human-readable air range
	Year           int     `json:"year,omitempty"`
	Score          float64 `json:"score,omitempty"` // 0-10 community rating, 0 = unrated
	ScoredBy       int     `json:"scored_by,omitempty"`
	Popularity     int     `json:"popularity,omitempty"`
	Genres         []Genre `json:"genres,omitempty"`
	Episodes       int     `json:"episodes,omitempty"`
	Status         string  `json:"status,omitempty"`
	Duration       string  `json:"duration,omitempty"`
	ContentRating  string  `json:"content_rating,omitempty"` // e.g. "PG-13", "R - 17+"
	Studios        string  `json:"studios,omitempty"`        // joined display string
	TrailerURL     string  `json:"trailer_url,omitempty"`
}

// DisplayTitle prefers the English title when one exists.
func (m MediaItem) DisplayTitle() string {
	if m.TitleEnglish != "" {
		return m.TitleEnglish
	}
	return m.Title
}

// Poster returns the best available poster URL, preferring the large
// variant over the standard one.
func (m MediaItem) Poster() string {
	if m.PosterURLLarge != "" {
		return m.PosterURLLarge
	}
	return m.PosterURL
}

// FormattedScore renders the rating for display, or a dash when unrated.
func (m MediaItem) FormattedScore() string {
	if m.Score <= 0 {
		return "–"
	}
	return fmt.Sprintf("%.1f", m.Score)
}

// FormattedEpisodes renders the episode count, or "?" when unknown
// (still-airing titles report no count).
func (m MediaItem) FormattedEpisodes() string {
	if m.Episodes <= 0 {
		return "?"
	}
	return fmt.Sprintf("%d", m.Episodes)
}

// Genre is an id/name pair referenced from MediaItem and resolved
// against the separately fetched genre catalog.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is a flattened character credit for a title.
type CastMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"` // "Main", "Supporting"
	ProfileURL string `json:"profile_url,omitempty"`
}

// Page is one page of a list endpoint's results.
type Page struct {
	Results     []MediaItem `json:"results"`
	Page        int         `json:"page"`
	HasNextPage bool        `json:"has_next_page"`
}

// EmptyPage is the degraded result for a failed list fetch.
func EmptyPage() Page {
	return Page{Results: []MediaItem{}, Page: 1, HasNextPage: false}
}

// Theme selects the UI color palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle flips between the two palettes.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Valid reports whether t is one of the two recognized palettes.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}
