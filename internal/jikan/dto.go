package jikan

// Jikan v4 (api.jikan.moe) response shapes. Only the fields the mapper
// reads are declared; everything else in the payload is ignored.

// ListResponse is the envelope for paginated anime listings.
type ListResponse struct {
	Data       []Anime    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// AnimeResponse is the envelope for a single-anime lookup.
type AnimeResponse struct {
	Data *Anime `json:"data"`
}

// CharactersResponse is the envelope for a per-title character listing.
type CharactersResponse struct {
	Data []CharacterEntry `json:"data"`
}

// RecommendationsResponse is the envelope for per-title recommendations.
type RecommendationsResponse struct {
	Data []RecommendationEntry `json:"data"`
}

// GenresResponse is the envelope for the genre catalog.
type GenresResponse struct {
	Data []MALEntity `json:"data"`
}

// Pagination carries paging metadata on list responses.
type Pagination struct {
	CurrentPage     int  `json:"current_page"`
	LastVisiblePage int  `json:"last_visible_page"`
	HasNextPage     bool `json:"has_next_page"`
}

// Anime is a full or slim anime record. Slim records (recommendation
// entries) populate only mal_id, title and images.
type Anime struct {
	MalID        int         `json:"mal_id"`
	Title        string      `json:"title"`
	TitleEnglish string      `json:"title_english"`
	Images       Images      `json:"images"`
	Trailer      Trailer     `json:"trailer"`
	Synopsis     string      `json:"synopsis"`
	Aired        Aired       `json:"aired"`
	Year         int         `json:"year"`
	Score        float64     `json:"score"`
	ScoredBy     int         `json:"scored_by"`
	Popularity   int         `json:"popularity"`
	Episodes     int         `json:"episodes"`
	Status       string      `json:"status"`
	Duration     string      `json:"duration"`
	Rating       string      `json:"rating"`
	Genres       []MALEntity `json:"genres"`
	Studios      []MALEntity `json:"studios"`
}

// Images groups the per-format image variants.
type Images struct {
	JPG  ImageSet `json:"jpg"`
	WebP ImageSet `json:"webp"`
}

// ImageSet holds the size variants for one image format.
type ImageSet struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url"`
	LargeImageURL string `json:"large_image_url"`
}

// Trailer carries the promo video reference and its thumbnails.
type Trailer struct {
	URL    string        `json:"url"`
	Images TrailerImages `json:"images"`
}

// TrailerImages holds trailer thumbnail variants.
type TrailerImages struct {
	ImageURL        string `json:"image_url"`
	MaximumImageURL string `json:"maximum_image_url"`
}

// Aired describes the air window.
type Aired struct {
	From   string `json:"from"` // ISO-8601, may be empty
	To     string `json:"to"`
	String string `json:"string"` // human-readable, e.g. "Apr 3, 1998 to Apr 24, 1999"
}

// MALEntity is the generic mal_id/name reference used for genres,
// studios and similar sub-resources.
type MALEntity struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// CharacterEntry wraps a character with its role in the title.
type CharacterEntry struct {
	Character Character `json:"character"`
	Role      string    `json:"role"`
}

// Character is the person-like record inside a character entry.
type Character struct {
	MalID  int    `json:"mal_id"`
	Name   string `json:"name"`
	Images Images `json:"images"`
}

// RecommendationEntry wraps a slim anime record.
type RecommendationEntry struct {
	Entry *Anime `json:"entry"`
	Votes int    `json:"votes"`
}
