package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/mania/internal/domain"
	"github.com/okatsune/mania/internal/jikan"
	"github.com/okatsune/mania/internal/log"
)

const listBody = `{
	"data": [
		{"mal_id": 1, "title": "Cowboy Bebop", "score": 8.75},
		{"mal_id": 5, "title": "Monster", "score": 8.88}
	],
	"pagination": {"current_page": 1, "has_next_page": true}
}`

func newService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := jikan.NewClient(srv.URL, 2*time.Second, log.NullLogger())
	return NewService(client, log.NullLogger())
}

func TestTrendingParsesEnvelope(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top/anime", r.URL.Path)
		assert.Equal(t, "airing", r.URL.Query().Get("filter"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(listBody))
	}))

	page := svc.Trending(context.Background(), 1)
	require.Len(t, page.Results, 2)
	assert.Equal(t, 1, page.Results[0].ID)
	assert.Equal(t, 1, page.Page)
	assert.True(t, page.HasNextPage)
}

func TestListFailureDegradesToEmptyPage(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	page := svc.Popular(context.Background(), 2)
	assert.Equal(t, domain.EmptyPage(), page)
}

func TestUnreachableServerDegradesToEmptyPage(t *testing.T) {
	client := jikan.NewClient("http://127.0.0.1:1", 200*time.Millisecond, log.NullLogger())
	svc := NewService(client, log.NullLogger())

	page := svc.TopRated(context.Background(), 1)
	assert.Equal(t, domain.EmptyPage(), page)
}

func TestSearchBlankQuerySkipsRequest(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(listBody))
	}))

	page := svc.Search(context.Background(), "   ", 1)
	assert.Equal(t, domain.EmptyPage(), page)
	assert.Zero(t, calls.Load())
}

func TestSearchPassesQuery(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime", r.URL.Path)
		assert.Equal(t, "bebop", r.URL.Query().Get("q"))
		w.Write([]byte(listBody))
	}))

	page := svc.Search(context.Background(), "bebop", 1)
	assert.Len(t, page.Results, 2)
}

func TestDetailsNotFoundDegradesToNil(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	assert.Nil(t, svc.Details(context.Background(), 404))
}

func TestDetails(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/1", r.URL.Path)
		w.Write([]byte(`{"data": {"mal_id": 1, "title": "Cowboy Bebop"}}`))
	}))

	item := svc.Details(context.Background(), 1)
	require.NotNil(t, item)
	assert.Equal(t, "Cowboy Bebop", item.Title)
}

func TestCharactersFailureDegradesToEmptySlice(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	cast := svc.Characters(context.Background(), 1)
	assert.NotNil(t, cast)
	assert.Empty(t, cast)
}

func TestRecommendations(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/anime/1/recommendations", r.URL.Path)
		w.Write([]byte(`{"data": [{"entry": {"mal_id": 30, "title": "Trigun"}}]}`))
	}))

	recs := svc.Recommendations(context.Background(), 1)
	require.Len(t, recs, 1)
	assert.Equal(t, "Trigun", recs[0].Title)
}

func TestGenresCachedAfterFirstFetch(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"data": [{"mal_id": 1, "name": "Action"}]}`))
	}))

	first := svc.Genres(context.Background())
	second := svc.Genres(context.Background())
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

// One failing category must not take down a concurrently resolving one.
func TestConcurrentCategoriesPartialFailure(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filter") == "bypopularity" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(listBody))
	}))

	var trending, popular domain.Page
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); trending = svc.Trending(context.Background(), 1) }()
	go func() { defer wg.Done(); popular = svc.Popular(context.Background(), 1) }()
	wg.Wait()

	assert.Len(t, trending.Results, 2, "resolving category keeps its results")
	assert.Equal(t, domain.EmptyPage(), popular, "failing category degrades to empty")
}
