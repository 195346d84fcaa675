package listimport

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/curatord/curatord/pkg/storage"
	tmdbmocks "github.com/curatord/curatord/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveMaoyanFetchesAndResolvesOnCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The fetched entry already carries a TMDb id inline, so the
	// resolver never needs to call out to TMDb.
	mockTMDb := tmdbmocks.NewMockITMDb(ctrl)
	resolver := NewResolver(mockTMDb)

	fetcher := MaoyanFetcher(func(ctx context.Context, spec MaoyanSpec) ([]RawEntry, error) {
		assert.Equal(t, "all", spec.Platform)
		return []RawEntry{{Title: "Die Hard", TMDBID: "562"}}, nil
	})

	def := Definition{URL: "maoyan://movie", ItemTypes: []storage.ItemType{storage.ItemTypeMovie}}
	candidates := ResolveMaoyan(context.Background(), nil, fetcher, def, resolver)

	require.Len(t, candidates, 1)
	assert.Equal(t, "562", candidates[0].TMDBID)
}

func TestResolveMaoyanReturnsNilOnFetcherError(t *testing.T) {
	fetcher := MaoyanFetcher(func(ctx context.Context, spec MaoyanSpec) ([]RawEntry, error) {
		return nil, fmt.Errorf("upstream unavailable")
	})

	def := Definition{URL: "maoyan://movie"}
	candidates := ResolveMaoyan(context.Background(), nil, fetcher, def, NewResolver(nil))
	assert.Nil(t, candidates)
}

func TestResolveMaoyanReturnsNilOnInvalidURL(t *testing.T) {
	fetcher := MaoyanFetcher(func(ctx context.Context, spec MaoyanSpec) ([]RawEntry, error) {
		t.Fatal("fetcher should not be called for an invalid url")
		return nil, nil
	})

	def := Definition{URL: "https://example.com/not-maoyan"}
	candidates := ResolveMaoyan(context.Background(), nil, fetcher, def, NewResolver(nil))
	assert.Nil(t, candidates)
}

func TestResolveMaoyanServesFromCacheWithoutCallingFetcher(t *testing.T) {
	cache, err := NewFileCache(t.TempDir(), time.Hour)
	require.NoError(t, err)

	cached := []Candidate{{TMDBID: "999", ItemType: storage.ItemTypeMovie}}
	require.NoError(t, cache.Set("maoyan://movie", cached))

	fetcher := MaoyanFetcher(func(ctx context.Context, spec MaoyanSpec) ([]RawEntry, error) {
		t.Fatal("fetcher should not be called on a cache hit")
		return nil, nil
	})

	def := Definition{URL: "maoyan://movie"}
	got := ResolveMaoyan(context.Background(), cache, fetcher, def, NewResolver(nil))
	assert.Equal(t, cached, got)
}
