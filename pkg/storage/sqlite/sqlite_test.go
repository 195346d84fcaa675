package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T) storage.Storage {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	return store
}

func TestNewRunsMigrationsAgainstAnEmptyDatabase(t *testing.T) {
	store := initSqlite(t)
	assert.NotNil(t, store)

	media, err := store.ListMedia(context.Background(), storage.ItemTypeMovie)
	require.NoError(t, err)
	assert.Empty(t, media)
}

func TestUpsertMediaBatchRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	rd := time.Date(1988, 7, 15, 0, 0, 0, 0, time.UTC)
	item := storage.MediaMetadata{
		TMDBID:      "100",
		ItemType:    storage.ItemTypeMovie,
		Title:       "Die Hard",
		ReleaseYear: 1988,
		ReleaseDate: &rd,
		Rating:      8.2,
		Genres:      []string{"Action", "Thriller"},
		Actors:      []storage.Person{{Name: "Bruce Willis"}},
	}

	require.NoError(t, store.UpsertMediaBatch(ctx, []storage.MediaMetadata{item}))

	got, err := store.GetMediaByTMDBID(ctx, storage.ItemTypeMovie, "100")
	require.NoError(t, err)
	assert.Equal(t, "Die Hard", got.Title)
	assert.Equal(t, []string{"Action", "Thriller"}, got.Genres)
	require.Len(t, got.Actors, 1)
	assert.Equal(t, "Bruce Willis", got.Actors[0].Name)

	// Upserting the same tmdb id again updates in place rather than
	// duplicating the row.
	item.Rating = 9.0
	require.NoError(t, store.UpsertMediaBatch(ctx, []storage.MediaMetadata{item}))

	all, err := store.ListMedia(ctx, storage.ItemTypeMovie)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 9.0, all[0].Rating)
}

func TestDeleteMediaByTMDBID(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	require.NoError(t, store.UpsertMediaBatch(ctx, []storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie},
		{TMDBID: "200", ItemType: storage.ItemTypeMovie},
	}))

	require.NoError(t, store.DeleteMediaByTMDBID(ctx, storage.ItemTypeMovie, []string{"100"}))

	all, err := store.ListMedia(ctx, storage.ItemTypeMovie)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "200", all[0].TMDBID)
}

func TestGetMediaByTMDBIDNotFound(t *testing.T) {
	store := initSqlite(t)
	_, err := store.GetMediaByTMDBID(context.Background(), storage.ItemTypeMovie, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpsertWatchlistEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	w := storage.Watchlist{
		ItemID: "emby-series-1",
		TMDBID: "1000",
		Status: storage.WatchlistWatching,
		MissingInfo: []storage.MissingSeason{
			{SeasonNumber: 3},
		},
	}
	require.NoError(t, store.UpsertWatchlistEntry(ctx, w))

	list, err := store.ListWatchlist(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, storage.WatchlistWatching, list[0].Status)
	require.Len(t, list[0].MissingInfo, 1)
	assert.Equal(t, 3, list[0].MissingInfo[0].SeasonNumber)

	w.Status = storage.WatchlistPaused
	require.NoError(t, store.UpsertWatchlistEntry(ctx, w))

	list, err = store.ListWatchlist(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, storage.WatchlistPaused, list[0].Status)
}

func TestPersonUpsertMergesByIdentifierThenByName(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	embyID := "emby-person-1"
	id1, err := store.UpsertPerson(ctx, storage.PersonIdentity{EmbyPersonID: &embyID}, "Bruce Willis")
	require.NoError(t, err)
	assert.NotZero(t, id1)

	// Same emby id again resolves to the same row.
	id2, err := store.UpsertPerson(ctx, storage.PersonIdentity{EmbyPersonID: &embyID}, "Bruce Willis")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	// A new identifier under the same primary name merges into that row.
	tmdbID := int64(62)
	id3, err := store.UpsertPerson(ctx, storage.PersonIdentity{TMDBPersonID: &tmdbID}, "Bruce Willis")
	require.NoError(t, err)
	assert.Equal(t, id1, id3)

	identity, err := store.GetPerson(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Bruce Willis", identity.PrimaryName)
}

func TestSaveTranslationRejectsNonTargetScript(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	// Japanese text passes the target-script check.
	require.NoError(t, store.SaveTranslation(ctx, "original", "翻訳済み", "manual"))
	got, err := store.GetTranslation(ctx, "original")
	require.NoError(t, err)
	assert.Equal(t, "翻訳済み", got.TranslatedText)

	// A passthrough (no target script) translation is rejected at write
	// time, so the prior cached row is untouched.
	require.NoError(t, store.SaveTranslation(ctx, "original", "untranslated passthrough", "llm"))
	got, err = store.GetTranslation(ctx, "original")
	require.NoError(t, err)
	assert.Equal(t, "翻訳済み", got.TranslatedText)
}

func TestGetTranslationNotFound(t *testing.T) {
	store := initSqlite(t)
	_, err := store.GetTranslation(context.Background(), "never saved")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
