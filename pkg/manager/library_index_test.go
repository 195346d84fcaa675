package manager

import (
	"context"
	"testing"
	"time"

	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/emby"
	embyMocks "github.com/curatord/curatord/pkg/emby/mocks"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/curatord/curatord/pkg/tmdb"
	tmdbMocks "github.com/curatord/curatord/pkg/tmdb/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestIndexLibraryDeletesItemsMissingFromServer proves an item known to
// local storage but absent from the server's reported items is deleted
// before any batch processing happens.
func TestIndexLibraryDeletesItemsMissingFromServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	em.EXPECT().GetItems(gomock.Any(), []string{"lib-1"}, "", gomock.Any()).Return(nil, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeSeries).Return(nil, nil)

	store.EXPECT().DeleteMediaByTMDBID(gomock.Any(), storage.ItemTypeMovie, []string{"100"}).Return(nil)
	store.EXPECT().DeleteMediaByTMDBID(gomock.Any(), storage.ItemTypeSeries, []string{"100"}).Return(nil)

	m := New(store, nil, em, nil, config.Config{})

	err := m.IndexLibrary(context.Background(), []string{"lib-1"}, IndexQuick, nil)
	require.NoError(t, err)
}

// TestIndexLibraryQuickModeSkipsUnmodifiedCommonItems proves quick mode
// only re-enriches a known item when the server reports a newer
// modification time than last_synced_at.
func TestIndexLibraryQuickModeSkipsUnmodifiedCommonItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	lastSynced := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	serverModified := lastSynced.Add(-time.Hour) // older than last sync

	em.EXPECT().GetItems(gomock.Any(), []string{"lib-1"}, "", gomock.Any()).Return([]emby.Item{
		{
			ID:           "srv-1",
			Type:         "Movie",
			ProviderIds:  emby.ProviderIDs{"Tmdb": "100"},
			DateModified: serverModified.Format(time.RFC3339),
		},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie, LastSyncedAt: lastSynced},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeSeries).Return(nil, nil)

	m := New(store, nil, em, nil, config.Config{})

	err := m.IndexLibrary(context.Background(), []string{"lib-1"}, IndexQuick, nil)
	require.NoError(t, err)
}

// TestIndexLibraryEnrichesNewItemsWithTMDBDetails proves a server item
// with no local counterpart is enriched via TMDb and persisted.
func TestIndexLibraryEnrichesNewItemsWithTMDBDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)

	em.EXPECT().GetItems(gomock.Any(), []string{"lib-1"}, "", gomock.Any()).Return([]emby.Item{
		{
			ID:          "srv-200",
			Type:        "Movie",
			ProviderIds: emby.ProviderIDs{"Tmdb": "200"},
			People: []emby.Person{
				{ID: "p1", Name: "Bruce Willis", Type: "Actor"},
				{ID: "p2", Name: "Some Director", Type: "Director"},
			},
			DateCreated: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return(nil, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeSeries).Return(nil, nil)

	embyID := "p1"
	store.EXPECT().UpsertPerson(gomock.Any(), storage.PersonIdentity{EmbyPersonID: &embyID}, "Bruce Willis").Return(int64(1), nil)

	tm.EXPECT().GetMovieDetails(gomock.Any(), 200).Return(&tmdb.MediaDetails{
		ID:          200,
		Title:       "Die Hard",
		ReleaseDate: "1988-07-15",
	}, nil)

	var saved []storage.MediaMetadata
	store.EXPECT().UpsertMediaBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []storage.MediaMetadata) error {
			saved = batch
			return nil
		})

	m := New(store, tm, em, nil, config.Config{})

	err := m.IndexLibrary(context.Background(), []string{"lib-1"}, IndexQuick, nil)
	require.NoError(t, err)

	require.Len(t, saved, 1)
	require.Equal(t, "200", saved[0].TMDBID)
	require.Equal(t, "Die Hard", saved[0].Title)
	require.Len(t, saved[0].Actors, 1)
	require.Equal(t, "Bruce Willis", saved[0].Actors[0].Name)
}

// TestIndexLibraryDeepModeReprocessesEveryCommonItemRegardlessOfModTime
// proves deep mode ignores DateModified entirely.
func TestIndexLibraryDeepModeReprocessesEveryCommonItemRegardlessOfModTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)

	lastSynced := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	em.EXPECT().GetItems(gomock.Any(), []string{"lib-1"}, "", gomock.Any()).Return([]emby.Item{
		{
			ID:           "srv-100",
			Type:         "Movie",
			ProviderIds:  emby.ProviderIDs{"Tmdb": "100"},
			DateModified: lastSynced.Add(-time.Hour).Format(time.RFC3339),
		},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie, LastSyncedAt: lastSynced},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeSeries).Return(nil, nil)

	tm.EXPECT().GetMovieDetails(gomock.Any(), 100).Return(&tmdb.MediaDetails{ID: 100, Title: "Refreshed"}, nil)
	store.EXPECT().UpsertMediaBatch(gomock.Any(), gomock.Any()).Return(nil)

	m := New(store, tm, em, nil, config.Config{})

	err := m.IndexLibrary(context.Background(), []string{"lib-1"}, IndexDeep, nil)
	require.NoError(t, err)
}
