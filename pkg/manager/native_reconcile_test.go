package manager

import (
	"context"
	"testing"

	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/curatord/curatord/pkg/tmdb"
	tmdbMocks "github.com/curatord/curatord/pkg/tmdb/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconcileNativeCollectionsClassifiesPartsByLibraryAndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)

	nc := storage.NativeCollection{
		EmbyCollectionID: "emby-native-1",
		TMDBCollectionID: "10",
	}

	store.EXPECT().ListNativeCollections(gomock.Any()).Return([]storage.NativeCollection{nc}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie},
	}, nil)

	tm.EXPECT().GetCollectionDetails(gomock.Any(), 10).Return(&tmdb.CollectionDetails{
		ID: 10,
		Parts: []struct {
			ID          int    `json:"id"`
			Title       string `json:"title"`
			ReleaseDate string `json:"release_date"`
		}{
			{ID: 100, Title: "In Library Part", ReleaseDate: "1990-01-01"},
			{ID: 200, Title: "Future Part", ReleaseDate: "2099-01-01"},
			{ID: 300, Title: "Undated Part", ReleaseDate: ""},
		},
	}, nil)

	var saved storage.NativeCollection
	store.EXPECT().UpsertNativeCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n storage.NativeCollection) error {
			saved = n
			return nil
		})

	m := New(store, tm, nil, nil, config.Config{})

	err := m.ReconcileNativeCollections(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, saved.MissingMovies, 3)
	byID := map[string]storage.SnapshotItem{}
	for _, item := range saved.MissingMovies {
		byID[item.TMDBID] = item
	}

	require.Equal(t, storage.StatusInLibrary, byID["100"].Status)
	require.Equal(t, storage.StatusPendingRelease, byID["200"].Status)
	require.Equal(t, storage.StatusMissing, byID["300"].Status)
	require.Equal(t, 1, saved.InLibraryCount)
	require.True(t, saved.HasMissing)
}

func TestReconcileNativeCollectionsUndatedPartKeepsPreviousStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)

	nc := storage.NativeCollection{
		EmbyCollectionID: "emby-native-2",
		TMDBCollectionID: "20",
		MissingMovies: []storage.SnapshotItem{
			{TMDBID: "400", Status: storage.StatusSubscribed},
		},
	}

	store.EXPECT().ListNativeCollections(gomock.Any()).Return([]storage.NativeCollection{nc}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return(nil, nil)

	tm.EXPECT().GetCollectionDetails(gomock.Any(), 20).Return(&tmdb.CollectionDetails{
		ID: 20,
		Parts: []struct {
			ID          int    `json:"id"`
			Title       string `json:"title"`
			ReleaseDate string `json:"release_date"`
		}{
			{ID: 400, Title: "Still Undated", ReleaseDate: ""},
		},
	}, nil)

	var saved storage.NativeCollection
	store.EXPECT().UpsertNativeCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n storage.NativeCollection) error {
			saved = n
			return nil
		})

	m := New(store, tm, nil, nil, config.Config{})

	err := m.ReconcileNativeCollections(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, saved.MissingMovies, 1)
	require.Equal(t, storage.StatusSubscribed, saved.MissingMovies[0].Status)
}

func TestReconcileNativeCollectionsSkipsUnparsableCollectionIDButContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	store.EXPECT().ListNativeCollections(gomock.Any()).Return([]storage.NativeCollection{
		{EmbyCollectionID: "emby-native-3", TMDBCollectionID: "not-a-number"},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return(nil, nil)

	m := New(store, nil, nil, nil, config.Config{})

	err := m.ReconcileNativeCollections(context.Background(), nil)
	require.NoError(t, err)
}
