package manager

import (
	"context"
	"testing"

	"github.com/curatord/curatord/config"
	embyMocks "github.com/curatord/curatord/pkg/emby/mocks"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/curatord/curatord/pkg/tmdb"
	tmdbMocks "github.com/curatord/curatord/pkg/tmdb/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconcileCollectionFilterPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	c := storage.CustomCollection{
		ID:         1,
		Name:       "Action Favorites",
		Type:       storage.CollectionTypeFilter,
		Definition: []byte(`{"item_type":["Movie"],"logic":"AND","rules":[{"field":"genres","operator":"is_one_of","value":["Action"]}]}`),
	}

	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie, Genres: []string{"Action", "Adventure"}},
		{TMDBID: "200", ItemType: storage.ItemTypeMovie, Genres: []string{"Comedy"}},
	}, nil)

	em.EXPECT().
		CreateOrUpdateCollection(gomock.Any(), "Action Favorites", []string{"100"}, nil, []string{"Movie"}).
		Return("emby-coll-1", []string{"100"}, nil)

	tm.EXPECT().GetMovieDetails(gomock.Any(), 100).Return(&tmdb.MediaDetails{
		ID:          100,
		Title:       "Die Hard",
		ReleaseDate: "1988-07-15",
	}, nil)

	store.EXPECT().
		SaveCollectionSnapshot(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, snapshot []storage.SnapshotItem, embyCollectionID *string) error {
			require.Len(t, snapshot, 1)
			require.Equal(t, "100", snapshot[0].TMDBID)
			require.Equal(t, storage.StatusInLibrary, snapshot[0].Status)
			require.NotNil(t, embyCollectionID)
			require.Equal(t, "emby-coll-1", *embyCollectionID)
			return nil
		})

	m := New(store, tm, em, nil, config.Config{})
	err := m.ReconcileCollection(context.Background(), c)
	require.NoError(t, err)
}

func TestReconcileCollectionNoCandidatesSavesEmptySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	c := storage.CustomCollection{
		ID:         2,
		Name:       "Empty",
		Type:       storage.CollectionTypeFilter,
		Definition: []byte(`{"item_type":["Movie"],"logic":"AND","rules":[{"field":"genres","operator":"is_one_of","value":["Horror"]}]}`),
	}

	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", ItemType: storage.ItemTypeMovie, Genres: []string{"Comedy"}},
	}, nil)
	store.EXPECT().SaveCollectionSnapshot(gomock.Any(), int64(2), nil, nil).Return(nil)

	m := New(store, nil, nil, nil, config.Config{})
	err := m.ReconcileCollection(context.Background(), c)
	require.NoError(t, err)
}

func TestReconcileCollectionsSkipsInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	store.EXPECT().ListCustomCollections(gomock.Any()).Return([]storage.CustomCollection{
		{ID: 1, Name: "Active", Status: "active", Type: storage.CollectionTypeFilter, Definition: []byte(`{"item_type":["Movie"]}`)},
		{ID: 2, Name: "Paused", Status: "paused"},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return(nil, nil)
	store.EXPECT().SaveCollectionSnapshot(gomock.Any(), int64(1), nil, nil).Return(nil)

	m := New(store, nil, nil, nil, config.Config{})
	err := m.ReconcileCollections(context.Background(), nil)
	require.NoError(t, err)
}

func TestReconcileCollectionUnknownTypeSavesEmptySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	c := storage.CustomCollection{ID: 3, Name: "Broken", Type: storage.CollectionType("bogus")}
	store.EXPECT().SaveCollectionSnapshot(gomock.Any(), int64(3), nil, nil).Return(nil)

	m := New(store, nil, nil, nil, config.Config{})
	err := m.ReconcileCollection(context.Background(), c)
	require.NoError(t, err)
}
