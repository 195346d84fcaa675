package manager

import (
	"context"
	"testing"

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

func TestHandleItemAddedPropagatesToFilterAndListCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	em.EXPECT().GetItem(gomock.Any(), "item-1").Return(&emby.Item{
		ID:          "item-1",
		Type:        "Movie",
		ProviderIds: emby.ProviderIDs{"Tmdb": "603"},
	}, nil)
	tm.EXPECT().GetMovieDetails(gomock.Any(), 603).Return(&tmdb.MediaDetails{
		ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31",
	}, nil)

	store.EXPECT().UpsertMediaBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rows []storage.MediaMetadata) error {
		require.Len(t, rows, 1)
		require.Equal(t, "603", rows[0].TMDBID)
		return nil
	})
	filterCollID := "filter-coll-1"
	store.EXPECT().ListCustomCollections(gomock.Any()).Return([]storage.CustomCollection{
		{
			ID: 7, Name: "Sci-Fi", Type: storage.CollectionTypeFilter, Status: "active",
			EmbyCollectionID: &filterCollID,
			Definition:       []byte(`{"item_type":["Movie"],"logic":"AND","rules":[]}`),
		},
	}, nil)
	em.EXPECT().AppendItemToCollection(gomock.Any(), "filter-coll-1", "item-1").Return(nil)
	store.EXPECT().MatchAndUpdateListCollectionsOnItemAdd(gomock.Any(), "603", "The Matrix").Return([]storage.AffectedCollection{
		{EmbyCollectionID: "list-coll-1", Name: "Best Sci-Fi"},
	}, nil)
	em.EXPECT().AppendItemToCollection(gomock.Any(), "list-coll-1", "item-1").Return(nil)

	m := New(store, tm, em, nil, config.Config{})
	err := m.HandleItemAdded(context.Background(), "item-1")
	require.NoError(t, err)
}

func TestHandleItemAddedNoTMDBIDIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	em.EXPECT().GetItem(gomock.Any(), "item-2").Return(&emby.Item{
		ID:   "item-2",
		Type: "Movie",
	}, nil)

	m := New(store, nil, em, nil, config.Config{})
	err := m.HandleItemAdded(context.Background(), "item-2")
	require.NoError(t, err)
}

func TestClassifyForWatchlistEnrollsNewSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	store.EXPECT().ListWatchlist(gomock.Any()).Return([]storage.Watchlist{
		{ItemID: "other", TMDBID: "999"},
	}, nil)
	store.EXPECT().UpsertWatchlistEntry(gomock.Any(), storage.Watchlist{
		ItemID: "item-3",
		TMDBID: "1399",
		Status: storage.WatchlistWatching,
	}).Return(nil)

	m := New(store, nil, nil, nil, config.Config{})
	err := m.classifyForWatchlist(context.Background(), storage.MediaMetadata{
		TMDBID:   "1399",
		ItemType: storage.ItemTypeSeries,
	}, "item-3")
	require.NoError(t, err)
}

func TestClassifyForWatchlistSkipsAlreadyTracked(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	store.EXPECT().ListWatchlist(gomock.Any()).Return([]storage.Watchlist{
		{ItemID: "item-3", TMDBID: "1399"},
	}, nil)

	m := New(store, nil, nil, nil, config.Config{})
	err := m.classifyForWatchlist(context.Background(), storage.MediaMetadata{
		TMDBID:   "1399",
		ItemType: storage.ItemTypeSeries,
	}, "item-3")
	require.NoError(t, err)
}

func TestClassifyForWatchlistSkipsMovies(t *testing.T) {
	m := New(nil, nil, nil, nil, config.Config{})
	err := m.classifyForWatchlist(context.Background(), storage.MediaMetadata{
		TMDBID:   "603",
		ItemType: storage.ItemTypeMovie,
	}, "item-1")
	require.NoError(t, err)
}
