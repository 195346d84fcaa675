package manager

import (
	"context"
	"testing"
	"time"

	"github.com/curatord/curatord/config"
	downloaderMocks "github.com/curatord/curatord/pkg/downloader/mocks"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDueForSubscribe(t *testing.T) {
	today := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(0, 0, -1)
	future := today.AddDate(0, 0, 1)

	require.True(t, dueForSubscribe(storage.SnapshotItem{Status: storage.StatusMissing, ReleaseDate: &past}, today))
	require.False(t, dueForSubscribe(storage.SnapshotItem{Status: storage.StatusMissing, ReleaseDate: &future}, today))
	require.False(t, dueForSubscribe(storage.SnapshotItem{Status: storage.StatusMissing, ReleaseDate: nil}, today))
	require.False(t, dueForSubscribe(storage.SnapshotItem{Status: storage.StatusSubscribed, ReleaseDate: &past}, today))
}

func TestAutoSubscribeNativeCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	dl := downloaderMocks.NewMockIDownloader(ctrl)

	today := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(0, 0, -1)

	store.EXPECT().ListNativeCollections(gomock.Any()).Return([]storage.NativeCollection{
		{
			EmbyCollectionID: "coll-1",
			MissingMovies: []storage.SnapshotItem{
				{TMDBID: "1022789", Title: "Inside Out 2", Status: storage.StatusMissing, ReleaseDate: &past},
				{TMDBID: "999", Title: "Still Pending", Status: storage.StatusPendingRelease},
			},
		},
	}, nil)
	dl.EXPECT().SubscribeMovie(gomock.Any(), "Inside Out 2", "1022789").Return(true, nil)
	store.EXPECT().BatchMarkMoviesSubscribedInCollections(gomock.Any(), []string{"1022789"}).Return(nil)

	m := New(store, nil, nil, dl, config.Config{})
	err := m.autoSubscribeNativeCollections(context.Background(), today)
	require.NoError(t, err)
}

func TestAutoSubscribeWatchlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	dl := downloaderMocks.NewMockIDownloader(ctrl)

	today := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(0, 0, -1)
	future := today.AddDate(0, 0, 10)

	store.EXPECT().ListWatchlist(gomock.Any()).Return([]storage.Watchlist{
		{
			ItemID: "item-1",
			TMDBID: "1399",
			Status: storage.WatchlistWatching,
			MissingInfo: []storage.MissingSeason{
				{SeasonNumber: 2, AirDate: &past},
				{SeasonNumber: 3, AirDate: &future},
			},
		},
	}, nil)
	dl.EXPECT().SubscribeSeries(gomock.Any(), "item-1", "1399", gomock.Any()).Return(true, nil)
	store.EXPECT().UpsertWatchlistEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w storage.Watchlist) error {
		require.Len(t, w.MissingInfo, 1)
		require.Equal(t, 3, w.MissingInfo[0].SeasonNumber)
		return nil
	})

	m := New(store, nil, nil, dl, config.Config{})
	err := m.autoSubscribeWatchlist(context.Background(), today)
	require.NoError(t, err)
}
