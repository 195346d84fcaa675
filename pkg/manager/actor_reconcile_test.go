package manager

import (
	"context"
	"testing"
	"time"

	"github.com/curatord/curatord/config"
	downloaderMocks "github.com/curatord/curatord/pkg/downloader/mocks"
	"github.com/curatord/curatord/pkg/emby"
	embyMocks "github.com/curatord/curatord/pkg/emby/mocks"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/curatord/curatord/pkg/tmdb"
	tmdbMocks "github.com/curatord/curatord/pkg/tmdb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActorFilterAllows(t *testing.T) {
	today := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	recentRelease := today.AddDate(0, -1, 0).Format(tmdb.ReleaseDateFormat)
	oldRelease := today.AddDate(-5, 0, 0).Format(tmdb.ReleaseDateFormat)
	tooOldRelease := "2000-01-01"

	t.Run("rejects pre start_year release", func(t *testing.T) {
		f := storage.ActorFilter{StartYear: 2010}
		w := tmdb.FilmographyEntry{Title: "老电影", ReleaseDate: tooOldRelease, VoteAverage: 9, VoteCount: 100}
		assert.False(t, actorFilterAllows(f, w, today))
	})

	t.Run("rejects disallowed media type", func(t *testing.T) {
		f := storage.ActorFilter{MediaTypes: []string{"movie"}}
		w := tmdb.FilmographyEntry{Title: "电视剧", MediaType: "tv", FirstAirDate: oldRelease, VoteAverage: 9, VoteCount: 100}
		assert.False(t, actorFilterAllows(f, w, today))
	})

	t.Run("allows case-insensitive media type match", func(t *testing.T) {
		f := storage.ActorFilter{MediaTypes: []string{"Movie"}}
		w := tmdb.FilmographyEntry{Title: "电影", MediaType: "movie", ReleaseDate: oldRelease, VoteAverage: 9, VoteCount: 100}
		assert.True(t, actorFilterAllows(f, w, today))
	})

	t.Run("rejects excluded genre", func(t *testing.T) {
		f := storage.ActorFilter{GenresExclude: []string{"27"}}
		w := tmdb.FilmographyEntry{Title: "恐怖片", ReleaseDate: oldRelease, GenreIDs: []int{27}, VoteAverage: 9, VoteCount: 100}
		assert.False(t, actorFilterAllows(f, w, today))
	})

	t.Run("rejects missing included genre", func(t *testing.T) {
		f := storage.ActorFilter{GenresInclude: []string{"35"}}
		w := tmdb.FilmographyEntry{Title: "剧情片", ReleaseDate: oldRelease, GenreIDs: []int{18}, VoteAverage: 9, VoteCount: 100}
		assert.False(t, actorFilterAllows(f, w, today))
	})

	t.Run("rejects low rating with enough votes and no recency bypass", func(t *testing.T) {
		f := storage.ActorFilter{MinRating: 7}
		w := tmdb.FilmographyEntry{Title: "老片", ReleaseDate: oldRelease, VoteAverage: 4, VoteCount: 500}
		assert.False(t, actorFilterAllows(f, w, today))
	})

	t.Run("recency bypasses the rating gate", func(t *testing.T) {
		f := storage.ActorFilter{MinRating: 7}
		w := tmdb.FilmographyEntry{Title: "新片", ReleaseDate: recentRelease, VoteAverage: 4, VoteCount: 500}
		assert.True(t, actorFilterAllows(f, w, today))
	})

	t.Run("low vote count never triggers the rating gate", func(t *testing.T) {
		f := storage.ActorFilter{MinRating: 9}
		w := tmdb.FilmographyEntry{Title: "小众片", ReleaseDate: oldRelease, VoteAverage: 2, VoteCount: 5}
		assert.True(t, actorFilterAllows(f, w, today))
	})

	t.Run("rejects title without target script", func(t *testing.T) {
		f := storage.ActorFilter{}
		w := tmdb.FilmographyEntry{Title: "English Only Title", ReleaseDate: oldRelease, VoteAverage: 9, VoteCount: 100}
		assert.False(t, actorFilterAllows(f, w, today))
	})

	t.Run("allows a work passing every gate", func(t *testing.T) {
		f := storage.ActorFilter{StartYear: 2010, MediaTypes: []string{"movie"}, GenresInclude: []string{"18"}, MinRating: 6}
		w := tmdb.FilmographyEntry{Title: "剧情片", MediaType: "movie", ReleaseDate: oldRelease, GenreIDs: []int{18}, VoteAverage: 8, VoteCount: 200}
		assert.True(t, actorFilterAllows(f, w, today))
	})
}

func TestWorkTitleAndReleaseDate(t *testing.T) {
	movie := tmdb.FilmographyEntry{Title: "电影标题", ReleaseDate: "2020-05-01"}
	assert.Equal(t, "电影标题", workTitle(movie))
	rd := workReleaseDate(movie)
	if assert.NotNil(t, rd) {
		assert.Equal(t, 2020, rd.Year())
	}

	series := tmdb.FilmographyEntry{Name: "剧集标题", FirstAirDate: "2021-09-01"}
	assert.Equal(t, "剧集标题", workTitle(series))
	rd = workReleaseDate(series)
	if assert.NotNil(t, rd) {
		assert.Equal(t, 2021, rd.Year())
	}

	undated := tmdb.FilmographyEntry{Title: "未定档"}
	assert.Nil(t, workReleaseDate(undated))
}

func TestReconcileActorSubscriptionsClassifiesInLibraryWorksWithoutDispatching(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	sub := storage.ActorSubscription{ID: 1, TMDBPersonID: 62, Status: storage.ActorSubscriptionActive}

	store.EXPECT().ListActiveActorSubscriptions(gomock.Any()).Return([]storage.ActorSubscription{sub}, nil)

	em.EXPECT().GetLibraries(gomock.Any()).Return([]emby.Library{
		{ID: "lib1", CollectionType: "movies"},
	}, nil)
	em.EXPECT().
		GetItems(gomock.Any(), []string{"lib1"}, "Movie,Series", []string{"ProviderIds"}).
		Return([]emby.Item{
			{ID: "item1", ProviderIds: emby.ProviderIDs{"Tmdb": "562"}},
		}, nil)

	tm.EXPECT().GetPersonCombinedCredits(gomock.Any(), 62).Return([]tmdb.FilmographyEntry{
		{ID: 562, Title: "已入库电影", ReleaseDate: "1988-07-15", MediaType: "movie", VoteAverage: 8, VoteCount: 100},
	}, nil)

	store.EXPECT().GetTrackedActorMedia(gomock.Any(), int64(1)).Return(nil, nil)

	store.EXPECT().
		ApplyActorMediaChanges(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, inserts, updates []storage.TrackedActorMedia, deletes []string) error {
			require.Len(t, inserts, 1)
			require.Equal(t, storage.StatusInLibrary, inserts[0].Status)
			return nil
		})

	store.EXPECT().MarkActorSubscriptionChecked(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)

	// downloader is never consulted: the work is already in the library.
	m := New(store, tm, em, nil, config.Config{})
	err := m.ReconcileActorSubscriptions(context.Background(), nil)
	require.NoError(t, err)
}

func TestReconcileActorSubscriptionsDispatchesOnlyWhatsMissingFromLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	tm := tmdbMocks.NewMockITMDb(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)
	dl := downloaderMocks.NewMockIDownloader(ctrl)

	sub := storage.ActorSubscription{ID: 1, TMDBPersonID: 62, Status: storage.ActorSubscriptionActive}

	store.EXPECT().ListActiveActorSubscriptions(gomock.Any()).Return([]storage.ActorSubscription{sub}, nil)

	em.EXPECT().GetLibraries(gomock.Any()).Return(nil, nil)
	em.EXPECT().
		GetItems(gomock.Any(), []string(nil), "Movie,Series", []string{"ProviderIds"}).
		Return(nil, nil)

	tm.EXPECT().GetPersonCombinedCredits(gomock.Any(), 62).Return([]tmdb.FilmographyEntry{
		{ID: 562, Title: "缺失电影", ReleaseDate: "1988-07-15", MediaType: "movie", VoteAverage: 8, VoteCount: 100},
	}, nil)

	store.EXPECT().GetTrackedActorMedia(gomock.Any(), int64(1)).Return(nil, nil)

	dl.EXPECT().SubscribeMovie(gomock.Any(), "缺失电影", "562").Return(true, nil)

	store.EXPECT().
		ApplyActorMediaChanges(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, inserts, updates []storage.TrackedActorMedia, deletes []string) error {
			require.Len(t, inserts, 1)
			require.Equal(t, storage.StatusSubscribed, inserts[0].Status)
			return nil
		})

	store.EXPECT().MarkActorSubscriptionChecked(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)

	m := New(store, tm, em, dl, config.Config{})
	err := m.ReconcileActorSubscriptions(context.Background(), nil)
	require.NoError(t, err)
}

func TestContainsFoldAndGenreMatch(t *testing.T) {
	assert.True(t, containsFold([]string{"Movie", "TV"}, "movie"))
	assert.False(t, containsFold([]string{"Movie"}, "tv"))

	assert.True(t, anyGenreMatches([]string{"18", "35"}, []int{35, 99}))
	assert.False(t, anyGenreMatches([]string{"18"}, []int{35, 99}))
}
