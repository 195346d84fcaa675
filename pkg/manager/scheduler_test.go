package manager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSchedulerRunsUnknownTaskKey(t *testing.T) {
	m := New(nil, nil, nil, nil, config.Config{})
	s := NewScheduler(m)

	err := s.Run(context.Background(), RunRequest{Task: "bogus"}, nil)
	require.Error(t, err)
}

func TestSchedulerRejectsConcurrentRunsOfTheSameKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().ListCustomCollections(gomock.Any()).DoAndReturn(func(_ context.Context) ([]storage.CustomCollection, error) {
		close(started)
		<-release
		return nil, nil
	})

	m := New(store, nil, nil, nil, config.Config{})
	s := NewScheduler(m)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = s.Run(context.Background(), RunRequest{Task: TaskCustomCollections}, nil)
	}()

	<-started
	secondErr := s.Run(context.Background(), RunRequest{Task: TaskAutoSubscribe}, nil)
	require.Error(t, secondErr)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
}

func TestSchedulerTaskChainRunsStepsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	gomock.InOrder(
		store.EXPECT().ListWatchlist(gomock.Any()).Return(nil, nil),
		store.EXPECT().ListNativeCollections(gomock.Any()).Return(nil, nil),
		store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return(nil, nil),
	)

	m := New(store, nil, nil, nil, config.Config{})
	s := NewScheduler(m)

	err := s.Run(context.Background(), RunRequest{
		Task: TaskChain,
		Chain: []RunRequest{
			{Task: TaskProcessWatchlist},
			{Task: TaskRefreshCollections},
		},
	}, nil)
	require.NoError(t, err)
}

func TestSchedulerChainStopsOnFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	store.EXPECT().ListWatchlist(gomock.Any()).Return(nil, errors.New("boom"))

	m := New(store, nil, nil, nil, config.Config{})
	s := NewScheduler(m)

	err := s.Run(context.Background(), RunRequest{
		Task: TaskChain,
		Chain: []RunRequest{
			{Task: TaskProcessWatchlist},
			{Task: TaskRefreshCollections},
		},
	}, nil)
	require.Error(t, err)
}

func TestSchedulerCancelAllStopsInFlightRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	started := make(chan struct{})
	store.EXPECT().ListNativeCollections(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]storage.NativeCollection, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	m := New(store, nil, nil, nil, config.Config{})
	s := NewScheduler(m)

	done := make(chan error, 1)
	go func() {
		done <- s.Run(context.Background(), RunRequest{Task: TaskRefreshCollections}, nil)
	}()

	<-started
	s.CancelAll()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler run did not observe cancellation")
	}
}
