package manager

import (
	"context"
	"testing"

	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/emby"
	embyMocks "github.com/curatord/curatord/pkg/emby/mocks"
	"github.com/curatord/curatord/pkg/storage"
	storageMocks "github.com/curatord/curatord/pkg/storage/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncPersonMapUpsertsEveryActorAcrossItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)
	em := embyMocks.NewMockIEmby(ctrl)

	em.EXPECT().GetItems(gomock.Any(), nil, "", []string{"People"}).Return([]emby.Item{
		{
			ID: "item-1",
			People: []emby.Person{
				{ID: "p1", Name: "Keanu Reeves", Type: "Actor"},
				{ID: "d1", Name: "Lana Wachowski", Type: "Director"},
			},
		},
	}, nil)
	store.EXPECT().UpsertPerson(gomock.Any(), gomock.Any(), "Keanu Reeves").Return(int64(1), nil)

	m := New(store, nil, em, nil, config.Config{})
	err := m.SyncPersonMap(context.Background(), nil, nil)
	require.NoError(t, err)
}

func TestEnrichAliasesRevalidatesEveryReferencedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storageMocks.NewMockStorage(ctrl)

	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeMovie).Return([]storage.MediaMetadata{
		{TMDBID: "100", Actors: []storage.Person{{Name: "周星驰"}}},
	}, nil)
	store.EXPECT().ListMedia(gomock.Any(), storage.ItemTypeSeries).Return(nil, nil)
	store.EXPECT().GetTranslation(gomock.Any(), "周星驰").Return(storage.TranslationCache{}, storage.ErrNotFound)

	m := New(store, nil, nil, nil, config.Config{})
	err := m.EnrichAliases(context.Background(), nil)
	require.NoError(t, err)
}
