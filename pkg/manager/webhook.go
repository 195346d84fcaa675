package manager

import (
	"context"

	"github.com/curatord/curatord/pkg/filter"
	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"go.uber.org/zap"
)

// HandleItemAdded runs the item-added webhook path: refresh the single
// item's local metadata, then propagate it into every collection it now
// belongs to. The media_metadata write always lands before any Emby
// collection append, so a crash between the two steps only leaves an
// item un-appended to a collection it already matches — never the
// reverse.
func (m Manager) HandleItemAdded(ctx context.Context, embyItemID string) error {
	log := logger.FromCtx(ctx)

	item, err := m.emby.GetItem(ctx, embyItemID)
	if err != nil {
		return err
	}

	md := m.enrichItem(ctx, *item)
	if md.TMDBID == "" {
		log.Debug("webhook: item has no resolvable tmdb id", zap.String("emby_item_id", embyItemID))
		return nil
	}

	if err := m.classifyForWatchlist(ctx, md, embyItemID); err != nil {
		log.Debug("webhook: watchlist classification failed", zap.String("tmdb_id", md.TMDBID), zap.Error(err))
	}

	if err := m.storage.UpsertMediaBatch(ctx, []storage.MediaMetadata{md}); err != nil {
		return err
	}

	if err := m.propagateFilterCollections(ctx, embyItemID, md); err != nil {
		log.Debug("webhook: filter collection propagation failed", zap.String("tmdb_id", md.TMDBID), zap.Error(err))
	}

	if err := m.propagateListCollections(ctx, embyItemID, md); err != nil {
		log.Debug("webhook: list collection propagation failed", zap.String("tmdb_id", md.TMDBID), zap.Error(err))
	}

	return nil
}

func (m Manager) propagateFilterCollections(ctx context.Context, embyItemID string, md storage.MediaMetadata) error {
	log := logger.FromCtx(ctx)

	matched, err := filter.FindMatchingCollections(ctx, m.storage, md)
	if err != nil {
		return err
	}

	for _, c := range matched {
		if err := m.emby.AppendItemToCollection(ctx, c.EmbyCollectionID, embyItemID); err != nil {
			log.Debug("webhook: failed to append item to filter collection", zap.Int64("collection_id", c.ID), zap.Error(err))
		}
	}
	return nil
}

func (m Manager) propagateListCollections(ctx context.Context, embyItemID string, md storage.MediaMetadata) error {
	log := logger.FromCtx(ctx)

	affected, err := m.storage.MatchAndUpdateListCollectionsOnItemAdd(ctx, md.TMDBID, md.Title)
	if err != nil {
		return err
	}

	for _, c := range affected {
		if err := m.emby.AppendItemToCollection(ctx, c.EmbyCollectionID, embyItemID); err != nil {
			log.Debug("webhook: failed to append item to list collection", zap.String("name", c.Name), zap.Error(err))
		}
	}
	return nil
}
