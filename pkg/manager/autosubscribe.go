package manager

import (
	"context"
	"time"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"go.uber.org/zap"
)

// RunAutoSubscribe walks every snapshot host that can carry a MISSING
// item whose release has already happened — native collections, list
// collections, and watchlist series missing a season — and dispatches a
// downloader subscribe call for each. A dispatch failure leaves the item
// MISSING for the next pass; it never blocks the other hosts.
func (m Manager) RunAutoSubscribe(ctx context.Context, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)
	today := time.Now().UTC()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.autoSubscribeNativeCollections(ctx, today); err != nil {
		log.Debug("auto-subscribe: native collections pass failed", zap.Error(err))
	}
	progress(33, "native collections scanned")

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.autoSubscribeListCollections(ctx, today); err != nil {
		log.Debug("auto-subscribe: list collections pass failed", zap.Error(err))
	}
	progress(66, "list collections scanned")

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.autoSubscribeWatchlist(ctx, today); err != nil {
		log.Debug("auto-subscribe: watchlist pass failed", zap.Error(err))
	}

	progress(100, "auto-subscribe complete")
	return nil
}

// autoSubscribeNativeCollections dispatches a downloader subscribe for
// every due movie across every native collection, then flips them all to
// SUBSCRIBED with a single bulk update rather than rewriting each
// collection's snapshot individually.
func (m Manager) autoSubscribeNativeCollections(ctx context.Context, today time.Time) error {
	log := logger.FromCtx(ctx)

	collections, err := m.storage.ListNativeCollections(ctx)
	if err != nil {
		return err
	}

	var subscribed []string
	for _, nc := range collections {
		for _, item := range nc.MissingMovies {
			if !dueForSubscribe(item, today) {
				continue
			}
			ok, err := m.downloader.SubscribeMovie(ctx, item.Title, item.TMDBID)
			if err != nil {
				log.Debug("auto-subscribe: movie dispatch failed", zap.String("tmdb_id", item.TMDBID), zap.Error(err))
				continue
			}
			if ok {
				subscribed = append(subscribed, item.TMDBID)
			}
		}
	}

	if len(subscribed) == 0 {
		return nil
	}
	return m.storage.BatchMarkMoviesSubscribedInCollections(ctx, subscribed)
}

func (m Manager) autoSubscribeListCollections(ctx context.Context, today time.Time) error {
	log := logger.FromCtx(ctx)

	collections, err := m.storage.ListCustomCollections(ctx)
	if err != nil {
		return err
	}

	for _, c := range collections {
		if c.Type != storage.CollectionTypeList {
			continue
		}

		changed := false
		for i, item := range c.GeneratedMediaInfo {
			if !dueForSubscribe(item, today) {
				continue
			}

			var ok bool
			var err error
			if item.ItemType == storage.ItemTypeSeries {
				ok, err = m.downloader.SubscribeSeries(ctx, item.Title, item.TMDBID, nil)
			} else {
				ok, err = m.downloader.SubscribeMovie(ctx, item.Title, item.TMDBID)
			}
			if err != nil {
				log.Debug("auto-subscribe: dispatch failed", zap.String("tmdb_id", item.TMDBID), zap.Error(err))
				continue
			}
			if ok {
				c.GeneratedMediaInfo[i].Status = storage.StatusSubscribed
				changed = true
			}
		}

		if changed {
			inLibrary, missing, _ := healthCounts(c.GeneratedMediaInfo)
			c.InLibraryCount, c.MissingCount = inLibrary, missing
			if err := m.storage.SaveCollectionSnapshot(ctx, c.ID, c.GeneratedMediaInfo, c.EmbyCollectionID); err != nil {
				log.Debug("auto-subscribe: failed to persist list collection", zap.Int64("collection_id", c.ID), zap.Error(err))
			}
		}
	}
	return nil
}

func (m Manager) autoSubscribeWatchlist(ctx context.Context, today time.Time) error {
	log := logger.FromCtx(ctx)

	entries, err := m.storage.ListWatchlist(ctx)
	if err != nil {
		return err
	}

	for _, w := range entries {
		if w.Status != storage.WatchlistWatching || len(w.MissingInfo) == 0 {
			continue
		}

		var remaining []storage.MissingSeason
		dispatched := false
		for _, season := range w.MissingInfo {
			if season.AirDate == nil || season.AirDate.After(today) {
				remaining = append(remaining, season)
				continue
			}
			seasonNumber := season.SeasonNumber
			ok, err := m.downloader.SubscribeSeries(ctx, w.ItemID, w.TMDBID, &seasonNumber)
			if err != nil {
				log.Debug("auto-subscribe: season dispatch failed", zap.String("tmdb_id", w.TMDBID), zap.Int("season", seasonNumber), zap.Error(err))
				remaining = append(remaining, season)
				continue
			}
			if !ok {
				remaining = append(remaining, season)
				continue
			}
			dispatched = true
		}

		if dispatched {
			w.MissingInfo = remaining
			if err := m.storage.UpsertWatchlistEntry(ctx, w); err != nil {
				log.Debug("auto-subscribe: failed to persist watchlist entry", zap.String("item_id", w.ItemID), zap.Error(err))
			}
		}
	}
	return nil
}

func dueForSubscribe(item storage.SnapshotItem, today time.Time) bool {
	return item.Status == storage.StatusMissing && item.ReleaseDate != nil && !item.ReleaseDate.After(today)
}
