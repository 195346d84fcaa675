package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/tmdb"
	"go.uber.org/zap"
)

// ReconcileWatchlist refreshes missing_info for every actively-watched,
// non-paused series: a previously-tracked season is left untouched so
// the Auto-Subscribe Gate's removal of a dispatched season is never
// resurrected here; a season TMDb reports for the first time is picked
// up only while it hasn't aired yet.
func (m Manager) ReconcileWatchlist(ctx context.Context, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)

	entries, err := m.storage.ListWatchlist(ctx)
	if err != nil {
		progress(-1, "failed to list watchlist")
		return err
	}

	today := time.Now().UTC()
	for i, w := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.Status != storage.WatchlistWatching || w.ForceEnded {
			continue
		}
		if w.PausedUntil != nil && w.PausedUntil.After(today) {
			continue
		}

		if err := m.reconcileOneWatchlistEntry(ctx, w, today); err != nil {
			log.Debug("watchlist entry reconcile failed", zap.String("item_id", w.ItemID), zap.Error(err))
		}
		progress(int(float64(i+1)/float64(max(len(entries), 1))*100), "reconciled watchlist entry")
	}

	progress(100, "watchlist reconcile complete")
	return nil
}

func (m Manager) reconcileOneWatchlistEntry(ctx context.Context, w storage.Watchlist, today time.Time) error {
	id, err := toTMDBInt(w.TMDBID)
	if err != nil {
		return err
	}
	det, err := m.tmdb.GetTVDetails(ctx, id)
	if err != nil {
		return err
	}

	existing := make(map[int]storage.MissingSeason, len(w.MissingInfo))
	for _, s := range w.MissingInfo {
		existing[s.SeasonNumber] = s
	}

	missing := make([]storage.MissingSeason, 0, len(w.MissingInfo))
	for _, s := range det.Seasons {
		if s.SeasonNumber == 0 {
			continue
		}
		if prev, tracked := existing[s.SeasonNumber]; tracked {
			missing = append(missing, prev)
			continue
		}

		var airDate *time.Time
		if ad, err := time.Parse(tmdb.ReleaseDateFormat, s.AirDate); err == nil {
			airDate = &ad
		}
		if airDate != nil && !airDate.After(today) {
			continue
		}
		missing = append(missing, storage.MissingSeason{SeasonNumber: s.SeasonNumber, AirDate: airDate})
	}

	w.MissingInfo = missing
	return m.storage.UpsertWatchlistEntry(ctx, w)
}

// SeedWatchlistFromLibrary bulk-enrolls every series already on the
// media server into the Watchlist as Watching, skipping ids already
// tracked. Grounded on the original's one-shot "scan the whole library
// onto the watchlist" task, which exists because a fresh install's
// watchlist starts empty even though the media server's library does
// not.
func (m Manager) SeedWatchlistFromLibrary(ctx context.Context, libraryIDs []string, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}

	if len(libraryIDs) == 0 {
		libraries, err := m.emby.GetLibraries(ctx)
		if err != nil {
			progress(-1, "failed to list media server libraries")
			return err
		}
		for _, lib := range libraries {
			if lib.CollectionType == "tvshows" || lib.CollectionType == "mixed" {
				libraryIDs = append(libraryIDs, lib.ID)
			}
		}
	}

	progress(10, "fetching series from media server")
	items, err := m.emby.GetItems(ctx, libraryIDs, "Series", []string{"ProviderIds"})
	if err != nil {
		progress(-1, "failed to list series")
		return err
	}

	existing, err := m.storage.ListWatchlist(ctx)
	if err != nil {
		progress(-1, "failed to list watchlist")
		return err
	}
	tracked := make(map[string]bool, len(existing))
	for _, w := range existing {
		tracked[w.TMDBID] = true
	}

	added := 0
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		tmdbID, ok := item.ProviderIds["Tmdb"]
		if !ok || tmdbID == "" || tracked[tmdbID] {
			continue
		}
		if err := m.storage.UpsertWatchlistEntry(ctx, storage.Watchlist{
			ItemID: item.ID,
			TMDBID: tmdbID,
			Status: storage.WatchlistWatching,
		}); err != nil {
			return err
		}
		tracked[tmdbID] = true
		added++
		progress(10+int(float64(i+1)/float64(max(len(items), 1))*80), "seeding watchlist from library")
	}

	progress(100, fmt.Sprintf("seeded %d new watchlist entries", added))
	return nil
}

// classifyForWatchlist implements the Webhook Propagator's
// watchlist-classification routine: a newly-added series item is
// enrolled in the Watchlist as Watching if it isn't tracked yet.
func (m Manager) classifyForWatchlist(ctx context.Context, md storage.MediaMetadata, embyItemID string) error {
	if md.ItemType != storage.ItemTypeSeries {
		return nil
	}

	existing, err := m.storage.ListWatchlist(ctx)
	if err != nil {
		return err
	}
	for _, w := range existing {
		if w.TMDBID == md.TMDBID {
			return nil
		}
	}

	return m.storage.UpsertWatchlistEntry(ctx, storage.Watchlist{
		ItemID: embyItemID,
		TMDBID: md.TMDBID,
		Status: storage.WatchlistWatching,
	})
}
