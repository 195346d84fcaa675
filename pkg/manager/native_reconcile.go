package manager

import (
	"context"
	"time"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"go.uber.org/zap"
)

// ReconcileNativeCollections refreshes every discovered TMDb-franchise
// collection's missing-movies snapshot. It uses the same rank-1..4
// classification as custom collections, except rule 3 is the native
// variant: a part with no release_date keeps its previous status
// instead of falling through to MISSING, avoiding churn on TMDb records
// the provider hasn't dated yet.
func (m Manager) ReconcileNativeCollections(ctx context.Context, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)

	collections, err := m.storage.ListNativeCollections(ctx)
	if err != nil {
		progress(-1, "failed to list native collections")
		return err
	}

	libraryMovies, err := m.storage.ListMedia(ctx, storage.ItemTypeMovie)
	if err != nil {
		progress(-1, "failed to list library movies")
		return err
	}
	inLibrarySet := make(map[string]bool, len(libraryMovies))
	for _, md := range libraryMovies {
		inLibrarySet[md.TMDBID] = true
	}

	for i, nc := range collections {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.reconcileOneNativeCollection(ctx, nc, inLibrarySet); err != nil {
			log.Debug("native collection reconcile failed", zap.String("emby_collection_id", nc.EmbyCollectionID), zap.Error(err))
		}
		progress(int(float64(i+1)/float64(max(len(collections), 1))*100), "reconciled native collection")
	}

	progress(100, "native collection reconcile complete")
	return nil
}

func (m Manager) reconcileOneNativeCollection(ctx context.Context, nc storage.NativeCollection, inLibrary map[string]bool) error {
	id, err := toTMDBInt(nc.TMDBCollectionID)
	if err != nil {
		return err
	}

	det, err := m.tmdb.GetCollectionDetails(ctx, id)
	if err != nil {
		return err
	}

	today := time.Now().UTC()
	snapshot := make([]storage.SnapshotItem, 0, len(det.Parts))
	for _, part := range det.Parts {
		tmdbID := toTMDBString(part.ID)

		item := storage.SnapshotItem{
			TMDBID:   tmdbID,
			ItemType: storage.ItemTypeMovie,
			Title:    part.Title,
		}
		if rd, err := time.Parse("2006-01-02", part.ReleaseDate); err == nil {
			item.ReleaseDate = &rd
		}

		item.Status = classifyStatus(classifyInput{
			inLibrary:      inLibrary[tmdbID],
			previousStatus: previousStatusFor(nc.MissingMovies, tmdbID),
			releaseDate:    item.ReleaseDate,
			nativeVariant:  true,
		}, today)

		snapshot = append(snapshot, item)
	}

	inLibraryCount, missingCount, _ := healthCounts(snapshot)
	nc.InLibraryCount = inLibraryCount
	nc.HasMissing = missingCount > 0
	nc.MissingMovies = snapshot

	return m.storage.UpsertNativeCollection(ctx, nc)
}
