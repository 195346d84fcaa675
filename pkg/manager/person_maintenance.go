package manager

import (
	"context"
	"errors"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"go.uber.org/zap"
)

var personMaintenanceFields = []string{"People"}

// SyncPersonMap re-walks every library item's cast list and re-upserts
// each actor into PersonIdentityMap, without re-fetching TMDb detail.
// It exists for resyncing identities after an out-of-band Emby person
// merge, cheaper than a full library index.
func (m Manager) SyncPersonMap(ctx context.Context, libraryIDs []string, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}

	items, err := m.emby.GetItems(ctx, libraryIDs, "", personMaintenanceFields)
	if err != nil {
		progress(-1, "failed to list library items")
		return err
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.resolveCast(ctx, item.People)
		if i%50 == 0 {
			progress(int(float64(i+1)/float64(max(len(items), 1))*100), "syncing cast identities")
		}
	}

	progress(100, "person map sync complete")
	return nil
}

// EnrichAliases re-validates translation_cache rows for every actor name
// currently referenced by the library, letting the cache's self-purge
// drop rows whose translation no longer carries a target-script
// character. Producing a translation for a name that has none is an
// external LLM collaborator's job, outside this engine.
func (m Manager) EnrichAliases(ctx context.Context, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)

	names := make(map[string]bool)
	for _, itemType := range []storage.ItemType{storage.ItemTypeMovie, storage.ItemTypeSeries} {
		rows, err := m.storage.ListMedia(ctx, itemType)
		if err != nil {
			progress(-1, "failed to list library media")
			return err
		}
		for _, row := range rows {
			for _, actor := range row.Actors {
				names[actor.Name] = true
			}
		}
	}

	i := 0
	for name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := m.storage.GetTranslation(ctx, name); err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Debug("enrich-aliases: translation lookup failed", zap.String("name", name), zap.Error(err))
		}
		i++
		if i%50 == 0 {
			progress(int(float64(i)/float64(max(len(names), 1))*100), "revalidating cached aliases")
		}
	}

	progress(100, "alias enrichment complete")
	return nil
}
