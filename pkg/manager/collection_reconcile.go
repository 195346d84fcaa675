package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/curatord/curatord/pkg/filter"
	"github.com/curatord/curatord/pkg/listimport"
	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"go.uber.org/zap"
)

type candidate struct {
	TMDBID   string
	ItemType storage.ItemType
}

// ReconcileCollections runs one pass over every active custom collection.
// A per-collection failure is logged and does not stop reconciliation of
// the remaining collections.
func (m Manager) ReconcileCollections(ctx context.Context, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)

	collections, err := m.storage.ListCustomCollections(ctx)
	if err != nil {
		progress(-1, "failed to list collections")
		return err
	}

	active := make([]storage.CustomCollection, 0, len(collections))
	for _, c := range collections {
		if c.Status == "active" {
			active = append(active, c)
		}
	}

	for i, c := range active {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.ReconcileCollection(ctx, c); err != nil {
			log.Debug("collection reconcile failed", zap.Int64("collection_id", c.ID), zap.Error(err))
		}
		progress(int(float64(i+1)/float64(len(active))*100), fmt.Sprintf("reconciled %q", c.Name))
	}

	progress(100, "collection reconcile complete")
	return nil
}

// ReconcileCollection runs a single reconcile pass: generate candidates,
// sync the backing Emby collection, classify every candidate, and
// persist the new snapshot atomically.
func (m Manager) ReconcileCollection(ctx context.Context, c storage.CustomCollection) error {
	log := logger.FromCtx(ctx)

	candidates, itemTypes, err := m.generateCandidates(ctx, c)
	if err != nil {
		log.Debug("candidate generation failed", zap.Int64("collection_id", c.ID), zap.Error(err))
		return m.storage.SaveCollectionSnapshot(ctx, c.ID, nil, nil)
	}

	if len(candidates) == 0 {
		return m.storage.SaveCollectionSnapshot(ctx, c.ID, nil, nil)
	}

	tmdbIDs := make([]string, len(candidates))
	for i, cand := range candidates {
		tmdbIDs[i] = cand.TMDBID
	}

	embyCollectionID, present, err := m.emby.CreateOrUpdateCollection(ctx, c.Name, tmdbIDs, nil, itemTypes)
	if err != nil {
		log.Debug("emby collection sync failed", zap.Int64("collection_id", c.ID), zap.Error(err))
		return err
	}
	inLibrary := make(map[string]bool, len(present))
	for _, id := range present {
		inLibrary[id] = true
	}

	details := make([]storage.SnapshotItem, len(candidates))
	runBounded(ctx, indices(len(candidates)), m.workerCap(), func(ctx context.Context, i int) {
		details[i] = m.fetchCandidateDetails(ctx, candidates[i])
	})

	today := time.Now().UTC()
	snapshot := make([]storage.SnapshotItem, 0, len(details))
	for _, d := range details {
		if d.TMDBID == "" {
			continue
		}
		d.Status = classifyStatus(classifyInput{
			inLibrary:      inLibrary[d.TMDBID],
			previousStatus: previousStatusFor(c.GeneratedMediaInfo, d.TMDBID),
			releaseDate:    d.ReleaseDate,
		}, today)
		snapshot = append(snapshot, d)
	}

	return m.storage.SaveCollectionSnapshot(ctx, c.ID, snapshot, &embyCollectionID)
}

// generateCandidates produces the candidate TMDb list for a collection
// along with the item_type set its definition declares.
func (m Manager) generateCandidates(ctx context.Context, c storage.CustomCollection) ([]candidate, []string, error) {
	switch c.Type {
	case storage.CollectionTypeFilter:
		def, err := filter.ParseDefinition(c.Definition)
		if err != nil {
			return nil, nil, err
		}

		var cands []candidate
		for _, it := range def.ItemTypes {
			rows, err := m.storage.ListMedia(ctx, it)
			if err != nil {
				return nil, nil, err
			}
			for _, row := range rows {
				if filter.Evaluate(def, row) {
					cands = append(cands, candidate{TMDBID: row.TMDBID, ItemType: row.ItemType})
				}
			}
		}
		return cands, itemTypeStrings(def.ItemTypes), nil

	case storage.CollectionTypeList:
		def, err := listimport.ParseDefinition(c.Definition)
		if err != nil {
			return nil, nil, err
		}

		var raw []listimport.Candidate
		if def.IsMaoyan() {
			raw = listimport.ResolveMaoyan(ctx, m.maoyanCache, m.maoyanFetcher, def, m.resolver)
		} else {
			entries := listimport.FetchRSS(ctx, m.httpClient, def.URL, def.Limit)
			raw = m.resolver.Resolve(ctx, def.ItemTypes, entries)
		}

		cands := make([]candidate, len(raw))
		for i, r := range raw {
			cands[i] = candidate{TMDBID: r.TMDBID, ItemType: r.ItemType}
		}
		return cands, itemTypeStrings(def.ItemTypes), nil

	default:
		return nil, nil, fmt.Errorf("manager: unknown collection type %q", c.Type)
	}
}

func itemTypeStrings(types []storage.ItemType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func (m Manager) fetchCandidateDetails(ctx context.Context, c candidate) storage.SnapshotItem {
	log := logger.FromCtx(ctx)

	id, err := toTMDBInt(c.TMDBID)
	if err != nil {
		return storage.SnapshotItem{}
	}

	if c.ItemType == storage.ItemTypeSeries {
		det, err := m.tmdb.GetTVDetails(ctx, id)
		if err != nil {
			log.Debug("tmdb tv details failed for candidate", zap.String("tmdb_id", c.TMDBID), zap.Error(err))
			return storage.SnapshotItem{}
		}
		item := storage.SnapshotItem{TMDBID: c.TMDBID, ItemType: c.ItemType, Title: det.Name}
		if rd, err := time.Parse("2006-01-02", det.FirstAirDate); err == nil {
			item.ReleaseDate = &rd
		}
		return item
	}

	det, err := m.tmdb.GetMovieDetails(ctx, id)
	if err != nil {
		log.Debug("tmdb movie details failed for candidate", zap.String("tmdb_id", c.TMDBID), zap.Error(err))
		return storage.SnapshotItem{}
	}
	item := storage.SnapshotItem{TMDBID: c.TMDBID, ItemType: c.ItemType, Title: det.Title, PosterPath: det.PosterPath}
	if rd, err := time.Parse("2006-01-02", det.ReleaseDate); err == nil {
		item.ReleaseDate = &rd
	}
	return item
}
