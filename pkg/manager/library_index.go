package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/curatord/curatord/pkg/emby"
	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/tmdb"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// IndexMode selects how common (already-known) items are treated during
// a library index pass.
type IndexMode string

const (
	// IndexQuick only schedules a common item for update when the
	// server reports it modified since the last sync.
	IndexQuick IndexMode = "quick"
	// IndexDeep schedules every common item for update regardless of
	// modification time.
	IndexDeep IndexMode = "deep"
)

const defaultIndexBatchSize = 50
const deleteChunkSize = 500

var embyItemFields = []string{
	"ProviderIds", "DateCreated", "DateModified", "CommunityRating",
	"Genres", "Studios", "ProductionLocations", "People", "Tags", "PremiereDate",
}

// IndexLibrary reconciles media_metadata against the media server for the
// given library ids. Deletions run first in bounded chunks; additions and
// updates are processed in sequential batches, each its own transaction,
// with enrichment fanned out within a batch.
func (m Manager) IndexLibrary(ctx context.Context, libraryIDs []string, mode IndexMode, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)

	embyItems, err := m.emby.GetItems(ctx, libraryIDs, "", embyItemFields)
	if err != nil {
		progress(-1, "failed to list library items")
		return err
	}

	embyByTMDB := make(map[string]emby.Item, len(embyItems))
	for _, it := range embyItems {
		if id, ok := it.ProviderIds["Tmdb"]; ok && id != "" {
			embyByTMDB[id] = it
		}
	}

	dbByTMDB := make(map[string]storage.MediaMetadata)
	for _, itemType := range []storage.ItemType{storage.ItemTypeMovie, storage.ItemTypeSeries} {
		existing, err := m.storage.ListMedia(ctx, itemType)
		if err != nil {
			progress(-1, "failed to list local media cache")
			return err
		}
		for _, md := range existing {
			dbByTMDB[md.TMDBID] = md
		}
	}

	var toDelete []string
	for id := range dbByTMDB {
		if _, ok := embyByTMDB[id]; !ok {
			toDelete = append(toDelete, id)
		}
	}

	if err := m.deleteMediaInChunks(ctx, toDelete); err != nil {
		progress(-1, "failed to delete stale media")
		return err
	}
	progress(10, fmt.Sprintf("%s stale items removed", humanize.Comma(int64(len(toDelete)))))

	var toProcess []emby.Item
	for tmdbID, item := range embyByTMDB {
		existing, isCommon := dbByTMDB[tmdbID]
		if !isCommon {
			toProcess = append(toProcess, item)
			continue
		}
		if mode == IndexDeep || shouldUpdateQuick(item, existing) {
			toProcess = append(toProcess, item)
		}
	}

	log.Debug("indexing library", zap.Int("to_process", len(toProcess)), zap.Int("to_delete", len(toDelete)))

	for start := 0; start < len(toProcess); start += defaultIndexBatchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+defaultIndexBatchSize, len(toProcess))
		batch := toProcess[start:end]

		records := make([]storage.MediaMetadata, len(batch))
		runBounded(ctx, indices(len(batch)), m.workerCap(), func(ctx context.Context, i int) {
			records[i] = m.enrichItem(ctx, batch[i])
		})

		nonEmpty := records[:0]
		for _, r := range records {
			if r.TMDBID != "" {
				nonEmpty = append(nonEmpty, r)
			}
		}

		if err := m.storage.UpsertMediaBatch(ctx, nonEmpty); err != nil {
			progress(-1, "failed to persist media batch")
			return err
		}

		pct := 10 + int(float64(end)/float64(max(len(toProcess), 1))*85)
		progress(pct, fmt.Sprintf("indexed %s/%s items", humanize.Comma(int64(end)), humanize.Comma(int64(len(toProcess)))))
	}

	progress(100, "library index complete")
	return nil
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (m Manager) deleteMediaInChunks(ctx context.Context, tmdbIDs []string) error {
	for start := 0; start < len(tmdbIDs); start += deleteChunkSize {
		end := min(start+deleteChunkSize, len(tmdbIDs))
		chunk := tmdbIDs[start:end]
		for _, itemType := range []storage.ItemType{storage.ItemTypeMovie, storage.ItemTypeSeries} {
			if err := m.storage.DeleteMediaByTMDBID(ctx, itemType, chunk); err != nil {
				return err
			}
		}
	}
	return nil
}

// shouldUpdateQuick applies the quick-mode rule: update only when the
// server's modification time is strictly newer than last_synced_at, or
// either timestamp can't be parsed (update conservatively).
func shouldUpdateQuick(item emby.Item, existing storage.MediaMetadata) bool {
	modified, err := time.Parse(time.RFC3339, item.DateModified)
	if err != nil {
		return true
	}
	if existing.LastSyncedAt.IsZero() {
		return true
	}
	return modified.After(existing.LastSyncedAt)
}

func itemTypeFromEmby(embyType string) storage.ItemType {
	if embyType == "Series" {
		return storage.ItemTypeSeries
	}
	return storage.ItemTypeMovie
}

// enrichItem resolves cast identities, fetches TMDb details, and builds
// the MediaMetadata record for one server item. Returns a zero-value
// record (empty TMDBID) when the item has no usable TMDb id or its TMDb
// details cannot be fetched; callers filter those out before persisting
// the batch.
func (m Manager) enrichItem(ctx context.Context, item emby.Item) storage.MediaMetadata {
	log := logger.FromCtx(ctx)

	tmdbID, ok := item.ProviderIds["Tmdb"]
	if !ok || tmdbID == "" {
		return storage.MediaMetadata{}
	}
	itemType := itemTypeFromEmby(item.Type)

	actors := m.resolveCast(ctx, item.People)

	md := storage.MediaMetadata{
		TMDBID:       tmdbID,
		ItemType:     itemType,
		Actors:       actors,
		DateAdded:    parseEmbyTime(item.DateCreated),
		LastSyncedAt: time.Now().UTC(),
	}

	id, err := toTMDBInt(tmdbID)
	if err != nil {
		log.Debug("unparsable tmdb id", zap.String("tmdb_id", tmdbID), zap.Error(err))
		return storage.MediaMetadata{}
	}

	if itemType == storage.ItemTypeMovie {
		det, err := m.tmdb.GetMovieDetails(ctx, id)
		if err != nil {
			log.Debug("tmdb movie details failed", zap.String("tmdb_id", tmdbID), zap.Error(err))
			return storage.MediaMetadata{}
		}
		applyMovieDetails(&md, det)
	} else {
		det, err := m.tmdb.GetTVDetails(ctx, id)
		if err != nil {
			log.Debug("tmdb tv details failed", zap.String("tmdb_id", tmdbID), zap.Error(err))
			return storage.MediaMetadata{}
		}
		applySeriesDetails(&md, det)
	}

	return md
}

func (m Manager) resolveCast(ctx context.Context, people []emby.Person) []storage.Person {
	out := make([]storage.Person, 0, len(people))
	for _, p := range people {
		if p.Type != "Actor" {
			continue
		}
		embyID := p.ID
		_, err := m.storage.UpsertPerson(ctx, storage.PersonIdentity{EmbyPersonID: &embyID}, p.Name)
		if err != nil {
			logger.FromCtx(ctx).Debug("person upsert failed", zap.String("emby_person_id", embyID), zap.Error(err))
		}
		out = append(out, storage.Person{Name: p.Name})
	}
	return out
}

func applyMovieDetails(md *storage.MediaMetadata, det *tmdb.MediaDetails) {
	md.Title = det.Title
	md.OriginalTitle = det.OriginalTitle
	md.Rating = det.VoteAverage
	for _, g := range det.Genres {
		md.Genres = append(md.Genres, g.Name)
	}
	for _, c := range det.ProductionCountries {
		md.Countries = append(md.Countries, c.Name)
	}
	if rd, err := time.Parse(tmdb.ReleaseDateFormat, det.ReleaseDate); err == nil {
		md.ReleaseDate = &rd
		md.ReleaseYear = rd.Year()
	}
	for _, d := range tmdb.Director(det.Credits.Crew, nil) {
		md.Directors = append(md.Directors, storage.Person{Name: d.Name})
	}
}

func applySeriesDetails(md *storage.MediaMetadata, det *tmdb.SeriesDetails) {
	md.Title = det.Name
	md.OriginalTitle = det.OriginalName
	md.Rating = det.VoteAverage
	for _, g := range det.Genres {
		md.Genres = append(md.Genres, g.Name)
	}
	md.Countries = append(md.Countries, det.OriginCountry...)
	if rd, err := time.Parse(tmdb.ReleaseDateFormat, det.FirstAirDate); err == nil {
		md.ReleaseDate = &rd
		md.ReleaseYear = rd.Year()
	}
	for _, d := range tmdb.Director(det.Credits.Crew, det.CreatedBy) {
		md.Directors = append(md.Directors, storage.Person{Name: d.Name})
	}
}

func parseEmbyTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
