package listimport

import (
	"context"
	"strconv"
	"sync"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/tmdb"
	"go.uber.org/zap"
)

const maxResolveWorkers = 5

// Resolver turns RawEntry feed items into deduplicated TMDb candidates,
// trying an ID-based match before a title-based one, per candidate
// item_type in definition order.
type Resolver struct {
	tmdbClient tmdb.ITMDb
}

func NewResolver(tmdbClient tmdb.ITMDb) *Resolver {
	return &Resolver{tmdbClient: tmdbClient}
}

// Resolve maps entries to candidates concurrently, bounded by a worker
// pool of at most 5, and deduplicates by "{type}-{id}".
func (r *Resolver) Resolve(ctx context.Context, itemTypes []storage.ItemType, entries []RawEntry) []Candidate {
	if len(itemTypes) == 0 {
		itemTypes = []storage.ItemType{storage.ItemTypeMovie}
	}

	sem := make(chan struct{}, maxResolveWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)
	var results []Candidate

	for _, entry := range entries {
		entry := entry
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			cand, ok := r.resolveOne(ctx, itemTypes, entry)
			if !ok {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			key := cand.dedupKey()
			if !seen[key] {
				seen[key] = true
				results = append(results, cand)
			}
		}()
	}

	wg.Wait()
	return results
}

func (r *Resolver) resolveOne(ctx context.Context, itemTypes []storage.ItemType, entry RawEntry) (Candidate, bool) {
	log := logger.FromCtx(ctx)

	for _, itemType := range itemTypes {
		if id, ok := r.matchByID(ctx, itemType, entry); ok {
			if cand, ok := r.validateSeason(ctx, itemType, id, entry); ok {
				return cand, true
			}
			continue
		}

		if id, ok := r.matchByTitle(ctx, itemType, entry.Title); ok {
			if cand, ok := r.validateSeason(ctx, itemType, id, entry); ok {
				return cand, true
			}
		}
	}

	log.Debug("no tmdb match resolved", zap.String("title", entry.Title))
	return Candidate{}, false
}

func (r *Resolver) matchByID(ctx context.Context, itemType storage.ItemType, entry RawEntry) (string, bool) {
	if entry.TMDBID != "" {
		return entry.TMDBID, true
	}
	if entry.IMDBID == "" {
		return "", false
	}

	id, ok, err := r.tmdbClient.ResolveIMDBToTMDB(ctx, entry.IMDBID, string(itemType))
	if err != nil || !ok {
		return "", false
	}
	return strconv.Itoa(id), true
}

func (r *Resolver) matchByTitle(ctx context.Context, itemType storage.ItemType, title string) (string, bool) {
	results, err := r.tmdbClient.SearchMedia(ctx, title, string(itemType))
	if err != nil || len(results) == 0 {
		return "", false
	}
	return strconv.Itoa(results[0].ID), true
}

// validateSeason rejects a series match whose "… 第X季" season doesn't
// actually exist on TMDb, so a bogus season reference never gets
// tracked as a candidate.
func (r *Resolver) validateSeason(ctx context.Context, itemType storage.ItemType, tmdbID string, entry RawEntry) (Candidate, bool) {
	cand := Candidate{TMDBID: tmdbID, ItemType: itemType}
	if itemType != storage.ItemTypeSeries {
		return cand, true
	}

	season, ok := ExtractSeason(entry.Title)
	if !ok {
		return cand, true
	}

	id, err := strconv.Atoi(tmdbID)
	if err != nil {
		return cand, false
	}

	details, err := r.tmdbClient.GetTVDetails(ctx, id)
	if err != nil {
		return cand, false
	}

	for _, s := range details.Seasons {
		if s.SeasonNumber == season {
			return cand, true
		}
	}
	return cand, false
}
