package manager

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/tmdb"
	"github.com/curatord/curatord/pkg/translate"
	"go.uber.org/zap"
)

// ratingBypassWindow is the "recent release" window that lets a title
// skip the minimum-rating gate regardless of its vote average.
const ratingBypassWindow = 6 * 30 * 24 * time.Hour

// ReconcileActorSubscriptions walks every active actor subscription's
// filmography, applies its per-actor filter, and updates tracked media
// status. A session-scoped dedup set prevents the same work from being
// subscribed twice when it appears in more than one actor's filmography
// during this scan. A cooperative delay is observed between actors to
// rate-limit the downloader.
func (m Manager) ReconcileActorSubscriptions(ctx context.Context, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx)

	subs, err := m.storage.ListActiveActorSubscriptions(ctx)
	if err != nil {
		progress(-1, "failed to list actor subscriptions")
		return err
	}

	progress(5, "fetching library state from media server")
	embyTMDBIDs, err := m.fetchLibraryTMDBIDs(ctx)
	if err != nil {
		progress(-1, "failed to fetch media server library")
		return err
	}

	sessionSubscribed := make(map[string]bool)
	delay := m.config.Jobs.ActorSubscribeDelay

	for i, sub := range subs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := m.reconcileOneActorSubscription(ctx, sub, embyTMDBIDs, sessionSubscribed); err != nil {
			log.Debug("actor subscription reconcile failed", zap.Int64("subscription_id", sub.ID), zap.Error(err))
		}

		progress(int(float64(i+1)/float64(max(len(subs), 1))*100), "reconciled actor subscription")

		if delay > 0 && i < len(subs)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	progress(100, "actor tracking complete")
	return nil
}

// scanOneActorSubscription runs a single actor's scan outside of a full
// actor-tracking pass, with its own session-scoped dedup set.
func (m Manager) scanOneActorSubscription(ctx context.Context, subscriptionID int64, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}

	subs, err := m.storage.ListActiveActorSubscriptions(ctx)
	if err != nil {
		progress(-1, "failed to list actor subscriptions")
		return err
	}

	for _, sub := range subs {
		if sub.ID != subscriptionID {
			continue
		}

		embyTMDBIDs, err := m.fetchLibraryTMDBIDs(ctx)
		if err != nil {
			progress(-1, "failed to fetch media server library")
			return err
		}

		if err := m.reconcileOneActorSubscription(ctx, sub, embyTMDBIDs, make(map[string]bool)); err != nil {
			progress(-1, "actor scan failed")
			return err
		}
		progress(100, "actor scan complete")
		return nil
	}

	return fmt.Errorf("manager: no active actor subscription %d", subscriptionID)
}

// fetchLibraryTMDBIDs returns the set of TMDb ids the media server
// already holds across its movie and series libraries, so rank-1
// IN_LIBRARY classification never depends on the (possibly stale)
// local media cache. Grounded on the original's own
// "fetch Emby's library once per scan" step.
func (m Manager) fetchLibraryTMDBIDs(ctx context.Context) (map[string]bool, error) {
	libraries, err := m.emby.GetLibraries(ctx)
	if err != nil {
		return nil, err
	}

	var libraryIDs []string
	for _, lib := range libraries {
		if lib.CollectionType == "movies" || lib.CollectionType == "tvshows" {
			libraryIDs = append(libraryIDs, lib.ID)
		}
	}

	items, err := m.emby.GetItems(ctx, libraryIDs, "Movie,Series", []string{"ProviderIds"})
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(items))
	for _, item := range items {
		if id, ok := item.ProviderIds["Tmdb"]; ok && id != "" {
			ids[id] = true
		}
	}
	return ids, nil
}

func (m Manager) reconcileOneActorSubscription(ctx context.Context, sub storage.ActorSubscription, embyTMDBIDs map[string]bool, sessionSubscribed map[string]bool) error {
	works, err := m.tmdb.GetPersonCombinedCredits(ctx, int(sub.TMDBPersonID))
	if err != nil {
		return err
	}

	existing, err := m.storage.GetTrackedActorMedia(ctx, sub.ID)
	if err != nil {
		return err
	}
	existingByID := make(map[string]storage.TrackedActorMedia, len(existing))
	for _, tm := range existing {
		existingByID[tm.TMDBMediaID] = tm
	}

	today := time.Now().UTC()
	kept := make(map[string]bool)
	var inserts, updates []storage.TrackedActorMedia

	for _, w := range works {
		if !actorFilterAllows(sub.Filter, w, today) {
			continue
		}

		tmdbMediaID := toTMDBString(w.ID)
		kept[tmdbMediaID] = true

		itemType := storage.ItemTypeMovie
		if w.MediaType == "tv" {
			itemType = storage.ItemTypeSeries
		}
		title := workTitle(w)
		releaseDate := workReleaseDate(w)

		prevStatus := storage.MediaStatus("")
		if prev, ok := existingByID[tmdbMediaID]; ok {
			prevStatus = prev.Status
		}

		status := classifyStatus(classifyInput{
			inLibrary:         embyTMDBIDs[tmdbMediaID],
			previousStatus:    prevStatus,
			sessionSubscribed: sessionSubscribed[tmdbMediaID],
			releaseDate:       releaseDate,
		}, today)

		if status == storage.StatusMissing && releaseDate != nil && !releaseDate.After(today) {
			if m.dispatchActorSubscription(ctx, itemType, title, tmdbMediaID) {
				status = storage.StatusSubscribed
				sessionSubscribed[tmdbMediaID] = true
			}
		}

		tm := storage.TrackedActorMedia{
			SubscriptionID: sub.ID,
			TMDBMediaID:    tmdbMediaID,
			ItemType:       itemType,
			Title:          title,
			ReleaseDate:    releaseDate,
			Status:         status,
		}

		if _, ok := existingByID[tmdbMediaID]; ok {
			updates = append(updates, tm)
		} else {
			inserts = append(inserts, tm)
		}
	}

	var deletes []string
	for tmdbMediaID := range existingByID {
		if !kept[tmdbMediaID] {
			deletes = append(deletes, tmdbMediaID)
		}
	}

	if err := m.storage.ApplyActorMediaChanges(ctx, sub.ID, inserts, updates, deletes); err != nil {
		return err
	}

	return m.storage.MarkActorSubscriptionChecked(ctx, sub.ID, storage.ActorSubscriptionIdle, time.Now().UTC())
}

func (m Manager) dispatchActorSubscription(ctx context.Context, itemType storage.ItemType, title, tmdbMediaID string) bool {
	log := logger.FromCtx(ctx)

	var ok bool
	var err error
	if itemType == storage.ItemTypeSeries {
		ok, err = m.downloader.SubscribeSeries(ctx, title, tmdbMediaID, nil)
	} else {
		ok, err = m.downloader.SubscribeMovie(ctx, title, tmdbMediaID)
	}
	if err != nil {
		log.Debug("actor media subscribe dispatch failed", zap.String("tmdb_media_id", tmdbMediaID), zap.Error(err))
		return false
	}
	return ok
}

func workTitle(w tmdb.FilmographyEntry) string {
	if w.Title != "" {
		return w.Title
	}
	return w.Name
}

func workReleaseDate(w tmdb.FilmographyEntry) *time.Time {
	raw := w.ReleaseDate
	if raw == "" {
		raw = w.FirstAirDate
	}
	rd, err := time.Parse(tmdb.ReleaseDateFormat, raw)
	if err != nil {
		return nil
	}
	return &rd
}

// actorFilterAllows applies an actor subscription's per-actor filter
// config to one filmography entry, per the drop rules of §4.6: pre
// start_year, wrong media type, genre include/exclude, the rating gate
// (bypassed for releases within the last six months), and titles with
// no target-script character.
func actorFilterAllows(f storage.ActorFilter, w tmdb.FilmographyEntry, today time.Time) bool {
	releaseDate := workReleaseDate(w)

	if f.StartYear > 0 && releaseDate != nil && releaseDate.Year() < f.StartYear {
		return false
	}

	if len(f.MediaTypes) > 0 && !containsFold(f.MediaTypes, w.MediaType) {
		return false
	}

	if len(f.GenresInclude) > 0 && !anyGenreMatches(f.GenresInclude, w.GenreIDs) {
		return false
	}
	if len(f.GenresExclude) > 0 && anyGenreMatches(f.GenresExclude, w.GenreIDs) {
		return false
	}

	if w.VoteCount > 50 && w.VoteAverage < f.MinRating {
		recent := releaseDate != nil && !releaseDate.Before(today.Add(-ratingBypassWindow))
		if !recent {
			return false
		}
	}

	if !translate.HasTargetScript(workTitle(w)) {
		return false
	}

	return true
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func anyGenreMatches(genres []string, ids []int) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[toTMDBString(id)] = true
	}
	for _, g := range genres {
		if set[g] {
			return true
		}
	}
	return false
}
