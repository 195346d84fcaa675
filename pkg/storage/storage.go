package storage

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by Storage implementations. Callers use
// errors.Is/errors.As rather than matching driver-specific errors.
var (
	ErrNotFound          = errors.New("storage: not found")
	ErrConflict          = errors.New("storage: conflicting record")
	ErrJobAlreadyPending = errors.New("storage: job already pending")
)

// Storage is the full persistence contract the reconciliation engine is
// built against. A single SQLite implementation satisfies all of it; the
// sub-interfaces exist so callers (and mocks) can depend on only the slice
// of behavior they actually use.
type Storage interface {
	Init(ctx context.Context, schemas ...string) error

	MediaStorage
	PersonStorage
	TranslationStorage
	CustomCollectionStorage
	NativeCollectionStorage
	WatchlistStorage
	ActorSubscriptionStorage
	LogStorage
	ImportExportStorage
}

// MediaStorage owns the media_metadata table, the Library Indexer's cache
// of what the media server holds.
type MediaStorage interface {
	UpsertMediaBatch(ctx context.Context, items []MediaMetadata) error
	DeleteMediaByTMDBID(ctx context.Context, itemType ItemType, tmdbIDs []string) error
	ListMedia(ctx context.Context, itemType ItemType) ([]MediaMetadata, error)
	GetMediaByTMDBID(ctx context.Context, itemType ItemType, tmdbID string) (MediaMetadata, error)
}

// PersonStorage owns person_identity_map.
type PersonStorage interface {
	// UpsertPerson implements the merge rules: lookup by any non-null ID,
	// then by exact primary name; a same-name-different-person conflict
	// creates a new row rather than merging. Returns the row's map id.
	UpsertPerson(ctx context.Context, fields PersonIdentity, name string) (int64, error)
	GetPerson(ctx context.Context, mapID int64) (PersonIdentity, error)
}

// TranslationStorage owns translation_cache, including its read-time
// self-purge behavior.
type TranslationStorage interface {
	SaveTranslation(ctx context.Context, original, translated, engine string) error
	// GetTranslation returns ErrNotFound both when no row exists and when
	// the cached translation fails the target-script check (in which case
	// the row is deleted before returning).
	GetTranslation(ctx context.Context, original string) (TranslationCache, error)
}

// CustomCollectionStorage owns custom_collections and the two
// cross-cutting snapshot mutations the Webhook Propagator and
// Auto-Subscribe Gate depend on.
type CustomCollectionStorage interface {
	ListCustomCollections(ctx context.Context) ([]CustomCollection, error)
	GetCustomCollection(ctx context.Context, id int64) (CustomCollection, error)
	SaveCollectionSnapshot(ctx context.Context, id int64, snapshot []SnapshotItem, embyCollectionID *string) error

	// MatchAndUpdateListCollectionsOnItemAdd flips the embedded snapshot
	// row matching tmdbID from any non-IN_LIBRARY status to IN_LIBRARY in
	// every active list-type collection, recomputing health. Returns the
	// collections whose snapshot changed.
	MatchAndUpdateListCollectionsOnItemAdd(ctx context.Context, tmdbID, name string) ([]AffectedCollection, error)
}

// NativeCollectionStorage owns collections_info.
type NativeCollectionStorage interface {
	ListNativeCollections(ctx context.Context) ([]NativeCollection, error)
	UpsertNativeCollection(ctx context.Context, nc NativeCollection) error
	// BatchMarkMoviesSubscribedInCollections flips MISSING->SUBSCRIBED
	// for the given tmdb ids across all native collection snapshots,
	// without contacting the downloader.
	BatchMarkMoviesSubscribedInCollections(ctx context.Context, tmdbIDs []string) error
}

// WatchlistStorage owns the watchlist table.
type WatchlistStorage interface {
	ListWatchlist(ctx context.Context) ([]Watchlist, error)
	UpsertWatchlistEntry(ctx context.Context, w Watchlist) error
}

// ActorSubscriptionStorage owns actor_subscriptions and its child table
// tracked_actor_media.
type ActorSubscriptionStorage interface {
	ListActiveActorSubscriptions(ctx context.Context) ([]ActorSubscription, error)
	GetTrackedActorMedia(ctx context.Context, subscriptionID int64) ([]TrackedActorMedia, error)
	ApplyActorMediaChanges(ctx context.Context, subscriptionID int64, inserts, updates []TrackedActorMedia, deleteTMDBMediaIDs []string) error
	MarkActorSubscriptionChecked(ctx context.Context, subscriptionID int64, status ActorSubscriptionStatus, checkedAt time.Time) error
}

// LogStorage owns processed_log / failed_log.
type LogStorage interface {
	MarkProcessed(ctx context.Context, itemID string) error
	MarkFailed(ctx context.Context, itemID string, reason string) error
}

// ImportExportStorage implements the bulk document round-trip of §6.
type ImportExportStorage interface {
	Export(ctx context.Context) (ExportDocument, error)
	Import(ctx context.Context, doc ExportDocument, mode ImportMode) error
}
