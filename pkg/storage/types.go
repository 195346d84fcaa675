package storage

import "time"

// ItemType distinguishes movies from series throughout the engine.
type ItemType string

const (
	ItemTypeMovie  ItemType = "Movie"
	ItemTypeSeries ItemType = "Series"
)

// MediaStatus is the classification a candidate item is assigned during a
// reconcile pass.
type MediaStatus string

const (
	StatusInLibrary      MediaStatus = "IN_LIBRARY"
	StatusSubscribed     MediaStatus = "SUBSCRIBED"
	StatusPendingRelease MediaStatus = "PENDING_RELEASE"
	StatusMissing        MediaStatus = "MISSING"
)

// Person is a cast/crew credit as carried on a MediaMetadata row.
type Person struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name,omitempty"`
}

// MediaMetadata is the local cache of a single library item, keyed by
// (tmdb_id, item_type).
type MediaMetadata struct {
	TMDBID        string     `json:"tmdb_id"`
	ItemType      ItemType   `json:"item_type"`
	Title         string     `json:"title"`
	OriginalTitle string     `json:"original_title"`
	ReleaseYear   int        `json:"release_year"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	DateAdded     time.Time  `json:"date_added"`
	Rating        float64    `json:"rating"`
	Genres        []string   `json:"genres"`
	Actors        []Person   `json:"actors"`
	Directors     []Person   `json:"directors"`
	Studios       []string   `json:"studios"`
	Countries     []string   `json:"countries"`
	Tags          []string   `json:"tags"`
	LastSyncedAt  time.Time  `json:"last_synced_at"`
}

// PersonIdentity is the mapping among identifiers for one canonical
// person, with zero values meaning "unknown", not "empty string".
type PersonIdentity struct {
	MapID         int64   `json:"map_id"`
	EmbyPersonID  *string `json:"emby_person_id,omitempty"`
	TMDBPersonID  *int64  `json:"tmdb_person_id,omitempty"`
	IMDBID        *string `json:"imdb_id,omitempty"`
	DoubanID      *string `json:"douban_id,omitempty"`
	PrimaryName   string  `json:"primary_name"`
	LastUpdatedAt time.Time
}

// SnapshotItem is one classified candidate inside a collection's
// generated_media_info / missing_movies snapshot. It is a copy, never a
// reference to a MediaMetadata row.
type SnapshotItem struct {
	TMDBID      string      `json:"tmdb_id"`
	ItemType    ItemType    `json:"item_type,omitempty"`
	Title       string      `json:"title"`
	ReleaseDate *time.Time  `json:"release_date,omitempty"`
	PosterPath  string      `json:"poster_path,omitempty"`
	Status      MediaStatus `json:"status"`
}

// CollectionType distinguishes filter-rule collections from
// externally-resolved list collections.
type CollectionType string

const (
	CollectionTypeFilter CollectionType = "filter"
	CollectionTypeList   CollectionType = "list"
)

// CollectionHealth summarizes a snapshot's status counts.
type CollectionHealth string

const (
	HealthOK         CollectionHealth = "ok"
	HealthHasMissing CollectionHealth = "has_missing"
)

// CustomCollection is a user-defined set of tracked media, backed either
// by a filter rule tree or an external ranked list.
type CustomCollection struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Type               CollectionType   `json:"type"`
	Definition         []byte           `json:"definition"`
	Status             string           `json:"status"`
	SortOrder          int              `json:"sort_order"`
	EmbyCollectionID   *string          `json:"emby_collection_id,omitempty"`
	LastSyncedAt       time.Time        `json:"last_synced_at"`
	InLibraryCount     int              `json:"in_library_count"`
	MissingCount       int              `json:"missing_count"`
	HealthStatus       CollectionHealth `json:"health_status"`
	GeneratedMediaInfo []SnapshotItem   `json:"generated_media_info"`
}

// NativeCollection shadows a TMDb-franchise collection discovered on the
// server. Movies only.
type NativeCollection struct {
	EmbyCollectionID string         `json:"emby_collection_id"`
	TMDBCollectionID string         `json:"tmdb_collection_id"`
	InLibraryCount   int            `json:"in_library_count"`
	HasMissing       bool           `json:"has_missing"`
	MissingMovies    []SnapshotItem `json:"missing_movies"`
}

// WatchlistStatus is the lifecycle state of a tracked series.
type WatchlistStatus string

const (
	WatchlistWatching  WatchlistStatus = "Watching"
	WatchlistPaused    WatchlistStatus = "Paused"
	WatchlistCompleted WatchlistStatus = "Completed"
)

// MissingSeason is one absent season recorded against a Watchlist entry.
type MissingSeason struct {
	SeasonNumber int        `json:"season_number"`
	AirDate      *time.Time `json:"air_date,omitempty"`
}

// Watchlist tracks a series by the media server's own item id.
type Watchlist struct {
	ItemID      string          `json:"item_id"`
	TMDBID      string          `json:"tmdb_id"`
	Status      WatchlistStatus `json:"status"`
	ForceEnded  bool            `json:"force_ended"`
	PausedUntil *time.Time      `json:"paused_until,omitempty"`
	MissingInfo []MissingSeason `json:"missing_info"`
}

// ActorSubscriptionStatus tracks whether an actor scan has pending work.
type ActorSubscriptionStatus string

const (
	ActorSubscriptionActive ActorSubscriptionStatus = "active"
	ActorSubscriptionIdle   ActorSubscriptionStatus = "idle"
)

// ActorFilter is the per-actor config gating which filmography entries
// the Actor Subscription Reconciler tracks.
type ActorFilter struct {
	StartYear     int      `json:"start_year"`
	MediaTypes    []string `json:"media_types"`
	GenresInclude []string `json:"genres_include"`
	GenresExclude []string `json:"genres_exclude"`
	MinRating     float64  `json:"min_rating"`
}

// ActorSubscription is a tracked actor whose filmography is walked on
// each actor-tracking pass.
type ActorSubscription struct {
	ID            int64                   `json:"id"`
	TMDBPersonID  int64                   `json:"tmdb_person_id"`
	DisplayName   string                  `json:"display_name"`
	Status        ActorSubscriptionStatus `json:"status"`
	Filter        ActorFilter             `json:"filter"`
	LastCheckedAt time.Time               `json:"last_checked_at"`
}

// TrackedActorMedia is one filmography entry tracked for a given
// ActorSubscription.
type TrackedActorMedia struct {
	SubscriptionID int64       `json:"subscription_id"`
	TMDBMediaID    string      `json:"tmdb_media_id"`
	ItemType       ItemType    `json:"item_type"`
	Title          string      `json:"title"`
	ReleaseDate    *time.Time  `json:"release_date,omitempty"`
	Status         MediaStatus `json:"status"`
}

// TranslationEngine tags which engine produced a cached translation, used
// for the manual > LLM > empty merge priority.
type TranslationEngine string

const (
	TranslationEngineManual TranslationEngine = "manual"
	TranslationEngineNone   TranslationEngine = ""
)

// TranslationCache is a memoized actor/title translation.
type TranslationCache struct {
	OriginalText   string            `json:"original_text"`
	TranslatedText string            `json:"translated_text"`
	EngineUsed     TranslationEngine `json:"engine_used"`
	LastUpdatedAt  time.Time         `json:"last_updated_at"`
}

// AffectedCollection identifies a collection whose snapshot changed as a
// result of MatchAndUpdateListCollectionsOnItemAdd.
type AffectedCollection struct {
	EmbyCollectionID string
	Name             string
}

// ImportMode selects the bulk-load semantics for Import.
type ImportMode string

const (
	ImportOverwrite ImportMode = "overwrite"
	ImportMerge     ImportMode = "merge"
)

// ExportDocument is the top-level shape of the import/export JSON blob:
// {"data": {table_name: [row, ...]}}.
type ExportDocument struct {
	Data map[string][]map[string]any `json:"data"`
}
