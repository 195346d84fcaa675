package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/model"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
)

func actorSubscriptionFromModel(row model.ActorSubscriptions) storage.ActorSubscription {
	a := storage.ActorSubscription{
		ID:           row.ID,
		TMDBPersonID: row.TMDBPersonID,
		DisplayName:  row.DisplayName,
		Status:       storage.ActorSubscriptionStatus(row.Status),
		Filter: storage.ActorFilter{
			StartYear: int(row.StartYear),
			MinRating: row.MinRating,
		},
	}
	unmarshalJSON(row.MediaTypes, &a.Filter.MediaTypes)
	unmarshalJSON(row.GenresInclude, &a.Filter.GenresInclude)
	unmarshalJSON(row.GenresExclude, &a.Filter.GenresExclude)
	if row.LastCheckedAt != nil {
		a.LastCheckedAt = parseTime(*row.LastCheckedAt)
	}
	return a
}

func (s *SQLite) ListActiveActorSubscriptions(ctx context.Context) ([]storage.ActorSubscription, error) {
	var rows []model.ActorSubscriptions
	stmt := table.ActorSubscriptions.
		SELECT(table.ActorSubscriptions.AllColumns).
		FROM(table.ActorSubscriptions).
		WHERE(table.ActorSubscriptions.Status.EQ(sqlite.String(string(storage.ActorSubscriptionActive))))
	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, err
	}

	out := make([]storage.ActorSubscription, 0, len(rows))
	for _, row := range rows {
		out = append(out, actorSubscriptionFromModel(row))
	}
	return out, nil
}

func trackedActorMediaFromModel(row model.TrackedActorMedia) storage.TrackedActorMedia {
	return storage.TrackedActorMedia{
		SubscriptionID: row.SubscriptionID,
		TMDBMediaID:    row.TMDBMediaID,
		ItemType:       storage.ItemType(row.ItemType),
		Title:          row.Title,
		ReleaseDate:    parseTimePtr(row.ReleaseDate),
		Status:         storage.MediaStatus(row.Status),
	}
}

func (s *SQLite) GetTrackedActorMedia(ctx context.Context, subscriptionID int64) ([]storage.TrackedActorMedia, error) {
	var rows []model.TrackedActorMedia
	stmt := table.TrackedActorMedia.
		SELECT(table.TrackedActorMedia.AllColumns).
		FROM(table.TrackedActorMedia).
		WHERE(table.TrackedActorMedia.SubscriptionID.EQ(sqlite.Int64(subscriptionID)))
	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, err
	}

	out := make([]storage.TrackedActorMedia, 0, len(rows))
	for _, row := range rows {
		out = append(out, trackedActorMediaFromModel(row))
	}
	return out, nil
}

// ApplyActorMediaChanges applies an inserts/updates/deletes diff against
// tracked_actor_media for one subscription in a single transaction, so a
// scan never leaves the table half-updated.
func (s *SQLite) ApplyActorMediaChanges(ctx context.Context, subscriptionID int64, inserts, updates []storage.TrackedActorMedia, deleteTMDBMediaIDs []string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, m := range inserts {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO tracked_actor_media (subscription_id, tmdb_media_id, item_type, title, release_date, status)
				VALUES (?, ?, ?, ?, ?, ?)`,
				subscriptionID, m.TMDBMediaID, string(m.ItemType), m.Title, formatTimePtr(m.ReleaseDate), string(m.Status)); err != nil {
				return err
			}
		}

		for _, m := range updates {
			if _, err := tx.ExecContext(ctx, `
				UPDATE tracked_actor_media SET item_type = ?, title = ?, release_date = ?, status = ?
				WHERE subscription_id = ? AND tmdb_media_id = ?`,
				string(m.ItemType), m.Title, formatTimePtr(m.ReleaseDate), string(m.Status), subscriptionID, m.TMDBMediaID); err != nil {
				return err
			}
		}

		for _, tmdbMediaID := range deleteTMDBMediaIDs {
			if _, err := tx.ExecContext(ctx, `
				DELETE FROM tracked_actor_media WHERE subscription_id = ? AND tmdb_media_id = ?`,
				subscriptionID, tmdbMediaID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *SQLite) MarkActorSubscriptionChecked(ctx context.Context, subscriptionID int64, status storage.ActorSubscriptionStatus, checkedAt time.Time) error {
	checkedAtStr := formatTime(checkedAt)
	stmt := table.ActorSubscriptions.
		UPDATE(table.ActorSubscriptions.Status, table.ActorSubscriptions.LastCheckedAt).
		MODEL(struct {
			Status        string
			LastCheckedAt *string
		}{
			Status:        string(status),
			LastCheckedAt: &checkedAtStr,
		}).
		WHERE(table.ActorSubscriptions.ID.EQ(sqlite.Int64(subscriptionID)))

	_, err := s.handleUpdate(ctx, stmt)
	return err
}
