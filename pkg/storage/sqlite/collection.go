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

func customCollectionFromModel(row model.CustomCollections) storage.CustomCollection {
	c := storage.CustomCollection{
		ID:               row.ID,
		Name:             row.Name,
		Type:             storage.CollectionType(row.Type),
		Definition:       []byte(row.Definition),
		Status:           row.Status,
		SortOrder:        int(row.SortOrder),
		EmbyCollectionID: row.EmbyCollectionID,
		InLibraryCount:   int(row.InLibraryCount),
		MissingCount:     int(row.MissingCount),
		HealthStatus:     storage.CollectionHealth(row.HealthStatus),
	}
	if row.LastSyncedAt != nil {
		c.LastSyncedAt = parseTime(*row.LastSyncedAt)
	}
	unmarshalJSON(row.GeneratedMediaInfo, &c.GeneratedMediaInfo)
	return c
}

func (s *SQLite) ListCustomCollections(ctx context.Context) ([]storage.CustomCollection, error) {
	var rows []model.CustomCollections
	stmt := table.CustomCollections.SELECT(table.CustomCollections.AllColumns).FROM(table.CustomCollections).ORDER_BY(table.CustomCollections.SortOrder.ASC())
	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, err
	}

	out := make([]storage.CustomCollection, 0, len(rows))
	for _, row := range rows {
		out = append(out, customCollectionFromModel(row))
	}
	return out, nil
}

func (s *SQLite) GetCustomCollection(ctx context.Context, id int64) (storage.CustomCollection, error) {
	var row model.CustomCollections
	stmt := table.CustomCollections.SELECT(table.CustomCollections.AllColumns).FROM(table.CustomCollections).WHERE(table.CustomCollections.ID.EQ(sqlite.Int64(id)))
	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		if isNoRows(err) {
			return storage.CustomCollection{}, storage.ErrNotFound
		}
		return storage.CustomCollection{}, err
	}
	return customCollectionFromModel(row), nil
}

// SaveCollectionSnapshot replaces a collection's entire snapshot
// atomically and recomputes its health counters, per the invariant that
// reads never observe a partially-written snapshot.
func (s *SQLite) SaveCollectionSnapshot(ctx context.Context, id int64, snapshot []storage.SnapshotItem, embyCollectionID *string) error {
	inLibrary, missing := countByStatus(snapshot)
	health := storage.HealthOK
	if missing > 0 {
		health = storage.HealthHasMissing
	}

	now := formatTime(time.Now())
	patch := struct {
		GeneratedMediaInfo string
		InLibraryCount     int32
		MissingCount       int32
		HealthStatus       string
		EmbyCollectionID   *string
		LastSyncedAt       *string
	}{
		GeneratedMediaInfo: marshalJSON(snapshot),
		InLibraryCount:     int32(inLibrary),
		MissingCount:       int32(missing),
		HealthStatus:       string(health),
		EmbyCollectionID:   embyCollectionID,
		LastSyncedAt:       &now,
	}

	stmt := table.CustomCollections.UPDATE(
		table.CustomCollections.GeneratedMediaInfo,
		table.CustomCollections.InLibraryCount,
		table.CustomCollections.MissingCount,
		table.CustomCollections.HealthStatus,
		table.CustomCollections.EmbyCollectionID,
		table.CustomCollections.LastSyncedAt,
	).MODEL(patch).WHERE(table.CustomCollections.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	return err
}

func countByStatus(snapshot []storage.SnapshotItem) (inLibrary, missing int) {
	for _, item := range snapshot {
		switch item.Status {
		case storage.StatusInLibrary:
			inLibrary++
		case storage.StatusMissing:
			missing++
		}
	}
	return inLibrary, missing
}

// MatchAndUpdateListCollectionsOnItemAdd scans every active list-type
// collection, flips the snapshot row matching tmdbID to IN_LIBRARY, and
// recomputes health, all in one transaction. It returns the collections
// whose snapshot actually changed.
func (s *SQLite) MatchAndUpdateListCollectionsOnItemAdd(ctx context.Context, tmdbID, name string) ([]storage.AffectedCollection, error) {
	var affected []storage.AffectedCollection

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, name, emby_collection_id, generated_media_info
			FROM custom_collections
			WHERE type = 'list' AND status = 'active'`)
		if err != nil {
			return err
		}

		type candidate struct {
			id               int64
			name             string
			embyCollectionID sql.NullString
			snapshotRaw      string
		}
		var candidates []candidate
		for rows.Next() {
			var c candidate
			if err := rows.Scan(&c.id, &c.name, &c.embyCollectionID, &c.snapshotRaw); err != nil {
				rows.Close()
				return err
			}
			candidates = append(candidates, c)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		rows.Close()

		for _, c := range candidates {
			var snapshot []storage.SnapshotItem
			unmarshalJSON(c.snapshotRaw, &snapshot)

			changed := false
			for i := range snapshot {
				if snapshot[i].TMDBID == tmdbID && snapshot[i].Status != storage.StatusInLibrary {
					snapshot[i].Status = storage.StatusInLibrary
					changed = true
				}
			}
			if !changed {
				continue
			}

			inLibrary, missing := countByStatus(snapshot)
			health := storage.HealthOK
			if missing > 0 {
				health = storage.HealthHasMissing
			}

			_, err := tx.ExecContext(ctx, `
				UPDATE custom_collections
				SET generated_media_info = ?, in_library_count = ?, missing_count = ?, health_status = ?, last_synced_at = ?
				WHERE id = ?`,
				marshalJSON(snapshot), inLibrary, missing, string(health), formatTime(time.Now()), c.id)
			if err != nil {
				return err
			}

			embyID := ""
			if c.embyCollectionID.Valid {
				embyID = c.embyCollectionID.String
			}
			affected = append(affected, storage.AffectedCollection{EmbyCollectionID: embyID, Name: c.name})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return affected, nil
}
