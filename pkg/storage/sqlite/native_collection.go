package sqlite

import (
	"context"
	"database/sql"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/model"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
)

func nativeCollectionFromModel(row model.CollectionsInfo) storage.NativeCollection {
	nc := storage.NativeCollection{
		EmbyCollectionID: row.EmbyCollectionID,
		TMDBCollectionID: row.TMDBCollectionID,
		InLibraryCount:   int(row.InLibraryCount),
		HasMissing:       row.HasMissing,
	}
	unmarshalJSON(row.MissingMovies, &nc.MissingMovies)
	return nc
}

func (s *SQLite) ListNativeCollections(ctx context.Context) ([]storage.NativeCollection, error) {
	var rows []model.CollectionsInfo
	stmt := table.CollectionsInfo.SELECT(table.CollectionsInfo.AllColumns).FROM(table.CollectionsInfo)
	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, err
	}

	out := make([]storage.NativeCollection, 0, len(rows))
	for _, row := range rows {
		out = append(out, nativeCollectionFromModel(row))
	}
	return out, nil
}

func (s *SQLite) UpsertNativeCollection(ctx context.Context, nc storage.NativeCollection) error {
	setColumns := make([]sqlite.Expression, len(table.CollectionsInfo.MutableColumns))
	for i, c := range table.CollectionsInfo.MutableColumns {
		setColumns[i] = c
	}

	row := model.CollectionsInfo{
		EmbyCollectionID: nc.EmbyCollectionID,
		TMDBCollectionID: nc.TMDBCollectionID,
		InLibraryCount:   int32(nc.InLibraryCount),
		HasMissing:       nc.HasMissing,
		MissingMovies:    marshalJSON(nc.MissingMovies),
	}

	stmt := table.CollectionsInfo.
		INSERT(table.CollectionsInfo.AllColumns).
		MODEL(row).
		ON_CONFLICT(table.CollectionsInfo.EmbyCollectionID).
		DO_UPDATE(sqlite.SET(table.CollectionsInfo.MutableColumns.SET(sqlite.ROW(setColumns...))))

	_, err := s.handleInsert(ctx, stmt)
	return err
}

// BatchMarkMoviesSubscribedInCollections flips MISSING->SUBSCRIBED for
// the given tmdb ids across every native collection snapshot, without
// contacting the downloader.
func (s *SQLite) BatchMarkMoviesSubscribedInCollections(ctx context.Context, tmdbIDs []string) error {
	if len(tmdbIDs) == 0 {
		return nil
	}

	want := make(map[string]bool, len(tmdbIDs))
	for _, id := range tmdbIDs {
		want[id] = true
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT emby_collection_id, missing_movies FROM collections_info`)
		if err != nil {
			return err
		}

		type row struct {
			embyCollectionID string
			raw              string
		}
		var all []row
		for rows.Next() {
			var r row
			if err := rows.Scan(&r.embyCollectionID, &r.raw); err != nil {
				rows.Close()
				return err
			}
			all = append(all, r)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		rows.Close()

		for _, r := range all {
			var snapshot []storage.SnapshotItem
			unmarshalJSON(r.raw, &snapshot)

			changed := false
			for i := range snapshot {
				if want[snapshot[i].TMDBID] && snapshot[i].Status == storage.StatusMissing {
					snapshot[i].Status = storage.StatusSubscribed
					changed = true
				}
			}
			if !changed {
				continue
			}

			inLibrary, missing := countByStatus(snapshot)
			if _, err := tx.ExecContext(ctx, `
				UPDATE collections_info SET missing_movies = ?, in_library_count = ?, has_missing = ?
				WHERE emby_collection_id = ?`,
				marshalJSON(snapshot), inLibrary, missing > 0, r.embyCollectionID); err != nil {
				return err
			}
		}

		return nil
	})
}
