package sqlite

import (
	"context"
	"database/sql"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/model"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
)

func toMediaMetadataModel(m storage.MediaMetadata) model.MediaMetadata {
	return model.MediaMetadata{
		TMDBID:        m.TMDBID,
		ItemType:      string(m.ItemType),
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		ReleaseYear:   int32(m.ReleaseYear),
		ReleaseDate:   formatTimePtr(m.ReleaseDate),
		DateAdded:     formatTime(m.DateAdded),
		Rating:        m.Rating,
		Genres:        marshalJSON(m.Genres),
		Actors:        marshalJSON(m.Actors),
		Directors:     marshalJSON(m.Directors),
		Studios:       marshalJSON(m.Studios),
		Countries:     marshalJSON(m.Countries),
		Tags:          marshalJSON(m.Tags),
		LastSyncedAt:  formatTime(m.LastSyncedAt),
	}
}

// UpsertMediaBatch writes every item in one transaction using
// INSERT ... ON CONFLICT DO UPDATE, matching the Library Indexer's
// requirement that a batch either fully lands or fully rolls back.
func (s *SQLite) UpsertMediaBatch(ctx context.Context, items []storage.MediaMetadata) error {
	if len(items) == 0 {
		return nil
	}

	setColumns := make([]sqlite.Expression, len(table.MediaMetadata.MutableColumns))
	for i, c := range table.MediaMetadata.MutableColumns {
		setColumns[i] = c
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			row := toMediaMetadataModel(item)
			stmt := table.MediaMetadata.
				INSERT(table.MediaMetadata.AllColumns).
				MODEL(row).
				ON_CONFLICT(table.MediaMetadata.TMDBID, table.MediaMetadata.ItemType).
				DO_UPDATE(sqlite.SET(table.MediaMetadata.MutableColumns.SET(sqlite.ROW(setColumns...))))

			if _, err := stmt.ExecContext(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteMediaByTMDBID removes rows no longer present on the media
// server. Callers chunk ids into batches of <= 500 per the indexer's
// diff contract; this method issues one DELETE per chunk it is given.
func (s *SQLite) DeleteMediaByTMDBID(ctx context.Context, itemType storage.ItemType, tmdbIDs []string) error {
	if len(tmdbIDs) == 0 {
		return nil
	}

	ids := make([]sqlite.Expression, 0, len(tmdbIDs))
	for _, id := range tmdbIDs {
		ids = append(ids, sqlite.String(id))
	}

	stmt := table.MediaMetadata.DELETE().WHERE(
		table.MediaMetadata.ItemType.EQ(sqlite.String(string(itemType))).
			AND(table.MediaMetadata.TMDBID.IN(ids...)),
	)

	_, err := s.handleDelete(ctx, stmt)
	return err
}

func (s *SQLite) ListMedia(ctx context.Context, itemType storage.ItemType) ([]storage.MediaMetadata, error) {
	var rows []model.MediaMetadata
	stmt := table.MediaMetadata.
		SELECT(table.MediaMetadata.AllColumns).
		FROM(table.MediaMetadata).
		WHERE(table.MediaMetadata.ItemType.EQ(sqlite.String(string(itemType))))

	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, err
	}

	out := make([]storage.MediaMetadata, 0, len(rows))
	for _, row := range rows {
		out = append(out, mediaMetadataFromModel(row))
	}
	return out, nil
}

func (s *SQLite) GetMediaByTMDBID(ctx context.Context, itemType storage.ItemType, tmdbID string) (storage.MediaMetadata, error) {
	var row model.MediaMetadata
	stmt := table.MediaMetadata.
		SELECT(table.MediaMetadata.AllColumns).
		FROM(table.MediaMetadata).
		WHERE(table.MediaMetadata.ItemType.EQ(sqlite.String(string(itemType))).
			AND(table.MediaMetadata.TMDBID.EQ(sqlite.String(tmdbID))))

	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		if isNoRows(err) {
			return storage.MediaMetadata{}, storage.ErrNotFound
		}
		return storage.MediaMetadata{}, err
	}

	return mediaMetadataFromModel(row), nil
}
