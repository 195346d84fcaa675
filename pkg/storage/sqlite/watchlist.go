package sqlite

import (
	"context"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/model"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/table"
	"github.com/go-jet/jet/v2/sqlite"
)

func watchlistFromModel(row model.Watchlist) storage.Watchlist {
	w := storage.Watchlist{
		ItemID:     row.ItemID,
		TMDBID:     row.TMDBID,
		Status:     storage.WatchlistStatus(row.Status),
		ForceEnded: row.ForceEnded,
	}
	if row.PausedUntil != nil {
		w.PausedUntil = parseTimePtr(row.PausedUntil)
	}
	unmarshalJSON(row.MissingInfo, &w.MissingInfo)
	return w
}

func (s *SQLite) ListWatchlist(ctx context.Context) ([]storage.Watchlist, error) {
	var rows []model.Watchlist
	stmt := table.Watchlist.SELECT(table.Watchlist.AllColumns).FROM(table.Watchlist)
	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, err
	}

	out := make([]storage.Watchlist, 0, len(rows))
	for _, row := range rows {
		out = append(out, watchlistFromModel(row))
	}
	return out, nil
}

func (s *SQLite) UpsertWatchlistEntry(ctx context.Context, w storage.Watchlist) error {
	setColumns := make([]sqlite.Expression, len(table.Watchlist.MutableColumns))
	for i, c := range table.Watchlist.MutableColumns {
		setColumns[i] = c
	}

	row := model.Watchlist{
		ItemID:      w.ItemID,
		TMDBID:      w.TMDBID,
		Status:      string(w.Status),
		ForceEnded:  w.ForceEnded,
		PausedUntil: formatTimePtr(w.PausedUntil),
		MissingInfo: marshalJSON(w.MissingInfo),
	}

	stmt := table.Watchlist.
		INSERT(table.Watchlist.AllColumns).
		MODEL(row).
		ON_CONFLICT(table.Watchlist.ItemID).
		DO_UPDATE(sqlite.SET(table.Watchlist.MutableColumns.SET(sqlite.ROW(setColumns...))))

	_, err := s.handleInsert(ctx, stmt)
	return err
}
