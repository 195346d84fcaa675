package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/curatord/curatord/pkg/storage"
)

type personRow struct {
	mapID        int64
	embyPersonID sql.NullString
	tmdbPersonID sql.NullInt64
	imdbID       sql.NullString
	doubanID     sql.NullString
	primaryName  string
}

func scanPersonRow(row interface{ Scan(...any) error }) (personRow, error) {
	var p personRow
	err := row.Scan(&p.mapID, &p.embyPersonID, &p.tmdbPersonID, &p.imdbID, &p.doubanID, &p.primaryName)
	return p, err
}

func (p personRow) identity() storage.PersonIdentity {
	id := storage.PersonIdentity{MapID: p.mapID, PrimaryName: p.primaryName}
	if p.embyPersonID.Valid {
		v := p.embyPersonID.String
		id.EmbyPersonID = &v
	}
	if p.tmdbPersonID.Valid {
		v := p.tmdbPersonID.Int64
		id.TMDBPersonID = &v
	}
	if p.imdbID.Valid {
		v := p.imdbID.String
		id.IMDBID = &v
	}
	if p.doubanID.Valid {
		v := p.doubanID.String
		id.DoubanID = &v
	}
	return id
}

const personColumns = `map_id, emby_person_id, tmdb_person_id, imdb_id, douban_id, primary_name`

// UpsertPerson implements the merge rules of the PersonIdentityMap
// invariants: lookup by any non-null ID, else by exact primary name;
// a same-name-different-person conflict creates a new row instead of
// merging. The whole operation runs inside one transaction so a partial
// failure never leaves a half-merged row.
func (s *SQLite) UpsertPerson(ctx context.Context, fields storage.PersonIdentity, name string) (int64, error) {
	var resultID int64

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		byID, err := findPersonByAnyID(ctx, tx, fields)
		if err != nil {
			return err
		}

		if byID != nil {
			conflict, err := findConflictingPerson(ctx, tx, fields, byID.mapID)
			if err != nil {
				return err
			}
			if conflict != nil {
				resultID = conflict.mapID
				return nil
			}

			resultID = byID.mapID
			return mergePersonInPlace(ctx, tx, *byID, fields, name)
		}

		byName, err := findPersonByName(ctx, tx, name)
		if err != nil {
			return err
		}

		if byName != nil && !hasIDConflict(*byName, fields) {
			resultID = byName.mapID
			return mergePersonInPlace(ctx, tx, *byName, fields, name)
		}

		id, err := insertPerson(ctx, tx, fields, name)
		if err != nil {
			return err
		}
		resultID = id
		return nil
	})

	return resultID, err
}

func findPersonByAnyID(ctx context.Context, tx *sql.Tx, fields storage.PersonIdentity) (*personRow, error) {
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if fields.EmbyPersonID != nil {
		clauses = append(clauses, "emby_person_id = ?")
		args = append(args, *fields.EmbyPersonID)
	}
	if fields.TMDBPersonID != nil {
		clauses = append(clauses, "tmdb_person_id = ?")
		args = append(args, *fields.TMDBPersonID)
	}
	if fields.IMDBID != nil {
		clauses = append(clauses, "imdb_id = ?")
		args = append(args, *fields.IMDBID)
	}
	if fields.DoubanID != nil {
		clauses = append(clauses, "douban_id = ?")
		args = append(args, *fields.DoubanID)
	}

	if len(clauses) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM person_identity_map WHERE %s LIMIT 1", personColumns, orJoin(clauses))
	row, err := scanPersonRow(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func findPersonByName(ctx context.Context, tx *sql.Tx, name string) (*personRow, error) {
	query := fmt.Sprintf("SELECT %s FROM person_identity_map WHERE primary_name = ? LIMIT 1", personColumns)
	row, err := scanPersonRow(tx.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// findConflictingPerson looks for a row OTHER than excludeMapID that
// already owns one of fields' non-null IDs - a genuine unique-constraint
// collision that must abort the merge rather than silently overwrite.
func findConflictingPerson(ctx context.Context, tx *sql.Tx, fields storage.PersonIdentity, excludeMapID int64) (*personRow, error) {
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if fields.EmbyPersonID != nil {
		clauses = append(clauses, "emby_person_id = ?")
		args = append(args, *fields.EmbyPersonID)
	}
	if fields.TMDBPersonID != nil {
		clauses = append(clauses, "tmdb_person_id = ?")
		args = append(args, *fields.TMDBPersonID)
	}
	if fields.IMDBID != nil {
		clauses = append(clauses, "imdb_id = ?")
		args = append(args, *fields.IMDBID)
	}
	if fields.DoubanID != nil {
		clauses = append(clauses, "douban_id = ?")
		args = append(args, *fields.DoubanID)
	}

	if len(clauses) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM person_identity_map WHERE map_id != ? AND (%s) LIMIT 1", personColumns, orJoin(clauses))
	args = append([]any{excludeMapID}, args...)
	row, err := scanPersonRow(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// hasIDConflict reports whether any of fields' non-null IDs would
// overwrite an already-set, differing value on existing - the
// same-name-different-person guard.
func hasIDConflict(existing personRow, fields storage.PersonIdentity) bool {
	if fields.EmbyPersonID != nil && existing.embyPersonID.Valid && existing.embyPersonID.String != *fields.EmbyPersonID {
		return true
	}
	if fields.TMDBPersonID != nil && existing.tmdbPersonID.Valid && existing.tmdbPersonID.Int64 != *fields.TMDBPersonID {
		return true
	}
	if fields.IMDBID != nil && existing.imdbID.Valid && existing.imdbID.String != *fields.IMDBID {
		return true
	}
	if fields.DoubanID != nil && existing.doubanID.Valid && existing.doubanID.String != *fields.DoubanID {
		return true
	}
	return false
}

func mergePersonInPlace(ctx context.Context, tx *sql.Tx, existing personRow, fields storage.PersonIdentity, name string) error {
	embyPersonID := existing.embyPersonID.String
	if fields.EmbyPersonID != nil {
		embyPersonID = *fields.EmbyPersonID
	}
	tmdbPersonID := existing.tmdbPersonID.Int64
	if fields.TMDBPersonID != nil {
		tmdbPersonID = *fields.TMDBPersonID
	}
	imdbID := existing.imdbID.String
	if fields.IMDBID != nil {
		imdbID = *fields.IMDBID
	}
	doubanID := existing.doubanID.String
	if fields.DoubanID != nil {
		doubanID = *fields.DoubanID
	}
	primaryName := existing.primaryName
	if name != "" {
		primaryName = name
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE person_identity_map
		SET emby_person_id = NULLIF(?, ''), tmdb_person_id = NULLIF(?, 0), imdb_id = NULLIF(?, ''), douban_id = NULLIF(?, ''),
		    primary_name = ?, last_updated_at = ?
		WHERE map_id = ?`,
		embyPersonID, tmdbPersonID, imdbID, doubanID, primaryName, formatTime(time.Now()), existing.mapID)
	return err
}

func insertPerson(ctx context.Context, tx *sql.Tx, fields storage.PersonIdentity, name string) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO person_identity_map (emby_person_id, tmdb_person_id, imdb_id, douban_id, primary_name, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		nullableString(fields.EmbyPersonID), nullableInt64(fields.TMDBPersonID), nullableString(fields.IMDBID), nullableString(fields.DoubanID),
		name, formatTime(time.Now()))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLite) GetPerson(ctx context.Context, mapID int64) (storage.PersonIdentity, error) {
	query := fmt.Sprintf("SELECT %s FROM person_identity_map WHERE map_id = ?", personColumns)
	row, err := scanPersonRow(s.db.QueryRowContext(ctx, query, mapID))
	if errors.Is(err, sql.ErrNoRows) {
		return storage.PersonIdentity{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.PersonIdentity{}, err
	}
	return row.identity(), nil
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func orJoin(clauses []string) string {
	out := clauses[0]
	for _, c := range clauses[1:] {
		out += " OR " + c
	}
	return out
}
