package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/curatord/curatord/pkg/storage"
)

// exportedTables lists every table included in a full export/import
// document, in dependency order (parents before children) so Import can
// apply them in the same order without tripping foreign keys.
var exportedTables = []string{
	"media_metadata",
	"person_identity_map",
	"translation_cache",
	"custom_collections",
	"collections_info",
	"watchlist",
	"actor_subscriptions",
	"tracked_actor_media",
	"processed_log",
	"failed_log",
}

// Export dumps every table into a generic {table: [row, ...]} document,
// scanning columns by name so it never has to know a table's Go model.
func (s *SQLite) Export(ctx context.Context) (storage.ExportDocument, error) {
	doc := storage.ExportDocument{Data: make(map[string][]map[string]any, len(exportedTables))}

	for _, name := range exportedTables {
		rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", name))
		if err != nil {
			return storage.ExportDocument{}, err
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return storage.ExportDocument{}, err
		}

		var tableRows []map[string]any
		for rows.Next() {
			vals := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range vals {
				ptrs[i] = &vals[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				rows.Close()
				return storage.ExportDocument{}, err
			}

			row := make(map[string]any, len(cols))
			for i, col := range cols {
				row[col] = vals[i]
			}
			tableRows = append(tableRows, row)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return storage.ExportDocument{}, err
		}
		rows.Close()

		doc.Data[name] = tableRows
	}

	return doc, nil
}

// Import loads an export document back into the database. Overwrite mode
// truncates every table present in the document before inserting;
// merge mode upserts row by row, except translation_cache, whose
// manual > LLM > empty priority is enforced through SaveTranslation
// rather than a blind upsert.
func (s *SQLite) Import(ctx context.Context, doc storage.ExportDocument, mode storage.ImportMode) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if mode == storage.ImportOverwrite {
			for i := len(exportedTables) - 1; i >= 0; i-- {
				name := exportedTables[i]
				if _, ok := doc.Data[name]; !ok {
					continue
				}
				if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", name)); err != nil {
					return err
				}
			}
		}

		for _, name := range exportedTables {
			rows, ok := doc.Data[name]
			if !ok {
				continue
			}

			for _, row := range rows {
				if err := importRow(ctx, tx, name, row, mode); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func importRow(ctx context.Context, tx *sql.Tx, table string, row map[string]any, mode storage.ImportMode) error {
	if table == "translation_cache" && mode == storage.ImportMerge {
		return importTranslationRow(ctx, tx, row)
	}

	cols := make([]string, 0, len(row))
	placeholders := make([]string, 0, len(row))
	args := make([]any, 0, len(row))
	for col, val := range row {
		cols = append(cols, col)
		placeholders = append(placeholders, "?")
		args = append(args, val)
	}

	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)", table, joinCols(cols), joinCols(placeholders))
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// importTranslationRow merges one translation_cache row under the
// manual > LLM > empty source priority: a non-manual import row never
// clobbers a locally-held manual translation.
func importTranslationRow(ctx context.Context, tx *sql.Tx, row map[string]any) error {
	original, _ := row["original_text"].(string)
	translated, _ := row["translated_text"].(string)
	engine, _ := row["engine_used"].(string)

	var existingEngine sql.NullString
	err := tx.QueryRowContext(ctx, `SELECT engine_used FROM translation_cache WHERE original_text = ?`, original).Scan(&existingEngine)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if existingEngine.Valid && existingEngine.String == string(storage.TranslationEngineManual) && engine != string(storage.TranslationEngineManual) {
		return nil
	}

	updatedAt, _ := row["last_updated_at"].(string)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO translation_cache (original_text, translated_text, engine_used, last_updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(original_text) DO UPDATE SET
			translated_text = excluded.translated_text,
			engine_used = excluded.engine_used,
			last_updated_at = excluded.last_updated_at`,
		original, translated, engine, updatedAt)
	return err
}

func joinCols(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
