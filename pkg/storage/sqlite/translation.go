package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/translate"
)

// SaveTranslation rejects translations that contain no target-script
// character; otherwise it UPSERTs with last_updated_at advanced to now.
// Merge priority (manual > any LLM engine > empty) is enforced by never
// letting a non-manual write clobber a row already marked manual, nor an
// empty-engine write clobber a row written by any engine.
func (s *SQLite) SaveTranslation(ctx context.Context, original, translated, engine string) error {
	if !translate.HasTargetScript(translated) {
		return nil
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var existingEngine sql.NullString
		err := tx.QueryRowContext(ctx, `SELECT engine_used FROM translation_cache WHERE original_text = ?`, original).Scan(&existingEngine)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if existingEngine.Valid && existingEngine.String == string(storage.TranslationEngineManual) && engine != string(storage.TranslationEngineManual) {
			return nil
		}
		if existingEngine.Valid && existingEngine.String != string(storage.TranslationEngineNone) && engine == string(storage.TranslationEngineNone) {
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO translation_cache (original_text, translated_text, engine_used, last_updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(original_text) DO UPDATE SET
				translated_text = excluded.translated_text,
				engine_used = excluded.engine_used,
				last_updated_at = excluded.last_updated_at`,
			original, translated, engine, formatTime(time.Now()))
		return err
	})
}

// GetTranslation self-purges: if the cached translation fails the
// target-script check it is deleted and ErrNotFound is returned, so a
// subsequent call observes a clean cache.
func (s *SQLite) GetTranslation(ctx context.Context, original string) (storage.TranslationCache, error) {
	var translated, engine, updatedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT translated_text, engine_used, last_updated_at FROM translation_cache WHERE original_text = ?`,
		original).Scan(&translated, &engine, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.TranslationCache{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.TranslationCache{}, err
	}

	if !translate.HasTargetScript(translated) {
		if _, delErr := s.db.ExecContext(ctx, `DELETE FROM translation_cache WHERE original_text = ?`, original); delErr != nil {
			return storage.TranslationCache{}, delErr
		}
		return storage.TranslationCache{}, storage.ErrNotFound
	}

	return storage.TranslationCache{
		OriginalText:   original,
		TranslatedText: translated,
		EngineUsed:     storage.TranslationEngine(engine),
		LastUpdatedAt:  parseTime(updatedAt),
	}, nil
}
