package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/curatord/curatord/pkg/storage"
)

// MarkProcessed records itemID as processed and clears any prior failure
// record for it in the same transaction, so a retry that eventually
// succeeds never leaves a stale failed_log row behind.
func (s *SQLite) MarkProcessed(ctx context.Context, itemID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM failed_log WHERE item_id = ?`, itemID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO processed_log (item_id, processed_at) VALUES (?, ?)
			ON CONFLICT(item_id) DO UPDATE SET processed_at = excluded.processed_at`,
			itemID, formatTime(time.Now()))
		return err
	})
}

// MarkFailed records itemID as failed with reason, clearing any prior
// processed record so the two logs stay mutually exclusive.
func (s *SQLite) MarkFailed(ctx context.Context, itemID string, reason string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM processed_log WHERE item_id = ?`, itemID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO failed_log (item_id, reason, failed_at) VALUES (?, ?, ?)
			ON CONFLICT(item_id) DO UPDATE SET reason = excluded.reason, failed_at = excluded.failed_at`,
			itemID, reason, formatTime(time.Now()))
		return err
	})
}

var _ storage.LogStorage = (*SQLite)(nil)
