package sqlite

import (
	"context"
	"database/sql"

	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const timestampFormat = "2006-01-02T15:04:05Z07:00"

// SQLite is the single implementation of storage.Storage. Every
// per-concern file in this package (media.go, person.go, ...) adds
// methods to this receiver.
type SQLite struct {
	db *sql.DB
}

// New opens the database file at filePath and brings it up to the latest
// migration before returning.
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Init applies the provided raw schema statements. It exists mainly to
// bootstrap in-memory databases for tests without running the full
// migration chain.
func (s *SQLite) Init(ctx context.Context, schemas ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, stmt := range schemas {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return nil, err
	}

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return nil, err
	}

	return result, tx.Commit()
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error fn returns. Used by the multi-statement mutations
// (person upsert, snapshot propagation) that must be crash-safe.
func (s *SQLite) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
