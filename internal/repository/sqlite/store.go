// Package sqlite implements the local durable note backend on an embedded
// SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/migrations"
)

// timeLayout is how timestamps are stored; lexicographic order matches
// chronological order, which keeps the updated_at index usable.
const timeLayout = time.RFC3339Nano

// Store is the local DataSource backed by SQLite.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (or creates) the database at path and applies pending
// migrations. Pass ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("local store ready", zap.String("path", path))

	return &Store{db: db, log: log}, nil
}

// migrate applies all pending migrations from the embedded filesystem.
func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// FetchAll returns every local note ordered per the sort option.
// Rows are scanned in insertion order so the stable sort's final tie-break
// is deterministic.
func (s *Store) FetchAll(ctx context.Context, sortedBy model.SortOption) ([]model.NoteItem, error) {
	const q = `
SELECT id, title, content, rich_content, is_locked, is_pinned, created_at, updated_at, storage
FROM notes
ORDER BY rowid ASC`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.NoteItem
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	model.SortNotes(notes, sortedBy)
	return notes, nil
}

// Save creates a note from the draft or updates an existing one.
func (s *Store) Save(ctx context.Context, draft model.NoteDraft, existingID *uuid.UUID) (saved model.NoteItem, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.NoteItem{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if e := tx.Commit(); e != nil {
			err = e
		}
	}()

	now := time.Now().UTC()

	if existingID != nil {
		return s.update(ctx, tx, draft, *existingID, now)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return model.NoteItem{}, err
	}

	saved = model.NoteItem{
		ID:          id,
		Title:       draft.Title,
		Content:     draft.Content,
		RichContent: draft.RichContent,
		Locked:      draft.Locked,
		Pinned:      draft.Pinned,
		CreatedAt:   now,
		UpdatedAt:   now,
		Storage:     model.StorageLocal,
	}

	const ins = `
INSERT INTO notes (id, title, content, rich_content, is_locked, is_pinned, created_at, updated_at, storage)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, ins,
		id.String(), draft.Title, draft.Content, draft.RichContent,
		boolToInt(draft.Locked), boolToInt(draft.Pinned),
		now.Format(timeLayout), now.Format(timeLayout), string(model.StorageLocal))
	if err != nil {
		return model.NoteItem{}, fmt.Errorf("insert note: %w", err)
	}
	return saved, nil
}

// update rewrites an existing row, preserving created_at and storage.
func (s *Store) update(ctx context.Context, tx *sql.Tx, draft model.NoteDraft, id uuid.UUID, now time.Time) (model.NoteItem, error) {
	var createdRaw, storageRaw string
	row := tx.QueryRowContext(ctx, `SELECT created_at, storage FROM notes WHERE id = ?`, id.String())
	if err := row.Scan(&createdRaw, &storageRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NoteItem{}, errs.ErrNotFound
		}
		return model.NoteItem{}, fmt.Errorf("load note: %w", err)
	}
	createdAt, err := time.Parse(timeLayout, createdRaw)
	if err != nil {
		return model.NoteItem{}, fmt.Errorf("parse created_at: %w", err)
	}
	storage, ok := model.ParseStorageOption(storageRaw)
	if !ok {
		storage = model.StorageLocal
	}

	const upd = `
UPDATE notes
SET title = ?, content = ?, rich_content = ?, is_locked = ?, is_pinned = ?, updated_at = ?
WHERE id = ?`
	_, err = tx.ExecContext(ctx, upd,
		draft.Title, draft.Content, draft.RichContent,
		boolToInt(draft.Locked), boolToInt(draft.Pinned),
		now.Format(timeLayout), id.String())
	if err != nil {
		return model.NoteItem{}, fmt.Errorf("update note: %w", err)
	}

	return model.NoteItem{
		ID:          id,
		Title:       draft.Title,
		Content:     draft.Content,
		RichContent: draft.RichContent,
		Locked:      draft.Locked,
		Pinned:      draft.Pinned,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
		Storage:     storage,
	}, nil
}

// Delete removes all matching notes in one transaction. Unknown ids are
// skipped, an empty id set is a no-op.
func (s *Store) Delete(ctx context.Context, ids []uuid.UUID) (err error) {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if e := tx.Commit(); e != nil {
			err = e
		}
	}()

	for _, id := range ids {
		if _, err = tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id.String()); err != nil {
			return fmt.Errorf("delete note %s: %w", id, err)
		}
	}
	return nil
}

// SetPinned bulk-updates the pin flag and updated_at in one transaction.
// Unknown ids are skipped, an empty id set is a no-op.
func (s *Store) SetPinned(ctx context.Context, ids []uuid.UUID, pinned bool) (err error) {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if e := tx.Commit(); e != nil {
			err = e
		}
	}()

	now := time.Now().UTC().Format(timeLayout)
	const upd = `UPDATE notes SET is_pinned = ?, updated_at = ? WHERE id = ?`
	for _, id := range ids {
		if _, err = tx.ExecContext(ctx, upd, boolToInt(pinned), now, id.String()); err != nil {
			return fmt.Errorf("pin note %s: %w", id, err)
		}
	}
	return nil
}

// scanNote reads one row into a domain note.
func scanNote(rows *sql.Rows) (model.NoteItem, error) {
	var (
		n          model.NoteItem
		idRaw      string
		rich       []byte
		locked     int
		pinned     int
		createdRaw string
		updatedRaw string
		storageRaw string
	)
	if err := rows.Scan(&idRaw, &n.Title, &n.Content, &rich, &locked, &pinned, &createdRaw, &updatedRaw, &storageRaw); err != nil {
		return model.NoteItem{}, fmt.Errorf("scan note: %w", err)
	}

	id, err := uuid.FromString(idRaw)
	if err != nil {
		return model.NoteItem{}, fmt.Errorf("parse id %q: %w", idRaw, err)
	}
	n.ID = id
	n.RichContent = rich
	n.Locked = locked == 1
	n.Pinned = pinned == 1

	if n.CreatedAt, err = time.Parse(timeLayout, createdRaw); err != nil {
		return model.NoteItem{}, fmt.Errorf("parse created_at: %w", err)
	}
	if n.UpdatedAt, err = time.Parse(timeLayout, updatedRaw); err != nil {
		return model.NoteItem{}, fmt.Errorf("parse updated_at: %w", err)
	}

	storage, ok := model.ParseStorageOption(storageRaw)
	if !ok {
		storage = model.StorageLocal
	}
	n.Storage = storage
	return n, nil
}

// boolToInt converts a bool to the 0/1 integers SQLite stores.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
