// Package repository defines the per-backend note store contract and the
// router that dispatches calls to the backend owning a note.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/model"
)

// DataSource is the contract every note backend implements. Adding a backend
// means implementing this interface and registering it with the Router.
type DataSource interface {
	// FetchAll returns every note in this backend ordered per the sort option.
	FetchAll(ctx context.Context, sortedBy model.SortOption) ([]model.NoteItem, error)

	// Save creates a note from the draft, or updates the note with existingID.
	// Updating a missing note fails with errs.ErrNotFound. UpdatedAt is always
	// refreshed; CreatedAt is set only on first creation.
	Save(ctx context.Context, draft model.NoteDraft, existingID *uuid.UUID) (model.NoteItem, error)

	// Delete removes all matching notes. Empty or unknown ids are not an error.
	Delete(ctx context.Context, ids []uuid.UUID) error

	// SetPinned bulk-updates the pin flag (and UpdatedAt) for matching notes,
	// silently skipping unknown ids. Empty id sets are a no-op.
	SetPinned(ctx context.Context, ids []uuid.UUID, pinned bool) error
}
