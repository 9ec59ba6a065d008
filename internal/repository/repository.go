package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/model"
)

// NotesRepository is the backend-agnostic contract consumed by the service
// layer; every call carries the storage tag of the backend it targets.
// *Router is the canonical implementation.
type NotesRepository interface {
	FetchNotes(ctx context.Context, sortedBy model.SortOption, storage model.StorageOption) ([]model.NoteItem, error)
	SaveNote(ctx context.Context, draft model.NoteDraft, existingID *uuid.UUID, storage model.StorageOption) (model.NoteItem, error)
	DeleteNotes(ctx context.Context, ids []uuid.UUID, storage model.StorageOption) error
	SetPinned(ctx context.Context, ids []uuid.UUID, pinned bool, storage model.StorageOption) error
}

var _ NotesRepository = (*Router)(nil)
