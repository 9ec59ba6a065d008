// Package service exposes the note operations consumed by presentation code.
package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/repository"
)

// NotesService defines the note operations available to callers. It mirrors
// the repository contract so presentation never sees the routing detail.
type NotesService interface {
	// FetchNotes returns the full note set of one backend, ordered per sortedBy.
	FetchNotes(ctx context.Context, sortedBy model.SortOption, storage model.StorageOption) ([]model.NoteItem, error)
	// SaveNote creates or updates a note and returns the persisted record.
	SaveNote(ctx context.Context, draft model.NoteDraft, existingID *uuid.UUID, storage model.StorageOption) (model.NoteItem, error)
	// DeleteNotes removes the given notes; unknown ids are skipped.
	DeleteNotes(ctx context.Context, ids []uuid.UUID, storage model.StorageOption) error
	// SetPinned bulk-updates the pin flag for the given notes.
	SetPinned(ctx context.Context, ids []uuid.UUID, pinned bool, storage model.StorageOption) error
}

// NotesServiceImpl delegates to the repository. It is stateless and safe to
// share across callers.
type NotesServiceImpl struct {
	repo repository.NotesRepository
}

// NewNotesService constructs the service over a repository.
func NewNotesService(repo repository.NotesRepository) *NotesServiceImpl {
	return &NotesServiceImpl{repo: repo}
}

func (s *NotesServiceImpl) FetchNotes(ctx context.Context, sortedBy model.SortOption, storage model.StorageOption) ([]model.NoteItem, error) {
	return s.repo.FetchNotes(ctx, sortedBy, storage)
}

func (s *NotesServiceImpl) SaveNote(ctx context.Context, draft model.NoteDraft, existingID *uuid.UUID, storage model.StorageOption) (model.NoteItem, error) {
	return s.repo.SaveNote(ctx, draft, existingID, storage)
}

func (s *NotesServiceImpl) DeleteNotes(ctx context.Context, ids []uuid.UUID, storage model.StorageOption) error {
	return s.repo.DeleteNotes(ctx, ids, storage)
}

func (s *NotesServiceImpl) SetPinned(ctx context.Context, ids []uuid.UUID, pinned bool, storage model.StorageOption) error {
	return s.repo.SetPinned(ctx, ids, pinned, storage)
}
