package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

// Router dispatches every operation to the DataSource registered for the
// note's storage tag. There is no cross-backend fan-out or merge.
type Router struct {
	backends map[model.StorageOption]DataSource
}

// NewRouter constructs an empty router; backends are added with Register.
func NewRouter() *Router {
	return &Router{backends: make(map[model.StorageOption]DataSource)}
}

// Register binds a backend to a storage tag, replacing any previous binding.
func (r *Router) Register(storage model.StorageOption, ds DataSource) {
	r.backends[storage] = ds
}

// FetchNotes returns the full ordered note set of one backend.
func (r *Router) FetchNotes(ctx context.Context, sortedBy model.SortOption, storage model.StorageOption) ([]model.NoteItem, error) {
	ds, err := r.dataSource(storage)
	if err != nil {
		return nil, err
	}
	return ds.FetchAll(ctx, sortedBy)
}

// SaveNote persists a draft in the given backend.
func (r *Router) SaveNote(ctx context.Context, draft model.NoteDraft, existingID *uuid.UUID, storage model.StorageOption) (model.NoteItem, error) {
	ds, err := r.dataSource(storage)
	if err != nil {
		return model.NoteItem{}, err
	}
	return ds.Save(ctx, draft, existingID)
}

// DeleteNotes removes the given notes from one backend.
func (r *Router) DeleteNotes(ctx context.Context, ids []uuid.UUID, storage model.StorageOption) error {
	ds, err := r.dataSource(storage)
	if err != nil {
		return err
	}
	return ds.Delete(ctx, ids)
}

// SetPinned bulk-updates the pin flag in one backend.
func (r *Router) SetPinned(ctx context.Context, ids []uuid.UUID, pinned bool, storage model.StorageOption) error {
	ds, err := r.dataSource(storage)
	if err != nil {
		return err
	}
	return ds.SetPinned(ctx, ids, pinned)
}

func (r *Router) dataSource(storage model.StorageOption) (DataSource, error) {
	ds, ok := r.backends[storage]
	if !ok {
		return nil, errs.StorageUnavailable(string(storage))
	}
	return ds, nil
}
