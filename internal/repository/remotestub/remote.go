// Package remotestub is the placeholder remote backend. Every operation
// fails with a storage-unavailable error before touching any state.
package remotestub

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

// Store implements repository.DataSource for the not-yet-implemented remote backend.
type Store struct{}

// New constructs the stub.
func New() *Store { return &Store{} }

func (*Store) FetchAll(context.Context, model.SortOption) ([]model.NoteItem, error) {
	return nil, errs.StorageUnavailable(string(model.StorageRemote))
}

func (*Store) Save(context.Context, model.NoteDraft, *uuid.UUID) (model.NoteItem, error) {
	return model.NoteItem{}, errs.StorageUnavailable(string(model.StorageRemote))
}

func (*Store) Delete(context.Context, []uuid.UUID) error {
	return errs.StorageUnavailable(string(model.StorageRemote))
}

func (*Store) SetPinned(context.Context, []uuid.UUID, bool) error {
	return errs.StorageUnavailable(string(model.StorageRemote))
}
