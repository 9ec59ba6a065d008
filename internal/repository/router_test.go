package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

type fakeDataSource struct {
	fetchCalls int
	saveCalls  int
	delIDs     []uuid.UUID
	pinIDs     []uuid.UUID
	pinValue   bool
}

func (f *fakeDataSource) FetchAll(_ context.Context, _ model.SortOption) ([]model.NoteItem, error) {
	f.fetchCalls++
	return []model.NoteItem{{Title: "from fake"}}, nil
}

func (f *fakeDataSource) Save(_ context.Context, draft model.NoteDraft, _ *uuid.UUID) (model.NoteItem, error) {
	f.saveCalls++
	return model.NoteItem{Title: draft.Title}, nil
}

func (f *fakeDataSource) Delete(_ context.Context, ids []uuid.UUID) error {
	f.delIDs = append([]uuid.UUID(nil), ids...)
	return nil
}

func (f *fakeDataSource) SetPinned(_ context.Context, ids []uuid.UUID, pinned bool) error {
	f.pinIDs = append([]uuid.UUID(nil), ids...)
	f.pinValue = pinned
	return nil
}

func TestRouter_DispatchesByStorageTag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	local := &fakeDataSource{}
	remote := &fakeDataSource{}
	r := NewRouter()
	r.Register(model.StorageLocal, local)
	r.Register(model.StorageRemote, remote)

	if _, err := r.FetchNotes(ctx, model.SortByUpdatedAt, model.StorageLocal); err != nil {
		t.Fatalf("FetchNotes: %v", err)
	}
	if _, err := r.SaveNote(ctx, model.NoteDraft{Title: "x"}, nil, model.StorageLocal); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	id := uuid.Must(uuid.NewV4())
	if err := r.DeleteNotes(ctx, []uuid.UUID{id}, model.StorageLocal); err != nil {
		t.Fatalf("DeleteNotes: %v", err)
	}
	if err := r.SetPinned(ctx, []uuid.UUID{id}, true, model.StorageLocal); err != nil {
		t.Fatalf("SetPinned: %v", err)
	}

	if local.fetchCalls != 1 || local.saveCalls != 1 || len(local.delIDs) != 1 || !local.pinValue {
		t.Fatalf("local backend not hit as expected: %+v", local)
	}
	if remote.fetchCalls != 0 || remote.saveCalls != 0 || remote.delIDs != nil || remote.pinIDs != nil {
		t.Fatalf("remote backend must stay untouched: %+v", remote)
	}
}

func TestRouter_UnknownBackend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := NewRouter()
	r.Register(model.StorageLocal, &fakeDataSource{})

	_, err := r.FetchNotes(ctx, model.SortByUpdatedAt, model.StorageRemote)
	if !errors.Is(err, errs.ErrStorageUnavailable) {
		t.Fatalf("want ErrStorageUnavailable, got %v", err)
	}

	var unavailable *errs.StorageUnavailableError
	if !errors.As(err, &unavailable) || unavailable.Storage != "remote" {
		t.Fatalf("error must carry the backend tag, got %v", err)
	}
}
