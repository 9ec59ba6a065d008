package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/repository"
)

type fakeRepo struct {
	fetchInSort    model.SortOption
	fetchInStorage model.StorageOption
	fetchOut       []model.NoteItem
	fetchErr       error

	saveInDraft   model.NoteDraft
	saveInID      *uuid.UUID
	saveInStorage model.StorageOption
	saveOut       model.NoteItem
	saveErr       error

	delInIDs     []uuid.UUID
	delInStorage model.StorageOption
	delErr       error

	pinInIDs     []uuid.UUID
	pinInValue   bool
	pinInStorage model.StorageOption
	pinErr       error
}

var _ repository.NotesRepository = (*fakeRepo)(nil)

func (f *fakeRepo) FetchNotes(_ context.Context, sortedBy model.SortOption, storage model.StorageOption) ([]model.NoteItem, error) {
	f.fetchInSort, f.fetchInStorage = sortedBy, storage
	return append([]model.NoteItem(nil), f.fetchOut...), f.fetchErr
}

func (f *fakeRepo) SaveNote(_ context.Context, draft model.NoteDraft, existingID *uuid.UUID, storage model.StorageOption) (model.NoteItem, error) {
	f.saveInDraft, f.saveInID, f.saveInStorage = draft, existingID, storage
	return f.saveOut, f.saveErr
}

func (f *fakeRepo) DeleteNotes(_ context.Context, ids []uuid.UUID, storage model.StorageOption) error {
	f.delInIDs, f.delInStorage = append([]uuid.UUID(nil), ids...), storage
	return f.delErr
}

func (f *fakeRepo) SetPinned(_ context.Context, ids []uuid.UUID, pinned bool, storage model.StorageOption) error {
	f.pinInIDs, f.pinInValue, f.pinInStorage = append([]uuid.UUID(nil), ids...), pinned, storage
	return f.pinErr
}

func TestNotesService_FetchNotes_Delegates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeRepo{fetchOut: []model.NoteItem{{Title: "a"}, {Title: "b"}}}
	s := NewNotesService(repo)

	out, err := s.FetchNotes(ctx, model.SortAlphabetical, model.StorageLocal)
	if err != nil {
		t.Fatalf("FetchNotes: %v", err)
	}
	if len(out) != 2 || repo.fetchInSort != model.SortAlphabetical || repo.fetchInStorage != model.StorageLocal {
		t.Fatalf("delegate mismatch: out=%v repo=%+v", out, repo)
	}
}

func TestNotesService_SaveNote_Delegates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	repo := &fakeRepo{saveOut: model.NoteItem{ID: id, Title: "saved"}}
	s := NewNotesService(repo)

	draft := model.NoteDraft{Title: "saved", Pinned: true}
	got, err := s.SaveNote(ctx, draft, &id, model.StorageLocal)
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if got.ID != id || repo.saveInDraft.Title != "saved" || repo.saveInID == nil || *repo.saveInID != id {
		t.Fatalf("delegate mismatch: got=%+v repo=%+v", got, repo)
	}
}

func TestNotesService_DeleteAndPin_Delegate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeRepo{}
	s := NewNotesService(repo)

	ids := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}
	if err := s.DeleteNotes(ctx, ids, model.StorageLocal); err != nil {
		t.Fatalf("DeleteNotes: %v", err)
	}
	if len(repo.delInIDs) != 2 || repo.delInStorage != model.StorageLocal {
		t.Fatalf("delete args not forwarded: %+v", repo)
	}

	if err := s.SetPinned(ctx, ids[:1], true, model.StorageRemote); err != nil {
		t.Fatalf("SetPinned: %v", err)
	}
	if len(repo.pinInIDs) != 1 || !repo.pinInValue || repo.pinInStorage != model.StorageRemote {
		t.Fatalf("pin args not forwarded: %+v", repo)
	}
}

func TestNotesService_RepoErrorsPropagate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := &fakeRepo{
		fetchErr: errors.New("boom-fetch"),
		saveErr:  errors.New("boom-save"),
		delErr:   errors.New("boom-del"),
		pinErr:   errors.New("boom-pin"),
	}
	s := NewNotesService(repo)
	id := uuid.Must(uuid.NewV4())

	if _, err := s.FetchNotes(ctx, model.SortByUpdatedAt, model.StorageLocal); err == nil {
		t.Fatalf("want repo error propagate (fetch)")
	}
	if _, err := s.SaveNote(ctx, model.NoteDraft{}, nil, model.StorageLocal); err == nil {
		t.Fatalf("want repo error propagate (save)")
	}
	if err := s.DeleteNotes(ctx, []uuid.UUID{id}, model.StorageLocal); err == nil {
		t.Fatalf("want repo error propagate (delete)")
	}
	if err := s.SetPinned(ctx, []uuid.UUID{id}, false, model.StorageLocal); err == nil {
		t.Fatalf("want repo error propagate (pin)")
	}
}
