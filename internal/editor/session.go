// Package editor tracks the state of a single note being edited: the
// creating/editing distinction, storage selection, lock gating and the
// snapshot used for pending-changes detection.
package editor

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/auth"
	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/service"
)

// ErrStorageFixed is returned when selecting a backend for a note that
// already exists; storage is immutable after creation.
var ErrStorageFixed = errors.New("storage cannot change after creation")

// snapshot is the baseline the dirty check compares against.
type snapshot struct {
	title   string
	storage model.StorageOption
	locked  bool
	pinned  bool
	content []byte // rich-content fingerprint; nil when empty
}

// Session is the editor state machine for one note. A session with no
// existing note is creating; one with an existing note is editing.
type Session struct {
	svc  service.NotesService
	note *model.NoteItem // nil while creating

	storage            model.StorageOption
	locked             bool
	pinned             bool
	unlockedForSession bool

	baseline    snapshot
	hasBaseline bool
}

// NewSession starts an editor session. Pass nil to create a new note.
func NewSession(svc service.NotesService, note *model.NoteItem) *Session {
	s := &Session{svc: svc, storage: model.StorageLocal}
	if note != nil {
		n := *note
		s.note = &n
		s.storage = n.Storage
		s.locked = n.Locked
		s.pinned = n.Pinned
	}
	return s
}

// Editing reports whether the session works on an already persisted note.
func (s *Session) Editing() bool { return s.note != nil }

// Storage returns the backend the note will be (or was) saved to.
func (s *Session) Storage() model.StorageOption { return s.storage }

// Locked returns the in-memory lock flag.
func (s *Session) Locked() bool { return s.locked }

// Pinned returns the in-memory pin flag.
func (s *Session) Pinned() bool { return s.pinned }

// SelectStorage chooses the backend for a new note. Existing notes keep
// their backend forever.
func (s *Session) SelectStorage(storage model.StorageOption) error {
	if s.Editing() {
		return ErrStorageFixed
	}
	s.storage = storage
	return nil
}

// SetLocked mutates the in-memory lock flag.
func (s *Session) SetLocked(locked bool) { s.locked = locked }

// SetPinned mutates the in-memory pin flag.
func (s *Session) SetPinned(pinned bool) { s.pinned = pinned }

// CanEditContent reports whether content mutation is allowed. A locked note
// stays read-only until it is unlocked for this session.
func (s *Session) CanEditContent() bool {
	return !s.locked || s.unlockedForSession
}

// Unlock asks the gate to reveal a locked note for the rest of the session.
// Cancellation leaves the session untouched; the transition happens at most
// once per granted result.
func (s *Session) Unlock(ctx context.Context, gate auth.Authenticator, reason string) auth.Result {
	res := gate.Authenticate(ctx, reason)
	if res.Outcome == auth.Granted {
		s.unlockedForSession = true
	}
	return res
}

// ToggleLock flips the lock flag behind the gate. On success the flag is
// flipped exactly once and content access follows the new state.
func (s *Session) ToggleLock(ctx context.Context, gate auth.Authenticator, reason string) auth.Result {
	res := gate.Authenticate(ctx, reason)
	if res.Outcome != auth.Granted {
		return res
	}
	s.locked = !s.locked
	s.unlockedForSession = !s.locked
	return res
}

// CaptureBaseline records the values the dirty check compares against.
func (s *Session) CaptureBaseline(title string, richContent []byte) {
	s.baseline = snapshot{
		title:   title,
		storage: s.storage,
		locked:  s.locked,
		pinned:  s.pinned,
		content: fingerprint(richContent),
	}
	s.hasBaseline = true
}

// Dirty reports whether anything differs from the captured baseline. While
// the note is locked and not unlocked for this session, content differences
// are ignored: editing is disabled at the boundary, so any divergence there
// is noise.
func (s *Session) Dirty(title string, richContent []byte) bool {
	if !s.hasBaseline {
		return false
	}
	if title != s.baseline.title {
		return true
	}
	if s.storage != s.baseline.storage {
		return true
	}
	if s.locked != s.baseline.locked {
		return true
	}
	if s.pinned != s.baseline.pinned {
		return true
	}
	if !s.CanEditContent() {
		return false
	}
	return !bytes.Equal(fingerprint(richContent), s.baseline.content)
}

// Persist submits the current state as a draft. It refuses unavailable
// backends before any I/O. On success while editing, the baseline is
// refreshed so the session stays open with no pending changes; while
// creating, the caller is expected to navigate away with the returned note.
func (s *Session) Persist(ctx context.Context, title, content string, richContent []byte) (model.NoteItem, error) {
	if !s.storage.Available() {
		return model.NoteItem{}, errs.StorageUnavailable(string(s.storage))
	}

	draft := model.NoteDraft{
		Title:       strings.TrimSpace(title),
		Content:     strings.TrimSpace(content),
		RichContent: richContent,
		Locked:      s.locked,
		Pinned:      s.pinned,
	}

	var existingID *uuid.UUID
	if s.note != nil {
		id := s.note.ID
		existingID = &id
	}

	saved, err := s.svc.SaveNote(ctx, draft, existingID, s.storage)
	if err != nil {
		return model.NoteItem{}, err
	}

	if s.Editing() {
		n := saved
		s.note = &n
		s.CaptureBaseline(title, richContent)
	}
	return saved, nil
}

// fingerprint normalizes the rich payload for comparison: empty and nil are
// the same thing, and the stored copy is detached from the caller's buffer.
func fingerprint(richContent []byte) []byte {
	if len(richContent) == 0 {
		return nil
	}
	return bytes.Clone(richContent)
}
