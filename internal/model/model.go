// Package model defines domain entities shared by repositories, services and projections.
package model

import (
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// untitledPlaceholder labels notes whose title is empty or whitespace.
const untitledPlaceholder = "Untitled Note"

// NoteItem is a single persisted note.
type NoteItem struct {
	ID          uuid.UUID     // assigned on first save, never reused
	Title       string        // may be empty
	Content     string        // plain-text projection used for search/preview
	RichContent []byte        // serialized rich-text document; canonical when non-nil
	Locked      bool          // gates editor content visibility, not list queries
	Pinned      bool          // section membership in the list projection
	CreatedAt   time.Time     // set once at creation
	UpdatedAt   time.Time     // refreshed on every save; CreatedAt <= UpdatedAt
	Storage     StorageOption // fixed at creation, notes never move between backends
}

// DisplayTitle returns the trimmed title, or a placeholder when that is empty.
func (n NoteItem) DisplayTitle() string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	return untitledPlaceholder
}

// NoteDraft is an unsaved candidate note payload. It has no identity until persisted.
type NoteDraft struct {
	Title       string
	Content     string
	RichContent []byte
	Locked      bool
	Pinned      bool
}

// SortNotes orders notes in place per the selected option:
//
//   - SortByCreatedAt: created desc, then updated desc
//   - SortByUpdatedAt: updated desc, then created desc
//   - SortAlphabetical: title asc (locale-aware, case-insensitive), then updated desc
//
// The sort is stable, so notes equal under both keys keep their input order.
func SortNotes(notes []NoteItem, opt SortOption) {
	sort.SliceStable(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		switch opt {
		case SortByCreatedAt:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.UpdatedAt.After(b.UpdatedAt)
		case SortAlphabetical:
			if c := compareTitles(a.Title, b.Title); c != 0 {
				return c < 0
			}
			return a.UpdatedAt.After(b.UpdatedAt)
		default: // SortByUpdatedAt
			if !a.UpdatedAt.Equal(b.UpdatedAt) {
				return a.UpdatedAt.After(b.UpdatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}
