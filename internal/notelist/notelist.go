// Package notelist builds the presentation model of the note list: search
// filtering, pinned/regular sectioning and per-row display values.
package notelist

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/notekeeper/internal/model"
)

// Preview placeholders shown instead of real content.
const (
	lockedPreview  = "Locked"
	emptyPreview   = "No content"
	absoluteLayout = "Jan 2, 2006 15:04"
	timeOnlyLayout = "15:04"
)

// SectionKind distinguishes the two fixed list sections.
type SectionKind int

const (
	SectionPinned SectionKind = iota
	SectionRegular
)

// Title returns the section header label.
func (k SectionKind) Title() string {
	if k == SectionPinned {
		return "Pinned"
	}
	return "Other Notes"
}

// Row is one note rendered for the list.
type Row struct {
	ID           uuid.UUID
	Title        string // never empty, falls back to the untitled placeholder
	Preview      string // one line of content, or a placeholder
	ShowsPreview bool
	CreatedText  string
	UpdatedText  string
	Pinned       bool
	Locked       bool
}

// Section is an ordered group of rows. A collapsed section keeps its rows in
// the model; the view renders them with zero height.
type Section struct {
	Kind        SectionKind
	Title       string
	Rows        []Row
	Collapsed   bool
	ShowsHeader bool
}

// State is the complete list presentation model.
type State struct {
	Sections []Section
	Empty    bool // true iff both sections are empty after filtering
}

// Query carries everything the projection depends on, so building the state
// is a pure function of its inputs.
type Query struct {
	Sort            model.SortOption
	Search          string
	ShowPreview     bool
	RelativeDates   bool
	CollapsePinned  bool
	CollapseRegular bool
	Now             time.Time // zero means time.Now()
}

// Build produces the list state for a note set. Filtering runs before
// sectioning; each section is ordered per the sort option. The pinned
// section always comes first, empty sections are omitted, and the regular
// section shows a header only when the pinned section is present.
func Build(notes []model.NoteItem, q Query) State {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	filtered := filter(notes, q.Search)
	model.SortNotes(filtered, q.Sort)

	var pinned, regular []Row
	for _, n := range filtered {
		row := makeRow(n, q, now)
		if n.Pinned {
			pinned = append(pinned, row)
		} else {
			regular = append(regular, row)
		}
	}

	var sections []Section
	if len(pinned) > 0 {
		sections = append(sections, Section{
			Kind:        SectionPinned,
			Title:       SectionPinned.Title(),
			Rows:        pinned,
			Collapsed:   q.CollapsePinned,
			ShowsHeader: true,
		})
	}
	if len(regular) > 0 {
		sections = append(sections, Section{
			Kind:        SectionRegular,
			Title:       SectionRegular.Title(),
			Rows:        regular,
			Collapsed:   q.CollapseRegular,
			ShowsHeader: len(pinned) > 0,
		})
	}

	return State{Sections: sections, Empty: len(sections) == 0}
}

// filter keeps notes whose title or content contains the query,
// case-insensitively. An empty query matches everything.
func filter(notes []model.NoteItem, search string) []model.NoteItem {
	query := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.NoteItem, 0, len(notes))
	for _, n := range notes {
		if query == "" ||
			strings.Contains(strings.ToLower(n.Title), query) ||
			strings.Contains(strings.ToLower(n.Content), query) {
			out = append(out, n)
		}
	}
	return out
}

func makeRow(n model.NoteItem, q Query, now time.Time) Row {
	return Row{
		ID:           n.ID,
		Title:        n.DisplayTitle(),
		Preview:      previewText(n),
		ShowsPreview: q.ShowPreview,
		CreatedText:  "Created " + formatDate(n.CreatedAt, now, q.RelativeDates),
		UpdatedText:  "Updated " + formatDate(n.UpdatedAt, now, q.RelativeDates),
		Pinned:       n.Pinned,
		Locked:       n.Locked,
	}
}

// previewText collapses the content to a single whitespace-normalized line.
// Locked notes never leak content into the list.
func previewText(n model.NoteItem) string {
	if n.Locked {
		return lockedPreview
	}
	normalized := strings.Join(strings.Fields(n.Content), " ")
	if normalized == "" {
		return emptyPreview
	}
	return normalized
}

// formatDate renders a timestamp absolutely, or with a relative day label
// for the three most recent days when relative dates are enabled.
func formatDate(t, now time.Time, relative bool) string {
	if !relative {
		return t.Local().Format(absoluteLayout)
	}
	label, ok := relativeDayLabel(t, now)
	if !ok {
		return t.Local().Format(absoluteLayout)
	}
	return label + " " + t.Local().Format(timeOnlyLayout)
}

// relativeDayLabel maps a timestamp to "Today", "Yesterday" or "2 days ago".
// Anything older reports ok == false.
func relativeDayLabel(t, now time.Time) (string, bool) {
	day := startOfDay(t.Local())
	today := startOfDay(now.Local())

	// Round absorbs the off-by-an-hour drift of DST transitions.
	switch int(today.Sub(day).Round(24*time.Hour) / (24 * time.Hour)) {
	case 0:
		return "Today", true
	case 1:
		return "Yesterday", true
	case 2:
		return "2 days ago", true
	}
	return "", false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
