package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/and161185/notekeeper/internal/model"
)

func TestStore_Load_MissingFile(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "settings.json"))
	got := s.Load()
	if got != Defaults() {
		t.Fatalf("missing file must yield defaults, got %+v", got)
	}
	if got.SortOption != model.SortByUpdatedAt || got.ShowPreview || got.RelativeDates {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestStore_Load_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := NewStore(path).Load(); got != Defaults() {
		t.Fatalf("corrupt file must yield defaults, got %+v", got)
	}
}

func TestStore_Load_UnknownSortFallsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	raw := `{"sort_option":"by_color","show_content_preview":true,"show_relative_dates":true}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	got := NewStore(path).Load()
	if got.SortOption != model.DefaultSortOption {
		t.Fatalf("unknown sort must fall back to default, got %v", got.SortOption)
	}
	if !got.ShowPreview || !got.RelativeDates {
		t.Fatalf("valid toggles must survive an invalid sort, got %+v", got)
	}
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "nested", "settings.json"))
	want := Settings{SortOption: model.SortAlphabetical, ShowPreview: true, RelativeDates: true}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := s.Load(); got != want {
		t.Fatalf("round trip: want %+v, got %+v", want, got)
	}
}
