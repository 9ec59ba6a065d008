package model

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StorageOption identifies the backend a note lives in.
type StorageOption string

const (
	StorageLocal  StorageOption = "local"
	StorageRemote StorageOption = "remote"
)

// StorageOptions lists all known backends in presentation order.
func StorageOptions() []StorageOption {
	return []StorageOption{StorageLocal, StorageRemote}
}

// Available reports whether the backend can serve requests right now.
// The remote backend is a placeholder and always unavailable.
func (s StorageOption) Available() bool {
	return s == StorageLocal
}

// ParseStorageOption maps a stored string to a backend tag.
func ParseStorageOption(raw string) (StorageOption, bool) {
	switch StorageOption(raw) {
	case StorageLocal:
		return StorageLocal, true
	case StorageRemote:
		return StorageRemote, true
	}
	return "", false
}

// SortOption selects the ordering of a fetched note list.
type SortOption string

const (
	SortByCreatedAt  SortOption = "createdAt"
	SortByUpdatedAt  SortOption = "updatedAt"
	SortAlphabetical SortOption = "alphabetical"
)

// DefaultSortOption is used whenever no valid preference is stored.
const DefaultSortOption = SortByUpdatedAt

// SortOptions lists all sort orders in presentation order.
func SortOptions() []SortOption {
	return []SortOption{SortByCreatedAt, SortByUpdatedAt, SortAlphabetical}
}

// ParseSortOption maps a stored string to a sort order, falling back to the
// default for unknown values.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortByCreatedAt, SortByUpdatedAt, SortAlphabetical:
		return SortOption(raw)
	}
	return DefaultSortOption
}

var (
	titleCollatorOnce sync.Once
	titleCollator     *collate.Collator
	titleCollatorMu   sync.Mutex
)

// compareTitles performs a locale-aware, case-insensitive comparison.
// The collator is not safe for concurrent use, hence the mutex.
func compareTitles(a, b string) int {
	titleCollatorOnce.Do(func() {
		titleCollator = collate.New(language.Und, collate.IgnoreCase)
	})
	titleCollatorMu.Lock()
	defer titleCollatorMu.Unlock()
	return titleCollator.CompareString(a, b)
}
