// Command notekeeper is a small CLI over the note store: list, create,
// edit, pin, lock and delete notes kept in a local SQLite database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/app"
	"github.com/and161185/notekeeper/internal/auth"
	"github.com/and161185/notekeeper/internal/editor"
	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/notelist"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `notekeeper
Usage:
  notekeeper [-db file] [-prefs file] [-storage local|remote] [-yes] <cmd> [args]

Commands:
  version
  list      [-sort createdAt|updatedAt|alphabetical] [-q query] [-preview] [-relative]
  add       -title <text> [-content <text> | -file <path|->] [-pin] [-lock]
  edit      -id <uuid> [-title <text>] [-content <text> | -file <path|->]
  rm        <uuid> [<uuid> ...]
  pin       <uuid> [<uuid> ...]
  unpin     <uuid> [<uuid> ...]
  lock      -id <uuid>
  unlock    -id <uuid>
  settings  [-sort <option>] [-preview on|off] [-relative on|off]
`)
	os.Exit(2)
}

func fail(err error) {
	var unavailable *errs.StorageUnavailableError
	if errors.As(err, &unavailable) {
		fmt.Fprintln(os.Stderr, unavailable.Error())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "notekeeper.db"
	}
	return filepath.Join(dir, "notekeeper", "notes.db")
}

// main dispatches subcommands over a container built from the global flags.
func main() {
	dbPath := flag.String("db", defaultDBPath(), "local database file")
	prefsPath := flag.String("prefs", "", "settings file (default: user config dir)")
	storageFlag := flag.String("storage", string(model.StorageLocal), "backend for note operations")
	yes := flag.Bool("yes", false, "skip confirmation prompts (lock/unlock)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewProduction()
		if err != nil {
			fail(err)
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}

	storage, ok := model.ParseStorageOption(*storageFlag)
	if !ok {
		fail(fmt.Errorf("unknown storage %q", *storageFlag))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o700); err != nil {
		fail(err)
	}

	gate := auth.Authenticator(&auth.TerminalGate{In: os.Stdin, Out: os.Stderr})
	if *yes {
		gate = auth.Allow()
	}

	container, err := app.New(ctx, app.Options{
		DBPath:        *dbPath,
		PrefsPath:     *prefsPath,
		Logger:        logger,
		Authenticator: gate,
	})
	if err != nil {
		fail(err)
	}
	defer func() { _ = container.Close() }()

	if err := run(ctx, container, storage, cmd, args); err != nil {
		fail(err)
	}
}

func run(ctx context.Context, c *app.Container, storage model.StorageOption, cmd string, args []string) error {
	switch cmd {

	case "version":
		fmt.Printf("notekeeper %s (%s)\n", version, buildDate)
		return nil

	case "list":
		return runList(ctx, c, storage, args)

	case "add":
		return runAdd(ctx, c, storage, args)

	case "edit":
		return runEdit(ctx, c, storage, args)

	case "rm":
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return c.Notes.DeleteNotes(ctx, ids, storage)

	case "pin", "unpin":
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return c.Notes.SetPinned(ctx, ids, cmd == "pin", storage)

	case "lock", "unlock":
		return runToggleLock(ctx, c, storage, cmd == "lock", args)

	case "settings":
		return runSettings(c, args)

	default:
		usage()
		return nil
	}
}

func runList(ctx context.Context, c *app.Container, storage model.StorageOption, args []string) error {
	settings := c.Prefs.Load()

	fs := flag.NewFlagSet("list", flag.ExitOnError)
	sortFlag := fs.String("sort", string(settings.SortOption), "sort order")
	query := fs.String("q", "", "search query")
	preview := fs.Bool("preview", settings.ShowPreview, "show content previews")
	relative := fs.Bool("relative", settings.RelativeDates, "relative dates for recent notes")
	_ = fs.Parse(args)

	notes, err := c.Notes.FetchNotes(ctx, model.ParseSortOption(*sortFlag), storage)
	if err != nil {
		return err
	}

	state := notelist.Build(notes, notelist.Query{
		Sort:          model.ParseSortOption(*sortFlag),
		Search:        *query,
		ShowPreview:   *preview,
		RelativeDates: *relative,
	})
	printState(os.Stdout, state)
	return nil
}

func printState(w io.Writer, state notelist.State) {
	if state.Empty {
		fmt.Fprintln(w, "no notes")
		return
	}
	for _, section := range state.Sections {
		if section.ShowsHeader {
			fmt.Fprintf(w, "%s (%d)\n", section.Title, len(section.Rows))
		}
		if section.Collapsed {
			continue
		}
		for _, row := range section.Rows {
			var markers []string
			if row.Pinned {
				markers = append(markers, "pinned")
			}
			if row.Locked {
				markers = append(markers, "locked")
			}
			suffix := ""
			if len(markers) > 0 {
				suffix = " [" + strings.Join(markers, ",") + "]"
			}
			fmt.Fprintf(w, "  %s  %s%s\n", row.ID, row.Title, suffix)
			if row.ShowsPreview {
				fmt.Fprintf(w, "      %s\n", row.Preview)
			}
			fmt.Fprintf(w, "      %s · %s\n", row.CreatedText, row.UpdatedText)
		}
	}
}

func runAdd(ctx context.Context, c *app.Container, storage model.StorageOption, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	file := fs.String("file", "", "read content from file ('-' for stdin)")
	pin := fs.Bool("pin", false, "pin the note")
	lock := fs.Bool("lock", false, "lock the note")
	_ = fs.Parse(args)

	body, err := contentFrom(*content, *file)
	if err != nil {
		return err
	}

	session := editor.NewSession(c.Notes, nil)
	if err := session.SelectStorage(storage); err != nil {
		return err
	}
	session.SetPinned(*pin)
	session.SetLocked(*lock)

	saved, err := session.Persist(ctx, *title, body, nil)
	if err != nil {
		return err
	}
	fmt.Println(saved.ID)
	return nil
}

func runEdit(ctx context.Context, c *app.Container, storage model.StorageOption, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	idFlag := fs.String("id", "", "note id")
	title := fs.String("title", "", "new title (empty keeps current)")
	content := fs.String("content", "", "new content")
	file := fs.String("file", "", "read content from file ('-' for stdin)")
	_ = fs.Parse(args)

	note, err := findNote(ctx, c, storage, *idFlag)
	if err != nil {
		return err
	}

	session := editor.NewSession(c.Notes, &note)
	if note.Locked {
		res := session.Unlock(ctx, c.Authenticator, "Authenticate to edit the locked note.")
		switch res.Outcome {
		case auth.Cancelled:
			return nil
		case auth.Denied:
			return errors.New(res.Message)
		}
	}

	newTitle := note.Title
	if *title != "" {
		newTitle = *title
	}
	newContent := note.Content
	if *content != "" || *file != "" {
		if newContent, err = contentFrom(*content, *file); err != nil {
			return err
		}
	}

	session.CaptureBaseline(note.Title, note.RichContent)
	if !session.Dirty(newTitle, note.RichContent) && newContent == note.Content {
		fmt.Fprintln(os.Stderr, "nothing to save")
		return nil
	}

	saved, err := session.Persist(ctx, newTitle, newContent, note.RichContent)
	if err != nil {
		return err
	}
	fmt.Println("saved", saved.ID)
	return nil
}

func runToggleLock(ctx context.Context, c *app.Container, storage model.StorageOption, lock bool, args []string) error {
	fs := flag.NewFlagSet("lock", flag.ExitOnError)
	idFlag := fs.String("id", "", "note id")
	_ = fs.Parse(args)

	note, err := findNote(ctx, c, storage, *idFlag)
	if err != nil {
		return err
	}
	if note.Locked == lock {
		return nil
	}

	reason := "Authenticate to lock the note."
	if !lock {
		reason = "Authenticate to unlock the note."
	}

	session := editor.NewSession(c.Notes, &note)
	res := session.ToggleLock(ctx, c.Authenticator, reason)
	switch res.Outcome {
	case auth.Cancelled:
		return nil
	case auth.Denied:
		return errors.New(res.Message)
	}

	_, err = session.Persist(ctx, note.Title, note.Content, note.RichContent)
	return err
}

func runSettings(c *app.Container, args []string) error {
	settings := c.Prefs.Load()

	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	sortFlag := fs.String("sort", "", "default sort order")
	preview := fs.String("preview", "", "show content previews (on|off)")
	relative := fs.String("relative", "", "relative dates (on|off)")
	_ = fs.Parse(args)

	if *sortFlag != "" {
		settings.SortOption = model.ParseSortOption(*sortFlag)
	}
	if v, ok := parseToggle(*preview); ok {
		settings.ShowPreview = v
	}
	if v, ok := parseToggle(*relative); ok {
		settings.RelativeDates = v
	}

	if err := c.Prefs.Save(settings); err != nil {
		return err
	}
	fmt.Printf("sort=%s preview=%v relative=%v\n", settings.SortOption, settings.ShowPreview, settings.RelativeDates)
	return nil
}

// ---- helpers ----

func parseToggle(v string) (value, ok bool) {
	switch strings.ToLower(v) {
	case "on", "true", "yes":
		return true, true
	case "off", "false", "no":
		return false, true
	}
	return false, false
}

func parseIDs(args []string) ([]uuid.UUID, error) {
	if len(args) == 0 {
		return nil, errors.New("need at least one note id")
	}
	ids := make([]uuid.UUID, 0, len(args))
	for _, a := range args {
		id, err := uuid.FromString(a)
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", a, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func findNote(ctx context.Context, c *app.Container, storage model.StorageOption, rawID string) (model.NoteItem, error) {
	id, err := uuid.FromString(rawID)
	if err != nil {
		return model.NoteItem{}, fmt.Errorf("bad id %q: %w", rawID, err)
	}
	notes, err := c.Notes.FetchNotes(ctx, model.DefaultSortOption, storage)
	if err != nil {
		return model.NoteItem{}, err
	}
	for _, n := range notes {
		if n.ID == id {
			return n, nil
		}
	}
	return model.NoteItem{}, errs.ErrNotFound
}

func contentFrom(inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	if file == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	return string(b), err
}
