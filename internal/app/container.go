// Package app wires the application's components together once at startup.
// Everything is passed explicitly; there is no ambient global state.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/auth"
	"github.com/and161185/notekeeper/internal/model"
	"github.com/and161185/notekeeper/internal/prefs"
	"github.com/and161185/notekeeper/internal/repository"
	"github.com/and161185/notekeeper/internal/repository/remotestub"
	"github.com/and161185/notekeeper/internal/repository/sqlite"
	"github.com/and161185/notekeeper/internal/service"
)

// Options configure the container.
type Options struct {
	DBPath        string // local store location; ":memory:" for ephemeral
	PrefsPath     string // settings file; empty picks the default location
	Logger        *zap.Logger
	Authenticator auth.Authenticator // defaults to auth.Allow
}

// Container owns every long-lived component of the application.
type Container struct {
	Notes         service.NotesService
	Prefs         *prefs.Store
	Authenticator auth.Authenticator
	Logger        *zap.Logger

	local *sqlite.Store
}

// New opens the local store, registers the backends and builds the service
// stack on top.
func New(ctx context.Context, opts Options) (*Container, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	local, err := sqlite.Open(ctx, opts.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	router := repository.NewRouter()
	router.Register(model.StorageLocal, local)
	router.Register(model.StorageRemote, remotestub.New())

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	gate := opts.Authenticator
	if gate == nil {
		gate = auth.Allow()
	}

	return &Container{
		Notes:         service.NewNotesService(router),
		Prefs:         prefs.NewStore(prefsPath),
		Authenticator: gate,
		Logger:        log,
		local:         local,
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	return c.local.Close()
}
