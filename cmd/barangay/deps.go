package main

import (
	"context"
	"sync"

	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/dedup"
	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/hooks"
	"github.com/cristianoliveira/barangay-directory/internal/logging"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/search"
	"github.com/cristianoliveira/barangay-directory/internal/storage"
)

// controllerOpener builds a directory controller over the configured store.
type controllerOpener interface {
	Controller(ctx context.Context, opts ...directory.Option) (*directory.Controller, error)
}

// directoryClient opens the store on first use so commands that never touch
// it (help, version without a database) do not create one.
type directoryClient struct {
	open  func() (storage.Storage, error)
	once  sync.Once
	store storage.Storage
	err   error

	hookWarn func(msg string)
}

func newDirectoryClient(open func() (storage.Storage, error)) *directoryClient {
	return &directoryClient{open: open}
}

func (c *directoryClient) Store() (storage.Storage, error) {
	c.once.Do(func() {
		c.store, c.err = c.open()
	})
	return c.store, c.err
}

// WarnHooksWith routes hook failures in warn mode to fn instead of stderr.
func (c *directoryClient) WarnHooksWith(fn func(msg string)) {
	c.hookWarn = fn
}

// Controller loads the roster and returns a controller using the configured
// search mode. Writes go through the configured hooks. Options passed by the
// caller are applied last.
func (c *directoryClient) Controller(ctx context.Context, opts ...directory.Option) (*directory.Controller, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}
	base := []directory.Option{
		directory.WithProvider(search.NewProvider(config.Get("search_mode", search.ModeAny))),
		directory.WithLogger(logging.Component("directory")),
	}
	repo := hooks.Wrap(store, hooks.FromConfig(hooks.WithWarn(c.hookWarn)))
	return directory.NewController(ctx, repo, store, append(base, opts...)...)
}

// DuplicateIndex indexes the stored residents for duplicate checks.
func (c *directoryClient) DuplicateIndex(ctx context.Context, criteria dedup.Criteria) (*dedup.Index, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}
	return dedup.Build(ctx, criteria, store, store)
}

func (c *directoryClient) GetRecord(ctx context.Context, id string) (resident.Resident, error) {
	store, err := c.Store()
	if err != nil {
		return resident.Resident{}, err
	}
	return store.GetRecord(ctx, id)
}

func (c *directoryClient) Count(ctx context.Context) (int, error) {
	store, err := c.Store()
	if err != nil {
		return 0, err
	}
	return store.Count(ctx)
}

func (c *directoryClient) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// The store path comes from config, which the root command loads before
// any command runs.
var client = newDirectoryClient(func() (storage.Storage, error) {
	return storage.Open(storage.DBPath())
})

// commandContext returns the command's context, or Background when the
// command runs outside Execute (tests call RunE directly).
func commandContext(cmd interface{ Context() context.Context }) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
