package hooks

import (
	"context"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
)

var _ directory.Repository = (*Repository)(nil)

// Repository runs hooks around the writes of another repository. A pre hook
// in abort mode can veto the write; post hooks never fail it.
type Repository struct {
	inner  directory.Repository
	runner *Runner
}

// Wrap returns inner with hooks from runner. A nil runner returns inner.
func Wrap(inner directory.Repository, runner *Runner) directory.Repository {
	if runner == nil {
		return inner
	}
	return &Repository{inner: inner, runner: runner}
}

func (r *Repository) ListIDsAndNames(ctx context.Context) ([]string, []string, error) {
	return r.inner.ListIDsAndNames(ctx)
}

func (r *Repository) CreateRecord(ctx context.Context, rec resident.Resident) (string, error) {
	env := map[string]string{"BARANGAY_RESIDENT_NAME": rec.DisplayName()}
	if err := r.runner.Run(ctx, PreCreate, env); err != nil {
		return "", err
	}

	id, err := r.inner.CreateRecord(ctx, rec)
	if err != nil {
		return "", err
	}

	env["BARANGAY_RESIDENT_ID"] = id
	r.after(ctx, PostCreate, env)
	return id, nil
}

func (r *Repository) ArchiveRecord(ctx context.Context, id string) error {
	env := map[string]string{"BARANGAY_RESIDENT_ID": id}
	if err := r.runner.Run(ctx, PreArchive, env); err != nil {
		return err
	}
	if err := r.inner.ArchiveRecord(ctx, id); err != nil {
		return err
	}
	r.after(ctx, PostArchive, env)
	return nil
}

func (r *Repository) UpdateRecord(ctx context.Context, id string, rec resident.Resident) error {
	env := map[string]string{
		"BARANGAY_RESIDENT_ID":   id,
		"BARANGAY_RESIDENT_NAME": rec.DisplayName(),
	}
	if err := r.runner.Run(ctx, PreUpdate, env); err != nil {
		return err
	}
	if err := r.inner.UpdateRecord(ctx, id, rec); err != nil {
		return err
	}
	r.after(ctx, PostUpdate, env)
	return nil
}

// after runs a post point. Post failures are reported by the runner and
// never returned.
func (r *Repository) after(ctx context.Context, point string, env map[string]string) {
	_ = r.runner.Run(ctx, point, env)
}
