package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, point, name, body string) {
	t.Helper()
	hookDir := filepath.Join(dir, point)
	require.NoError(t, os.MkdirAll(hookDir, 0o755))
	path := filepath.Join(hookDir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func newTestRunner(t *testing.T, mode string, warnings *[]string) (*Runner, string) {
	t.Helper()
	dir := t.TempDir()
	r := NewRunner(dir,
		WithFailureMode(mode),
		WithTimeout(5*time.Second),
		WithWarn(func(msg string) { *warnings = append(*warnings, msg) }),
	)
	return r, dir
}

func TestScriptsSortedAndExecutableOnly(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureWarn, &warnings)
	writeScript(t, dir, PreCreate, "20-second", "true")
	writeScript(t, dir, PreCreate, "10-first", "true")
	require.NoError(t, os.WriteFile(filepath.Join(dir, PreCreate, "README"), []byte("notes"), 0o644))

	scripts := r.Scripts(PreCreate)
	require.Len(t, scripts, 2)
	assert.Equal(t, "10-first", filepath.Base(scripts[0]))
	assert.Equal(t, "20-second", filepath.Base(scripts[1]))
	assert.Empty(t, r.Scripts(PostArchive))
}

func TestScriptsWithoutDirectory(t *testing.T) {
	assert.Empty(t, NewRunner("").Scripts(PreCreate))
	assert.NoError(t, NewRunner("").Run(context.Background(), PreCreate, nil))
}

func TestRunPassesEnvironment(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	out := filepath.Join(t.TempDir(), "env.txt")
	writeScript(t, dir, PostCreate, "record",
		`echo "$BARANGAY_HOOK_POINT|$BARANGAY_RESIDENT_ID|$BARANGAY_RESIDENT_NAME" > `+out)

	err := r.Run(context.Background(), PostCreate, map[string]string{
		"BARANGAY_RESIDENT_ID":   "id-1",
		"BARANGAY_RESIDENT_NAME": "Cruz, Ana",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "post-create|id-1|Cruz, Ana", strings.TrimSpace(string(data)))
}

func TestRunFailureModes(t *testing.T) {
	t.Run("abort stops at the first failure", func(t *testing.T) {
		var warnings []string
		r, dir := newTestRunner(t, FailureAbort, &warnings)
		marker := filepath.Join(t.TempDir(), "ran")
		writeScript(t, dir, PreArchive, "10-fail", "exit 3")
		writeScript(t, dir, PreArchive, "20-after", "touch "+marker)

		err := r.Run(context.Background(), PreArchive, nil)
		require.ErrorIs(t, err, ErrHookFailed)
		assert.Contains(t, err.Error(), "pre-archive/10-fail")
		assert.NoFileExists(t, marker)
		assert.Empty(t, warnings)
	})

	t.Run("abort at a post point runs every script and warns", func(t *testing.T) {
		var warnings []string
		r, dir := newTestRunner(t, FailureAbort, &warnings)
		marker := filepath.Join(t.TempDir(), "ran")
		writeScript(t, dir, PostArchive, "10-fail", "exit 3")
		writeScript(t, dir, PostArchive, "20-after", "touch "+marker)

		require.NoError(t, r.Run(context.Background(), PostArchive, nil))
		assert.FileExists(t, marker)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "hook post-archive/10-fail failed")
	})

	t.Run("warn continues and reports", func(t *testing.T) {
		var warnings []string
		r, dir := newTestRunner(t, FailureWarn, &warnings)
		marker := filepath.Join(t.TempDir(), "ran")
		writeScript(t, dir, PreArchive, "10-fail", "exit 3")
		writeScript(t, dir, PreArchive, "20-after", "touch "+marker)

		require.NoError(t, r.Run(context.Background(), PreArchive, nil))
		assert.FileExists(t, marker)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "hook pre-archive/10-fail failed")
	})

	t.Run("ignore stays silent", func(t *testing.T) {
		var warnings []string
		r, dir := newTestRunner(t, FailureIgnore, &warnings)
		writeScript(t, dir, PreArchive, "10-fail", "exit 3")

		require.NoError(t, r.Run(context.Background(), PreArchive, nil))
		assert.Empty(t, warnings)
	})
}

func TestRunTimeout(t *testing.T) {
	var warnings []string
	dir := t.TempDir()
	r := NewRunner(dir, WithFailureMode(FailureAbort), WithTimeout(100*time.Millisecond),
		WithWarn(func(msg string) { warnings = append(warnings, msg) }))
	writeScript(t, dir, PreCreate, "slow", "exec sleep 5")

	err := r.Run(context.Background(), PreCreate, nil)
	require.ErrorIs(t, err, ErrHookFailed)
	assert.Contains(t, err.Error(), "timed out")
}

func TestUnknownFailureModeKeepsWarn(t *testing.T) {
	r := NewRunner("", WithFailureMode("explode"))
	assert.Equal(t, FailureWarn, r.mode)
}

func testResident() resident.Resident {
	return resident.Resident{
		FirstName:       "Ana",
		LastName:        "Cruz",
		BirthDate:       time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC),
		YearOfResidency: resident.SinceBirth,
		Address1:        "1 Rizal Ave.",
	}
}

func TestRepositoryPreCreateAbortVetoesWrite(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	writeScript(t, dir, PreCreate, "deny", "exit 1")

	inner := &directory.MockRepository{}
	repo := Wrap(inner, r)

	_, err := repo.CreateRecord(context.Background(), testResident())
	require.ErrorIs(t, err, ErrHookFailed)
	inner.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
}

func TestRepositoryPostCreateSeesNewID(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	out := filepath.Join(t.TempDir(), "id.txt")
	writeScript(t, dir, PostCreate, "record", `echo "$BARANGAY_RESIDENT_ID" > `+out)
	writeScript(t, dir, PostCreate, "zz-fail", "exit 1")

	inner := &directory.MockRepository{}
	inner.On("CreateRecord", mock.Anything, mock.Anything).Return("id-42", nil)

	id, err := Wrap(inner, r).CreateRecord(context.Background(), testResident())
	require.NoError(t, err, "post hooks never fail the write")
	assert.Equal(t, "id-42", id)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "id-42", strings.TrimSpace(string(data)))
}

func TestRepositoryArchiveRunsHooks(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	out := filepath.Join(t.TempDir(), "archived.txt")
	writeScript(t, dir, PostArchive, "record", `echo "$BARANGAY_RESIDENT_ID" >> `+out)

	inner := &directory.MockRepository{}
	inner.On("ArchiveRecord", mock.Anything, "id-7").Return(nil)
	inner.On("ListIDsAndNames", mock.Anything).Return([]string{"id-7"}, []string{"Cruz, Ana"}, nil)
	repo := Wrap(inner, r)

	require.NoError(t, repo.ArchiveRecord(context.Background(), "id-7"))
	ids, _, err := repo.ListIDsAndNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"id-7"}, ids)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "id-7", strings.TrimSpace(string(data)))
}

func TestIsPost(t *testing.T) {
	assert.True(t, IsPost(PostCreate))
	assert.True(t, IsPost(PostUpdate))
	assert.True(t, IsPost(PostArchive))
	assert.False(t, IsPost(PreCreate))
	assert.False(t, IsPost(PreUpdate))
	assert.False(t, IsPost(PreArchive))
}

func TestRepositoryPostCreateFailureIsReported(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	writeScript(t, dir, PostCreate, "notify", "exit 2")

	inner := &directory.MockRepository{}
	inner.On("CreateRecord", mock.Anything, mock.Anything).Return("id-42", nil)

	_, err := Wrap(inner, r).CreateRecord(context.Background(), testResident())
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "hook post-create/notify failed")
}

func TestRepositoryPreUpdateAbortVetoesWrite(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	writeScript(t, dir, PreUpdate, "deny", "exit 1")

	inner := &directory.MockRepository{}

	err := Wrap(inner, r).UpdateRecord(context.Background(), "id-7", testResident())
	require.ErrorIs(t, err, ErrHookFailed)
	inner.AssertNotCalled(t, "UpdateRecord", mock.Anything, mock.Anything, mock.Anything)
}

func TestRepositoryUpdateRunsHooks(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	out := filepath.Join(t.TempDir(), "updated.txt")
	writeScript(t, dir, PostUpdate, "record", `echo "$BARANGAY_RESIDENT_ID $BARANGAY_RESIDENT_NAME" > `+out)

	inner := &directory.MockRepository{}
	inner.On("UpdateRecord", mock.Anything, "id-7", testResident()).Return(nil)

	require.NoError(t, Wrap(inner, r).UpdateRecord(context.Background(), "id-7", testResident()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "id-7 "+testResident().DisplayName(), strings.TrimSpace(string(data)))
	assert.Empty(t, warnings)
}

func TestRepositoryUpdateFailureSkipsPostHooks(t *testing.T) {
	var warnings []string
	r, dir := newTestRunner(t, FailureAbort, &warnings)
	marker := filepath.Join(t.TempDir(), "ran")
	writeScript(t, dir, PostUpdate, "record", "touch "+marker)

	inner := &directory.MockRepository{}
	inner.On("UpdateRecord", mock.Anything, "gone", mock.Anything).Return(directory.ErrNotFound)

	err := Wrap(inner, r).UpdateRecord(context.Background(), "gone", testResident())
	require.ErrorIs(t, err, directory.ErrNotFound)
	assert.NoFileExists(t, marker)
}

func TestWrapNilRunner(t *testing.T) {
	inner := &directory.MockRepository{}
	assert.Same(t, inner, Wrap(inner, nil))
}
