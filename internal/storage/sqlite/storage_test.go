package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "residents.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func sample(first, middle, last string) resident.Resident {
	return resident.Resident{
		FirstName:        first,
		MiddleName:       middle,
		LastName:         last,
		BirthDate:        time.Date(1988, time.June, 12, 0, 0, 0, 0, time.UTC),
		YearOfResidency:  2010,
		MonthOfResidency: 3,
		Address1:         "12 Mabini St.",
		Address2:         "Purok 4",
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "residents.db")

	s, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, dbPath)
}

func TestCreateAndGetRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	want := sample("Ana", "Reyes", "Cruz")

	id, err := s.CreateRecord(ctx, want)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.GetRecord(ctx, id)
	require.NoError(t, err)
	want.ID = id
	assert.Equal(t, want, got)
}

func TestCreateRecordRejectsInvalidResident(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateRecord(context.Background(), resident.Resident{FirstName: "Ana"})

	require.ErrorIs(t, err, resident.ErrInvalidResident)
}

func TestListIDsAndNamesIsSortedAndAligned(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ids := map[string]string{}
	for _, r := range []resident.Resident{
		sample("Jose", "", "santos"),
		sample("Ana", "Reyes", "Cruz"),
		sample("Ben", "Lim", "abad"),
	} {
		id, err := s.CreateRecord(ctx, r)
		require.NoError(t, err)
		ids[r.DisplayName()] = id
	}

	gotIDs, gotNames, err := s.ListIDsAndNames(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"abad, Ben L.", "Cruz, Ana R.", "santos, Jose"}, gotNames)
	require.Len(t, gotIDs, 3)
	for i, name := range gotNames {
		assert.Equal(t, ids[name], gotIDs[i])
	}
}

func TestListIDsAndNamesKeepsInsertionOrderForEqualNames(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "residents.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	ctx := context.Background()

	var created []string
	for i := 0; i < 6; i++ {
		id, err := s.CreateRecord(ctx, sample("Ana", "", "Cruz"))
		require.NoError(t, err)
		created = append(created, id)
	}
	ids, _, err := s.ListIDsAndNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, ids)
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	ids, _, err = s.ListIDsAndNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, ids, "reload matches in-session insertion order")
}

func TestListIDsAndNamesEmpty(t *testing.T) {
	s := newTestStore(t)

	ids, names, err := s.ListIDsAndNames(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Empty(t, names)
}

func TestArchiveRecordHidesResident(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	keep, err := s.CreateRecord(ctx, sample("Ana", "", "Cruz"))
	require.NoError(t, err)
	gone, err := s.CreateRecord(ctx, sample("Ben", "", "Abad"))
	require.NoError(t, err)

	require.NoError(t, s.ArchiveRecord(ctx, gone))

	ids, _, err := s.ListIDsAndNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, ids)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	archived, err := s.GetRecord(ctx, gone)
	require.NoError(t, err, "archived rows stay readable")
	assert.True(t, archived.Archived)
}

func TestArchiveRecordTwice(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id, err := s.CreateRecord(ctx, sample("Ana", "", "Cruz"))
	require.NoError(t, err)
	require.NoError(t, s.ArchiveRecord(ctx, id))

	err = s.ArchiveRecord(ctx, id)

	require.ErrorIs(t, err, ErrResidentAlreadyArchived)
}

func TestArchiveRecordUnknownID(t *testing.T) {
	s := newTestStore(t)

	err := s.ArchiveRecord(context.Background(), "6f1c5b4e-8a0e-4d4c-9a36-2f1d1d7f0c11")

	require.ErrorIs(t, err, directory.ErrNotFound)
}

func TestArchiveRecordInvalidID(t *testing.T) {
	s := newTestStore(t)

	err := s.ArchiveRecord(context.Background(), "not-a-uuid")

	require.ErrorIs(t, err, ErrInvalidResidentID)
}

func TestUpdateRecordOverwritesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id, err := s.CreateRecord(ctx, sample("Ana", "Reyes", "Cruz"))
	require.NoError(t, err)
	_, err = s.CreateRecord(ctx, sample("Ben", "", "Abad"))
	require.NoError(t, err)

	want := sample("Ana", "Reyes", "Zamora")
	want.Address1 = "7 Luna St."
	want.Address2 = ""
	require.NoError(t, s.UpdateRecord(ctx, id, want))

	got, err := s.GetRecord(ctx, id)
	require.NoError(t, err)
	want.ID = id
	assert.Equal(t, want, got)

	_, names, err := s.ListIDsAndNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Abad, Ben", "Zamora, Ana R."}, names)
}

func TestUpdateRecordErrors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	archived, err := s.CreateRecord(ctx, sample("Ana", "", "Cruz"))
	require.NoError(t, err)
	require.NoError(t, s.ArchiveRecord(ctx, archived))
	active, err := s.CreateRecord(ctx, sample("Ben", "", "Abad"))
	require.NoError(t, err)

	err = s.UpdateRecord(ctx, "6f1c5b4e-8a0e-4d4c-9a36-2f1d1d7f0c11", sample("Ana", "", "Cruz"))
	require.ErrorIs(t, err, directory.ErrNotFound)

	err = s.UpdateRecord(ctx, "42", sample("Ana", "", "Cruz"))
	require.ErrorIs(t, err, directory.ErrNotFound)
	require.ErrorIs(t, err, ErrInvalidResidentID)

	err = s.UpdateRecord(ctx, archived, sample("Ana", "", "Santos"))
	require.ErrorIs(t, err, directory.ErrNotFound)
	got, err := s.GetRecord(ctx, archived)
	require.NoError(t, err)
	assert.Equal(t, "Cruz", got.LastName, "archived rows are not rewritten")

	err = s.UpdateRecord(ctx, active, resident.Resident{FirstName: "Ben"})
	require.ErrorIs(t, err, resident.ErrInvalidResident)
}

func TestGetRecordNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRecord(context.Background(), "6f1c5b4e-8a0e-4d4c-9a36-2f1d1d7f0c11")
	require.ErrorIs(t, err, directory.ErrNotFound)

	_, err = s.GetRecord(context.Background(), "42")
	require.ErrorIs(t, err, directory.ErrNotFound)
	require.ErrorIs(t, err, ErrInvalidResidentID)
}

func TestStoreReopensExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "residents.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	id, err := s.CreateRecord(context.Background(), sample("Ana", "", "Cruz"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetRecord(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Cruz, Ana", got.DisplayName())
}

func TestControllerOverStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for _, last := range []string{"Cruz", "Abad", "Santos"} {
		_, err := s.CreateRecord(ctx, sample("Ana", "", last))
		require.NoError(t, err)
	}

	c, err := directory.NewController(ctx, s, s)
	require.NoError(t, err)

	id, err := c.Insert(ctx, sample("Ben", "", "Bautista"))
	require.NoError(t, err)
	snap := c.Snapshot()
	assert.Equal(t, 4, snap.Total)
	assert.Equal(t, directory.Selection{Slot: 1, Absolute: 1}, snap.Selection)
	require.NotNil(t, snap.Record)
	assert.Equal(t, id, snap.Record.ID)

	require.NoError(t, c.Update(ctx, id, sample("Ben", "", "Villanueva")))
	snap = c.Snapshot()
	assert.Equal(t, directory.Selection{Slot: 3, Absolute: 3}, snap.Selection)
	require.NotNil(t, snap.Record)
	assert.Equal(t, "Villanueva", snap.Record.LastName)

	require.NoError(t, c.Delete(ctx))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, c.Snapshot().Total)
}
