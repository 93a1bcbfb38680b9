package directory

import (
	"context"

	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository for testing.
//
// Example usage:
//
//	repo := new(MockRepository)
//	repo.On("ListIDsAndNames", mock.Anything).Return([]string{"id1"}, []string{"Cruz, Ana A."}, nil)
//	repo.On("ArchiveRecord", mock.Anything, "id1").Return(nil)
type MockRepository struct {
	mock.Mock
}

// ListIDsAndNames returns the mocked roster.
func (m *MockRepository) ListIDsAndNames(ctx context.Context) ([]string, []string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	names, _ := args.Get(1).([]string)
	return ids, names, args.Error(2)
}

// CreateRecord returns the mocked id.
func (m *MockRepository) CreateRecord(ctx context.Context, r resident.Resident) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

// UpdateRecord returns the mocked error.
func (m *MockRepository) UpdateRecord(ctx context.Context, id string, r resident.Resident) error {
	args := m.Called(ctx, id, r)
	return args.Error(0)
}

// ArchiveRecord returns the mocked error.
func (m *MockRepository) ArchiveRecord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecordLookup is a mock implementation of RecordLookup for testing.
type MockRecordLookup struct {
	mock.Mock
}

// GetRecord returns the mocked record.
func (m *MockRecordLookup) GetRecord(ctx context.Context, id string) (resident.Resident, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(resident.Resident)
	return rec, args.Error(1)
}
