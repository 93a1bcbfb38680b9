package main

import (
	"context"
	"errors"
	"testing"

	"github.com/cristianoliveira/barangay-directory/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	n   int
	err error
}

func (f fakeCounter) Count(context.Context) (int, error) {
	return f.n, f.err
}

func TestVersionCmd(t *testing.T) {
	origVersion := version.Version
	origCommit := version.Commit
	defer func() {
		version.Version = origVersion
		version.Commit = origCommit
	}()
	version.Version = "1.2.0"
	version.Commit = "abc1234"

	tests := []struct {
		name     string
		client   fakeCounter
		expected string
	}{
		{
			name:     "with resident count",
			client:   fakeCounter{n: 85},
			expected: "barangay 1.2.0+abc1234 (85 residents)\n",
		},
		{
			name:     "store unavailable",
			client:   fakeCounter{err: errors.New("no db")},
			expected: "barangay 1.2.0+abc1234\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewVersionCmd(tt.client))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestNewVersionCmdPanicsWhenClientIsNil(t *testing.T) {
	assert.PanicsWithValue(t, "NewVersionCmd: client dependency cannot be nil", func() {
		NewVersionCmd(nil)
	})
}
