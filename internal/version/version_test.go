package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuild(t *testing.T, version, commit string, settings ...debug.BuildSetting) {
	t.Helper()
	origVersion, origCommit, origRead := Version, Commit, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, readBuildInfo = origVersion, origCommit, origRead
	})
	Version, Commit = version, commit
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		if settings == nil {
			return nil, false
		}
		return &debug.BuildInfo{Settings: settings}, true
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		settings []debug.BuildSetting
		expected string
	}{
		{
			name:     "ldflags commit",
			version:  "1.0.0",
			commit:   "abc1234",
			expected: "1.0.0+abc1234",
		},
		{
			name:     "no commit and no build info",
			version:  "development",
			commit:   "unknown",
			expected: "development",
		},
		{
			name:    "vcs revision is shortened",
			version: "development",
			commit:  "unknown",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0f3c9a1d2e4b5c6d7e8f"},
				{Key: "vcs.modified", Value: "false"},
			},
			expected: "development+0f3c9a1",
		},
		{
			name:    "modified tree is marked",
			version: "0.4.0",
			commit:  "unknown",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0f3c9a1d2e4b"},
				{Key: "vcs.modified", Value: "true"},
			},
			expected: "0.4.0+0f3c9a1-dirty",
		},
		{
			name:    "ldflags commit wins over vcs stamp",
			version: "1.1.0",
			commit:  "rel1100",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0f3c9a1d2e4b"},
			},
			expected: "1.1.0+rel1100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuild(t, tt.version, tt.commit, tt.settings...)
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestBanner(t *testing.T) {
	stubBuild(t, "1.2.0", "unknown")

	assert.Equal(t, "barangay 1.2.0", Banner(-1))
	assert.Equal(t, "barangay 1.2.0 (0 residents)", Banner(0))
	assert.Equal(t, "barangay 1.2.0 (1 resident)", Banner(1))
	assert.Equal(t, "barangay 1.2.0 (85 residents)", Banner(85))
}
