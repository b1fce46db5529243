package version

import (
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, commit string, info *debug.BuildInfo) {
	t.Helper()
	oldVersion, oldCommit, oldRead := Version, GitCommit, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, readBuildInfo = oldVersion, oldCommit, oldRead
	})

	Version, GitCommit = version, commit
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return info, info != nil
	}
}

func TestReleaseBuild(t *testing.T) {
	withBuild(t, "v1.2.0", "abcdef1234567", nil)

	assert.Equal(t, "v1.2.0", GetVersion())
	assert.Equal(t, "v1.2.0 (abcdef1)", GetShortVersion())
	assert.True(t, IsRelease())
	assert.Contains(t, GetDetailedVersion(), "Commit: abcdef1234567")
}

func TestDevBuildFromVCS(t *testing.T) {
	withBuild(t, "dev", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	assert.Equal(t, "dev-0123456", GetVersion())
	assert.Equal(t, "0123456789abcdef", GetGitCommit())
	assert.Equal(t, "dev-0123456", GetShortVersion())
	assert.False(t, IsRelease())
	assert.True(t, GetBuildInfo().Dirty)
	assert.Contains(t, GetDetailedVersion(), "(dirty)")
}

func TestNoBuildInfo(t *testing.T) {
	withBuild(t, "dev", "unknown", nil)

	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "unknown", GetGitCommit())
	assert.Equal(t, "dev", GetShortVersion())
	assert.NotContains(t, GetDetailedVersion(), "Commit:")
}

func TestParseBuildTime(t *testing.T) {
	assert.True(t, parseBuildTime("unknown").IsZero())
	assert.True(t, parseBuildTime("yesterday").IsZero())
	assert.Equal(t, 2025, parseBuildTime("2025-03-01T10:00:00Z").Year())
	assert.Equal(t, time.March, parseBuildTime("2025-03-01 10:00:00").Month())
}
