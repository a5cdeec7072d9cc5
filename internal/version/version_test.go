package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuild(t *testing.T, version, commit string) {
	t.Helper()
	oldVersion, oldCommit := Version, Commit
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
	}{
		{name: "development build", version: "development", commit: "unknown", expected: "development"},
		{name: "release with commit", version: "1.2.0", commit: "abc1234", expected: "1.2.0+abc1234"},
		{name: "empty commit", version: "1.2.0", commit: "", expected: "1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit)
			assert.Equal(t, tt.expected, String())
		})
	}
}

func TestDetailed(t *testing.T) {
	withBuild(t, "0.3.0", "deadbee")

	got := Detailed()
	assert.True(t, strings.HasPrefix(got, "modkeeper 0.3.0+deadbee ("))
	assert.Contains(t, got, runtime.GOOS+"/"+runtime.GOARCH)
}
