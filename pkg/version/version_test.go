package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, buildDate
	t.Cleanup(func() { version, commit, buildDate = origVersion, origCommit, origDate })

	version, commit, buildDate = "v1.2.3", "", ""
	assert.Equal(t, "v1.2.3", String())

	commit = "abc123"
	assert.Equal(t, "v1.2.3 (commit abc123)", String())

	buildDate = "2026-01-01"
	assert.Equal(t, "v1.2.3 (commit abc123, built 2026-01-01)", String())
	assert.Equal(t, "abc123", GetCommit())
	assert.Equal(t, "2026-01-01", GetBuildDate())
}
