package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	old := GitCommit
	GitCommit = "abc123"
	t.Cleanup(func() { GitCommit = old })

	i := Get()
	assert.Equal(t, Name, i.Name)
	assert.Equal(t, "abc123", i.GitCommit)
	assert.Equal(t, "gobend v"+Version+" (built unknown, commit abc123)", i.String())
}
