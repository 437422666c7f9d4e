package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const failingFirstCase = `
cases:
  - name: no height
    section: rectangular
    section_params: {width: 50}
    load: distributed
    load_params: {intensity: 5000}
    span: 3
  - name: joist
    section: rectangular
    section_params: {width: 50, height: 100}
    load: distributed
    load_params: {intensity: 5000}
    span: 3
`

func TestAnalyzeReportsFirstSuccessfulCase(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cases := filepath.Join(dir, "cases.yaml")
	require.NoError(t, os.WriteFile(cases, []byte(failingFirstCase), 0o644))
	pdf := filepath.Join(dir, "report.pdf")

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"analyze", "--file", cases, "--pdf", pdf})
	t.Cleanup(func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		analyzeFile, analyzePDF = "", ""
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 cases failed")
	assert.Contains(t, stderr.String(), "Error analyzing no height")

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
