package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIndex = `Package: librust-foo-dev
Version: 1.2.3-1
Description: This package contains the source for the Rust foo crate...

Package: librust-bar-dev
Version: 0.4.0-2
Description: Rust crate bar
`

const testStatus = "ii  librust-bar-dev  0.4.0-2  amd64  Rust crate bar\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagOutput, flagFormat, flagConfig = "", "", ""
	flagIndexFile, flagStatusFile = "", ""
	flagVerbose, flagInstalledOnly = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_FromFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", "")
	index := writeFile(t, dir, "index.txt", testIndex)
	status := writeFile(t, dir, "status.txt", testStatus)

	out, err := run(t, "--config", cfg, "--index-file", index, "--status-file", status)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"bar 0.4.0  installed  librust-bar-dev\n"+
		"foo 1.2.3  --         librust-foo-dev\n", out)

	out, err = run(t, "--config", cfg, "--index-file", index, "--status-file", status, "fo")
	require.NoError(t, err)
	assert.Equal(t, "foo 1.2.3  --         librust-foo-dev\n", out)
}

func TestRoot_OutputFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", `format = "json"`)
	index := writeFile(t, dir, "index.txt", testIndex)
	status := writeFile(t, dir, "status.txt", testStatus)
	dest := filepath.Join(dir, "report.json")

	out, err := run(t, "--config", cfg, "--index-file", index, "--status-file", status, "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"package": "librust-bar-dev"`)
}

func TestRoot_OutputWriteFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", "")
	index := writeFile(t, dir, "index.txt", testIndex)
	status := writeFile(t, dir, "status.txt", testStatus)
	dest := filepath.Join(dir, "missing-dir", "report.txt")

	_, err := run(t, "--config", cfg, "--index-file", index, "--status-file", status, "-o", dest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFatal))
}

func TestRoot_ToolLaunchFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", `index_command = "debcrates-no-such-tool show"`)

	_, err := run(t, "--config", cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFatal))
}

func TestRoot_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", "")

	_, err := run(t, "--config", cfg, "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFatal))
}

func TestRoot_TooManyArgs(t *testing.T) {
	_, err := run(t, "a", "b")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errFatal))
}
