package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `{
  "namespaces": {
    "Contoso.Widgets": {
      "enums": [{"name": "Color", "values": ["Red", "Green"]}]
    }
  }
}`

func resetFlags() {
	flags.inputs = nil
	flags.references = nil
	flags.output = ""
	flags.includes = nil
	flags.excludes = nil
	flags.configFile = ""
	flags.base = false
	flags.modules = false
	flags.fastABI = false
	flags.component = ""
	flags.synchronous = false
	flags.verbose = false
}

func TestRunRootEmitsFromMetadataFile(t *testing.T) {
	resetFlags()
	defer resetFlags()

	dir := t.TempDir()
	metaPath := filepath.Join(dir, "contoso.json")
	require.NoError(t, os.WriteFile(metaPath, []byte(fixtureJSON), 0o644))

	outDir := filepath.Join(dir, "out")

	// newRootCommand binds the flag variables and resets them to their
	// defaults, so the values below are set after it.
	cmd := newRootCommand()

	flags.inputs = []string{metaPath}
	flags.output = outDir
	flags.synchronous = true

	require.NoError(t, runRoot(cmd, nil))

	_, err := os.Stat(filepath.Join(outDir, "winrt", "Contoso.Widgets.h"))
	assert.NoError(t, err)
}

func TestRunRootRequiresInput(t *testing.T) {
	resetFlags()
	defer resetFlags()

	cmd := newRootCommand()
	err := runRoot(cmd, nil)
	assert.Error(t, err)
}

func TestRootCommandRegistersAllFlags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{
		"input", "reference", "output", "include", "exclude",
		"config", "base", "modules", "fastabi", "component",
		"synchronous", "verbose",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}
}
