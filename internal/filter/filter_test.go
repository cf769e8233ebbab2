package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncludesPrefixSemantics(t *testing.T) {
	f := New([]string{"Windows.Foundation"}, nil)
	require.True(t, f.Includes("Windows.Foundation.Collections.IVector"))
	require.False(t, f.Includes("Windows.UI.Xaml.Controls.Button"))
}

func TestExcludeWinsOverInclude(t *testing.T) {
	f := New([]string{"Windows"}, []string{"Windows.UI"})
	require.True(t, f.Includes("Windows.Foundation.Collections.IVector"))
	require.False(t, f.Includes("Windows.UI.Xaml.Controls.Button"))
}

func TestEmptyIncludeMeansEverythingNotExcluded(t *testing.T) {
	f := New(nil, []string{"Windows.UI"})
	require.True(t, f.Includes("Windows.Foundation.IClosable"))
	require.False(t, f.Includes("Windows.UI.Xaml.Controls.Button"))
}

func TestWithExcludeIsMonotonic(t *testing.T) {
	base := New([]string{"Windows"}, nil)
	require.True(t, base.Includes("Windows.UI.Xaml.Controls.Button"))

	narrowed := base.WithExclude("Windows.UI")
	require.False(t, narrowed.Includes("Windows.UI.Xaml.Controls.Button"))
	require.True(t, narrowed.Includes("Windows.Foundation.IClosable"))
}

func TestLoadXMLConfigHappyPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.xml")
	contents := `<?xml version="1.0"?>
<configuration>
  <include>
    <prefix>Windows.Foundation</prefix>
    <prefix>Windows.Storage</prefix>
  </include>
  <exclude>
    <prefix>Windows.Foundation.Diagnostics</prefix>
  </exclude>
</configuration>`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	includes, excludes, err := LoadXMLConfig(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Windows.Foundation", "Windows.Storage"}, includes)
	require.Equal(t, []string{"Windows.Foundation.Diagnostics"}, excludes)
}

func TestLoadXMLConfigMissingRoot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<settings><include><prefix>Windows</prefix></include></settings>`), 0o644))

	_, _, err := LoadXMLConfig(path)
	require.Error(t, err)
}

func TestLoadXMLConfigNonASCIIPrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<configuration><include><prefix>Wïndows</prefix></include></configuration>`), 0o644))

	_, _, err := LoadXMLConfig(path)
	require.Error(t, err)
}
