package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddDependsFiltersSelfReference(t *testing.T) {
	w := NewWriter("Windows.Foundation.Collections")
	w.AddDepends("Windows.Foundation.Collections", "IVector")
	w.AddDepends("Windows.Foundation", "IClosable")

	require.Equal(t, []string{"Windows.Foundation"}, w.DependencyNamespaces())
}

func TestAddDependsIsIdempotentAndSorted(t *testing.T) {
	w := NewWriter("N")
	w.AddDepends("B", "Z")
	w.AddDepends("A", "Y")
	w.AddDepends("B", "Z")
	w.AddDepends("B", "A")

	require.Equal(t, []string{"A", "B"}, w.DependencyNamespaces())
	require.Equal(t, []string{"A", "Z"}, w.Depends()["B"].Sorted())
}

func TestSwapPreservesDependsAndResetsBody(t *testing.T) {
	w := NewWriter("N")
	w.Write("body content")
	w.AddDepends("Other", "Type")

	old := w.Swap()
	require.Equal(t, "body content", old)
	require.Empty(t, w.Bytes())
	require.Equal(t, []string{"Other"}, w.DependencyNamespaces())

	w.WriteRaw("preamble\n")
	w.WriteRaw(old)
	require.Equal(t, "preamble\nbody content", string(w.Bytes()))
}

func TestFlushToFileIsAtomicAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.h")

	w := NewWriter("N")
	w.Write("first")
	require.NoError(t, w.FlushToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first", string(data))

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	w2 := NewWriter("N")
	w2.Write("second")
	require.NoError(t, w2.FlushToFile(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestFlushToFileFailsOnMissingDirectory(t *testing.T) {
	w := NewWriter("N")
	w.Write("x")
	err := w.FlushToFile(filepath.Join(t.TempDir(), "missing-subdir", "out.h"))
	require.Error(t, err)
}
