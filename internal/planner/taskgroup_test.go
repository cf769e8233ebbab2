package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

func tenNamespaceCache() *metadata.Cache {
	doc := map[string]*metadata.Members{}
	for i := 0; i < 10; i++ {
		name := string(rune('A' + i))
		doc[name] = &metadata.Members{Enums: []metadata.Member{{Name: "E"}}}
	}
	return metadata.New(doc)
}

// TestRunEmissionsParallelAndSynchronousAgree is specification scenario S5:
// parallel and single-threaded execution produce the same output tree.
func TestRunEmissionsParallelAndSynchronousAgree(t *testing.T) {
	cache := tenNamespaceCache()
	f := filter.New(nil, nil)

	var namespaces []string
	for _, ns := range cache.Namespaces() {
		namespaces = append(namespaces, ns)
	}

	parallelOut := setupOutput(t)
	parallelDeps, err := RunEmissions(namespaces, cache, f, Options{OutputDir: parallelOut}, false)
	require.NoError(t, err)

	syncOut := setupOutput(t)
	syncDeps, err := RunEmissions(namespaces, cache, f, Options{OutputDir: syncOut}, true)
	require.NoError(t, err)

	assert.Equal(t, len(syncDeps), len(parallelDeps))

	for _, ns := range namespaces {
		pBytes, err := os.ReadFile(filepath.Join(parallelOut, "winrt", "impl", ns+".0.h"))
		require.NoError(t, err)
		sBytes, err := os.ReadFile(filepath.Join(syncOut, "winrt", "impl", ns+".0.h"))
		require.NoError(t, err)
		assert.Equal(t, string(sBytes), string(pBytes))
	}
}

func TestRunEmissionsPropagatesFirstError(t *testing.T) {
	cache := tenNamespaceCache()
	f := filter.New(nil, nil)

	var namespaces []string
	for _, ns := range cache.Namespaces() {
		namespaces = append(namespaces, ns)
	}

	// An output directory that does not exist makes every flush fail.
	_, err := RunEmissions(namespaces, cache, f, Options{OutputDir: "/nonexistent/deeply/nested/path"}, true)
	require.Error(t, err)
}
