package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

func twoNamespaceAcyclicCache() *metadata.Cache {
	return metadata.New(map[string]*metadata.Members{
		"A": {Interfaces: []metadata.Member{{Name: "IA", References: []string{"B.IB"}}}},
		"B": {Interfaces: []metadata.Member{{Name: "IB"}}},
	})
}

// TestRunNonModuleModeEmitsAggregateUnit is specification scenario S4.
func TestRunNonModuleModeEmitsAggregateUnit(t *testing.T) {
	out := t.TempDir()
	cfg := RunConfig{
		Cache:     twoNamespaceAcyclicCache(),
		Filter:    filter.New(nil, nil),
		OutputDir: out,
		Base:      true,
		Modules:   false,
	}
	_, err := Run(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "winrt", "winrt.ixx"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `#include "winrt/A.h"`)
	assert.Contains(t, content, `#include "winrt/B.h"`)
	assert.Contains(t, content, `#include "winrt/base.h"`)

	_, err = os.Stat(filepath.Join(out, "winrt", "base.h"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "winrt", "A.ixx"))
	assert.True(t, os.IsNotExist(err))
}

// TestRunModuleModeEmitsSingletonAndBaseUnits covers module mode end to
// end: A and B are acyclic so each is a singleton, plus the base/numerics
// units forced on by module mode.
func TestRunModuleModeEmitsSingletonAndBaseUnits(t *testing.T) {
	out := t.TempDir()
	cfg := RunConfig{
		Cache:     twoNamespaceAcyclicCache(),
		Filter:    filter.New(nil, nil),
		OutputDir: out,
		Modules:   true,
	}
	report, err := Run(cfg)
	require.NoError(t, err)

	assert.Len(t, report.SCCTable.Components, 2)

	for _, ns := range []string{"A", "B"} {
		_, err := os.Stat(filepath.Join(out, "winrt", ns+".ixx"))
		require.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(out, "winrt", "winrt.base.ixx"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "winrt", "module.h"))
	require.NoError(t, err)
}

// TestRunForcesBaseWhenNoReferences covers the specification §4.7 step 3
// rule: base is forced on when there is no reference metadata, even
// without -base.
func TestRunForcesBaseWhenNoReferences(t *testing.T) {
	out := t.TempDir()
	cfg := RunConfig{
		Cache:         twoNamespaceAcyclicCache(),
		Filter:        filter.New(nil, nil),
		OutputDir:     out,
		Base:          false,
		Modules:       false,
		HasReferences: false,
	}
	_, err := Run(cfg)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "winrt", "base.h"))
	require.NoError(t, err)
}

// TestRunLogsNamespaceStartBeforeFanOut covers specification §5's
// main-thread-only console/log rule: every projected namespace gets a
// start line from Run itself, before the task group dispatches.
func TestRunLogsNamespaceStartBeforeFanOut(t *testing.T) {
	out := t.TempDir()
	core, logs := observer.New(zap.DebugLevel)
	cfg := RunConfig{
		Cache:     twoNamespaceAcyclicCache(),
		Filter:    filter.New(nil, nil),
		OutputDir: out,
		Base:      true,
		Logger:    zap.New(core),
	}
	_, err := Run(cfg)
	require.NoError(t, err)

	var started []string
	for _, entry := range logs.All() {
		if entry.Message == "emitting namespace" {
			started = append(started, entry.ContextMap()["namespace"].(string))
		}
	}
	assert.ElementsMatch(t, []string{"A", "B"}, started)
}

func TestRunWithNoNamespacesEmitsBaseHeader(t *testing.T) {
	out := t.TempDir()
	cfg := RunConfig{
		Cache:         metadata.New(map[string]*metadata.Members{}),
		Filter:        filter.New(nil, nil),
		OutputDir:     out,
		Base:          true,
		HasReferences: true,
	}
	report, err := Run(cfg)
	require.NoError(t, err)
	assert.Empty(t, report.Namespaces)

	_, err = os.Stat(filepath.Join(out, "winrt", "base.h"))
	require.NoError(t, err)
}
