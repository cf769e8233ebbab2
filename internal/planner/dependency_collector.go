// Package planner implements the emission planner: the namespace emitter,
// dependency collector, task group, SCC planner, module unit writer and
// top-level driver (components C2-C7). It consumes the emit, errors,
// filter, log, metadata, orderedset and printer packages.
package planner

import (
	"sort"

	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// IsProjected reports whether bundle has at least one member, of any kind,
// whose fully-qualified name survives filt. Only projected namespaces
// become nodes in the dependency graph.
func IsProjected(bundle *metadata.Members, ns string, filt *filter.Filter) bool {
	if bundle == nil {
		return false
	}
	for _, k := range metadata.AllKinds {
		for _, m := range bundle.Of(k) {
			if filt.Includes(ns + "." + m.Name) {
				return true
			}
		}
	}
	return false
}

// CollectDependencies extracts, from a Writer that has finished emitting one
// phase of currentNS, the sorted deduplicated set of namespaces that are
// real module dependencies: distinct from currentNS, known to cache, and
// projected under filt. Non-projected namespaces contribute no file to
// depend on and are silently dropped.
func CollectDependencies(currentNS string, w *emit.Writer, cache *metadata.Cache, filt *filter.Filter) []string {
	out := make([]string, 0, len(w.Depends()))
	for _, ns := range w.DependencyNamespaces() {
		if ns == currentNS {
			continue
		}
		if !IsProjected(cache.Members(ns), ns, filt) {
			continue
		}
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}
