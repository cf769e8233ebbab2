package planner

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// RunEmissions dispatches one EmitNamespace call per namespace in
// namespaces, either in parallel (via errgroup.Group) or, when synchronous
// is set, in a direct sequential loop (specification §4.4). Join semantics:
// the call blocks until every submission completes and returns the first
// error observed; the dependency map is populated at disjoint keys (one per
// namespace) under a single coarse mutex, which is sufficient per
// specification §5 since writes never contend on the same key.
func RunEmissions(namespaces []string, cache *metadata.Cache, filt *filter.Filter, opts Options, synchronous bool) (map[string][]string, error) {
	depends := make(map[string][]string, len(namespaces))
	var mu sync.Mutex

	emitOne := func(ns string) error {
		bundle := cache.Members(ns)
		result, err := EmitNamespace(ns, bundle, cache, filt, opts)
		if err != nil {
			return err
		}
		mu.Lock()
		depends[result.Namespace] = result.Depends
		mu.Unlock()
		return nil
	}

	if synchronous {
		for _, ns := range namespaces {
			if err := emitOne(ns); err != nil {
				return nil, err
			}
		}
		return depends, nil
	}

	var g errgroup.Group
	for _, ns := range namespaces {
		ns := ns
		g.Go(func() error {
			return emitOne(ns)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return depends, nil
}

// sortedCopy returns a sorted copy of keys. Nothing in the package calls it.
func sortedCopy(keys []string) []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}
