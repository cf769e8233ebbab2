package metadata

import "sort"

// Cache is the metadata collaborator named in the specification: a
// read-only-after-construction view over every namespace discovered across
// all loaded databases, plus the distinction between namespaces that were
// given via -input (projectable) and those given only via -reference
// (resolvable but never emitted).
type Cache struct {
	namespaces  map[string]*Members
	projectable map[string]bool
	databases   []string
}

func newCache() *Cache {
	return &Cache{
		namespaces:  make(map[string]*Members),
		projectable: make(map[string]bool),
	}
}

// New builds a Cache directly from an in-memory namespace bundle map, with
// every namespace marked projectable. LoadCache is the production entry
// point; New exists for callers (and tests) that already hold parsed
// bundles and have no file to read.
func New(namespaces map[string]*Members) *Cache {
	c := newCache()
	for ns, bundle := range namespaces {
		c.namespaces[ns] = bundle
		c.projectable[ns] = true
	}
	return c
}

// Namespaces returns every namespace name known to the cache (input or
// reference), sorted lexicographically — the canonical tiebreaker order
// the rest of the planner assumes.
func (c *Cache) Namespaces() []string {
	out := make([]string, 0, len(c.namespaces))
	for ns := range c.namespaces {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// ProjectableNamespaces returns only the namespaces drawn from -input,
// sorted. Reference-only namespaces never appear here regardless of their
// filter status.
func (c *Cache) ProjectableNamespaces() []string {
	out := make([]string, 0, len(c.projectable))
	for ns := range c.projectable {
		if c.projectable[ns] {
			out = append(out, ns)
		}
	}
	sort.Strings(out)
	return out
}

// Members returns the member bundle for ns, or nil if ns is unknown.
func (c *Cache) Members(ns string) *Members {
	return c.namespaces[ns]
}

// RemoveType deletes the member named name, of any kind, from namespace ns.
// Used by the driver to hide the fourteen foundation types before
// enumeration (specification §9).
func (c *Cache) RemoveType(ns, name string) {
	bundle := c.namespaces[ns]
	if bundle == nil {
		return
	}
	for _, k := range AllKinds {
		members := bundle.Of(k)
		filtered := make([]Member, 0, len(members))
		for _, m := range members {
			if m.Name != name {
				filtered = append(filtered, m)
			}
		}
		bundle.SetOf(k, filtered)
	}
}

// Databases returns the source file paths that were loaded, for
// include-filter derivation (informational only — see SPEC_FULL.md §4.8).
func (c *Cache) Databases() []string {
	out := make([]string, len(c.databases))
	copy(out, c.databases)
	sort.Strings(out)
	return out
}
