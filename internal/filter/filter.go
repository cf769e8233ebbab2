// Package filter implements the include/exclude prefix predicate that
// decides which fully-qualified names survive projection. The exact same
// predicate composed from -include/-exclude and the <configuration> XML
// file, per specification §6.
package filter

import (
	"sort"
	"strings"
)

// Filter is a predicate over fully-qualified names, composed from an
// include-prefix set and an exclude-prefix set. An empty include set means
// "include everything not excluded".
type Filter struct {
	includes []string
	excludes []string
}

// New builds a Filter from independently-settable include and exclude
// prefix lists. Order of the inputs does not matter; Includes always
// checks excludes before includes so exclude wins (specification §8 property 7).
func New(includes, excludes []string) *Filter {
	f := &Filter{
		includes: append([]string(nil), includes...),
		excludes: append([]string(nil), excludes...),
	}
	sort.Strings(f.includes)
	sort.Strings(f.excludes)
	return f
}

// Includes reports whether fqn survives the filter: it must match an
// include prefix (or no include prefixes are set) and must not match any
// exclude prefix.
func (f *Filter) Includes(fqn string) bool {
	if hasPrefixMatch(f.excludes, fqn) {
		return false
	}
	if len(f.includes) == 0 {
		return true
	}
	return hasPrefixMatch(f.includes, fqn)
}

func hasPrefixMatch(prefixes []string, fqn string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(fqn, p) {
			return true
		}
	}
	return false
}

// WithExclude returns a new Filter with an additional exclude prefix. Used
// by the monotonicity test (specification §8 property 7): adding an
// exclude can only remove nodes/edges, never add them.
func (f *Filter) WithExclude(prefix string) *Filter {
	return New(f.includes, append(append([]string(nil), f.excludes...), prefix))
}
