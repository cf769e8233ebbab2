package planner

import "sort"

// Component is one strongly-connected component of the namespace
// dependency graph (specification §3, "SCC table").
type Component struct {
	Owner           string
	Members         []string
	ExternalImports []string
}

// Table is the ordered SCC table the planner produces, plus the lookup
// indexes the Module Unit Writer needs.
type Table struct {
	Components  []Component
	OwnerOf     map[string]string
	MembersOf   map[string][]string
	ExternalsOf map[string][]string
}

// PlanSCCs partitions the namespace dependency graph encoded by depends
// (namespace -> its sorted dependency list) into strongly-connected
// components using Tarjan's algorithm, chooses the lexicographically
// smallest member of each component as its owner, and computes each
// component's external-import set (specification §4.5).
//
// An explicit stack drives strongconnect so recursion depth is bounded only
// by available memory, not call-stack depth, per the implementer note in
// specification §4.5.
func PlanSCCs(depends map[string][]string) Table {
	nodes := make([]string, 0, len(depends))
	for n := range depends {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	known := make(map[string]bool, len(depends))
	for n := range depends {
		known[n] = true
	}

	t := &tarjan{
		depends: depends,
		known:   known,
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}

	for _, n := range nodes {
		if _, seen := t.index[n]; !seen {
			t.strongconnect(n)
		}
	}

	table := Table{
		OwnerOf:     make(map[string]string),
		MembersOf:   make(map[string][]string),
		ExternalsOf: make(map[string][]string),
	}

	for _, members := range t.components {
		sorted := append([]string(nil), members...)
		sort.Strings(sorted)
		owner := sorted[0]

		memberSet := make(map[string]bool, len(sorted))
		for _, m := range sorted {
			memberSet[m] = true
			table.OwnerOf[m] = owner
		}

		externals := map[string]bool{}
		for _, m := range sorted {
			for _, d := range depends[m] {
				if known[d] && !memberSet[d] {
					externals[d] = true
				}
			}
		}
		extList := make([]string, 0, len(externals))
		for e := range externals {
			extList = append(extList, e)
		}
		sort.Strings(extList)

		table.MembersOf[owner] = sorted
		table.ExternalsOf[owner] = extList
		table.Components = append(table.Components, Component{
			Owner:           owner,
			Members:         sorted,
			ExternalImports: extList,
		})
	}

	sort.Slice(table.Components, func(i, j int) bool {
		return table.Components[i].Owner < table.Components[j].Owner
	})

	return table
}

// tarjan holds the working state of one run of Tarjan's algorithm over an
// explicit DFS stack, avoiding recursion so the largest SCC in a pathological
// input cannot exhaust the call stack.
type tarjan struct {
	depends    map[string][]string
	known      map[string]bool
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	counter    int
	components [][]string
}

// frame is one explicit-stack activation record standing in for a
// strongconnect(v) call; childIdx tracks how far through v's successor list
// the simulated call has progressed.
type frame struct {
	node     string
	children []string
	childIdx int
}

func (t *tarjan) strongconnect(start string) {
	var callStack []*frame

	push := func(v string) {
		t.index[v] = t.counter
		t.lowlink[v] = t.counter
		t.counter++
		t.stack = append(t.stack, v)
		t.onStack[v] = true
		callStack = append(callStack, &frame{node: v, children: t.sortedKnownDeps(v)})
	}

	push(start)

	for len(callStack) > 0 {
		f := callStack[len(callStack)-1]

		if f.childIdx < len(f.children) {
			w := f.children[f.childIdx]
			f.childIdx++

			if _, seen := t.index[w]; !seen {
				push(w)
				continue
			}
			if t.onStack[w] {
				if t.lowlink[w] < t.lowlink[f.node] {
					t.lowlink[f.node] = t.lowlink[w]
				}
			}
			continue
		}

		// All of f.node's successors are processed; pop this frame.
		callStack = callStack[:len(callStack)-1]

		if len(callStack) > 0 {
			parent := callStack[len(callStack)-1]
			if t.lowlink[f.node] < t.lowlink[parent.node] {
				t.lowlink[parent.node] = t.lowlink[f.node]
			}
		}

		if t.lowlink[f.node] == t.index[f.node] {
			var component []string
			for {
				n := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[n] = false
				component = append(component, n)
				if n == f.node {
					break
				}
			}
			t.components = append(t.components, component)
		}
	}
}

// sortedKnownDeps returns v's dependencies, sorted, dropping any that are
// not themselves keys of the dependency map: an edge to a namespace absent
// from D must not influence partitioning (specification §4.5).
func (t *tarjan) sortedKnownDeps(v string) []string {
	out := make([]string, 0, len(t.depends[v]))
	for _, d := range t.depends[v] {
		if t.known[d] {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}
