package planner

import (
	"sort"

	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
	"github.com/cppwinrt-go/cppwinrt/internal/orderedset"
	"github.com/cppwinrt-go/cppwinrt/internal/printer"
)

// Options carries the driver-level switches that affect how a namespace is
// emitted.
type Options struct {
	OutputDir string
	Modules   bool
	FastABI   bool
}

// EmitResult is what EmitNamespace reports back to the caller: the union of
// every phase's dependency set (specification §4.2, last paragraph).
type EmitResult struct {
	Namespace string
	Depends   []string
}

// EmitNamespace drives the four emission phases for one namespace
// (specification §4.2): phase .0, .1, .2, and the top-level header. It is
// the body of exactly one Task Group submission and touches nothing but
// its own Writer and the filesystem paths computed for this namespace.
func EmitNamespace(ns string, bundle *metadata.Members, cache *metadata.Cache, filt *filter.Filter, opts Options) (EmitResult, error) {
	union := orderedset.New()
	promoted := orderedset.New() // namespaces this namespace's structs promoted to full-definition deps

	phase0Deps, err := emitPhase0(ns, bundle, filt, cache, opts)
	if err != nil {
		return EmitResult{}, err
	}
	union = union.Union(orderedset.FromSlice(phase0Deps))

	phase1Deps, err := emitPhase1(ns, bundle, filt, cache, opts)
	if err != nil {
		return EmitResult{}, err
	}
	union = union.Union(orderedset.FromSlice(phase1Deps))

	phase2Deps, err := emitPhase2(ns, bundle, filt, cache, opts, promoted)
	if err != nil {
		return EmitResult{}, err
	}
	union = union.Union(orderedset.FromSlice(phase2Deps))

	topDeps, err := emitPhaseTop(ns, bundle, filt, cache, opts)
	if err != nil {
		return EmitResult{}, err
	}
	union = union.Union(orderedset.FromSlice(topDeps))

	return EmitResult{Namespace: ns, Depends: union.Sorted()}, nil
}

func projectedMembers(bundle *metadata.Members, ns string, k metadata.Kind, filt *filter.Filter) []metadata.Member {
	var out []metadata.Member
	for _, m := range bundle.Of(k) {
		if filt.Includes(ns + "." + m.Name) {
			out = append(out, m)
		}
	}
	return out
}

func emitPhase0(ns string, bundle *metadata.Members, filt *filter.Filter, cache *metadata.Cache, opts Options) ([]string, error) {
	w := emit.NewWriter(ns)

	for _, m := range projectedMembers(bundle, ns, metadata.KindEnum, filt) {
		printer.EmitEnumPhase0(w, ns, m)
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindInterface, filt) {
		printer.EmitInterfaceForward(w, ns, m)
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindClass, filt) {
		printer.EmitClassForward(w, ns, m)
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindStruct, filt) {
		printer.EmitStructForward(w, ns, m)
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindDelegate, filt) {
		printer.EmitDelegateForward(w, ns, m)
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindContract, filt) {
		printer.EmitContractPhase0(w, ns, m)
	}

	deps := CollectDependencies(ns, w, cache, filt)
	writeForwardDeclPreamble(w, ns)
	return deps, w.FlushToFile(ImplPath(opts.OutputDir, ns, emit.Phase0))
}

func emitPhase1(ns string, bundle *metadata.Members, filt *filter.Filter, cache *metadata.Cache, opts Options) ([]string, error) {
	w := emit.NewWriter(ns)

	for _, m := range projectedMembers(bundle, ns, metadata.KindInterface, filt) {
		printer.EmitInterfaceDef(w, ns, m)
	}

	deps := CollectDependencies(ns, w, cache, filt)
	writeIncludePreamble(w, ns, emit.Phase1, deps, emit.Phase0)
	return deps, w.FlushToFile(ImplPath(opts.OutputDir, ns, emit.Phase1))
}

// emitPhase2 writes delegate/struct/class full definitions. Struct fields
// whose type lives in another namespace force that namespace's .2 header
// (the promote flag, specification §4.2/"Glossary"); every other phase-.2
// dependency resolves against .1.
func emitPhase2(ns string, bundle *metadata.Members, filt *filter.Filter, cache *metadata.Cache, opts Options, promoted *orderedset.Set) ([]string, error) {
	w := emit.NewWriter(ns)

	for _, m := range projectedMembers(bundle, ns, metadata.KindDelegate, filt) {
		printer.EmitDelegateDef(w, ns, m)
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindStruct, filt) {
		for _, p := range printer.EmitStructDef(w, ns, m) {
			promoted.Add(p)
		}
	}
	for _, m := range projectedMembers(bundle, ns, metadata.KindClass, filt) {
		printer.EmitClassDef(w, ns, m, opts.FastABI)
	}

	deps := CollectDependencies(ns, w, cache, filt)

	var promotedDeps, plainDeps []string
	for _, d := range deps {
		if promoted.Contains(d) {
			promotedDeps = append(promotedDeps, d)
		} else {
			plainDeps = append(plainDeps, d)
		}
	}

	writeMixedIncludePreamble(w, ns, emit.Phase2, promotedDeps, emit.Phase2, plainDeps, emit.Phase1)
	return deps, w.FlushToFile(ImplPath(opts.OutputDir, ns, emit.Phase2))
}

// emitPhaseTop writes the consumer-facing top-level header. It includes .2
// of every dependency and, per specification §4.2, of N itself.
func emitPhaseTop(ns string, bundle *metadata.Members, filt *filter.Filter, cache *metadata.Cache, opts Options) ([]string, error) {
	w := emit.NewWriter(ns)

	for _, m := range projectedMembers(bundle, ns, metadata.KindEnum, filt) {
		printer.EmitEnumFlagOperatorsTop(w, ns, m)
	}
	w.Write("// version assert and parent-namespace depends block for %s\n\n", ns)

	deps := CollectDependencies(ns, w, cache, filt)

	includeDeps := append(append([]string{}, deps...), ns)
	sort.Strings(includeDeps)
	writeIncludePreamble(w, ns, emit.PhaseTop, includeDeps, emit.Phase2)

	return deps, w.FlushToFile(ImplPath(opts.OutputDir, ns, emit.PhaseTop))
}

// writeForwardDeclPreamble prepends a pragma-once guard and, for each
// namespace referenced in phase .0, a forward-declare block naming exactly
// the types referenced (specification §4.2 step 5, phase .0 case:
// "Dependencies in this phase are resolved by forward declarations of
// referenced types, not includes.").
func writeForwardDeclPreamble(w *emit.Writer, ns string) {
	body := w.Swap()

	w.Write("#pragma once\n// generated header for %s.0\n\n", ns)

	refNamespaces := make([]string, 0, len(w.Depends()))
	for refNS := range w.Depends() {
		refNamespaces = append(refNamespaces, refNS)
	}
	sort.Strings(refNamespaces)

	for _, refNS := range refNamespaces {
		types := w.Depends()[refNS].Sorted()
		w.Write("namespace winrt::impl::%s\n{\n", cppNamespace(refNS))
		for _, t := range types {
			w.Write("    struct %s;\n", t)
		}
		w.WriteRaw("}\n\n")
	}

	w.WriteRaw(body)
}

// writeIncludePreamble prepends a pragma-once guard and, for each
// dependency namespace, a module-guarded include pointing at its
// fromPhase header (specification §4.2 step 5, phases .1/.2/top).
// thisPhase names the phase being written, for the header comment only.
func writeIncludePreamble(w *emit.Writer, ns string, thisPhase emit.Phase, deps []string, fromPhase emit.Phase) {
	writeMixedIncludePreamble(w, ns, thisPhase, nil, fromPhase, deps, fromPhase)
}

// writeMixedIncludePreamble is the general form used by phase .2, where
// depsA resolve against fromPhaseA (the promoted/full-definition phase)
// and depsB resolve against fromPhaseB.
func writeMixedIncludePreamble(w *emit.Writer, ns string, thisPhase emit.Phase, depsA []string, fromPhaseA emit.Phase, depsB []string, fromPhaseB emit.Phase) {
	body := w.Swap()

	w.Write("#pragma once\n// generated header for %s%s\n\n", ns, thisPhase.String())
	w.WriteRaw("#ifdef WINRT_MODULE\n#define WINRT_EXPORT export\n#else\n#define WINRT_EXPORT\n")

	all := append(append([]string{}, depsA...), depsB...)
	sort.Strings(all)
	for _, d := range all {
		phase := fromPhaseB
		for _, a := range depsA {
			if a == d {
				phase = fromPhaseA
			}
		}
		w.Write("#include \"winrt/impl/%s%s.h\"\n", d, phase.String())
	}

	w.WriteRaw("#endif\n\n")
	w.WriteRaw(body)
}

func cppNamespace(ns string) string {
	out := ""
	for i, part := range splitDots(ns) {
		if i > 0 {
			out += "::"
		}
		out += part
	}
	return out
}

func splitDots(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
