package planner

import (
	"sort"

	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// WriteBaseUnit emits the fixed "base" module interface unit: the runtime
// library module, importing the standard library and re-exporting numerics
// (specification §4.6, "base" shape).
func WriteBaseUnit(outputDir string) error {
	w := emit.NewWriter("")
	w.WriteRaw("module;\n#include \"winrt/base.h\"\nexport module winrt;\n")
	w.WriteRaw("import std;\nexport import winrt.numerics;\n")
	w.WriteRaw("// runtime projection header marks its own declarations WINRT_EXPORT\n")
	return w.FlushToFile(BaseUnitPath(outputDir))
}

// WriteNumericsUnit emits the "numerics" unit, isolated so its large legacy
// include is never drawn into other modules (specification §4.6,
// "numerics" shape). present is false when the optional numerics header is
// absent from the environment, in which case the unit is emitted empty.
func WriteNumericsUnit(outputDir string, present bool) error {
	w := emit.NewWriter("")
	w.WriteRaw("export module winrt.numerics;\n")
	if present {
		w.WriteRaw("module;\n#include \"winrt/impl/windows.foundation.numerics.h\"\nexport using namespace winrt::Windows::Foundation::Numerics;\n")
	}
	return w.FlushToFile(NumericsUnitPath(outputDir))
}

// WriteSingletonUnit emits a per-namespace module unit for an SCC of size 1
// (specification §4.6, "per-namespace singleton" shape): declares module N,
// imports std, re-exports base, imports every external dependency, then
// textually includes N's four layered headers in order.
func WriteSingletonUnit(outputDir, ns string, externalImports []string) error {
	w := emit.NewWriter(ns)
	w.Write("export module %s;\n", ns)
	w.WriteRaw("import std;\nexport import winrt;\n")

	sorted := append([]string(nil), externalImports...)
	sort.Strings(sorted)
	for _, imp := range sorted {
		w.Write("import %s;\n", imp)
	}

	for _, phase := range []emit.Phase{emit.Phase0, emit.Phase1, emit.Phase2, emit.PhaseTop} {
		w.Write("#include \"%s\"\n", includeTargetFor(ns, phase))
	}

	return w.FlushToFile(ModulePath(outputDir, ns))
}

// WriteOwnerUnit emits an SCC-owner unit for a component with two or more
// members (specification §4.6, "SCC owner" shape): the std/base/external
// preamble, then forward declarations of every projected type across every
// member namespace under a scoped WINRT_EXPORT override, then the four
// phases of every member included in interleaved order — all `.0`, then
// all `.1`, then all `.2`, then all top headers — so cross-member layering
// holds even across the cycle the component consolidates.
func WriteOwnerUnit(outputDir string, comp Component, cache *metadata.Cache, filt *filter.Filter) error {
	w := emit.NewWriter(comp.Owner)
	w.Write("export module %s;\n", comp.Owner)
	w.WriteRaw("import std;\nexport import winrt;\n")

	for _, imp := range comp.ExternalImports {
		w.Write("import %s;\n", imp)
	}

	w.WriteRaw("#define WINRT_EXPORT_SAVED WINRT_EXPORT\n#undef WINRT_EXPORT\n#define WINRT_EXPORT export\n")
	for _, member := range comp.Members {
		writeMemberForwardDecls(w, member, cache, filt)
	}
	w.WriteRaw("#undef WINRT_EXPORT\n#define WINRT_EXPORT WINRT_EXPORT_SAVED\n#undef WINRT_EXPORT_SAVED\n\n")

	for _, phase := range []emit.Phase{emit.Phase0, emit.Phase1, emit.Phase2, emit.PhaseTop} {
		for _, member := range comp.Members {
			w.Write("#include \"%s\"\n", includeTargetFor(member, phase))
		}
	}

	return w.FlushToFile(ModulePath(outputDir, comp.Owner))
}

// WriteStubUnit emits a re-export stub for a non-owner SCC member
// (specification §4.6, "re-export stub" shape): the only content is
// `export import owner;`, which keeps `import <any member>` valid for
// consumers regardless of consolidation.
func WriteStubUnit(outputDir, member, owner string) error {
	w := emit.NewWriter(member)
	w.Write("export module %s;\nexport import %s;\n", member, owner)
	return w.FlushToFile(ModulePath(outputDir, member))
}

func includeTargetFor(ns string, phase emit.Phase) string {
	if phase == emit.PhaseTop {
		return "winrt/" + ns + ".h"
	}
	return "winrt/impl/" + ns + phase.String() + ".h"
}

// writeMemberForwardDecls writes a forward declaration for every projected
// type of every kind in member, in sorted order, inside the impl
// sub-namespace (specification §4.6: "forward declarations for every
// projected type of every member namespace").
func writeMemberForwardDecls(w *emit.Writer, member string, cache *metadata.Cache, filt *filter.Filter) {
	bundle := cache.Members(member)
	if bundle == nil {
		return
	}

	var names []string
	for _, k := range metadata.AllKinds {
		for _, m := range bundle.Of(k) {
			if filt.Includes(member + "." + m.Name) {
				names = append(names, m.Name)
			}
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return
	}
	w.Write("namespace winrt::impl::%s\n{\n", cppNamespace(member))
	for _, n := range names {
		w.Write("    struct %s;\n", n)
	}
	w.WriteRaw("}\n\n")
}
