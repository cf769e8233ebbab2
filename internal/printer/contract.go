package printer

import (
	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// EmitContractPhase0 writes a contract's version marker. Contracts carry no
// members of their own beyond a version constant — the types that are
// conditional on a contract reference it, not the other way around.
func EmitContractPhase0(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("struct %s\n{\n    static constexpr uint32_t version{ %d };\n};\n\n", m.Name, m.Version)
}
