package printer

import (
	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// EmitEnumPhase0 writes an enum's full definition. Enums carry no
// cross-namespace references: their underlying type is always int32_t and
// their enumerants are plain identifiers (specification §4.2, phase .0).
func EmitEnumPhase0(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("enum class %s : int32_t\n{\n", m.Name)
	for _, v := range m.Values {
		w.Write("    %s,\n", v)
	}
	w.WriteRaw("};\n\n")
}

// EmitEnumFlagOperatorsTop writes the bitwise operator|/operator& helpers
// for a [flags] enum, a top-level-header responsibility (specification
// §4.2, "enum operators").
func EmitEnumFlagOperatorsTop(w *emit.Writer, ns string, m metadata.Member) {
	if !m.Flags {
		return
	}
	w.Write("constexpr %s operator|(%s left, %s right) noexcept\n{\n", m.Name, m.Name, m.Name)
	w.Write("    return static_cast<%s>(static_cast<int32_t>(left) | static_cast<int32_t>(right));\n}\n\n", m.Name)
	w.Write("constexpr %s operator&(%s left, %s right) noexcept\n{\n", m.Name, m.Name, m.Name)
	w.Write("    return static_cast<%s>(static_cast<int32_t>(left) & static_cast<int32_t>(right));\n}\n\n", m.Name)
}
