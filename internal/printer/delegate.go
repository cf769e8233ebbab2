package printer

import (
	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/guid"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// EmitDelegateForward writes a delegate's phase-.0 content: forward
// declaration plus GUID/category traits (specification §4.2, phase .0).
func EmitDelegateForward(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("struct %s;\n", m.Name)

	g := guid.For(ns, m.Name, m.Guid)
	lit, err := guid.CppLiteral(g)
	if err != nil {
		lit = "/* invalid guid */"
	}
	w.Write("template <> struct guid_storage<%s>{ static constexpr guid value{{ %s }}; };\n\n", m.Name, lit)
}

// EmitDelegateDef writes a delegate's phase-.2 content: the invoke glue and
// producer stub (specification §4.2, phase .2 — "delegate definitions").
func EmitDelegateDef(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("struct %s\n{\n    %s(std::nullptr_t = nullptr) noexcept {}\n", m.Name, m.Name)
	for _, method := range m.Methods {
		w.Write("    // invoke signature: %s\n", method)
	}
	w.WriteRaw("};\n\n")

	for _, ref := range m.References {
		refNS, refName := metadata.SplitFQN(ref)
		w.AddDepends(refNS, refName)
	}
}
