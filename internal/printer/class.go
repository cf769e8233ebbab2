package printer

import (
	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// EmitClassForward writes a class's phase-.0 forward declaration plus its
// default-interface mapping, the piece of category metadata that lets a
// class be treated as its default interface everywhere it is consumed.
func EmitClassForward(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("struct %s;\n", m.Name)
	if m.DefaultInterface != "" {
		w.Write("template <> struct default_interface<%s>{ using type = %s; };\n", m.Name, m.DefaultInterface)
		refNS, refName := metadata.SplitFQN(m.DefaultInterface)
		w.AddDepends(refNS, refName)
	}
	w.WriteRaw("\n")
}

// EmitClassDef writes a class's phase-.2 full definition: the factory shim
// and constructors that forward to its default interface. When fastABI is
// set, an additional flattened-vtable fast-class base is also emitted
// (specification §6, -fastabi).
func EmitClassDef(w *emit.Writer, ns string, m metadata.Member, fastABI bool) {
	w.Write("struct %s : %s<%s, %s>\n{\n", m.Name, "impl::base", m.Name, defaultOr(m.DefaultInterface, "IUnknown"))
	w.Write("    %s(std::nullptr_t) noexcept {}\n", m.Name)
	w.WriteRaw("};\n\n")

	if fastABI {
		w.Write("struct fast_%s : impl::fast_base<%s>\n{\n};\n\n", m.Name, m.Name)
	}

	for _, ref := range m.References {
		refNS, refName := metadata.SplitFQN(ref)
		w.AddDepends(refNS, refName)
	}
}

func defaultOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	_, name := metadata.SplitFQN(v)
	return name
}
