package printer

import (
	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/guid"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// EmitInterfaceForward writes an interface's phase-.0 content: the forward
// declaration, its GUID/category/name traits, and a consume-helper forward
// declaration, all inside the impl sub-namespace (specification §4.2,
// phase .0).
func EmitInterfaceForward(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("struct %s;\n", m.Name)

	g := guid.For(ns, m.Name, m.Guid)
	lit, err := guid.CppLiteral(g)
	if err != nil {
		lit = "/* invalid guid */"
	}
	w.Write("template <> struct guid_storage<%s>{ static constexpr guid value{{ %s }}; };\n", m.Name, lit)
	w.Write("template <> struct category<%s>{ using type = interface_category; };\n", m.Name)
	w.Write("template <> struct name<%s>{ static constexpr auto value{ L\"%s.%s\" }; };\n", m.Name, ns, m.Name)
	w.Write("template <typename D> struct consume_%s;\n\n", m.Name)
}

// EmitInterfaceDef writes an interface's phase-.1 content: the consume
// helper body, one stub method per declared method signature
// (specification §4.2, phase .1).
func EmitInterfaceDef(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("template <typename D>\nstruct consume_%s\n{\n", m.Name)
	for _, method := range m.Methods {
		w.Write("    // %s\n", method)
	}
	w.WriteRaw("};\n\n")

	for _, ref := range m.References {
		refNS, refName := metadata.SplitFQN(ref)
		w.AddDepends(refNS, refName)
	}
}
