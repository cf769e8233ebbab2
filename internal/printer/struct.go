package printer

import (
	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
	"github.com/cppwinrt-go/cppwinrt/internal/orderedset"
)

// EmitStructForward writes a struct's phase-.0 forward declaration.
func EmitStructForward(w *emit.Writer, ns string, m metadata.Member) {
	w.Write("struct %s;\n", m.Name)
}

// EmitStructDef writes a struct's phase-.2 full definition and returns the
// promote flag: the sorted, deduplicated list of namespaces that this
// struct's fields require a full (not forward-declared) definition of,
// because structs embed values by value (specification §4.2, phase .2,
// Glossary "Promote flag").
func EmitStructDef(w *emit.Writer, ns string, m metadata.Member) (promotedNamespaces []string) {
	w.Write("struct %s\n{\n", m.Name)

	promoted := orderedset.New()
	for _, f := range m.Fields {
		fieldNS, fieldName := metadata.SplitFQN(f.Type)
		cppType := fieldName
		if fieldNS != "" && fieldNS != ns {
			w.AddDepends(fieldNS, fieldName)
			promoted.Add(fieldNS)
			cppType = fieldNS + "::" + fieldName
		}
		w.Write("    %s %s;\n", cppType, f.Name)
	}
	w.WriteRaw("};\n\n")

	return promoted.Sorted()
}
