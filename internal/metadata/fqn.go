package metadata

import "strings"

// SplitFQN splits a fully-qualified type name ("Windows.Foundation.IClosable")
// into its namespace ("Windows.Foundation") and bare type name ("IClosable").
// WinRT type names never contain a dot, so the split point is always the
// last one.
func SplitFQN(fqn string) (namespace, name string) {
	i := strings.LastIndex(fqn, ".")
	if i < 0 {
		return "", fqn
	}
	return fqn[:i], fqn[i+1:]
}
