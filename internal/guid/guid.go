// Package guid produces the type GUIDs (IIDs) the .0-phase ABI views embed.
// Real WinRT metadata always carries an explicit GUID per interface and
// delegate; this generator's simplified metadata format allows omitting it,
// in which case a GUID is derived deterministically from the type's fully
// qualified name so repeated runs stay byte-identical (specification §8
// property 1).
package guid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// namespaceUUID seeds the deterministic derivation. Any fixed UUID works;
// this one is arbitrary but must never change, or every derived GUID for
// every un-annotated type would change across releases.
var namespaceUUID = uuid.MustParse("2b1dd375-6f96-4d8b-9d6c-3f2a2a9b6b21")

// For returns explicit reformatted to canonical form if it is a well-formed
// GUID, otherwise a UUIDv5 derived from namespace and typeName.
func For(namespace, typeName, explicit string) string {
	if explicit != "" {
		if parsed, err := uuid.Parse(explicit); err == nil {
			return strings.ToUpper(parsed.String())
		}
	}
	fqn := namespace + "." + typeName
	derived := uuid.NewSHA1(namespaceUUID, []byte(fqn))
	return strings.ToUpper(derived.String())
}

// CppLiteral renders g (a canonical GUID string) as the comma-separated
// hex fields of a C++ GUID aggregate initializer, without any enclosing
// braces; the .0-phase printers wrap it in the braces they emit.
func CppLiteral(g string) (string, error) {
	parsed, err := uuid.Parse(g)
	if err != nil {
		return "", fmt.Errorf("invalid guid %q: %w", g, err)
	}
	b := parsed[:]
	return fmt.Sprintf(
		"0x%02x%02x%02x%02x,0x%02x%02x,0x%02x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x,0x%02x",
		b[0], b[1], b[2], b[3],
		b[4], b[5],
		b[6], b[7],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	), nil
}
