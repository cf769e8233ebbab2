package metadata

// FoundationTypes are the fourteen well-known types the runtime library
// hand-projects (specification §9, Glossary "Foundation types"): seven in
// Windows.Foundation and seven in Windows.Foundation.Numerics. They are
// removed from the cache before namespace enumeration so the generator
// never emits a definition the runtime library already ships.
var FoundationTypes = map[string][]string{
	"Windows.Foundation": {
		"DateTime",
		"EventRegistrationToken",
		"HResult",
		"Point",
		"Rect",
		"Size",
		"TimeSpan",
	},
	"Windows.Foundation.Numerics": {
		"Vector2",
		"Vector3",
		"Vector4",
		"Matrix3x2",
		"Matrix4x4",
		"Plane",
		"Quaternion",
	},
}

// RemoveFoundationTypes hides the fourteen foundation types from c, the
// first step of the top-level driver sequence (specification §4.7 step 2).
func RemoveFoundationTypes(c *Cache) {
	for ns, names := range FoundationTypes {
		for _, name := range names {
			c.RemoveType(ns, name)
		}
	}
}
