package planner

import (
	"path/filepath"

	"github.com/cppwinrt-go/cppwinrt/internal/emit"
)

// ImplPath returns the output path for one phase of one namespace's
// emission (specification §3's artifact tree). The three impl phases live
// under winrt/impl/; the top-level header lives directly under winrt/.
func ImplPath(outputDir, ns string, phase emit.Phase) string {
	if phase == emit.PhaseTop {
		return filepath.Join(outputDir, "winrt", ns+".h")
	}
	return filepath.Join(outputDir, "winrt", "impl", ns+phase.String()+".h")
}

// ModulePath returns the output path for a module interface unit named
// unitName (an owner, a singleton namespace, or a stub member).
func ModulePath(outputDir, unitName string) string {
	return filepath.Join(outputDir, "winrt", unitName+".ixx")
}

// BaseHeaderPath returns the runtime library header path.
func BaseHeaderPath(outputDir string) string {
	return filepath.Join(outputDir, "winrt", "base.h")
}

// ModuleHeaderPath returns the module-mode ancillary header path.
func ModuleHeaderPath(outputDir string) string {
	return filepath.Join(outputDir, "winrt", "module.h")
}

// AggregatePath returns the non-module-mode aggregate unit path.
func AggregatePath(outputDir string) string {
	return filepath.Join(outputDir, "winrt", "winrt.ixx")
}

// BaseUnitPath and NumericsUnitPath name the two fixed module units.
func BaseUnitPath(outputDir string) string {
	return filepath.Join(outputDir, "winrt", "winrt.base.ixx")
}

func NumericsUnitPath(outputDir string) string {
	return filepath.Join(outputDir, "winrt", "winrt.numerics.ixx")
}
