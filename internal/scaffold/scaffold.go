// Package scaffold implements -component: generating the three stub files
// (header, implementation, IDL) a new WinRT component starts from. It sits
// outside the core emission pipeline entirely — it never touches the
// metadata cache or the dependency graph, and the files it writes are never
// read back by the planner.
package scaffold

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
)

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Spec describes one component to scaffold.
type Spec struct {
	Namespace string
	ClassName string
	Dir       string
}

// Resolve builds a Spec from the -component flag value. An empty path
// triggers the interactive survey prompt for class name and namespace;
// otherwise both are derived from path, whose last element is the class
// name and whose parent elements (dot-joined) are the namespace.
func Resolve(path string) (Spec, error) {
	if path == "" {
		return promptSpec()
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	parts := strings.Split(clean, "/")
	className := parts[len(parts)-1]
	namespace := strings.Join(parts[:len(parts)-1], ".")

	if !identRE.MatchString(className) {
		return Spec{}, gerrors.UsageErrorf("component path %q does not end in a valid class name", path)
	}
	if namespace == "" {
		return Spec{}, gerrors.UsageErrorf("component path %q has no namespace component", path)
	}

	return Spec{Namespace: namespace, ClassName: className, Dir: path}, nil
}

func promptSpec() (Spec, error) {
	var namespace string
	if err := survey.AskOne(&survey.Input{
		Message: "Namespace:",
	}, &namespace, survey.WithValidator(survey.Required)); err != nil {
		return Spec{}, gerrors.Wrap(gerrors.Usage, "component namespace prompt failed", err)
	}

	var className string
	if err := survey.AskOne(&survey.Input{
		Message: "Class name:",
	}, &className, survey.WithValidator(survey.Required)); err != nil {
		return Spec{}, gerrors.Wrap(gerrors.Usage, "component class name prompt failed", err)
	}

	if !identRE.MatchString(className) {
		return Spec{}, gerrors.UsageErrorf("class name %q is not a valid identifier", className)
	}

	return Spec{Namespace: namespace, ClassName: className, Dir: filepath.Join(strings.Split(namespace, ".")...)}, nil
}

// Write creates spec.Dir (idempotently, specification §5) and writes
// <ClassName>.h, <ClassName>.cpp and <ClassName>.idl into it.
func Write(spec Spec) error {
	if err := os.MkdirAll(spec.Dir, 0o755); err != nil {
		return gerrors.Wrap(gerrors.Io, "failed to create component directory "+spec.Dir, err)
	}

	files := map[string]string{
		spec.ClassName + ".idl": idlTemplate(spec),
		spec.ClassName + ".h":   headerTemplate(spec),
		spec.ClassName + ".cpp": sourceTemplate(spec),
	}

	for name, content := range files {
		full := filepath.Join(spec.Dir, name)
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return gerrors.Wrap(gerrors.Io, "failed to write "+full, err)
		}
	}
	return nil
}

func idlTemplate(spec Spec) string {
	return "namespace " + spec.Namespace + "\n{\n    runtimeclass " + spec.ClassName + "\n    {\n        " + spec.ClassName + "();\n    }\n}\n"
}

func headerTemplate(spec Spec) string {
	return "#pragma once\n#include \"" + spec.ClassName + ".g.h\"\n\n" +
		"namespace winrt::" + cppNamespace(spec.Namespace) + "::implementation\n{\n" +
		"struct " + spec.ClassName + " : " + spec.ClassName + "T<" + spec.ClassName + ">\n{\n" +
		"    " + spec.ClassName + "() = default;\n};\n}\n\n" +
		"namespace winrt::" + cppNamespace(spec.Namespace) + "::factory_implementation\n{\n" +
		"struct " + spec.ClassName + " : " + spec.ClassName + "T<" + spec.ClassName + ", implementation::" + spec.ClassName + ">\n{\n};\n}\n"
}

func sourceTemplate(spec Spec) string {
	return "#include \"pch.h\"\n#include \"" + spec.ClassName + ".h\"\n\n" +
		"namespace winrt::" + cppNamespace(spec.Namespace) + "::implementation\n{\n}\n"
}

func cppNamespace(ns string) string {
	return strings.ReplaceAll(ns, ".", "::")
}
