// Package emit provides the Writer (component C1 of the specification): a
// per-worker scratch buffer that accumulates textual output and records,
// separately, the set of other namespaces whose types it referenced. The
// Writer itself never decides whether a referenced namespace is real — that
// is the Dependency Collector's job, once the projected predicate is known.
package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
	"github.com/cppwinrt-go/cppwinrt/internal/orderedset"
)

// Phase identifies which of the four layering levels a Writer is producing
// output for (specification §3, Glossary "Phase").
type Phase int

const (
	Phase0 Phase = iota // forward-decls + impl ABI views
	Phase1              // interface definitions
	Phase2              // structs/classes/delegates (definition-requiring)
	PhaseTop            // consume glue, producer stubs, operators
)

func (p Phase) String() string {
	switch p {
	case Phase0:
		return ".0"
	case Phase1:
		return ".1"
	case Phase2:
		return ".2"
	case PhaseTop:
		return ""
	default:
		return "?"
	}
}

// Writer is single-threaded: each worker owns exactly one for the duration
// of one namespace's one phase.
type Writer struct {
	typeNamespace string
	body          *bytes.Buffer
	// depends is an ordered map of namespace -> the sorted set of type
	// names referenced in that namespace, per specification §4.1.
	depends map[string]*orderedset.Set
}

// NewWriter creates a Writer whose "current" namespace is typeNamespace —
// references to types within that namespace never register as a
// dependency.
func NewWriter(typeNamespace string) *Writer {
	return &Writer{
		typeNamespace: typeNamespace,
		body:          &bytes.Buffer{},
		depends:       make(map[string]*orderedset.Set),
	}
}

// TypeNamespace returns the namespace this Writer was constructed for.
func (w *Writer) TypeNamespace() string {
	return w.typeNamespace
}

// Write appends a fragment with positional substitution (fmt.Fprintf
// semantics). Write never touches depends — only AddDepends does.
func (w *Writer) Write(format string, args ...any) {
	fmt.Fprintf(w.body, format, args...)
}

// WriteRaw appends s verbatim.
func (w *Writer) WriteRaw(s string) {
	w.body.WriteString(s)
}

// AddDepends records that the current namespace's output referenced
// refType in refNamespace. A self-reference (refNamespace equal to the
// Writer's own type_namespace) is dropped immediately — the collector
// would filter it anyway, but dropping it here keeps depends free of
// self-edges at every point it might be inspected (specification §3).
func (w *Writer) AddDepends(refNamespace, refType string) {
	if refNamespace == "" || refNamespace == w.typeNamespace {
		return
	}
	set, ok := w.depends[refNamespace]
	if !ok {
		set = orderedset.New()
		w.depends[refNamespace] = set
	}
	set.Add(refType)
}

// Depends returns the namespaces referenced so far, mapped to the sorted
// set of type names referenced in each.
func (w *Writer) Depends() map[string]*orderedset.Set {
	return w.depends
}

// DependencyNamespaces returns the referenced namespaces in sorted order,
// ignoring which types within them were referenced.
func (w *Writer) DependencyNamespaces() []string {
	out := make([]string, 0, len(w.depends))
	for ns := range w.depends {
		out = append(out, ns)
	}
	set := orderedset.FromSlice(out)
	return set.Sorted()
}

// Swap moves the accumulated body aside and resets the buffer, returning
// the moved-aside text. depends is untouched. Used by the Namespace Emitter
// to write a preamble/forward-declare block ahead of the body once the
// phase's dependency set is fully known (specification §4.1, §4.2 step 5).
func (w *Writer) Swap() string {
	old := w.body.String()
	w.body.Reset()
	return old
}

// Bytes returns the current buffer contents.
func (w *Writer) Bytes() []byte {
	return w.body.Bytes()
}

// FlushToFile writes the buffer to path atomically: a temp file in the same
// directory is written and closed, then renamed over path, so a failure
// midway never leaves a partial file at the final path (specification §3).
func (w *Writer) FlushToFile(path string) error {
	return FlushBytes(path, w.body.Bytes())
}

// FlushBytes performs the same atomic write as Writer.FlushToFile for
// content assembled outside a Writer (e.g. module unit files).
func FlushBytes(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return gerrors.Wrap(gerrors.Io, "failed to create temp file for "+path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return gerrors.Wrap(gerrors.Io, "failed to write "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return gerrors.Wrap(gerrors.Io, "failed to close temp file for "+path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return gerrors.Wrap(gerrors.Io, "failed to rename into place "+path, err)
	}
	return nil
}
