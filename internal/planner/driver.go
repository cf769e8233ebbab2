package planner

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/cppwinrt-go/cppwinrt/internal/emit"
	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/log"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
)

// RunConfig is everything the top-level driver needs, gathered by the CLI
// layer from flags, config file, and the loaded metadata cache.
type RunConfig struct {
	Cache         *metadata.Cache
	Filter        *filter.Filter
	OutputDir     string
	Base          bool
	Modules       bool
	FastABI       bool
	Synchronous   bool
	HasReferences bool
	// Logger receives one line per namespace as it is handed to the task
	// group, written from this function before fan-out (specification §5:
	// console/log output is main-thread-only). Nil means no logging.
	Logger *zap.Logger
}

// RunReport summarizes one driver run for the CLI's progress reporting and
// for tests.
type RunReport struct {
	Namespaces []string
	Depends    map[string][]string
	SCCTable   Table
}

// Run executes the top-level driver sequence (specification §4.7): remove
// foundation types, decide whether base emission is forced, enumerate
// projected namespaces, fan out per-namespace emission through the task
// group, join, write base.h when base emission is on, then — in module
// mode — plan SCCs, emit module units and finally module.h, or —
// otherwise — emit the aggregate unit. The sequence is linear; there is
// no retry.
func Run(cfg RunConfig) (RunReport, error) {
	metadata.RemoveFoundationTypes(cfg.Cache)

	base := cfg.Base || !cfg.HasReferences || cfg.Modules

	if err := prepareOutputDirs(cfg.OutputDir); err != nil {
		return RunReport{}, err
	}

	var projected []string
	for _, ns := range cfg.Cache.ProjectableNamespaces() {
		if IsProjected(cfg.Cache.Members(ns), ns, cfg.Filter) {
			projected = append(projected, ns)
		}
	}
	sort.Strings(projected)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, ns := range projected {
		log.NamespaceStart(logger, ns)
	}

	opts := Options{OutputDir: cfg.OutputDir, Modules: cfg.Modules, FastABI: cfg.FastABI}

	depends, err := RunEmissions(projected, cfg.Cache, cfg.Filter, opts, cfg.Synchronous)
	if err != nil {
		return RunReport{}, err
	}

	report := RunReport{Namespaces: projected, Depends: depends}

	if base {
		if err := WriteBaseHeader(cfg.OutputDir); err != nil {
			return report, err
		}
	}

	if cfg.Modules {
		table := PlanSCCs(depends)
		report.SCCTable = table

		if base {
			if err := WriteBaseUnit(cfg.OutputDir); err != nil {
				return report, err
			}
			if err := WriteNumericsUnit(cfg.OutputDir, cfg.Cache.Members("Windows.Foundation.Numerics") != nil); err != nil {
				return report, err
			}
		}

		for _, comp := range table.Components {
			if len(comp.Members) == 1 {
				if err := WriteSingletonUnit(cfg.OutputDir, comp.Owner, comp.ExternalImports); err != nil {
					return report, err
				}
				continue
			}
			if err := WriteOwnerUnit(cfg.OutputDir, comp, cfg.Cache, cfg.Filter); err != nil {
				return report, err
			}
			for _, member := range comp.Members {
				if member == comp.Owner {
					continue
				}
				if err := WriteStubUnit(cfg.OutputDir, member, comp.Owner); err != nil {
					return report, err
				}
			}
		}

		if err := writeModuleHeader(cfg.OutputDir); err != nil {
			return report, err
		}
	} else {
		if err := writeAggregateUnit(cfg.OutputDir, projected, base); err != nil {
			return report, err
		}
	}

	return report, nil
}

// prepareOutputDirs pre-creates winrt/ and winrt/impl/ once, before fan-out,
// so directory creation is never a race between workers (specification §5,
// "Parallelism vs. FS races").
func prepareOutputDirs(outputDir string) error {
	for _, dir := range []string{
		filepath.Join(outputDir, "winrt"),
		filepath.Join(outputDir, "winrt", "impl"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return gerrors.Wrap(gerrors.Io, "failed to create output directory "+dir, err)
		}
	}
	return nil
}

// WriteBaseHeader emits the fixed runtime-library header, winrt/base.h.
// This implementation's runtime projection library is a stand-in: a fixed
// bundle of string constants is explicitly out of scope (specification
// §1), so the header is a minimal marker file that downstream consumers
// would include.
func WriteBaseHeader(outputDir string) error {
	content := []byte("#pragma once\n// runtime projection library header\n// marks its own declarations WINRT_EXPORT under module mode\n")
	return writeFile(filepath.Join(outputDir, "winrt", "base.h"), content)
}

// writeModuleHeader emits the module-mode ancillary header, winrt/module.h,
// which defines WINRT_MODULE for consumers that include headers directly
// alongside module units. It does not define WINRT_EXPORT.
func writeModuleHeader(outputDir string) error {
	content := []byte("#pragma once\n#define WINRT_MODULE\n")
	return writeFile(ModuleHeaderPath(outputDir), content)
}

// writeAggregateUnit emits the non-module-mode aggregate winrt.ixx: a
// single file that #includes every emitted top-level header, in sorted
// order, plus base.h (specification §3, non-module-mode artifact tree; S4).
func writeAggregateUnit(outputDir string, namespaces []string, base bool) error {
	var content []byte
	content = append(content, "#pragma once\n"...)
	for _, ns := range namespaces {
		content = append(content, []byte("#include \"winrt/"+ns+".h\"\n")...)
	}
	if base {
		content = append(content, []byte("#include \"winrt/base.h\"\n")...)
	}
	return writeFile(AggregatePath(outputDir), content)
}

func writeFile(path string, content []byte) error {
	return emit.FlushBytes(path, content)
}
