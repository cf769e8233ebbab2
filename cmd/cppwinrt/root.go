package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppwinrt-go/cppwinrt/internal/cli/ui"
	"github.com/cppwinrt-go/cppwinrt/internal/config"
	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
	"github.com/cppwinrt-go/cppwinrt/internal/filter"
	"github.com/cppwinrt-go/cppwinrt/internal/log"
	"github.com/cppwinrt-go/cppwinrt/internal/metadata"
	"github.com/cppwinrt-go/cppwinrt/internal/planner"
	"github.com/cppwinrt-go/cppwinrt/internal/scaffold"
)

var flags struct {
	inputs      []string
	references  []string
	output      string
	includes    []string
	excludes    []string
	configFile  string
	base        bool
	modules     bool
	fastABI     bool
	component   string
	synchronous bool
	verbose     bool
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cppwinrt",
		Short: "Generate C++/WinRT projection headers from Windows metadata",
		Long: `cppwinrt reads Windows Runtime metadata and emits the layered C++ headers
(and, with -modules, C++20 module interface units) that make up a projection.`,
		RunE:          runRoot,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := cmd.Flags()
	f.StringArrayVar(&flags.inputs, "input", nil, "metadata file or directory to project (repeatable)")
	f.StringArrayVar(&flags.references, "reference", nil, "metadata file or directory resolvable but not projected (repeatable)")
	f.StringVar(&flags.output, "output", "", "output directory root")
	f.StringArrayVar(&flags.includes, "include", nil, "namespace/type prefix to include (repeatable)")
	f.StringArrayVar(&flags.excludes, "exclude", nil, "namespace/type prefix to exclude (repeatable)")
	f.StringVar(&flags.configFile, "config", "", "XML file supplying include/exclude prefixes")
	f.BoolVar(&flags.base, "base", false, "force emission of the runtime projection base header/unit")
	f.BoolVar(&flags.modules, "modules", false, "emit C++20 module interface units instead of an aggregate header")
	f.BoolVar(&flags.fastABI, "fastabi", false, "emit flattened-vtable fast-class bases")
	f.StringVar(&flags.component, "component", "", "scaffold a new component at this path (an empty value, --component=, prompts interactively)")
	f.BoolVar(&flags.synchronous, "synchronous", false, "emit namespaces sequentially instead of in parallel")
	f.BoolVar(&flags.verbose, "verbose", false, "enable debug-level logging")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("component") {
		spec, err := scaffold.Resolve(flags.component)
		if err != nil {
			return err
		}
		if err := scaffold.Write(spec); err != nil {
			return err
		}
		fmt.Printf("Created component %s.%s\n", spec.Namespace, spec.ClassName)
		return nil
	}

	if len(flags.inputs) == 0 {
		return gerrors.UsageErrorf("at least one -input is required")
	}

	defaults, err := config.LoadDefaults()
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = defaults.Output
	}
	synchronous := flags.synchronous || defaults.Synchronous

	includes, excludes := flags.includes, flags.excludes
	if flags.configFile != "" {
		cfgIncludes, cfgExcludes, err := filter.LoadXMLConfig(flags.configFile)
		if err != nil {
			return err
		}
		includes = append(includes, cfgIncludes...)
		excludes = append(excludes, cfgExcludes...)
	}
	filt := filter.New(includes, excludes)

	cache, err := metadata.LoadCache(flags.inputs, flags.references)
	if err != nil {
		return err
	}

	logger := log.New(flags.verbose)
	defer logger.Sync()

	runCfg := planner.RunConfig{
		Cache:         cache,
		Filter:        filt,
		OutputDir:     output,
		Base:          flags.base,
		Modules:       flags.modules,
		FastABI:       flags.fastABI,
		Synchronous:   synchronous,
		HasReferences: len(flags.references) > 0,
		Logger:        logger,
	}

	var report planner.RunReport
	runPlanner := func() error {
		var runErr error
		report, runErr = planner.Run(runCfg)
		return runErr
	}

	// The spinner is console-only feedback; -verbose already prints a log
	// line per namespace, so the two never compete for the same terminal row.
	if flags.verbose {
		err = runPlanner()
	} else {
		err = ui.WithSpinner(os.Stderr, "Emitting projection", false, runPlanner)
	}
	if err != nil {
		return err
	}

	for _, ns := range report.Namespaces {
		log.NamespaceDone(logger, ns, report.Depends[ns])
	}

	if flags.modules && len(report.SCCTable.Components) > 0 {
		largest := 0
		for _, comp := range report.SCCTable.Components {
			if len(comp.Members) > largest {
				largest = len(comp.Members)
			}
		}
		log.SCCSummary(logger, len(report.SCCTable.Components), largest)

		if flags.verbose {
			printSCCTable(report)
		}
	}

	fmt.Fprintf(os.Stdout, "Emitted %d namespace(s) to %s\n", len(report.Namespaces), output)
	return nil
}

func printSCCTable(report planner.RunReport) {
	table := ui.NewSCCTable(os.Stdout, false)
	for _, comp := range report.SCCTable.Components {
		table.AddRow(comp.Owner, fmt.Sprint(len(comp.Members)), fmt.Sprint(len(comp.ExternalImports)))
	}
	table.Render()
}
