package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(renderError(rootCmd, err, os.Stdout, os.Stderr))
	}
}

// renderError applies specification §7's rendering rule: usage errors print
// usage text to stdout and exit 0, every other kind prints one
// "cppwinrt : error <message>" line to stderr and exits 1.
func renderError(cmd *cobra.Command, err error, stdout, stderr io.Writer) int {
	kind := gerrors.KindOf(err)
	if kind == gerrors.Usage {
		fmt.Fprintln(stdout, cmd.UsageString())
		return gerrors.ExitCode(kind)
	}
	fmt.Fprintf(stderr, "cppwinrt : error %s\n", err)
	return gerrors.ExitCode(kind)
}
