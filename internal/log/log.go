// Package log builds the generator's structured logger. One line is emitted
// per namespace emission start/finish and one for the strongly-connected
// component summary; everything else in the tool writes to stdout or stderr
// directly (the spinner and table through internal/cli/ui), never through
// this logger.
package log

import (
	"go.uber.org/zap"
)

// New builds a zap.Logger at debug level when verbose is set, info level
// otherwise. A logger that fails to construct falls back to a no-op logger
// rather than aborting the run over a logging concern.
func New(verbose bool) *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NamespaceStart logs the beginning of one namespace's four-phase emission.
func NamespaceStart(logger *zap.Logger, ns string) {
	logger.Debug("emitting namespace", zap.String("namespace", ns))
}

// NamespaceDone logs a namespace's completion along with the dependency set
// the planner collected for it.
func NamespaceDone(logger *zap.Logger, ns string, depends []string) {
	logger.Debug("emitted namespace", zap.String("namespace", ns), zap.Strings("depends", depends))
}

// SCCSummary logs the component count and the largest cycle found, the one
// line that surfaces the SCC planning step (specification §4.5) outside of
// -verbose.
func SCCSummary(logger *zap.Logger, componentCount, largestComponent int) {
	logger.Info("planned module units",
		zap.Int("components", componentCount),
		zap.Int("largest_component", largestComponent),
	)
}

