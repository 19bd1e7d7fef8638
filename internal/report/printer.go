// Package report formats a solved plan for stdout and emits zap debug
// logging for the search that produced it.
package report

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gitrdm/satplan/pkg/satplan"
)

// NewLogger builds a zap logger at info level, or debug level if verbose is
// set.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// PrintPlan writes the plan to w, one ground-action name per line. An
// empty plan (a problem with no ground actions) prints nothing.
func PrintPlan(w io.Writer, plan []string) error {
	for _, step := range plan {
		if _, err := fmt.Fprintln(w, step); err != nil {
			return err
		}
	}
	return nil
}

// LogResult emits a structured debug summary of a successful Plan call.
func LogResult(logger *zap.Logger, res *satplan.Result) {
	logger.Debug("plan found",
		zap.Int("horizon", res.Horizon),
		zap.Int("plan_length", len(res.Plan)),
		zap.Int("variables", res.CNF.Vars.Len()),
		zap.Int("clauses", len(res.CNF.Clauses)),
	)
}
