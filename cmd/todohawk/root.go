package todohawk

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagText    bool
	flagNoColor bool
	flagVerbose bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the todohawk CLI.
var rootCmd = &cobra.Command{
	Use:           "todohawk",
	Short:         "Find TODO, FIXME and HACK comments in your repo",
	Long:          "Todohawk scans a local directory or a GitHub repository for TODO, FIXME and HACK comments, enforces a findings threshold, and can file GitHub issues for what it finds.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the todohawk CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit findings as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagText, "text", false, "plain text columnar output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

// newLogger builds the run-scoped stderr logger. Warnings always surface;
// --verbose lowers the level to debug.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    flagNoColor || !isatty.IsTerminal(os.Stderr.Fd()),
	}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("run", uuid.NewString()[:8]).
		Logger()
}
