// Package cli implements the vacuumworld command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	noColor    bool
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand runs every configured instance, like "vacuumworld run".
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	run := &runOptions{}

	root := &cobra.Command{
		Use:   "vacuumworld",
		Short: "Solve vacuum world instances with iterative-deepening search",
		Long: `Solve vacuum world instances with iterative-deepening depth-first search.

The agent moves Left, Right, Up or Down on a grid and can Suck up dirt.
Each instance is searched with depth limits 0..max_depth; the first
solution found has the fewest moves.

Without a --config file the two built-in instances are used.

Examples:
  vacuumworld                           # Run the built-in instances
  vacuumworld run instance-1            # Run one instance
  vacuumworld run --max-depth 2         # Override every instance's bound
  vacuumworld run -c my.toml --json     # Custom instances, JSON output
  vacuumworld list                      # Show configured instances`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstances(cmd, g, run, nil)
		},
	}

	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "TOML file with instances (default: built-in instances)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable coloured output")
	run.bindFlags(root)

	root.AddCommand(newRunCmd(g))
	root.AddCommand(newListCmd(g))

	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// colorEnabled reports whether output to w should be styled.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
