package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vacuumworld/iddfs"
	"github.com/katalvlaran/vacuumworld/instance"
	"github.com/katalvlaran/vacuumworld/report"
)

// runOptions are the flags of the run command.
type runOptions struct {
	maxDepth int
	json     bool
	showGrid bool
}

func (o *runOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 0, "Override the max_depth of every instance")
	cmd.Flags().BoolVar(&o.json, "json", false, "Output summaries as JSON")
	cmd.Flags().BoolVar(&o.showGrid, "show-grid", false, "Draw the start grid of each instance")
}

func newRunCmd(g *globalOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [instance...]",
		Short: "Search one or more instances (default: all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstances(cmd, g, o, args)
		},
	}
	o.bindFlags(cmd)
	return cmd
}

func newListCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadInstances(g.configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, inst := range f.Instances {
				w, err := f.Build(inst)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s start=%v dirty=%v max_depth=%d\n",
					inst.Name, w.Start().Agent, w.DirtyPositions(w.Start().Dirty), inst.MaxDepth)
			}
			return nil
		},
	}
}

// loadInstances reads path, or the built-in instances when path is empty.
func loadInstances(path string) (*instance.File, error) {
	if path == "" {
		return instance.Defaults()
	}
	return instance.LoadFile(path)
}

// selectInstances returns the named instances in argument order, or all of
// them when names is empty.
func selectInstances(f *instance.File, names []string) ([]instance.Instance, error) {
	if len(names) == 0 {
		return f.Instances, nil
	}
	out := make([]instance.Instance, 0, len(names))
	for _, name := range names {
		inst, err := f.Find(name)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// runInstances searches each selected instance in turn and reports it.
func runInstances(cmd *cobra.Command, g *globalOptions, o *runOptions, names []string) error {
	level, err := parseLevel(g.logLevel)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), level, !colorEnabled(cmd.ErrOrStderr(), g.noColor))

	f, err := loadInstances(g.configPath)
	if err != nil {
		return err
	}
	selected, err := selectInstances(f, names)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	textOpts := report.TextOptions{Color: colorEnabled(out, g.noColor), ShowGrid: o.showGrid}
	summaries := make([]report.Summary, 0, len(selected))

	for i, inst := range selected {
		w, err := f.Build(inst)
		if err != nil {
			return err
		}
		maxDepth := inst.MaxDepth
		if cmd.Flags().Changed("max-depth") {
			maxDepth = o.maxDepth
		}

		log := logger.With("instance", inst.Name)
		log.Info("searching", "max_depth", maxDepth, "dirty", w.Start().Dirty.Len())

		res, err := iddfs.Search(w, w.Start(), maxDepth,
			iddfs.WithContext(cmd.Context()),
			iddfs.WithOnIteration(func(limit int, found bool, st iddfs.Stats) error {
				log.Debug("depth limit done",
					"limit", limit,
					"found", found,
					"expanded", st.NodesExpanded,
					"generated", st.NodesGenerated,
					"elapsed", st.Elapsed)
				return nil
			}))
		if err != nil {
			log.Error("search aborted", "err", err)
			return fmt.Errorf("%s: %w", inst.Name, err)
		}
		log.Info("search finished",
			"found", res.Found,
			"depth", res.Depth,
			"expanded", res.Stats.NodesExpanded,
			"elapsed", res.Stats.Elapsed)

		s := report.FromResult(inst.Name, maxDepth, w, res)
		if o.json {
			summaries = append(summaries, s)
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := report.WriteText(out, s, textOpts); err != nil {
			return err
		}
	}

	if o.json {
		return report.WriteJSON(out, summaries)
	}
	return nil
}
