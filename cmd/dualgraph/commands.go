package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dualgraph/graph"
	"github.com/katalvlaran/dualgraph/internal/fixture"
)

// cliOptions holds the flags shared by every subcommand.
type cliOptions struct {
	file    string
	verbose bool

	maxPops   int  // weighted
	allCycles bool // cycle
}

// newRootCmd builds a fresh command tree. Tests call it once per case so
// flag state never leaks between runs.
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "dualgraph",
		Short: "Run graph queries over a YAML fixture",
		Long: `dualgraph builds a directed graph from a YAML fixture, freezes it into
its compressed read-only form and answers one query.

Fixture format:
  nodes: [A, B, C]
  edges:
    - {from: A, to: B, weight: 2}
    - {from: B, to: C}          # weight defaults to 1`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "graph.yaml", "path to the YAML fixture")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log state transitions to stderr")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge, source and sink counts",
		Args:  cobra.NoArgs,
		RunE:  withGraph(opts, runStats),
	}
	pathCmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Fewest-edges path between two nodes (BFS)",
		Args:  cobra.ExactArgs(2),
		RunE:  withGraph(opts, runPath),
	}
	weightedCmd := &cobra.Command{
		Use:   "weighted FROM TO",
		Short: "Minimum-cost path between two nodes (Dijkstra)",
		Args:  cobra.ExactArgs(2),
		RunE: withGraph(opts, func(cmd *cobra.Command, l *fixture.Loaded, args []string) error {
			return runWeighted(cmd, l, args, opts.maxPops)
		}),
	}
	weightedCmd.Flags().IntVar(&opts.maxPops, "max-pops", 0, "abort after this many queue pops (0 = unlimited)")

	reachCmd := &cobra.Command{
		Use:   "reach FROM TO",
		Short: "Report whether TO is reachable from FROM",
		Args:  cobra.ExactArgs(2),
		RunE:  withGraph(opts, runReach),
	}
	cycleCmd := &cobra.Command{
		Use:   "cycle",
		Short: "Print one directed cycle, or every back-edge cycle with --all",
		Args:  cobra.NoArgs,
		RunE: withGraph(opts, func(cmd *cobra.Command, l *fixture.Loaded, _ []string) error {
			return runCycle(cmd, l, opts.allCycles)
		}),
	}
	cycleCmd.Flags().BoolVar(&opts.allCycles, "all", false, "list every distinct cycle closed by a DFS back edge")

	topoCmd := &cobra.Command{
		Use:   "topo",
		Short: "Print a topological order",
		Args:  cobra.NoArgs,
		RunE:  withGraph(opts, runTopo),
	}
	sccCmd := &cobra.Command{
		Use:   "scc",
		Short: "Print strongly connected components, one per line",
		Args:  cobra.NoArgs,
		RunE:  withGraph(opts, runSCC),
	}

	rootCmd.AddCommand(statsCmd, pathCmd, weightedCmd, reachCmd, cycleCmd, topoCmd, sccCmd)

	return rootCmd
}

// queryFunc runs against a loaded, frozen fixture.
type queryFunc func(cmd *cobra.Command, l *fixture.Loaded, args []string) error

// withGraph loads opts.file, freezes it, and hands it to run.
func withGraph(opts *cliOptions, run queryFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.WarnLevel)
		if opts.verbose {
			log.SetLevel(logrus.DebugLevel)
		}

		f, err := fixture.Load(opts.file)
		if err != nil {
			return err
		}
		l, err := f.Build(graph.WithLogger(log))
		if err != nil {
			return err
		}
		if err = l.Graph.Freeze(); err != nil {
			return err
		}
		log.WithField("file", opts.file).Debug("fixture loaded")

		return run(cmd, l, args)
	}
}
