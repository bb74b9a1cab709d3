package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dualgraph/dfs"
	"github.com/katalvlaran/dualgraph/dijkstra"
	"github.com/katalvlaran/dualgraph/graph"
	"github.com/katalvlaran/dualgraph/internal/fixture"
)

// endpoints resolves the FROM and TO arguments.
func endpoints(l *fixture.Loaded, args []string) (int, int, error) {
	from, err := l.Handle(args[0])
	if err != nil {
		return 0, 0, err
	}
	to, err := l.Handle(args[1])
	if err != nil {
		return 0, 0, err
	}

	return from, to, nil
}

func arrow(l *fixture.Loaded, hs []int) string {
	return strings.Join(l.Names(hs), " -> ")
}

func runStats(cmd *cobra.Command, l *fixture.Loaded, _ []string) error {
	f, err := l.Graph.Snapshot()
	if err != nil {
		return err
	}
	in := f.InDegrees()
	sources, sinks := 0, 0
	for _, v := range f.Nodes() {
		if in[v] == 0 {
			sources++
		}
		if out, _ := f.OutDegree(v); out == 0 {
			sinks++
		}
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "nodes    %d\n", f.NodeCount())
	fmt.Fprintf(w, "edges    %d\n", f.EdgeCount())
	fmt.Fprintf(w, "sources  %d\n", sources)
	fmt.Fprintf(w, "sinks    %d\n", sinks)

	return nil
}

func runPath(cmd *cobra.Command, l *fixture.Loaded, args []string) error {
	from, to, err := endpoints(l, args)
	if err != nil {
		return err
	}
	path, ok, err := l.Graph.ShortestPath(from, to)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "unreachable")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d nodes)\n", arrow(l, path), len(path))

	return nil
}

func runWeighted(cmd *cobra.Command, l *fixture.Loaded, args []string, maxPops int) error {
	from, to, err := endpoints(l, args)
	if err != nil {
		return err
	}
	var opts []dijkstra.Option
	if maxPops > 0 {
		opts = append(opts, dijkstra.WithMaxPops(maxPops))
	}
	path, cost, ok, err := graph.ShortestWeightedPath(l.Graph, from, to, opts...)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "unreachable")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (cost %d)\n", arrow(l, path), cost)

	return nil
}

func runReach(cmd *cobra.Command, l *fixture.Loaded, args []string) error {
	from, to, err := endpoints(l, args)
	if err != nil {
		return err
	}
	ok, err := l.Graph.IsReachable(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)

	return nil
}

func runCycle(cmd *cobra.Command, l *fixture.Loaded, all bool) error {
	if !all {
		cycle, ok, err := l.Graph.FindCycle()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "acyclic")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), arrow(l, cycle))
		return nil
	}

	f, err := l.Graph.Snapshot()
	if err != nil {
		return err
	}
	found, cycles, err := dfs.DetectCycles(f)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "acyclic")
		return nil
	}
	for _, c := range cycles {
		fmt.Fprintln(cmd.OutOrStdout(), arrow(l, c))
	}

	return nil
}

func runTopo(cmd *cobra.Command, l *fixture.Loaded, _ []string) error {
	order, ok, err := l.Graph.TopologicalSort()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "cyclic")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(l.Names(order), " "))

	return nil
}

func runSCC(cmd *cobra.Command, l *fixture.Loaded, _ []string) error {
	comps, err := l.Graph.StronglyConnectedComponents()
	if err != nil {
		return err
	}
	for _, c := range comps {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(l.Names(c), " "))
	}

	return nil
}
