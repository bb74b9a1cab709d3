package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/csr"
	"github.com/katalvlaran/dualgraph/dfs"
)

// ExampleTopologicalSort orders build steps, then shows the cycle that blocks a bad plan.
func ExampleTopologicalSort() {
	g := core.NewDynamic[string, core.Unit]()
	fetch, compile, test, ship := g.AddNode("fetch"), g.AddNode("compile"), g.AddNode("test"), g.AddNode("ship")
	_ = g.AddEdge(fetch, compile, core.Unit{})
	_ = g.AddEdge(compile, test, core.Unit{})
	_ = g.AddEdge(test, ship, core.Unit{})

	order, ok, _ := dfs.TopologicalSort(csr.Freeze(g))
	fmt.Println(order, ok)

	_ = g.AddEdge(ship, compile, core.Unit{})
	cycle, _, _ := dfs.FindCycle(csr.Freeze(g))
	fmt.Println(cycle)
	// Output:
	// [0 1 2 3] true
	// [1 2 3 1]
}
