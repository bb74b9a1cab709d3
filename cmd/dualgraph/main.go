// Command dualgraph loads a YAML graph fixture, freezes it, and runs one
// analysis query over the frozen snapshot.
//
//	dualgraph -f graph.yaml stats
//	dualgraph -f graph.yaml path A D
//	dualgraph -f graph.yaml weighted A D --max-pops 1000
//	dualgraph -f graph.yaml cycle --all
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
