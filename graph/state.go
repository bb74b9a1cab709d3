package graph

// State represents the lifecycle state of a Graph.
type State int

const (
	// StateDynamic indicates the graph accepts structural mutations. Initial state.
	StateDynamic State = iota

	// StateFrozen indicates the graph is compiled to CSR and accepts algorithm queries.
	StateFrozen
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateDynamic:
		return "dynamic"
	case StateFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}
