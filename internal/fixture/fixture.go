// Package fixture decodes YAML graph descriptions into a graph container.
//
// Format:
//
//	nodes: [A, B, C, D]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C}          # weight defaults to 1
//
// Node names map to handles in declaration order, so the first name is
// handle 0. Unknown top-level or edge keys are rejected.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/graph"
)

// DefaultWeight is used for edges that omit weight.
const DefaultWeight int64 = 1

// Sentinel errors for malformed fixtures.
var (
	ErrEmptyName      = errors.New("fixture: empty node name")
	ErrDuplicateNode  = errors.New("fixture: duplicate node name")
	ErrUnknownNode    = errors.New("fixture: edge references unknown node")
	ErrNegativeWeight = errors.New("fixture: negative edge weight")
)

// File is the decoded YAML document.
type File struct {
	Nodes []string `yaml:"nodes"`
	Edges []Edge   `yaml:"edges"`
}

// Edge is one directed edge by node name. A nil Weight means DefaultWeight.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight *int64 `yaml:"weight,omitempty"`
}

// Loaded is a built fixture: a Dynamic-state container plus the name index.
type Loaded struct {
	Graph   *graph.Graph[string, int64]
	Handles map[string]int
}

// Handle resolves a node name, returning ErrUnknownNode when absent.
func (l *Loaded) Handle(name string) (int, error) {
	h, ok := l.Handles[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return h, nil
}

// Name returns the payload of handle h, or "#h" when h is not a live node.
func (l *Loaded) Name(h int) string {
	name, err := l.Graph.Node(h)
	if err != nil {
		return fmt.Sprintf("#%d", h)
	}

	return name
}

// Names maps a handle sequence to node names.
func (l *Loaded) Names(hs []int) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = l.Name(h)
	}

	return out
}

// Decode reads a single YAML document from r. Empty input yields an empty File.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}

	return &f, nil
}

// Load opens path and decodes it.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}

// Validate checks names and weights without building anything.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Nodes))
	for _, name := range f.Nodes {
		if name == "" {
			return ErrEmptyName
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		seen[name] = struct{}{}
	}
	for i, e := range f.Edges {
		for _, end := range [2]string{e.From, e.To} {
			if _, ok := seen[end]; !ok {
				return fmt.Errorf("%w: edges[%d] %q", ErrUnknownNode, i, end)
			}
		}
		if e.Weight != nil && *e.Weight < 0 {
			return fmt.Errorf("%w: edges[%d] %d", ErrNegativeWeight, i, *e.Weight)
		}
	}

	return nil
}

// Build validates f and materialises it as a Dynamic-state container.
// opts are passed to graph.New; a node-capacity hint is prepended.
func (f *File) Build(opts ...graph.Option) (*Loaded, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	all := append([]graph.Option{graph.WithNodeCapacity(len(f.Nodes))}, opts...)
	g := graph.New[string, int64](all...)
	handles := make(map[string]int, len(f.Nodes))
	for _, name := range f.Nodes {
		h, err := g.AddNode(name)
		if err != nil {
			return nil, err
		}
		handles[name] = h
	}

	edges := make([]core.Edge[int64], len(f.Edges))
	for i, e := range f.Edges {
		w := DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		edges[i] = core.Edge[int64]{From: handles[e.From], To: handles[e.To], Weight: w}
	}
	if err := g.AddEdges(edges...); err != nil {
		return nil, err
	}

	return &Loaded{Graph: g, Handles: handles}, nil
}
