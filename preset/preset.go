// Package preset loads named example graphs from YAML and replays them onto
// an authoring target.
//
// Document shape:
//
//	name: diamond
//	description: four nodes, two routes
//	nodes:
//	  - {key: a, x: 100, y: 100}
//	  - {key: b}
//	edges:
//	  - {from: a, to: b, weight: 4}
//	source: a
//	target: b
//
// Node keys are local to the document; Apply maps them to the ids the target
// allocates.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathstep/core"
)

// Sentinel errors for preset handling.
var (
	// ErrInvalidPreset indicates a document that fails Validate.
	ErrInvalidPreset = errors.New("preset: invalid preset")

	// ErrPresetNotFound indicates a Registry lookup miss.
	ErrPresetNotFound = errors.New("preset: not found")
)

// Graph is one preset document.
type Graph struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Nodes       []Node `yaml:"nodes" json:"nodes"`
	Edges       []Edge `yaml:"edges" json:"edges"`
	Source      string `yaml:"source,omitempty" json:"source,omitempty"`
	Target      string `yaml:"target,omitempty" json:"target,omitempty"`
}

// Node declares one node. X and Y are optional but must be given together.
type Node struct {
	Key string   `yaml:"key" json:"key"`
	X   *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y   *float64 `yaml:"y,omitempty" json:"y,omitempty"`
}

// Edge declares one weighted edge between node keys.
type Edge struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight" json:"weight"`
}

// Author is the subset of session.Session that Apply drives.
type Author interface {
	AddNode(opts ...core.NodeOption) (core.NodeID, error)
	AddEdge(source, target core.NodeID, weight int64) (core.EdgeID, error)
	SetSource(id core.NodeID) error
	SetTarget(id core.NodeID) error
}

// Parse decodes and validates one document. Unknown fields are rejected.
func Parse(data []byte) (*Graph, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var g Graph
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("preset: parse: %w", err)
	}
	if err := Validate(&g); err != nil {
		return nil, err
	}

	return &g, nil
}

// Load reads and parses the preset file at path.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Validate checks that the name is set, keys are non-empty and unique,
// coordinates come in pairs, every edge and terminal names a declared key,
// and weights are non-negative. All problems are reported together.
func Validate(g *Graph) error {
	var errs []string
	if g.Name == "" {
		errs = append(errs, "name is required")
	}

	keys := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		switch {
		case n.Key == "":
			errs = append(errs, fmt.Sprintf("nodes[%d]: key is required", i))
			continue
		case keys[n.Key]:
			errs = append(errs, fmt.Sprintf("nodes[%d]: duplicate key %q", i, n.Key))
		}
		keys[n.Key] = true
		if (n.X == nil) != (n.Y == nil) {
			errs = append(errs, fmt.Sprintf("node %s: x and y must be set together", n.Key))
		}
	}

	for i, e := range g.Edges {
		if !keys[e.From] {
			errs = append(errs, fmt.Sprintf("edges[%d]: unknown node %q", i, e.From))
		}
		if !keys[e.To] {
			errs = append(errs, fmt.Sprintf("edges[%d]: unknown node %q", i, e.To))
		}
		if e.Weight < 0 {
			errs = append(errs, fmt.Sprintf("edges[%d]: negative weight %d", i, e.Weight))
		}
	}

	if g.Source != "" && !keys[g.Source] {
		errs = append(errs, fmt.Sprintf("source: unknown node %q", g.Source))
	}
	if g.Target != "" && !keys[g.Target] {
		errs = append(errs, fmt.Sprintf("target: unknown node %q", g.Target))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w %q:\n  - %s", ErrInvalidPreset, g.Name, strings.Join(errs, "\n  - "))
	}

	return nil
}

// Apply validates g and replays it onto a in document order: nodes, edges,
// then terminals. It returns the key → id mapping.
//
// Apply is not transactional on a: an error from a mid-way leaves the nodes
// and edges added so far in place.
func Apply(g *Graph, a Author) (map[string]core.NodeID, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}

	ids := make(map[string]core.NodeID, len(g.Nodes))
	for _, n := range g.Nodes {
		var opts []core.NodeOption
		if n.X != nil && n.Y != nil {
			opts = append(opts, core.AtPosition(*n.X, *n.Y))
		}
		id, err := a.AddNode(opts...)
		if err != nil {
			return nil, fmt.Errorf("preset %s: node %s: %w", g.Name, n.Key, err)
		}
		ids[n.Key] = id
	}

	for _, e := range g.Edges {
		if _, err := a.AddEdge(ids[e.From], ids[e.To], e.Weight); err != nil {
			return nil, fmt.Errorf("preset %s: edge %s-%s: %w", g.Name, e.From, e.To, err)
		}
	}

	if g.Source != "" {
		if err := a.SetSource(ids[g.Source]); err != nil {
			return nil, fmt.Errorf("preset %s: source: %w", g.Name, err)
		}
	}
	if g.Target != "" {
		if err := a.SetTarget(ids[g.Target]); err != nil {
			return nil, fmt.Errorf("preset %s: target: %w", g.Name, err)
		}
	}

	return ids, nil
}
