// Command pathstep replays a preset graph and prints every recorded step.
//
// Usage:
//
//	pathstep [-json] [-summary] [-v] preset.yaml
//	pathstep [-json] [-summary] [-v] [-seed N] -generate grid:4x4
//
// Output is one line per step, "[i/n] KIND message", or with -json the
// full step list including per-node state. -summary appends the analysis of
// the final step; with -json the output becomes {"steps": [...], "analysis": {...}}.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/logging"
	"github.com/katalvlaran/pathstep/preset"
	"github.com/katalvlaran/pathstep/session"
)

func main() {
	asJSON := flag.Bool("json", false, "Print the full step log as JSON")
	verbose := flag.Bool("v", false, "Log debug events to stderr")
	summary := flag.Bool("summary", false, "Append the path and coverage analysis of the final step")
	generate := flag.String("generate", "", "Generate a graph instead of reading one (path:N, cycle:N, star:N, wheel:N, complete:N, grid:RxC, random:N:P)")
	seed := flag.Int64("seed", 1, "Seed for -generate (random topologies and weights)")
	maxWeight := flag.Int64("max-weight", 1, "Draw -generate edge weights uniformly from [1, max-weight]")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: pathstep [flags] (preset.yaml | -generate spec)")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		g   *preset.Graph
		err error
	)
	switch {
	case *generate != "" && flag.NArg() == 0:
		g, err = builder.Generate(*generate, builder.WithSeed(*seed), builder.WithUniformWeight(1, max(*maxWeight, 1)))
	case *generate == "" && flag.NArg() == 1:
		g, err = preset.Load(flag.Arg(0))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err == nil {
		err = run(os.Stdout, g, *asJSON, *summary, *verbose)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathstep:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, g *preset.Graph, asJSON, summary, verbose bool) error {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger, err := logging.NewWriter(os.Stderr, "text", level)
	if err != nil {
		return err
	}

	s := session.New(session.WithLogger(logger))
	if _, err := preset.Apply(g, s); err != nil {
		return err
	}
	if err := s.Run(); err != nil {
		if errors.Is(err, session.ErrMissingSource) || errors.Is(err, session.ErrMissingTarget) {
			return fmt.Errorf("%s: preset must name a source and a target: %w", g.Name, err)
		}
		return err
	}

	steps := s.Steps()
	var analysis dijkstra.Analysis
	if summary {
		if err := s.Last(); err != nil {
			return err
		}
		if analysis, err = s.Analysis(); err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if summary {
			return enc.Encode(struct {
				Steps    []dijkstra.Step   `json:"steps"`
				Analysis dijkstra.Analysis `json:"analysis"`
			}{steps, analysis})
		}
		return enc.Encode(steps)
	}
	for i, st := range steps {
		if _, err := fmt.Fprintf(w, "[%d/%d] %-6s %s\n", i+1, len(steps), st.Kind, st.Message); err != nil {
			return err
		}
	}
	if summary {
		_, err = fmt.Fprintf(w, "path %d nodes, distance %d; visited %d/%d (%.1f%%); avg distance %.2f; %d edges\n",
			analysis.PathLength, analysis.TotalDistance, analysis.VisitedNodes, analysis.TotalNodes,
			analysis.Coverage, analysis.AverageDistance, analysis.EdgeCount)
	}

	return err
}
