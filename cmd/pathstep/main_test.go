package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/preset"
)

const diamond = `name: diamond
nodes: [{key: a}, {key: b}, {key: c}, {key: d}]
edges:
  - {from: a, to: b, weight: 4}
  - {from: a, to: c, weight: 3}
  - {from: b, to: c, weight: 6}
  - {from: b, to: d, weight: 5}
  - {from: c, to: d, weight: 2}
source: a
target: d
`

func loadPreset(t *testing.T, body string) *preset.Graph {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	g, err := preset.Load(path)
	require.NoError(t, err)

	return g
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, loadPreset(t, diamond), false, false, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "[1/9] INIT   Initializing distances: start node = 0, others = ∞", lines[0])
	assert.Equal(t, "[2/9] VISIT  Visit node 1 (distance = 0)", lines[1])
	assert.Equal(t, "[9/9] FINISH Found shortest path with distance 5", lines[8])
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, loadPreset(t, diamond), true, false, false))

	var steps []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &steps))
	require.Len(t, steps, 9)
	assert.Equal(t, "INIT", steps[0]["kind"])
	assert.Equal(t, []any{"node-0", "node-2", "node-3"}, steps[8]["path"])
	assert.Contains(t, steps[0], "path")
	assert.Nil(t, steps[0]["path"])
}

func TestRun_Summary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, loadPreset(t, diamond), false, true, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "path 3 nodes, distance 5; visited 4/4 (100.0%); avg distance 3.00; 5 edges", lines[9])

	out.Reset()
	require.NoError(t, run(&out, loadPreset(t, diamond), true, true, false))
	var doc struct {
		Steps    []json.RawMessage `json:"steps"`
		Analysis struct {
			TotalDistance int64 `json:"total_distance"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Len(t, doc.Steps, 9)
	assert.Equal(t, int64(5), doc.Analysis.TotalDistance)
}

func TestRun_MissingTerminals(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, loadPreset(t, "name: lone\nnodes: [{key: a}]\n"), false, false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must name a source and a target")
}

func TestRun_Generated(t *testing.T) {
	g, err := builder.Generate("path:3")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(&out, g, false, false, false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "[1/7] INIT   Initializing distances: start node = 0, others = ∞", lines[0])
	assert.Equal(t, "[7/7] FINISH Found shortest path with distance 2", lines[6])
}
