package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for spec, want := range map[string]int{
		"path:3":       3,
		"cycle:4":      4,
		"star:5":       5,
		"wheel:6":      6,
		"complete:3":   3,
		"grid:2x2":     4,
		"GRID:2X3":     6,
		"random:4:1.0": 4,
		" path:2 ":     2,
	} {
		g, err := builder.Generate(spec)
		require.NoError(t, err, spec)
		assert.Len(t, g.Nodes, want, spec)
		assert.Equal(t, spec, g.Name)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", "path", "path:x", "grid:3", "grid:ax2", "random:4", "random:4:p", "torus:3"} {
		_, err := builder.Parse(spec)
		require.ErrorIs(t, err, builder.ErrUnknownTopology, spec)
	}

	_, err := builder.Generate("random:5:0.5")
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Generate("random:5:0.5", builder.WithSeed(3))
	require.NoError(t, err)
}

func TestNodeCount(t *testing.T) {
	t.Parallel()

	for spec, want := range map[string]int{
		"path:3":                     3,
		"complete:2000":              2000,
		"grid:3x4":                   12,
		"grid:0x4":                   0,
		"random:40:0.1":              40,
		"star:-2":                    0,
		"grid:3037000500x3037000500": math.MaxInt,
	} {
		got, err := builder.NodeCount(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, want, got, spec)
	}

	_, err := builder.NodeCount("torus:3")
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
}
