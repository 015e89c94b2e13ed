package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
)

func TestOptionConstructorsPanic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithKeys(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.ConstantWeight(-1) })
	assert.Panics(t, func() { builder.UniformWeight(-1, 3) })
	assert.Panics(t, func() { builder.UniformWeight(5, 4) })
	assert.Panics(t, func() { builder.LetterKeys(-1) })
}

func TestUniformWeight(t *testing.T) {
	t.Parallel()

	fn := builder.UniformWeight(3, 7)
	assert.Equal(t, int64(3), fn(nil), "nil rng yields min")

	rng := rand.New(rand.NewSource(7))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, int64(3))
		require.LessOrEqual(t, w, int64(7))
		seen[w] = true
	}
	assert.Len(t, seen, 5, "every value in range is reachable")

	assert.Equal(t, int64(4), builder.UniformWeight(4, 4)(rng))
}

func TestKeySchemes(t *testing.T) {
	t.Parallel()

	for idx, want := range map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"} {
		assert.Equal(t, want, builder.LetterKeys(idx), idx)
	}
	assert.Equal(t, "17", builder.DecimalKeys(17))
	assert.Equal(t, "n3", builder.PrefixKeys("n")(3))
}

func TestWithSpacing(t *testing.T) {
	t.Parallel()

	g, err := builder.Build("p", []builder.Option{builder.WithSpacing(10), builder.WithConstantWeight(3)}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 5.0, *g.Nodes[0].X)
	assert.Equal(t, 15.0, *g.Nodes[1].X)
	assert.Equal(t, int64(3), g.Edges[0].Weight)
}

func TestWithRand(t *testing.T) {
	t.Parallel()

	g, err := builder.Build("r",
		[]builder.Option{builder.WithRand(rand.New(rand.NewSource(1)))},
		builder.RandomSparse(6, 0.5))
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 6)
}
