package generator_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roldans/FaMA/pkg/generator"
	"github.com/Roldans/FaMA/pkg/namegen"
)

func testCharacteristics() generator.Characteristics {
	return generator.Characteristics{
		Features:     30,
		Weights:      generator.Weights{Mandatory: 25, Optional: 25, Alternative: 25, Or: 25},
		MaxGroupSize: 5,
		Constraints:  3,
		MaxProducts:  1 << 20,
		Seed:         7,
	}
}

// record captures the primitive stream of a construction run.
func record(b generator.ModelBuilder) *[]generator.Primitive {
	prims := &[]generator.Primitive{}
	b.Subscribe(func(p generator.Primitive) error {
		*prims = append(*prims, p)
		return nil
	})
	return prims
}

func TestRandomBuilderStructure(t *testing.T) {
	t.Parallel()

	ch := testCharacteristics()
	builder := generator.NewRandomBuilder()
	prims := record(builder)

	model, err := builder.Build(ch)
	require.NoError(t, err)

	assert.Equal(t, ch.Features, model.FeatureCount())
	assert.Len(t, model.Constraints(), ch.Constraints)

	require.NotEmpty(t, *prims)
	assert.Equal(t, generator.PrimitiveAddRoot, (*prims)[0].Kind)

	// Parents before children, constraints after the tree, features counted
	// exactly once across the stream.
	known := map[uuid.UUID]bool{}
	minted := 0
	treeDone := false
	for i, p := range *prims {
		switch p.Kind {
		case generator.PrimitiveAddRoot:
			require.Zero(t, i, "root must be the first primitive")
			known[p.Root.ID] = true
			minted++
		case generator.PrimitiveAddMandatory, generator.PrimitiveAddOptional:
			require.False(t, treeDone, "tree primitive after a constraint")
			require.True(t, known[p.Parent.ID], "unknown parent %q", p.Parent.Name)
			known[p.Child.ID] = true
			minted++
		case generator.PrimitiveAddAlternativeGroup, generator.PrimitiveAddOrGroup:
			require.False(t, treeDone, "tree primitive after a constraint")
			require.True(t, known[p.Parent.ID], "unknown parent %q", p.Parent.Name)
			require.GreaterOrEqual(t, len(p.Children), 2)
			require.LessOrEqual(t, len(p.Children), ch.MaxGroupSize)
			for _, c := range p.Children {
				known[c.ID] = true
				minted++
			}
		case generator.PrimitiveAddExcludes, generator.PrimitiveAddRequires:
			treeDone = true
			require.True(t, known[p.From.ID])
			require.True(t, known[p.To.ID])
			assert.False(t, model.Related(p.From, p.To),
				"constraint between related features %q and %q", p.From.Name, p.To.Name)
		}
	}
	assert.Equal(t, ch.Features, minted)
}

func TestRandomBuilderDeterminism(t *testing.T) {
	t.Parallel()

	ch := testCharacteristics()

	first := generator.NewRandomBuilder()
	firstPrims := record(first)
	m1, err := first.Build(ch)
	require.NoError(t, err)

	second := generator.NewRandomBuilder()
	secondPrims := record(second)
	m2, err := second.Build(ch)
	require.NoError(t, err)

	assert.Equal(t, m1.String(), m2.String())
	require.Equal(t, len(*firstPrims), len(*secondPrims))
	for i := range *firstPrims {
		assert.Equal(t, (*firstPrims)[i].Kind, (*secondPrims)[i].Kind)
	}

	// A different seed must produce a different model.
	ch2 := ch
	ch2.Seed = 8
	third := generator.NewRandomBuilder()
	m3, err := third.Build(ch2)
	require.NoError(t, err)
	assert.NotEqual(t, m1.String(), m3.String())
}

func TestRandomBuilderReset(t *testing.T) {
	t.Parallel()

	t.Run("reset emits the root primitive", func(t *testing.T) {
		t.Parallel()

		builder := generator.NewRandomBuilder()
		prims := record(builder)

		require.NoError(t, builder.Reset(testCharacteristics()))
		require.Len(t, *prims, 1)
		assert.Equal(t, generator.PrimitiveAddRoot, (*prims)[0].Kind)
	})

	t.Run("build continues a pending reset without a second root", func(t *testing.T) {
		t.Parallel()

		ch := testCharacteristics()
		builder := generator.NewRandomBuilder()
		prims := record(builder)

		require.NoError(t, builder.Reset(ch))
		_, err := builder.Build(ch)
		require.NoError(t, err)

		roots := 0
		for _, p := range *prims {
			if p.Kind == generator.PrimitiveAddRoot {
				roots++
			}
		}
		assert.Equal(t, 1, roots)
	})

	t.Run("build without reset is self-contained", func(t *testing.T) {
		t.Parallel()

		builder := generator.NewRandomBuilder()
		model, err := builder.Build(testCharacteristics())
		require.NoError(t, err)
		assert.Equal(t, testCharacteristics().Features, model.FeatureCount())
	})

	t.Run("rejects invalid characteristics", func(t *testing.T) {
		t.Parallel()

		builder := generator.NewRandomBuilder()
		err := builder.Reset(generator.Characteristics{})
		assert.ErrorIs(t, err, generator.ErrInvalidCharacteristics)
	})
}

func TestRandomBuilderHookError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("stop here")
	ch := testCharacteristics()

	builder := generator.NewRandomBuilder()
	emitted := 0
	builder.Subscribe(func(generator.Primitive) error {
		emitted++
		if emitted == 3 {
			return sentinel
		}
		return nil
	})

	_, err := builder.Build(ch)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, emitted)
}

func TestRandomBuilderStructuralFailure(t *testing.T) {
	t.Parallel()

	t.Run("no unrelated pair for a constraint", func(t *testing.T) {
		t.Parallel()

		// Two features form a single parent-child chain, so every pair is
		// related and the constraint draw must give up.
		ch := generator.Characteristics{
			Features:    2,
			Weights:     generator.Weights{Mandatory: 1},
			Constraints: 1,
			MaxProducts: 16,
			Seed:        1,
		}
		builder := generator.NewRandomBuilder()
		_, err := builder.Build(ch)
		assert.ErrorIs(t, err, generator.ErrStructural)
	})

	t.Run("single feature budget with group weights only", func(t *testing.T) {
		t.Parallel()

		ch := generator.Characteristics{
			Features:     2,
			Weights:      generator.Weights{Or: 1},
			MaxGroupSize: 3,
			MaxProducts:  16,
			Seed:         1,
		}
		builder := generator.NewRandomBuilder()
		_, err := builder.Build(ch)
		assert.ErrorIs(t, err, generator.ErrStructural)
	})
}

func TestRandomBuilderNameScheme(t *testing.T) {
	t.Parallel()

	ch := testCharacteristics()
	ch.Constraints = 0
	ch.Features = 5

	builder := generator.NewRandomBuilder(
		generator.WithNameScheme(namegen.NewSerial("feat-")),
	)
	model, err := builder.Build(ch)
	require.NoError(t, err)

	assert.Equal(t, "feat-1", model.Root().Name)
	for i, f := range model.Features() {
		assert.Equal(t, "feat-"+strconv.Itoa(i+1), f.Name)
	}
}
