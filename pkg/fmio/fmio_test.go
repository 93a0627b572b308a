package fmio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/fmio"
	"github.com/Roldans/FaMA/pkg/generator"
	"github.com/Roldans/FaMA/pkg/product"
)

// buildModel assembles a model exercising every relation and constraint kind.
func buildModel(t *testing.T) *featuremodel.FeatureModel {
	t.Helper()

	m, err := featuremodel.New("R")
	require.NoError(t, err)

	mand, err := m.AddMandatory(m.Root(), "M")
	require.NoError(t, err)
	opt, err := m.AddOptional(m.Root(), "A")
	require.NoError(t, err)
	alt, err := m.AddAlternativeGroup(opt, []string{"X", "Y"})
	require.NoError(t, err)
	or, err := m.AddOrGroup(m.Root(), []string{"P", "Q"})
	require.NoError(t, err)

	require.NoError(t, m.AddExcludes(alt[0], or[0]))
	require.NoError(t, m.AddRequires(opt, mand))
	return m
}

func TestModelRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("full model survives a round trip", func(t *testing.T) {
		t.Parallel()

		m := buildModel(t)

		var buf bytes.Buffer
		require.NoError(t, fmio.WriteModel(&buf, m))

		out := buf.String()
		assert.Contains(t, out, `<featuremodel id="`)
		assert.Contains(t, out, `<mandatory>`)
		assert.Contains(t, out, `<optional>`)
		assert.Contains(t, out, `<alternative>`)
		assert.Contains(t, out, `<or>`)
		assert.Contains(t, out, `<excludes from="X" to="P">`)
		assert.Contains(t, out, `<requires from="A" to="M">`)

		back, err := fmio.ReadModel(&buf)
		require.NoError(t, err)
		assert.Equal(t, m.String(), back.String())
		assert.Equal(t, m.FeatureCount(), back.FeatureCount())
		assert.Len(t, back.Constraints(), 2)
	})

	t.Run("root only model", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("solo")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, fmio.WriteModel(&buf, m))

		back, err := fmio.ReadModel(&buf)
		require.NoError(t, err)
		assert.Equal(t, "solo", back.Root().Name)
		assert.Equal(t, 1, back.FeatureCount())
		assert.Empty(t, back.Constraints())
	})

	t.Run("read assigns a fresh identity", func(t *testing.T) {
		t.Parallel()

		m := buildModel(t)
		var buf bytes.Buffer
		require.NoError(t, fmio.WriteModel(&buf, m))

		back, err := fmio.ReadModel(&buf)
		require.NoError(t, err)
		assert.NotEqual(t, m.ID(), back.ID())
	})
}

func TestReadModelRejects(t *testing.T) {
	t.Parallel()

	t.Run("unknown relation element", func(t *testing.T) {
		t.Parallel()

		doc := `<featuremodel id="x"><feature name="R"><banana><feature name="B"/></banana></feature></featuremodel>`
		_, err := fmio.ReadModel(strings.NewReader(doc))
		assert.ErrorIs(t, err, fmio.ErrUnknownElement)
	})

	t.Run("unknown constraint element", func(t *testing.T) {
		t.Parallel()

		doc := `<featuremodel id="x"><feature name="R"><optional><feature name="A"/></optional></feature>` +
			`<constraints><implies from="A" to="R"/></constraints></featuremodel>`
		_, err := fmio.ReadModel(strings.NewReader(doc))
		assert.ErrorIs(t, err, fmio.ErrUnknownElement)
	})

	t.Run("duplicate feature name", func(t *testing.T) {
		t.Parallel()

		doc := `<featuremodel id="x"><feature name="R"><optional><feature name="R"/></optional></feature></featuremodel>`
		_, err := fmio.ReadModel(strings.NewReader(doc))
		assert.ErrorIs(t, err, featuremodel.ErrDuplicateFeature)
	})

	t.Run("constraint endpoint not in the tree", func(t *testing.T) {
		t.Parallel()

		doc := `<featuremodel id="x"><feature name="R"><optional><feature name="A"/></optional></feature>` +
			`<constraints><excludes from="A" to="Z"/></constraints></featuremodel>`
		_, err := fmio.ReadModel(strings.NewReader(doc))
		assert.ErrorIs(t, err, featuremodel.ErrUnknownFeature)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := fmio.ReadModel(strings.NewReader(`<featuremodel`))
		assert.Error(t, err)
	})
}

func TestCharacteristicsRoundTrip(t *testing.T) {
	t.Parallel()

	ch := generator.Characteristics{
		Features:     20,
		Weights:      generator.Weights{Mandatory: 10, Optional: 40, Alternative: 30, Or: 20},
		MaxGroupSize: 5,
		Constraints:  4,
		MaxProducts:  25000,
		Seed:         987654321,
		MaxAttempts:  250,
	}

	var buf bytes.Buffer
	require.NoError(t, fmio.WriteCharacteristics(&buf, ch))

	out := buf.String()
	assert.Contains(t, out, "features: 20")
	assert.Contains(t, out, "max_products: 25000")
	assert.Contains(t, out, "mandatory: 10")

	back, err := fmio.ReadCharacteristics(&buf)
	require.NoError(t, err)
	assert.Equal(t, ch, back)
}

func TestProductsRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := featuremodel.New("R")
	require.NoError(t, err)
	a, err := m.AddOptional(m.Root(), "A")
	require.NoError(t, err)

	coll := product.NewBoundedCollection(8)
	require.NoError(t, coll.Append(product.New(m.Root())))
	require.NoError(t, coll.Append(product.New(m.Root(), a)))

	var buf bytes.Buffer
	require.NoError(t, fmio.WriteProducts(&buf, coll))

	back, err := fmio.ReadProducts(&buf, m)
	require.NoError(t, err)
	assert.Equal(t, 8, back.Cap())
	require.Equal(t, 2, back.Len())
	assert.Equal(t, "{R}", back.At(0).String())
	assert.Equal(t, "{A, R}", back.At(1).String())
}

func TestReadProductsRejects(t *testing.T) {
	t.Parallel()

	model := func(t *testing.T) *featuremodel.FeatureModel {
		t.Helper()
		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddOptional(m.Root(), "A")
		require.NoError(t, err)
		return m
	}

	t.Run("count mismatch", func(t *testing.T) {
		t.Parallel()

		doc := "capacity: 4\ncount: 3\nproducts:\n  - [R]\n"
		_, err := fmio.ReadProducts(strings.NewReader(doc), model(t))
		assert.ErrorIs(t, err, fmio.ErrInvalidCorpus)
	})

	t.Run("unknown feature name", func(t *testing.T) {
		t.Parallel()

		doc := "capacity: 4\ncount: 1\nproducts:\n  - [Z]\n"
		_, err := fmio.ReadProducts(strings.NewReader(doc), model(t))
		assert.ErrorIs(t, err, fmio.ErrInvalidCorpus)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		t.Parallel()

		doc := "capacity: 0\ncount: 0\nproducts: []\n"
		_, err := fmio.ReadProducts(strings.NewReader(doc), model(t))
		assert.ErrorIs(t, err, fmio.ErrInvalidCorpus)
	})

	t.Run("corpus over its own capacity", func(t *testing.T) {
		t.Parallel()

		doc := "capacity: 1\ncount: 2\nproducts:\n  - [R]\n  - [A, R]\n"
		_, err := fmio.ReadProducts(strings.NewReader(doc), model(t))
		assert.ErrorIs(t, err, product.ErrCapacityExceeded)
	})
}
