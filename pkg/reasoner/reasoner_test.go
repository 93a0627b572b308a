package reasoner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/product"
	"github.com/Roldans/FaMA/pkg/reasoner"
)

func render(products []product.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.String())
	}
	return out
}

func TestAnalyzerTreeSemantics(t *testing.T) {
	t.Parallel()

	t.Run("root only", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.Equal(t, []string{"{R}"}, render(products))

		valid, err := reasoner.Valid(m)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("mandatory child is always selected", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddMandatory(m.Root(), "M")
		require.NoError(t, err)

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.Equal(t, []string{"{M, R}"}, render(products))
	})

	t.Run("optional child forks the configuration", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddOptional(m.Root(), "A")
		require.NoError(t, err)

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"{R}", "{A, R}"}, render(products))
	})

	t.Run("alternative selects exactly one child", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddAlternativeGroup(m.Root(), []string{"A", "B", "C"})
		require.NoError(t, err)

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"{A, R}", "{B, R}", "{C, R}"}, render(products))
	})

	t.Run("or selects any nonempty child subset", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddOrGroup(m.Root(), []string{"A", "B"})
		require.NoError(t, err)

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"{A, R}", "{B, R}", "{A, B, R}"}, render(products))
	})

	t.Run("deselected parent pulls its subtree out", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		a, err := m.AddOptional(m.Root(), "A")
		require.NoError(t, err)
		_, err = m.AddMandatory(a, "A1")
		require.NoError(t, err)

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"{R}", "{A, A1, R}"}, render(products))
	})
}

func TestAnalyzerConstraints(t *testing.T) {
	t.Parallel()

	twoOptional := func(t *testing.T) (*featuremodel.FeatureModel, featuremodel.Feature, featuremodel.Feature) {
		t.Helper()
		m, err := featuremodel.New("R")
		require.NoError(t, err)
		a, err := m.AddOptional(m.Root(), "A")
		require.NoError(t, err)
		b, err := m.AddOptional(m.Root(), "B")
		require.NoError(t, err)
		return m, a, b
	}

	t.Run("excludes drops co-selection", func(t *testing.T) {
		t.Parallel()

		m, a, b := twoOptional(t)
		require.NoError(t, m.AddExcludes(a, b))

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"{R}", "{A, R}", "{B, R}"}, render(products))
	})

	t.Run("requires forces the target along", func(t *testing.T) {
		t.Parallel()

		m, a, b := twoOptional(t)
		require.NoError(t, m.AddRequires(a, b))

		products, err := reasoner.Products(m)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"{R}", "{B, R}", "{A, B, R}"}, render(products))
	})

	t.Run("contradictory constraints void the model", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		mand, err := m.AddMandatory(m.Root(), "M")
		require.NoError(t, err)
		require.NoError(t, m.AddExcludes(m.Root(), mand))

		count, err := reasoner.NumberOfProducts(m)
		require.NoError(t, err)
		assert.Zero(t, count)

		valid, err := reasoner.Valid(m)
		require.NoError(t, err)
		assert.False(t, valid)

		variability, err := reasoner.Variability(m)
		require.NoError(t, err)
		assert.Zero(t, variability)
	})
}

func TestAnalyzerMetrics(t *testing.T) {
	t.Parallel()

	t.Run("number of products", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddOptional(m.Root(), "A")
		require.NoError(t, err)
		_, err = m.AddOrGroup(m.Root(), []string{"B", "C"})
		require.NoError(t, err)

		// Or group forces one of B/C (3 ways), A stays free: 3*2 = 6.
		count, err := reasoner.NumberOfProducts(m)
		require.NoError(t, err)
		assert.Equal(t, int64(6), count)
	})

	t.Run("variability against the full subset space", func(t *testing.T) {
		t.Parallel()

		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddOptional(m.Root(), "A")
		require.NoError(t, err)

		variability, err := reasoner.Variability(m)
		require.NoError(t, err)
		assert.InDelta(t, 2.0/3.0, variability, 1e-12)
	})
}

func TestAnalyzerFeatureLimit(t *testing.T) {
	t.Parallel()

	build := func(t *testing.T) *featuremodel.FeatureModel {
		t.Helper()
		m, err := featuremodel.New("R")
		require.NoError(t, err)
		_, err = m.AddOptional(m.Root(), "A")
		require.NoError(t, err)
		_, err = m.AddOptional(m.Root(), "B")
		require.NoError(t, err)
		return m
	}

	t.Run("models over the limit are refused", func(t *testing.T) {
		t.Parallel()

		analyzer := reasoner.New(reasoner.WithFeatureLimit(2))
		m := build(t)

		_, err := analyzer.Products(m)
		assert.ErrorIs(t, err, reasoner.ErrModelTooLarge)
		_, err = analyzer.NumberOfProducts(m)
		assert.ErrorIs(t, err, reasoner.ErrModelTooLarge)
		_, err = analyzer.Valid(m)
		assert.ErrorIs(t, err, reasoner.ErrModelTooLarge)
		_, err = analyzer.Variability(m)
		assert.ErrorIs(t, err, reasoner.ErrModelTooLarge)
	})

	t.Run("out of range limits fall back to the default", func(t *testing.T) {
		t.Parallel()

		analyzer := reasoner.New(reasoner.WithFeatureLimit(0), reasoner.WithFeatureLimit(100))
		count, err := analyzer.NumberOfProducts(build(t))
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})
}
