package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/product"
)

func testModel(t *testing.T) (root, a, b featuremodel.Feature) {
	t.Helper()
	m, err := featuremodel.New("Root")
	require.NoError(t, err)
	a, err = m.AddOptional(m.Root(), "A")
	require.NoError(t, err)
	b, err = m.AddOptional(m.Root(), "B")
	require.NoError(t, err)
	return m.Root(), a, b
}

func TestProduct(t *testing.T) {
	t.Parallel()

	t.Run("new and membership", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		p := product.New(root, a)
		assert.Equal(t, 2, p.Len())
		assert.True(t, p.Has(root))
		assert.True(t, p.Has(a))
		assert.False(t, p.Has(b))
	})

	t.Run("add is idempotent", func(t *testing.T) {
		t.Parallel()
		root, a, _ := testModel(t)

		p := product.New(root)
		p.Add(a)
		p.Add(a)
		assert.Equal(t, 2, p.Len())
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		p := product.New(root, a)
		clone := p.Clone()
		clone.Add(b)

		assert.True(t, clone.Has(b))
		assert.False(t, p.Has(b))
		assert.Equal(t, 2, p.Len())
		assert.Equal(t, 3, clone.Len())
	})

	t.Run("names are sorted", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		p := product.New(b, root, a)
		assert.Equal(t, []string{"A", "B", "Root"}, p.Names())
		assert.Equal(t, "{A, B, Root}", p.String())

		features := p.Features()
		require.Len(t, features, 3)
		assert.Equal(t, "A", features[0].Name)
		assert.Equal(t, "Root", features[2].Name)
	})

	t.Run("equality is by feature identity", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		assert.True(t, product.New(root, a).Equal(product.New(a, root)))
		assert.False(t, product.New(root, a).Equal(product.New(root, b)))
		assert.False(t, product.New(root).Equal(product.New(root, a)))
		assert.True(t, product.New().Equal(product.New()))
	})
}

func TestBoundedCollection(t *testing.T) {
	t.Parallel()

	t.Run("append within capacity", func(t *testing.T) {
		t.Parallel()
		root, a, _ := testModel(t)

		c := product.NewBoundedCollection(2)
		require.NoError(t, c.Append(product.New(root)))
		require.NoError(t, c.Append(product.New(root, a)))
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 2, c.Cap())
	})

	t.Run("append past capacity fails and leaves collection intact", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		c := product.NewBoundedCollection(2)
		require.NoError(t, c.Append(product.New(root)))
		require.NoError(t, c.Append(product.New(root, a)))

		err := c.Append(product.New(root, b))
		require.ErrorIs(t, err, product.ErrCapacityExceeded)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		c := product.NewBoundedCollection(10)
		require.NoError(t, c.Append(product.New(root)))
		require.NoError(t, c.Append(product.New(root, a)))
		require.NoError(t, c.Append(product.New(root, b)))

		all := c.All()
		require.Len(t, all, 3)
		assert.Equal(t, []string{"Root"}, all[0].Names())
		assert.Equal(t, []string{"A", "Root"}, all[1].Names())
		assert.Equal(t, []string{"B", "Root"}, all[2].Names())
		assert.Equal(t, all[1], c.At(1))
	})

	t.Run("remove if", func(t *testing.T) {
		t.Parallel()
		root, a, b := testModel(t)

		c := product.NewBoundedCollection(10)
		require.NoError(t, c.Append(product.New(root)))
		require.NoError(t, c.Append(product.New(root, a)))
		require.NoError(t, c.Append(product.New(root, b)))
		require.NoError(t, c.Append(product.New(root, a, b)))

		removed := c.RemoveIf(func(p product.Product) bool {
			return p.Has(a) && p.Has(b)
		})
		assert.Equal(t, 1, removed)
		assert.Equal(t, 3, c.Len())
		for _, p := range c.All() {
			assert.False(t, p.Has(a) && p.Has(b))
		}

		// Removal keeps survivor order.
		assert.Equal(t, []string{"Root"}, c.At(0).Names())
		assert.Equal(t, []string{"A", "Root"}, c.At(1).Names())
		assert.Equal(t, []string{"B", "Root"}, c.At(2).Names())
	})

	t.Run("remove if with no matches", func(t *testing.T) {
		t.Parallel()
		root, _, _ := testModel(t)

		c := product.NewBoundedCollection(4)
		require.NoError(t, c.Append(product.New(root)))
		removed := c.RemoveIf(func(product.Product) bool { return false })
		assert.Zero(t, removed)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("capacity freed by removal can be reused", func(t *testing.T) {
		t.Parallel()
		root, a, _ := testModel(t)

		c := product.NewBoundedCollection(1)
		require.NoError(t, c.Append(product.New(root)))
		require.ErrorIs(t, c.Append(product.New(root, a)), product.ErrCapacityExceeded)

		c.RemoveIf(func(product.Product) bool { return true })
		assert.Zero(t, c.Len())
		require.NoError(t, c.Append(product.New(root, a)))
	})

	t.Run("panics on non-positive capacity", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { product.NewBoundedCollection(0) })
		assert.Panics(t, func() { product.NewBoundedCollection(-5) })
	})
}
