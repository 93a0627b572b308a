package product

import (
	"maps"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Roldans/FaMA/pkg/featuremodel"
)

// Product is an unordered set of feature references representing one valid
// configuration. The map header makes assignment cheap, but assigned copies
// share storage; use Clone for an independent product.
type Product map[uuid.UUID]featuremodel.Feature

// New creates a product containing the given features.
func New(features ...featuremodel.Feature) Product {
	p := make(Product, len(features))
	for _, f := range features {
		p[f.ID] = f
	}
	return p
}

// Has reports whether the product includes f.
func (p Product) Has(f featuremodel.Feature) bool {
	_, ok := p[f.ID]
	return ok
}

// Add includes f in the product. Adding a feature twice is a no-op.
func (p Product) Add(f featuremodel.Feature) {
	p[f.ID] = f
}

// Clone returns an independent copy of the product. Feature values are
// shared identities, so the copy is shallow yet fully isolated.
func (p Product) Clone() Product {
	return maps.Clone(p)
}

// Len returns the number of features in the product.
func (p Product) Len() int {
	return len(p)
}

// Features returns the product's features sorted by name, giving callers a
// deterministic view of the unordered set.
func (p Product) Features() []featuremodel.Feature {
	out := make([]featuremodel.Feature, 0, len(p))
	for _, f := range p {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted feature names of the product.
func (p Product) Names() []string {
	names := make([]string, 0, len(p))
	for _, f := range p {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Equal reports set equality with other, compared by feature identity.
func (p Product) Equal(other Product) bool {
	if len(p) != len(other) {
		return false
	}
	for id := range p {
		if _, ok := other[id]; !ok {
			return false
		}
	}
	return true
}

// String renders the product as "{A, B, C}" with names in sorted order.
func (p Product) String() string {
	return "{" + strings.Join(p.Names(), ", ") + "}"
}
