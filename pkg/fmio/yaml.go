package fmio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/generator"
	"github.com/Roldans/FaMA/pkg/product"
)

// WriteCharacteristics renders a generation profile as YAML.
func WriteCharacteristics(w io.Writer, ch generator.Characteristics) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ch); err != nil {
		return err
	}
	return enc.Close()
}

// ReadCharacteristics loads a generation profile. The profile is returned as
// written; validation happens when it is fed to a builder or driver.
func ReadCharacteristics(r io.Reader) (generator.Characteristics, error) {
	var ch generator.Characteristics
	if err := yaml.NewDecoder(r).Decode(&ch); err != nil {
		return generator.Characteristics{}, fmt.Errorf("decode characteristics: %w", err)
	}
	return ch, nil
}

// productsDoc is the YAML shape of a product corpus: feature names per
// product, plus the collection's capacity and count for integrity checks.
type productsDoc struct {
	Capacity int        `yaml:"capacity"`
	Count    int64      `yaml:"count"`
	Products [][]string `yaml:"products"`
}

// WriteProducts renders a product collection as YAML, features by name in
// sorted order.
func WriteProducts(w io.Writer, products *product.BoundedCollection) error {
	doc := productsDoc{
		Capacity: products.Cap(),
		Count:    int64(products.Len()),
		Products: make([][]string, 0, products.Len()),
	}
	for _, p := range products.All() {
		doc.Products = append(doc.Products, p.Names())
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ReadProducts loads a product corpus against the model it was produced
// from, resolving feature names to the model's features. The returned
// collection keeps the corpus capacity.
func ReadProducts(r io.Reader, m *featuremodel.FeatureModel) (*product.BoundedCollection, error) {
	var doc productsDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if doc.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d is not positive", ErrInvalidCorpus, doc.Capacity)
	}
	if doc.Count != int64(len(doc.Products)) {
		return nil, fmt.Errorf("%w: count %d but %d products", ErrInvalidCorpus, doc.Count, len(doc.Products))
	}

	out := product.NewBoundedCollection(doc.Capacity)
	for _, names := range doc.Products {
		p := product.New()
		for _, name := range names {
			f, ok := m.FeatureByName(name)
			if !ok {
				return nil, fmt.Errorf("%w: feature %q not in model", ErrInvalidCorpus, name)
			}
			p.Add(f)
		}
		if err := out.Append(p); err != nil {
			return nil, err
		}
	}
	return out, nil
}
