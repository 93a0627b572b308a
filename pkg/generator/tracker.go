package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Roldans/FaMA/pkg/combin"
	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/product"
)

// Tracker maintains the exact product set of a feature model under
// construction. Apply consumes one primitive at a time and mutates the
// bounded collection with the closed-form effect of that primitive, so the
// collection and count stay consistent with the partial model at every step
// without ever re-enumerating from the full model.
//
// Count always equals Products().Len(), even after a failed Apply: inserts
// made before a capacity failure are not rolled back, but the count tracks
// them. A failed Apply is terminal for the construction attempt; callers
// reset and rebuild rather than resume.
type Tracker struct {
	capacity int
	products *product.BoundedCollection
	count    int64
}

// NewTracker creates a tracker whose product collection holds at most
// maxProducts entries. It panics if maxProducts is not positive.
func NewTracker(maxProducts int) *Tracker {
	if maxProducts <= 0 {
		panic("generator: tracker capacity must be positive")
	}
	return &Tracker{capacity: maxProducts}
}

// Reset discards all products. The next primitive must be AddRoot.
func (t *Tracker) Reset() {
	t.products = nil
	t.count = 0
}

// Count returns the exact number of products of the partial model.
func (t *Tracker) Count() int64 { return t.count }

// Products returns the live product collection, or nil before the first
// AddRoot. During a generation run intermediate contents belong to an attempt
// that may still be discarded; read it only once the run has succeeded.
func (t *Tracker) Products() *product.BoundedCollection { return t.products }

// Apply applies the update rule for one construction primitive. Capacity
// overflows surface as product.ErrCapacityExceeded; malformed primitive
// streams surface as ErrBuilderContract. Both leave the collection and count
// in lock-step.
func (t *Tracker) Apply(p Primitive) error {
	if p.Kind != PrimitiveAddRoot && t.products == nil {
		return fmt.Errorf("%w: %s before add_root", ErrBuilderContract, p.Kind)
	}
	switch p.Kind {
	case PrimitiveAddRoot:
		return t.applyRoot(p.Root)
	case PrimitiveAddMandatory:
		return t.applyMandatory(p.Parent, p.Child)
	case PrimitiveAddOptional:
		return t.applyOptional(p.Parent, p.Child)
	case PrimitiveAddAlternativeGroup:
		return t.applyAlternative(p.Parent, p.Children)
	case PrimitiveAddOrGroup:
		return t.applyOr(p.Parent, p.Children)
	case PrimitiveAddExcludes:
		return t.applyExcludes(p.From, p.To)
	case PrimitiveAddRequires:
		return t.applyRequires(p.From, p.To)
	default:
		return fmt.Errorf("%w: unknown primitive kind %d", ErrBuilderContract, p.Kind)
	}
}

// applyRoot initializes the collection to the single product {root}.
func (t *Tracker) applyRoot(root featuremodel.Feature) error {
	if root.IsZero() {
		return fmt.Errorf("%w: add_root with zero feature", ErrBuilderContract)
	}
	t.products = product.NewBoundedCollection(t.capacity)
	if err := t.products.Append(product.New(root)); err != nil {
		return err
	}
	t.count = 1
	return nil
}

// applyMandatory adds child in place to every product containing parent.
// The product count never changes.
func (t *Tracker) applyMandatory(parent, child featuremodel.Feature) error {
	matched := 0
	for i := 0; i < t.products.Len(); i++ {
		p := t.products.At(i)
		if !p.Has(parent) {
			continue
		}
		if p.Has(child) {
			return t.overlapErr(PrimitiveAddMandatory, child)
		}
		p.Add(child)
		matched++
	}
	if matched == 0 {
		return t.orphanErr(PrimitiveAddMandatory, parent)
	}
	return nil
}

// applyOptional forks every product containing parent: the original stays as
// the configuration without child, the clone gains child. Count grows by the
// number of matching products.
func (t *Tracker) applyOptional(parent, child featuremodel.Feature) error {
	n := t.products.Len()
	matched := 0
	for i := 0; i < n; i++ {
		p := t.products.At(i)
		if !p.Has(parent) {
			continue
		}
		if p.Has(child) {
			return t.overlapErr(PrimitiveAddOptional, child)
		}
		matched++
		withChild := p.Clone()
		withChild.Add(child)
		if err := t.append(withChild); err != nil {
			return err
		}
	}
	if matched == 0 {
		return t.orphanErr(PrimitiveAddOptional, parent)
	}
	return nil
}

// applyAlternative splits every product containing parent into k variants,
// one per child: clones take children[1..k-1], the original takes
// children[0] last so the clones fork from the pristine product. Count grows
// by (k-1) per matching product.
func (t *Tracker) applyAlternative(parent featuremodel.Feature, children []featuremodel.Feature) error {
	if len(children) < 2 {
		return fmt.Errorf("%w: alternative group of size %d", ErrBuilderContract, len(children))
	}
	if f, dup := firstDuplicate(children); dup {
		return fmt.Errorf("%w: alternative group repeats child %q", ErrBuilderContract, f.Name)
	}
	n := t.products.Len()
	matched := 0
	for i := 0; i < n; i++ {
		p := t.products.At(i)
		if !p.Has(parent) {
			continue
		}
		if f, overlap := firstPresent(p, children); overlap {
			return t.overlapErr(PrimitiveAddAlternativeGroup, f)
		}
		matched++
		for _, child := range children[1:] {
			variant := p.Clone()
			variant.Add(child)
			if err := t.append(variant); err != nil {
				return err
			}
		}
		p.Add(children[0])
	}
	if matched == 0 {
		return t.orphanErr(PrimitiveAddAlternativeGroup, parent)
	}
	return nil
}

// applyOr expands every product containing parent into all 2^k-1 nonempty
// child subsets: clones take the singletons children[1..k-1] and, via the
// combination enumerator, every subset of size 2..k; the original takes the
// singleton children[0] last. Count grows by (2^k - 2) per matching product.
func (t *Tracker) applyOr(parent featuremodel.Feature, children []featuremodel.Feature) error {
	k := len(children)
	if k < 2 {
		return fmt.Errorf("%w: or group of size %d", ErrBuilderContract, k)
	}
	if f, dup := firstDuplicate(children); dup {
		return fmt.Errorf("%w: or group repeats child %q", ErrBuilderContract, f.Name)
	}
	n := t.products.Len()
	matched := 0
	for i := 0; i < n; i++ {
		p := t.products.At(i)
		if !p.Has(parent) {
			continue
		}
		if f, overlap := firstPresent(p, children); overlap {
			return t.overlapErr(PrimitiveAddOrGroup, f)
		}
		matched++
		for _, child := range children[1:] {
			variant := p.Clone()
			variant.Add(child)
			if err := t.append(variant); err != nil {
				return err
			}
		}
		for size := 2; size <= k; size++ {
			combos := combin.New(k, size)
			for subset, ok := combos.Next(); ok; subset, ok = combos.Next() {
				variant := p.Clone()
				for _, idx := range subset {
					variant.Add(children[idx])
				}
				if err := t.append(variant); err != nil {
					return err
				}
			}
		}
		p.Add(children[0])
	}
	if matched == 0 {
		return t.orphanErr(PrimitiveAddOrGroup, parent)
	}
	return nil
}

// applyExcludes removes every product containing both features.
func (t *Tracker) applyExcludes(from, to featuremodel.Feature) error {
	removed := t.products.RemoveIf(func(p product.Product) bool {
		return p.Has(from) && p.Has(to)
	})
	t.count -= int64(removed)
	return nil
}

// applyRequires removes every product containing from without to.
func (t *Tracker) applyRequires(from, to featuremodel.Feature) error {
	removed := t.products.RemoveIf(func(p product.Product) bool {
		return p.Has(from) && !p.Has(to)
	})
	t.count -= int64(removed)
	return nil
}

func (t *Tracker) append(p product.Product) error {
	if err := t.products.Append(p); err != nil {
		return err
	}
	t.count++
	return nil
}

func (t *Tracker) orphanErr(kind PrimitiveKind, parent featuremodel.Feature) error {
	return fmt.Errorf("%w: %s parent %q matches no product", ErrBuilderContract, kind, parent.Name)
}

func (t *Tracker) overlapErr(kind PrimitiveKind, child featuremodel.Feature) error {
	return fmt.Errorf("%w: %s child %q already present in a matching product", ErrBuilderContract, kind, child.Name)
}

func firstPresent(p product.Product, features []featuremodel.Feature) (featuremodel.Feature, bool) {
	for _, f := range features {
		if p.Has(f) {
			return f, true
		}
	}
	return featuremodel.Feature{}, false
}

func firstDuplicate(features []featuremodel.Feature) (featuremodel.Feature, bool) {
	seen := make(map[uuid.UUID]struct{}, len(features))
	for _, f := range features {
		if _, dup := seen[f.ID]; dup {
			return f, true
		}
		seen[f.ID] = struct{}{}
	}
	return featuremodel.Feature{}, false
}
