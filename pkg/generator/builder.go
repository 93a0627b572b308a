package generator

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/namegen"
)

// ModelBuilder constructs feature models from characteristics, emitting one
// Primitive per structural step to subscribed hooks, synchronously and in
// model order: root first, parents before children, constraints after the
// tree is complete.
type ModelBuilder interface {
	// Subscribe registers a hook invoked for every emitted primitive. A hook
	// error aborts construction and is returned from Reset or Build as is.
	Subscribe(Hook)

	// Reset starts a fresh construction run from ch and emits AddRoot as the
	// run's first primitive.
	Reset(ch Characteristics) error

	// Build completes the pending construction run and returns the model.
	// When no run is pending it performs a Reset itself.
	Build(ch Characteristics) (*featuremodel.FeatureModel, error)
}

// constraintDraws bounds how many random feature pairs are tried per
// cross-tree constraint before the draw is declared structurally infeasible.
const constraintDraws = 50

// RandomBuilder grows a random feature tree to the configured size: each step
// picks a uniformly random existing feature as parent and draws a relation
// kind from the configured weights. Group sizes are uniform in
// [2, MaxGroupSize], capped by the remaining feature budget. Cross-tree
// constraints are placed last, over random unrelated feature pairs.
//
// Construction is a pure function of the characteristics: the same seed
// produces the same model and the same primitive sequence. Not safe for
// concurrent use.
type RandomBuilder struct {
	names   namegen.Scheme
	hooks   []Hook
	rnd     *rand.Rand
	model   *featuremodel.FeatureModel
	parents []featuremodel.Feature
	pending bool
}

// BuilderOption configures a RandomBuilder.
type BuilderOption func(*RandomBuilder)

// WithNameScheme sets the feature-name scheme. Defaults to serial names
// ("F1", "F2", ...).
func WithNameScheme(s namegen.Scheme) BuilderOption {
	return func(b *RandomBuilder) {
		if s != nil {
			b.names = s
		}
	}
}

// NewRandomBuilder creates a RandomBuilder with the given options.
func NewRandomBuilder(opts ...BuilderOption) *RandomBuilder {
	b := &RandomBuilder{names: namegen.NewSerial("F")}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers h for all future construction runs.
func (b *RandomBuilder) Subscribe(h Hook) {
	b.hooks = append(b.hooks, h)
}

// Reset validates ch, reseeds the random stream, creates the model with its
// root feature, and emits AddRoot.
func (b *RandomBuilder) Reset(ch Characteristics) error {
	if err := ch.Validate(); err != nil {
		return err
	}
	b.rnd = rand.New(rand.NewSource(ch.Seed))
	b.names.Reset()

	model, err := featuremodel.New(b.names.Next())
	if err != nil {
		return err
	}
	b.model = model
	b.parents = []featuremodel.Feature{model.Root()}
	b.pending = true

	if err := b.emit(AddRoot(model.Root())); err != nil {
		b.pending = false
		return err
	}
	return nil
}

// Build grows the tree to ch.Features features, places ch.Constraints
// cross-tree constraints, and returns the completed model. Structural dead
// ends surface as ErrStructural.
func (b *RandomBuilder) Build(ch Characteristics) (*featuremodel.FeatureModel, error) {
	if !b.pending {
		if err := b.Reset(ch); err != nil {
			return nil, err
		}
	}
	b.pending = false

	if err := b.growTree(ch); err != nil {
		return nil, err
	}
	if err := b.placeConstraints(ch); err != nil {
		return nil, err
	}
	return b.model, nil
}

func (b *RandomBuilder) emit(p Primitive) error {
	for _, h := range b.hooks {
		if err := h(p); err != nil {
			return err
		}
	}
	return nil
}

func (b *RandomBuilder) growTree(ch Characteristics) error {
	for b.model.FeatureCount() < ch.Features {
		parent := b.parents[b.rnd.Intn(len(b.parents))]
		remaining := ch.Features - b.model.FeatureCount()

		kind, err := b.drawKind(ch.Weights, remaining)
		if err != nil {
			return err
		}

		switch kind {
		case featuremodel.RelationMandatory, featuremodel.RelationOptional:
			if err := b.addChild(kind, parent); err != nil {
				return err
			}
		default:
			maxSize := min(ch.MaxGroupSize, remaining)
			size := 2 + b.rnd.Intn(maxSize-1)
			if err := b.addGroup(kind, parent, size); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawKind samples a relation kind from the weights. With only one feature
// left in the budget the group kinds are masked out; if that leaves no
// weight, the draw is structurally stuck.
func (b *RandomBuilder) drawKind(w Weights, remaining int) (featuremodel.RelationKind, error) {
	mandatory, optional, alternative, or := w.Mandatory, w.Optional, w.Alternative, w.Or
	if remaining < 2 {
		alternative, or = 0, 0
	}
	total := mandatory + optional + alternative + or
	if total <= 0 {
		return 0, fmt.Errorf("%w: one feature left in the budget but only group weights configured", ErrStructural)
	}

	r := b.rnd.Intn(total)
	switch {
	case r < mandatory:
		return featuremodel.RelationMandatory, nil
	case r < mandatory+optional:
		return featuremodel.RelationOptional, nil
	case r < mandatory+optional+alternative:
		return featuremodel.RelationAlternative, nil
	default:
		return featuremodel.RelationOr, nil
	}
}

func (b *RandomBuilder) addChild(kind featuremodel.RelationKind, parent featuremodel.Feature) error {
	name := b.names.Next()

	var child featuremodel.Feature
	var err error
	if kind == featuremodel.RelationMandatory {
		child, err = b.model.AddMandatory(parent, name)
	} else {
		child, err = b.model.AddOptional(parent, name)
	}
	if err != nil {
		return err
	}

	prim := AddMandatory(parent, child)
	if kind == featuremodel.RelationOptional {
		prim = AddOptional(parent, child)
	}
	if err := b.emit(prim); err != nil {
		return err
	}
	b.parents = append(b.parents, child)
	return nil
}

func (b *RandomBuilder) addGroup(kind featuremodel.RelationKind, parent featuremodel.Feature, size int) error {
	names := make([]string, size)
	for i := range names {
		names[i] = b.names.Next()
	}

	var children []featuremodel.Feature
	var err error
	if kind == featuremodel.RelationAlternative {
		children, err = b.model.AddAlternativeGroup(parent, names)
	} else {
		children, err = b.model.AddOrGroup(parent, names)
	}
	if err != nil {
		return err
	}

	prim := AddAlternativeGroup(parent, children)
	if kind == featuremodel.RelationOr {
		prim = AddOrGroup(parent, children)
	}
	if err := b.emit(prim); err != nil {
		return err
	}
	b.parents = append(b.parents, children...)
	return nil
}

// placeConstraints draws ch.Constraints distinct cross-tree constraints over
// feature pairs that are neither identical nor in an ancestor relation.
// Pairs are redrawn a bounded number of times; exhaustion means this model
// shape cannot host the requested constraints and the attempt is retryable.
func (b *RandomBuilder) placeConstraints(ch Characteristics) error {
	if ch.Constraints == 0 {
		return nil
	}

	type pairKey struct {
		kind     featuremodel.ConstraintKind
		from, to uuid.UUID
	}
	placed := make(map[pairKey]struct{}, ch.Constraints)
	features := b.model.Features()

	for n := 0; n < ch.Constraints; n++ {
		ok := false
		for draw := 0; draw < constraintDraws; draw++ {
			from := features[b.rnd.Intn(len(features))]
			to := features[b.rnd.Intn(len(features))]
			if b.model.Related(from, to) {
				continue
			}

			kind := featuremodel.ConstraintRequires
			if b.rnd.Intn(2) == 0 {
				kind = featuremodel.ConstraintExcludes
			}

			key := pairKey{kind: kind, from: from.ID, to: to.ID}
			if kind == featuremodel.ConstraintExcludes && bytes.Compare(key.from[:], key.to[:]) > 0 {
				// Excludes is symmetric; normalize the key so (a,b) and
				// (b,a) count as the same constraint.
				key.from, key.to = key.to, key.from
			}
			if _, dup := placed[key]; dup {
				continue
			}

			var prim Primitive
			if kind == featuremodel.ConstraintExcludes {
				err := b.model.AddExcludes(from, to)
				if err != nil {
					return err
				}
				prim = AddExcludes(from, to)
			} else {
				err := b.model.AddRequires(from, to)
				if err != nil {
					return err
				}
				prim = AddRequires(from, to)
			}
			if err := b.emit(prim); err != nil {
				return err
			}

			placed[key] = struct{}{}
			ok = true
			break
		}
		if !ok {
			return fmt.Errorf("%w: no valid constraint pair after %d draws", ErrStructural, constraintDraws)
		}
	}
	return nil
}
