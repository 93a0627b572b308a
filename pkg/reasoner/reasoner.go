package reasoner

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/Roldans/FaMA/pkg/featuremodel"
	"github.com/Roldans/FaMA/pkg/product"
)

// DefaultFeatureLimit is the largest model New accepts without an explicit
// WithFeatureLimit, about eight million subset checks.
const DefaultFeatureLimit = 24

// Analyzer answers analysis questions by enumerating feature subsets.
// Analyzers are stateless and safe for concurrent use.
type Analyzer struct {
	limit int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithFeatureLimit raises or lowers the feature limit. Values outside
// [1, 62] are ignored; the subset mask is a uint64.
func WithFeatureLimit(n int) Option {
	return func(a *Analyzer) {
		if n >= 1 && n <= 62 {
			a.limit = n
		}
	}
}

// New creates an Analyzer with the given options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{limit: DefaultFeatureLimit}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Products returns every valid configuration of m, in enumeration order.
func (a *Analyzer) Products(m *featuremodel.FeatureModel) ([]product.Product, error) {
	var out []product.Product
	err := a.enumerate(m, func(selected []bool, features []featuremodel.Feature) bool {
		p := product.New()
		for i, ok := range selected {
			if ok {
				p.Add(features[i])
			}
		}
		out = append(out, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NumberOfProducts returns the exact number of valid configurations of m.
func (a *Analyzer) NumberOfProducts(m *featuremodel.FeatureModel) (int64, error) {
	var count int64
	err := a.enumerate(m, func([]bool, []featuremodel.Feature) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Valid reports whether m has at least one valid configuration.
func (a *Analyzer) Valid(m *featuremodel.FeatureModel) (bool, error) {
	found := false
	err := a.enumerate(m, func([]bool, []featuremodel.Feature) bool {
		found = true
		return false
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Variability returns the ratio of valid configurations to the 2^n - 1
// conceivable nonempty feature subsets of an n-feature model.
func (a *Analyzer) Variability(m *featuremodel.FeatureModel) (float64, error) {
	count, err := a.NumberOfProducts(m)
	if err != nil {
		return 0, err
	}
	denom := math.Pow(2, float64(m.FeatureCount())) - 1
	return float64(count) / denom, nil
}

// enumerate visits every valid configuration until visit returns false. The
// root is always selected; the mask ranges over the remaining features.
func (a *Analyzer) enumerate(m *featuremodel.FeatureModel, visit func([]bool, []featuremodel.Feature) bool) error {
	features := m.Features()
	n := len(features)
	if n > a.limit {
		return fmt.Errorf("%w: %d features over the limit of %d", ErrModelTooLarge, n, a.limit)
	}

	idx := make(map[uuid.UUID]int, n)
	for i, f := range features {
		idx[f.ID] = i
	}

	// Features arrive in construction order, root first, so every parent
	// index is already assigned when its child is processed.
	parentIdx := make([]int, n)
	parentIdx[0] = -1
	for i := 1; i < n; i++ {
		parent, ok := m.Parent(features[i])
		if !ok {
			return fmt.Errorf("feature %q has no parent", features[i].Name)
		}
		parentIdx[i] = idx[parent.ID]
	}

	relations := m.Relations()
	constraints := m.Constraints()

	selected := make([]bool, n)
	selected[0] = true
	total := uint64(1) << uint(n-1)
	for mask := uint64(0); mask < total; mask++ {
		for i := 1; i < n; i++ {
			selected[i] = mask&(uint64(1)<<uint(i-1)) != 0
		}
		if !satisfies(selected, parentIdx, relations, constraints, idx) {
			continue
		}
		if !visit(selected, features) {
			return nil
		}
	}
	return nil
}

// satisfies checks one candidate configuration against the model semantics:
// children imply their parents, a selected parent enforces its relation
// (mandatory child present, exactly one alternative child, at least one or
// child), and every cross-tree constraint holds.
func satisfies(
	selected []bool,
	parentIdx []int,
	relations []featuremodel.Relation,
	constraints []featuremodel.Constraint,
	idx map[uuid.UUID]int,
) bool {
	for i := 1; i < len(selected); i++ {
		if selected[i] && !selected[parentIdx[i]] {
			return false
		}
	}

	for _, rel := range relations {
		if !selected[idx[rel.Parent.ID]] {
			continue
		}
		switch rel.Kind {
		case featuremodel.RelationMandatory:
			if !selected[idx[rel.Children[0].ID]] {
				return false
			}
		case featuremodel.RelationOptional:
			// Free choice either way.
		case featuremodel.RelationAlternative:
			picked := 0
			for _, c := range rel.Children {
				if selected[idx[c.ID]] {
					picked++
				}
			}
			if picked != 1 {
				return false
			}
		case featuremodel.RelationOr:
			picked := false
			for _, c := range rel.Children {
				if selected[idx[c.ID]] {
					picked = true
					break
				}
			}
			if !picked {
				return false
			}
		}
	}

	for _, c := range constraints {
		from, to := selected[idx[c.From.ID]], selected[idx[c.To.ID]]
		switch c.Kind {
		case featuremodel.ConstraintExcludes:
			if from && to {
				return false
			}
		case featuremodel.ConstraintRequires:
			if from && !to {
				return false
			}
		}
	}
	return true
}

var defaultAnalyzer = New()

// Products returns every valid configuration of m using the default analyzer.
func Products(m *featuremodel.FeatureModel) ([]product.Product, error) {
	return defaultAnalyzer.Products(m)
}

// NumberOfProducts returns the exact configuration count of m using the
// default analyzer.
func NumberOfProducts(m *featuremodel.FeatureModel) (int64, error) {
	return defaultAnalyzer.NumberOfProducts(m)
}

// Valid reports whether m has at least one valid configuration using the
// default analyzer.
func Valid(m *featuremodel.FeatureModel) (bool, error) {
	return defaultAnalyzer.Valid(m)
}

// Variability returns the realized-to-conceivable configuration ratio of m
// using the default analyzer.
func Variability(m *featuremodel.FeatureModel) (float64, error) {
	return defaultAnalyzer.Variability(m)
}
