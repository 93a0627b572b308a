package featuremodel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// FeatureModel is a feature tree under construction or completed. It owns
// feature identity: construction methods mint features from names, enforce
// name uniqueness, and record relations in construction order.
type FeatureModel struct {
	id          uuid.UUID
	root        Feature
	features    []Feature // construction order, root first
	byID        map[uuid.UUID]Feature
	byName      map[string]Feature
	parentOf    map[uuid.UUID]uuid.UUID
	relations   []Relation
	constraints []Constraint
}

// New creates a model containing only the root feature.
func New(rootName string) (*FeatureModel, error) {
	m := &FeatureModel{
		id:       uuid.New(),
		byID:     make(map[uuid.UUID]Feature),
		byName:   make(map[string]Feature),
		parentOf: make(map[uuid.UUID]uuid.UUID),
	}
	root, err := m.mint(rootName)
	if err != nil {
		return nil, err
	}
	m.root = root
	return m, nil
}

// ID returns the model's unique identifier, assigned at creation.
func (m *FeatureModel) ID() uuid.UUID { return m.id }

// Root returns the root feature.
func (m *FeatureModel) Root() Feature { return m.root }

// FeatureCount returns the number of features in the model, root included.
func (m *FeatureModel) FeatureCount() int { return len(m.features) }

// Features returns all features in construction order (parents before
// children). The returned slice is a copy.
func (m *FeatureModel) Features() []Feature {
	out := make([]Feature, len(m.features))
	copy(out, m.features)
	return out
}

// FeatureByName looks a feature up by its unique name.
func (m *FeatureModel) FeatureByName(name string) (Feature, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// Has reports whether f belongs to this model.
func (m *FeatureModel) Has(f Feature) bool {
	_, ok := m.byID[f.ID]
	return ok
}

// Parent returns the tree parent of f. The root (and features from other
// models) report false.
func (m *FeatureModel) Parent(f Feature) (Feature, bool) {
	pid, ok := m.parentOf[f.ID]
	if !ok {
		return Feature{}, false
	}
	return m.byID[pid], true
}

// Related reports whether one of a and b is an ancestor of the other, or
// they are the same feature. Cross-tree constraints between related features
// are degenerate, so generation policies use this to filter candidate pairs.
func (m *FeatureModel) Related(a, b Feature) bool {
	if a.ID == b.ID {
		return true
	}
	return m.ancestorOf(a, b) || m.ancestorOf(b, a)
}

func (m *FeatureModel) ancestorOf(anc, f Feature) bool {
	cur := f
	for {
		pid, ok := m.parentOf[cur.ID]
		if !ok {
			return false
		}
		if pid == anc.ID {
			return true
		}
		cur = m.byID[pid]
	}
}

// Relations returns every tree relation in construction order. The returned
// slice is a copy; child slices are shared and must not be mutated.
func (m *FeatureModel) Relations() []Relation {
	out := make([]Relation, len(m.relations))
	copy(out, m.relations)
	return out
}

// Constraints returns every cross-tree constraint in construction order.
func (m *FeatureModel) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	copy(out, m.constraints)
	return out
}

// AddMandatory attaches a mandatory child to parent and returns the minted
// feature.
func (m *FeatureModel) AddMandatory(parent Feature, childName string) (Feature, error) {
	return m.addSingle(RelationMandatory, parent, childName)
}

// AddOptional attaches an optional child to parent and returns the minted
// feature.
func (m *FeatureModel) AddOptional(parent Feature, childName string) (Feature, error) {
	return m.addSingle(RelationOptional, parent, childName)
}

// AddAlternativeGroup attaches an exactly-one-of group under parent and
// returns the minted children in the given order.
func (m *FeatureModel) AddAlternativeGroup(parent Feature, childNames []string) ([]Feature, error) {
	return m.addGroup(RelationAlternative, parent, childNames)
}

// AddOrGroup attaches an at-least-one-of group under parent and returns the
// minted children in the given order.
func (m *FeatureModel) AddOrGroup(parent Feature, childNames []string) ([]Feature, error) {
	return m.addGroup(RelationOr, parent, childNames)
}

// AddRequires records that wherever from appears, to must appear as well.
func (m *FeatureModel) AddRequires(from, to Feature) error {
	return m.addConstraint(ConstraintRequires, from, to)
}

// AddExcludes records that from and to never appear together.
func (m *FeatureModel) AddExcludes(from, to Feature) error {
	return m.addConstraint(ConstraintExcludes, from, to)
}

// Walk invokes fn for every tree relation in construction order, stopping at
// the first error. Construction order guarantees fn sees each parent before
// any of its children.
func (m *FeatureModel) Walk(fn func(Relation) error) error {
	for _, rel := range m.relations {
		if err := fn(rel); err != nil {
			return err
		}
	}
	return nil
}

// String renders the feature tree with two-space indentation followed by the
// constraint list, mainly for diagnostics and verbose CLI output.
func (m *FeatureModel) String() string {
	var b strings.Builder
	m.renderTree(&b, m.root, 0)
	for _, c := range m.constraints {
		fmt.Fprintf(&b, "%s %s %s\n", c.From.Name, c.Kind, c.To.Name)
	}
	return b.String()
}

func (m *FeatureModel) renderTree(b *strings.Builder, f Feature, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(f.Name)
	b.WriteByte('\n')
	for _, rel := range m.relations {
		if rel.Parent.ID != f.ID {
			continue
		}
		for _, child := range rel.Children {
			m.renderTree(b, child, depth+1)
		}
	}
}

func (m *FeatureModel) addSingle(kind RelationKind, parent Feature, childName string) (Feature, error) {
	if !m.Has(parent) {
		return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, parent.Name)
	}
	child, err := m.mint(childName)
	if err != nil {
		return Feature{}, err
	}
	m.parentOf[child.ID] = parent.ID
	m.relations = append(m.relations, Relation{
		Kind:     kind,
		Parent:   parent,
		Children: []Feature{child},
	})
	return child, nil
}

func (m *FeatureModel) addGroup(kind RelationKind, parent Feature, childNames []string) ([]Feature, error) {
	if !m.Has(parent) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, parent.Name)
	}
	if len(childNames) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGroupTooSmall, len(childNames))
	}
	// Validate the whole batch up front so a failed add leaves no orphans.
	seen := make(map[string]struct{}, len(childNames))
	for _, name := range childNames {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, taken := m.byName[name]; taken {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFeature, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFeature, name)
		}
		seen[name] = struct{}{}
	}
	children := make([]Feature, 0, len(childNames))
	for _, name := range childNames {
		child, err := m.mint(name)
		if err != nil {
			return nil, err
		}
		m.parentOf[child.ID] = parent.ID
		children = append(children, child)
	}
	m.relations = append(m.relations, Relation{
		Kind:     kind,
		Parent:   parent,
		Children: children,
	})
	return children, nil
}

func (m *FeatureModel) addConstraint(kind ConstraintKind, from, to Feature) error {
	if !m.Has(from) {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, from.Name)
	}
	if !m.Has(to) {
		return fmt.Errorf("%w: %q", ErrUnknownFeature, to.Name)
	}
	if from.ID == to.ID {
		return fmt.Errorf("%w: %q", ErrSelfConstraint, from.Name)
	}
	m.constraints = append(m.constraints, Constraint{Kind: kind, From: from, To: to})
	return nil
}

// mint creates a feature with a fresh identity, enforcing name uniqueness.
func (m *FeatureModel) mint(name string) (Feature, error) {
	if name == "" {
		return Feature{}, ErrEmptyName
	}
	if _, taken := m.byName[name]; taken {
		return Feature{}, fmt.Errorf("%w: %q", ErrDuplicateFeature, name)
	}
	f := Feature{ID: uuid.New(), Name: name}
	m.features = append(m.features, f)
	m.byID[f.ID] = f
	m.byName[name] = f
	return f, nil
}
