package featuremodel

import (
	"github.com/google/uuid"
)

// Feature is an opaque identity within a feature model: a stable ID plus a
// human-readable name. Features are plain values; products and relations
// reference them without owning them.
type Feature struct {
	ID   uuid.UUID
	Name string
}

// IsZero reports whether f is the zero Feature (no identity).
func (f Feature) IsZero() bool {
	return f.ID == uuid.Nil
}

// String returns the feature name for logs and error messages.
func (f Feature) String() string {
	return f.Name
}

// RelationKind identifies the semantics of a parent-child relation.
type RelationKind uint8

const (
	// RelationMandatory marks a child present whenever its parent is.
	RelationMandatory RelationKind = iota + 1
	// RelationOptional marks a child freely present or absent under its parent.
	RelationOptional
	// RelationAlternative marks a group where exactly one child accompanies the parent.
	RelationAlternative
	// RelationOr marks a group where at least one child accompanies the parent.
	RelationOr
)

// String returns the conventional relation name.
func (k RelationKind) String() string {
	switch k {
	case RelationMandatory:
		return "mandatory"
	case RelationOptional:
		return "optional"
	case RelationAlternative:
		return "alternative"
	case RelationOr:
		return "or"
	default:
		return "unknown"
	}
}

// Relation connects a parent feature to one child (mandatory, optional) or a
// group of children (alternative, or).
type Relation struct {
	Kind     RelationKind
	Parent   Feature
	Children []Feature
}

// ConstraintKind identifies the semantics of a cross-tree constraint.
type ConstraintKind uint8

const (
	// ConstraintRequires demands To wherever From appears.
	ConstraintRequires ConstraintKind = iota + 1
	// ConstraintExcludes forbids From and To from appearing together.
	ConstraintExcludes
)

// String returns the conventional constraint name.
func (k ConstraintKind) String() string {
	switch k {
	case ConstraintRequires:
		return "requires"
	case ConstraintExcludes:
		return "excludes"
	default:
		return "unknown"
	}
}

// Constraint is a cross-tree constraint between two features of the model.
type Constraint struct {
	Kind ConstraintKind
	From Feature
	To   Feature
}
