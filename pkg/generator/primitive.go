package generator

import (
	"github.com/Roldans/FaMA/pkg/featuremodel"
)

// PrimitiveKind tags the seven construction events a model builder can emit.
type PrimitiveKind uint8

const (
	PrimitiveAddRoot PrimitiveKind = iota + 1
	PrimitiveAddMandatory
	PrimitiveAddOptional
	PrimitiveAddAlternativeGroup
	PrimitiveAddOrGroup
	PrimitiveAddExcludes
	PrimitiveAddRequires
)

// String returns the primitive kind name for logs and errors.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveAddRoot:
		return "add_root"
	case PrimitiveAddMandatory:
		return "add_mandatory"
	case PrimitiveAddOptional:
		return "add_optional"
	case PrimitiveAddAlternativeGroup:
		return "add_alternative_group"
	case PrimitiveAddOrGroup:
		return "add_or_group"
	case PrimitiveAddExcludes:
		return "add_excludes"
	case PrimitiveAddRequires:
		return "add_requires"
	default:
		return "unknown"
	}
}

// Primitive is one model-construction step as a tagged union: Kind selects
// which fields are meaningful. Builders emit primitives in model order (root
// first, parents before children, constraints after the tree), exactly once
// each.
type Primitive struct {
	Kind PrimitiveKind

	// Root is set for AddRoot.
	Root featuremodel.Feature

	// Parent and Child are set for AddMandatory and AddOptional; Parent and
	// Children for the group primitives.
	Parent   featuremodel.Feature
	Child    featuremodel.Feature
	Children []featuremodel.Feature

	// From and To are set for the constraint primitives.
	From featuremodel.Feature
	To   featuremodel.Feature
}

// Hook consumes one primitive. Builders invoke hooks synchronously, in
// emission order; a non-nil error aborts construction and is returned from
// Build unchanged.
type Hook func(Primitive) error

// AddRoot is the mandatory first primitive of every construction run.
func AddRoot(root featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddRoot, Root: root}
}

// AddMandatory attaches child to parent in every configuration that selects
// parent.
func AddMandatory(parent, child featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddMandatory, Parent: parent, Child: child}
}

// AddOptional attaches child to parent as a free choice.
func AddOptional(parent, child featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddOptional, Parent: parent, Child: child}
}

// AddAlternativeGroup attaches an exactly-one-of group under parent.
func AddAlternativeGroup(parent featuremodel.Feature, children []featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddAlternativeGroup, Parent: parent, Children: children}
}

// AddOrGroup attaches an at-least-one-of group under parent.
func AddOrGroup(parent featuremodel.Feature, children []featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddOrGroup, Parent: parent, Children: children}
}

// AddExcludes records that from and to never appear together.
func AddExcludes(from, to featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddExcludes, From: from, To: to}
}

// AddRequires records that wherever from appears, to must appear as well.
func AddRequires(from, to featuremodel.Feature) Primitive {
	return Primitive{Kind: PrimitiveAddRequires, From: from, To: to}
}
