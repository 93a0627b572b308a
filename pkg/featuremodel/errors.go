package featuremodel

import "errors"

// Predefined errors for the featuremodel package.
var (
	// ErrEmptyName indicates a feature was given an empty name.
	ErrEmptyName = errors.New("feature name cannot be empty")

	// ErrDuplicateFeature indicates a feature name is already taken in the model.
	ErrDuplicateFeature = errors.New("duplicate feature name")

	// ErrUnknownFeature indicates a referenced feature does not belong to the model.
	ErrUnknownFeature = errors.New("feature not found in model")

	// ErrGroupTooSmall indicates an alternative or or-group with fewer than two children.
	ErrGroupTooSmall = errors.New("group relations require at least two children")

	// ErrSelfConstraint indicates a cross-tree constraint from a feature to itself.
	ErrSelfConstraint = errors.New("constraint endpoints must be distinct features")
)
