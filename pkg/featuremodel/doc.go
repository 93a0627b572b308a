// Package featuremodel implements the hierarchical feature-model structure:
// a tree of features connected by mandatory, optional, alternative and
// or-group relations, plus cross-tree requires/excludes constraints.
//
// A FeatureModel mints its own features: construction methods take feature
// names, create identities, and return the resulting Feature values, which
// keeps names unique and identities stable for the model's lifetime.
// Relations are recorded in construction order so downstream consumers
// (product tracking, serialization) observe parents strictly before children
// and tree relations strictly before cross-tree constraints.
//
// # Usage
//
//	m, _ := featuremodel.New("MobilePhone")
//	calls, _ := m.AddMandatory(m.Root(), "Calls")
//	gps, _ := m.AddOptional(m.Root(), "GPS")
//	screens, _ := m.AddAlternativeGroup(m.Root(), []string{"Basic", "Colour", "HighRes"})
//	_ = m.AddExcludes(gps, screens[0])
//	_ = calls
//
// # Concurrency
//
// FeatureModel is not safe for concurrent mutation. Models are built by a
// single goroutine and may be read concurrently once construction finishes.
package featuremodel
