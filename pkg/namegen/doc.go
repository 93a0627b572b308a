// Package namegen provides naming schemes for features in generated models.
//
// A Scheme hands out feature names one at a time and guarantees that no name
// repeats until Reset is called. Two schemes are included:
//
//   - Serial produces compact enumerated names ("F1", "F2", ...), the
//     conventional naming for synthetic feature models.
//   - Dictionary produces memorable adjective-noun names ("bold-otter"),
//     useful when generated models are meant to be read by humans.
//
// Both schemes are deterministic: Serial by construction, Dictionary through
// an explicit seed. Feeding the same seed after Reset replays the exact same
// name sequence, which keeps whole-model generation reproducible.
//
// # Usage
//
//	names := namegen.NewSerial("F")
//	names.Next() // "F1"
//	names.Next() // "F2"
//
//	dict := namegen.NewDictionary(42)
//	dict.Next() // e.g. "brisk-heron"
//
// Schemes are not safe for concurrent use; each model builder owns its own
// instance.
package namegen
