// Package fmio reads and writes feature models, generation characteristics,
// and product corpora.
//
// Feature models use a compact XML dialect: nested feature elements grouped
// under their relation kind, with cross-tree constraints referencing features
// by name.
//
//	<featuremodel id="...">
//	  <feature name="R">
//	    <mandatory>
//	      <feature name="M"/>
//	    </mandatory>
//	    <or>
//	      <feature name="A"/>
//	      <feature name="B"/>
//	    </or>
//	  </feature>
//	  <constraints>
//	    <excludes from="A" to="B"/>
//	  </constraints>
//	</featuremodel>
//
// Reading reconstructs the model through the featuremodel builders, so a
// document that names a duplicate feature, an undersized group, or an unknown
// constraint endpoint fails with the corresponding featuremodel error. The id
// attribute is provenance only; a fresh model identity is assigned on read.
//
// Characteristics and product corpora use YAML, making generation profiles
// and golden product sets diffable. A product corpus references features by
// name and therefore reads back against the model it was produced from.
//
// All writers take io.Writer and all readers io.Reader; callers pick files,
// buffers, or pipes.
package fmio
