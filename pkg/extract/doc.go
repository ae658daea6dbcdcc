// Package extract recovers flat lists of leaf settings from the supported
// document shapes.
//
// Three adapters cover the corpus: settings-catalog JSON (a nested tree of
// typed setting instances, flattened by the recursive walker), compliance
// policy JSON (flat top-level properties minus a metadata exclusion set),
// and property-list payload bundles (per-payload properties keyed by the
// declared payload type).
//
// Adapters are pure functions from a parsed document to setting records;
// source file and resolved metadata are attached later by the pipeline.
package extract
