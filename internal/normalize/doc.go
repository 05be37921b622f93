// Package normalize turns the editor's scene tree into the canonical
// render tree the generators consume.
//
// Key capabilities:
//   - Layer flattening with hidden-layer exclusion
//   - Mapping resolution with alias folding and explicit target overrides
//   - Property conversion with default-value skipping
//   - Placeholder substitution for unmapped node types
//   - Event handler and binding-path collection for the companion sources
//   - Recursion depth guard failing the export closed
package normalize
