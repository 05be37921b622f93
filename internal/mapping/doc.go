// Package mapping is the registry of scene-type to target-element mappings.
// It is pure data plus accessors: no conversion or rendering happens here.
//
// Key capabilities:
//   - Builtin mapping table covering the common design-tool node types
//   - Source-type and property-name alias folding
//   - Lookup by source type, target element, and category
//   - YAML overlay files contributing or shadowing mappings
package mapping
