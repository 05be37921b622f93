// Package convert turns raw scene property values into markup-ready text,
// attributes, or nested element trees, one converter family per value shape.
//
// Key capabilities:
//   - Scalar conversion: text, trimmed numbers, booleans, enum tables
//   - Binding expressions: delimiter passthrough and bare-path wrapping
//   - Colors and brushes, including gradient element trees
//   - Thickness/corner collapse, grid definitions, point geometry
//   - Transforms, effects, and box shadows
//
// Converters are pure: no I/O, no logging, and a failed conversion is an
// error for the caller to downgrade into a diagnostic.
package convert
