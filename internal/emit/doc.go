// Package emit provides the shared text-emission primitives for every
// generator in the pipeline.
//
// Key capabilities:
//   - Line buffer with explicit indent tracking
//   - Ordered attribute lists (emission order is the declaration order)
//   - Element model for nested property values (brushes, transforms)
//   - XML attribute and text escaping
package emit
