// Package naming normalizes scene identifiers into lookup keys and C#
// member names.
//
// Key capabilities:
//   - Fold: case/separator-insensitive keys for registry and alias lookup
//   - Pascal/Camel: C# class, property, and field casing
//   - Nearest: edit-distance suggestions for unrecognized source types
package naming
