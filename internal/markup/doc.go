// Package markup renders canonical node trees into complete Avalonia XAML
// documents.
//
// Key capabilities:
//   - fixed generated-file preamble and namespaced root element
//   - one-line self-closing form for small leaf nodes, attribute-per-line
//     form for wide ones
//   - nested-property wrapper elements for brush, transform, and effect
//     fragments
//   - implicit Canvas container when any top-level node is positioned
//
// Output is deterministic: rendering the same tree with the same options
// twice yields byte-identical text.
package markup
