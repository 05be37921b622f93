// Package theme renders the palette into the shared theme artifact.
//
// Key capabilities:
//   - one Color and one SolidColorBrush resource per palette entry, in the
//     palette's fixed order
//   - a fixed catalog of control style blocks (buttons, inputs, selectors,
//     lists, cards, tabs) parameterized by palette and font settings only
//   - a font-family-only fallback block for control kinds outside the catalog
//
// The generator never looks at the scene tree; the same options always
// produce the same document.
package theme
