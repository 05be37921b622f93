// Package diagnostic provides structured warnings, errors, and notes
// collected while a scene is normalized and rendered.
//
// Key capabilities:
//   - Unmapped node-type warnings with nearest-mapping suggestions
//   - Converter failure reports tied to a node path and property
//   - Severity-split collection merged across pipeline stages
package diagnostic
