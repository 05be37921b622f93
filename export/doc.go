// Package export is the public entry point of the pipeline: it drives a scene
// through normalization and the generators and assembles the named file set.
//
// Key capabilities:
//   - Export runs the full pipeline and never panics outward; structural
//     failures and recovered panics surface on Result.Err
//   - Preview reports counts and unsupported types without generating text
//   - file-set assembly in fixed order, with project boilerplate appended
//     for the project preset
//   - WriteFiles persists a successful result to disk
//
// An Exporter holds only the registry and a logger, so one instance is safe
// to reuse across sequential export calls.
package export
