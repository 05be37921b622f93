package export

import (
	"axamlforge/internal/common"
	"axamlforge/internal/mapping"
	"axamlforge/options"
	"axamlforge/scene"
)

// Preview summarizes what an export would produce, without generating text.
type Preview struct {
	// ComponentCount is the number of nodes across visible layers.
	ComponentCount int
	// SupportedCount is how many of those resolve in the mapping registry
	// or carry an explicit target override.
	SupportedCount int
	// UnsupportedTypes lists the distinct unresolvable source types, sorted.
	UnsupportedTypes []string
	// EstimatedFileCount is the size of the file set the options would
	// yield.
	EstimatedFileCount int
}

// Preview walks the scene against the registry only; no text is generated
// and no diagnostics are recorded. A nil scene previews as empty.
func (e *Exporter) Preview(s *scene.Scene, opts options.ExportOptions) Preview {
	p := Preview{EstimatedFileCount: estimatedFiles(opts.Clamped())}
	if s == nil {
		return p
	}

	var unsupported []string

	s.Walk(func(n *scene.Node) bool {
		p.ComponentCount++

		_, ok := e.registry.LookupBySourceType(n.Type)
		if ok || n.TargetType != "" {
			p.SupportedCount++
		} else {
			unsupported = append(unsupported, mapping.CanonicalType(n.Type))
		}

		return true
	})

	p.UnsupportedTypes = common.SortedUnique(unsupported)

	return p
}

// estimatedFiles counts the files the options would emit.
func estimatedFiles(opts options.ExportOptions) int {
	count := 1

	if opts.IncludeCodeBehind {
		count++
	}

	if opts.IncludeViewModel {
		count++
	}

	if opts.IncludeTheme {
		count++
	}

	if opts.IncludeProject {
		count += projectFileCount
	}

	return count
}
