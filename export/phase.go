package export

//go:generate go tool stringer -type=Phase -trimprefix=Phase -output=phase_string.go

// Phase names the pipeline stage an export call is in. It exists for logs and
// for Result reporting; nothing is persisted between calls.
type Phase int

const (
	// PhaseConfiguring merges and clamps the options.
	PhaseConfiguring Phase = iota
	// PhaseNormalizing builds the canonical tree from the scene.
	PhaseNormalizing
	// PhaseGenerating renders markup, theme, and companion sources.
	PhaseGenerating
	// PhaseAssembling collects the rendered artifacts into the file set.
	PhaseAssembling
	// PhaseDone is the terminal phase of a successful export.
	PhaseDone
	// PhaseFailed is the terminal phase after a structural failure.
	PhaseFailed
)
