package export

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"axamlforge/internal/codebehind"
	"axamlforge/internal/diagnostic"
	"axamlforge/internal/mapping"
	"axamlforge/internal/markup"
	"axamlforge/internal/normalize"
	"axamlforge/internal/theme"
	"axamlforge/options"
	"axamlforge/scene"
)

// ThemeFileName is the fixed name of the theme resource file.
const ThemeFileName = "AppTheme.axaml"

// Exporter drives scenes through the pipeline. It holds only the mapping
// registry and a logger; one instance is safe for sequential reuse.
type Exporter struct {
	registry *mapping.Registry
	log      *zap.SugaredLogger
}

// New returns an Exporter over the builtin mapping table with a nop logger.
func New() *Exporter {
	return NewWith(nil, nil)
}

// NewWith returns an Exporter over a caller-supplied registry (for example
// one carrying overlay mappings) and logger. A nil registry falls back to
// the builtins; a nil logger stays silent.
func NewWith(registry *mapping.Registry, log *zap.SugaredLogger) *Exporter {
	if registry == nil {
		registry = mapping.NewRegistry()
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Exporter{registry: registry, log: log}
}

// File is one generated artifact in the ordered output file set.
type File struct {
	// Name is the output filename, e.g. "MainView.axaml".
	Name string
	// Content is the complete file text.
	Content string
	// Kind classifies the artifact.
	Kind options.FileKind
}

// Result is the outcome of one export call. Err is the sole failure signal:
// when it is set the file set is empty, otherwise Files holds at least the
// markup document.
type Result struct {
	// Files is the generated file set in emission order.
	Files []File
	// Primary is the markup document text, duplicated from the first file
	// for callers that only want the markup.
	Primary string
	// Diagnostics lists everything the pipeline recovered from, errors
	// first. It survives failures so callers can still show what happened.
	Diagnostics []diagnostic.Diagnostic
	// Phase is the last phase reached: PhaseDone or PhaseFailed.
	Phase Phase
	// Err is the structural failure, nil on success.
	Err error
}

// Success reports whether the export produced a file set.
func (r *Result) Success() bool {
	return r.Err == nil
}

// fail moves the result to its terminal failure state. The file set is
// dropped so a failed result never exposes partial output.
func (r *Result) fail(err error) {
	r.Phase = PhaseFailed
	r.Err = err
	r.Files = nil
	r.Primary = ""
}

// Export runs the full pipeline on one scene. It never panics outward:
// structural failures and recovered panics surface on Result.Err, per-node
// and per-property problems degrade into Result.Diagnostics.
func (e *Exporter) Export(s *scene.Scene, opts options.ExportOptions) *Result {
	res := &Result{Phase: PhaseConfiguring}

	defer func() {
		if rec := recover(); rec != nil {
			e.log.Errorw("export panicked", "panic", rec)
			res.fail(errors.Newf("export panicked: %v", rec))
		}
	}()

	opts = opts.Clamped()
	e.log.Debugw("export configured",
		"phase", res.Phase,
		"root", opts.Root,
		"class", opts.ClassName,
	)

	var diags diagnostic.Diagnostics

	res.Phase = PhaseNormalizing
	e.log.Debugw("normalizing scene", "phase", res.Phase)

	norm, err := normalize.New(e.registry, opts, &diags).Normalize(s)
	if err != nil {
		res.Diagnostics = diags.All()
		res.fail(errors.Wrap(err, "normalizing scene"))
		e.log.Errorw("export failed", "phase", res.Phase, "error", res.Err)

		return res
	}

	res.Phase = PhaseGenerating
	e.log.Debugw("generating artifacts",
		"phase", res.Phase,
		"roots", len(norm.Roots),
		"handlers", len(norm.Handlers),
		"bindings", len(norm.Bindings),
	)

	document := markup.New(opts).Document(norm)

	res.Phase = PhaseAssembling
	res.Files = e.assemble(document, norm, opts)
	res.Primary = document
	res.Diagnostics = diags.All()

	res.Phase = PhaseDone
	e.log.Infow("export complete",
		"files", len(res.Files),
		"diagnostics", len(res.Diagnostics),
		"unsupported", len(norm.Unsupported),
	)

	return res
}

// assemble builds the ordered file set: the markup document first, then the
// gated companions, the theme, and the project boilerplate.
func (e *Exporter) assemble(document string, norm *normalize.Result, opts options.ExportOptions) []File {
	files := []File{{
		Name:    opts.ClassName + ".axaml",
		Content: document,
		Kind:    options.FileMarkup,
	}}

	gen := codebehind.New(opts)

	if opts.IncludeCodeBehind {
		files = append(files, File{
			Name:    opts.ClassName + ".axaml.cs",
			Content: gen.CodeBehind(norm),
			Kind:    options.FileSource,
		})
	}

	if opts.IncludeViewModel {
		files = append(files, File{
			Name:    opts.ViewModelClassName() + ".cs",
			Content: gen.ViewModel(norm),
			Kind:    options.FileSource,
		})
	}

	if opts.IncludeTheme {
		files = append(files, File{
			Name:    ThemeFileName,
			Content: theme.New(opts).Document(),
			Kind:    options.FileTheme,
		})
	}

	if opts.IncludeProject {
		files = append(files, projectFiles(gen, opts)...)
	}

	return files
}
