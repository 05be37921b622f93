package options

// FileKind classifies one generated output file in an export result.
type FileKind int

const (
	// FileMarkup is an .axaml document or another XML artifact.
	FileMarkup FileKind = iota
	// FileSource is a C# source file.
	FileSource
	// FileTheme is the theme resource dictionary.
	FileTheme
)

// String returns the lowercase kind name used in result manifests.
func (k FileKind) String() string {
	switch k {
	case FileSource:
		return "source"
	case FileTheme:
		return "theme"
	default:
		return "markup"
	}
}
