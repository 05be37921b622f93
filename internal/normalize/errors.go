package normalize

import "github.com/cockroachdb/errors"

// Structural failures. Everything else the normalizer recovers from and
// records as a diagnostic.
var (
	// ErrSceneEmpty means no visible node survived layer filtering.
	ErrSceneEmpty = errors.New("scene has no visible nodes")
	// ErrNotTraversable means the scene value itself cannot be walked.
	ErrNotTraversable = errors.New("scene is not traversable")
	// ErrDepthExceeded means the tree is deeper than the configured bound.
	ErrDepthExceeded = errors.New("node tree exceeds maximum depth")
)
