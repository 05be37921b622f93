package export

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes a successful result's file set into dir, creating the
// directory if needed. A failed result is refused so partial output never
// reaches disk.
func WriteFiles(res *Result, dir string) error {
	if res == nil || !res.Success() {
		return errors.New("refusing to write a failed export result")
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for _, f := range res.Files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), filePerm); err != nil {
			return errors.Wrapf(err, "writing %s", f.Name)
		}
	}

	return nil
}
