// Package output writes generated artifacts into the destination container.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"sheetasset/pkg/sheetasset/models"
)

// CommitError reports a failed artifact write. The built text stays in memory
// with the caller, so the commit can be retried without recomputing.
type CommitError struct {
	FileName string
	Err      error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed for %q: %v", e.FileName, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Commit writes one artifact into dir, overwriting an existing file of the
// same name or creating it otherwise. The operation has no rollback: a
// failure mid-write is surfaced, never swallowed.
func Commit(dir string, artifact models.Artifact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &CommitError{FileName: artifact.FileName, Err: err}
	}
	path := filepath.Join(dir, artifact.FileName)
	if err := os.WriteFile(path, []byte(artifact.Content), 0644); err != nil {
		return &CommitError{FileName: artifact.FileName, Err: err}
	}
	return nil
}
