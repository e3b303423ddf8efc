/*
PURPOSE:
  All-or-nothing file writes for the generated artifacts.
  A truncated array declaration would fail to compile downstream, so a
  partial file must never reach its final name.

REQUIREMENTS:
  User-specified:
  - On any failure mid-write, remove the temporary file; the destination
    path is either the complete artifact or absent/unchanged.

  Implementation-discovered:
  - Temp file must live in the destination directory so the final
    rename stays on one filesystem.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go

ERROR HANDLING:
  - Returns *WriteError naming the destination path; wraps the cause.

IMPLEMENTATION RULES:
  - Write, close, then rename. Never rename a file that failed to write
    or close.

USAGE:
  err := output.WriteFileAtomic("ic_decl.f90", []byte(text))

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - None expected.
*/

package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports a failed artifact write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFileAtomic writes data to path through a temp file in the same
// directory, renaming into place only after a successful write+close.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
