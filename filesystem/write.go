package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// Mode controls how WriteText treats a file that already exists.
type Mode int

const (
	// Overwrite replaces existing content.
	Overwrite Mode = iota
	// KeepExisting leaves an existing file untouched.
	KeepExisting
)

// WriteText writes content to path, creating parent directories as needed.
// It reports whether the file was written; with KeepExisting an existing file
// is left as is and false is returned.
func WriteText(path, content string, mode Mode) (bool, error) {
	fs := API()

	if mode == KeepExisting {
		exists, err := fs.Exists(path)
		if err != nil {
			return false, fmt.Errorf("stat %s: %w", path, err)
		}
		if exists {
			return false, nil
		}
	}

	if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}

	if err := fs.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	return true, nil
}
