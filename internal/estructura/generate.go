package estructura

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/obrakit-labs/obrakit/internal/platform"
)

// DirPerm is the permission applied to every created directory.
const DirPerm os.FileMode = 0755

// Sentinel errors for the failure kinds callers distinguish.
var (
	// ErrInvalidName reports a project name that cannot become a folder name.
	ErrInvalidName = errors.New("invalid project name")
	// ErrPathConflict reports a target path occupied by a non-directory.
	ErrPathConflict = errors.New("path exists and is not a directory")
)

// ValidateName checks that project can be used as a single folder name
// component. It rejects empty or whitespace-only names, names containing a
// path separator or NUL, and the "." / ".." special names. Anything else is
// left to the host filesystem.
func ValidateName(project string) error {
	if strings.TrimSpace(project) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if strings.ContainsAny(project, `/\`) || strings.ContainsRune(project, 0) {
		return fmt.Errorf("%w: %q contains a path separator or NUL", ErrInvalidName, project)
	}
	if project == "." || project == ".." {
		return fmt.Errorf("%w: %q is a reserved name", ErrInvalidName, project)
	}
	return nil
}

// Generate materializes the full project structure under baseDir: the
// project root folder plus the 17 template folders. Existing directories are
// skipped with a message; a regular file on any target path aborts the run.
// It prints one progress line per folder to w and returns the resolved paths
// created or confirmed present, in creation order.
//
// Generate is idempotent: re-running it over a complete structure succeeds
// and changes nothing. On failure the directories already created are left
// in place; re-running after fixing the cause completes the remainder.
func Generate(w io.Writer, baseDir, project string) ([]string, error) {
	if err := ValidateName(project); err != nil {
		return nil, err
	}

	root := filepath.Join(baseDir, project)
	if err := ensureDir(w, root); err != nil {
		return nil, err
	}

	resolved := make([]string, len(Templates))
	for i, t := range Templates {
		parent := root
		if t.Parent != NoParent {
			parent = resolved[t.Parent]
		}
		resolved[i] = filepath.Join(parent, t.Name(project))
		if err := ensureDir(w, resolved[i]); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%w: %s", ErrPathConflict, path)
	}

	if err := os.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, DirPerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
