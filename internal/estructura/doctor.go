package estructura

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/obrakit-labs/obrakit/internal/platform"
)

// Check walks the expected structure for project under baseDir and reports
// the state of every folder. When fix is true, missing directories are
// created; conflicts (a non-directory on an expected path) are only
// reported, never repaired.
func Check(w io.Writer, baseDir, project string, fix bool) error {
	if err := ValidateName(project); err != nil {
		return err
	}

	root := filepath.Join(baseDir, project)
	fmt.Fprintf(w, "Structure check for %s:\n", root)

	// Check the project root first.
	info, statErr := os.Stat(root)
	if os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", root)
		if fix {
			fmt.Fprintln(w, "  [FIX ] Creating full structure...")
			if _, genErr := Generate(w, baseDir, project); genErr != nil {
				return fmt.Errorf("auto-fix generate: %w", genErr)
			}
		} else {
			fmt.Fprintf(w, "         Run 'obrakit crear %s' to create it\n", project)
		}
		return nil
	}
	if statErr != nil {
		return fmt.Errorf("checking %s: %w", root, statErr)
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", root)
		return fmt.Errorf("%w: %s", ErrPathConflict, root)
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", root)

	conflicts := 0
	for _, rel := range RelativePaths(project) {
		path := filepath.Join(baseDir, rel)
		checkDir(w, path, fix, &conflicts)
	}

	if conflicts > 0 {
		return fmt.Errorf("%d path(s) are occupied by non-directories", conflicts)
	}
	return nil
}

func checkDir(w io.Writer, path string, fix bool, conflicts *int) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if fix {
			if mkErr := os.MkdirAll(path, DirPerm); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
				return
			}
			if chErr := platform.Chmod(path, DirPerm); chErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not set permissions on %s: %v\n", path, chErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		}
		return
	}
	if err != nil {
		// A file sitting on a parent path surfaces here as ENOTDIR.
		if errors.Is(err, syscall.ENOTDIR) {
			fmt.Fprintf(w, "  [FAIL] %s: a parent path is not a directory\n", path)
			*conflicts++
			return
		}
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", path)
		*conflicts++
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}
