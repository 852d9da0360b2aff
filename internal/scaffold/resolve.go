package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/mvvmkit/cli/internal/errors"
)

// Resolution is the on-disk state of a manifest entry's destination.
type Resolution struct {
	// Abs is the absolute destination path.
	Abs string

	// Exists reports whether anything is present at the destination.
	Exists bool

	// IsDir reports whether the existing destination is a directory.
	IsDir bool
}

// Resolve computes the absolute destination for a root-relative path and
// stats its current state. Relative paths containing parent-traversal or
// absolute segments are rejected with ErrInvalidPath. Read-only.
func Resolve(root, relPath string) (Resolution, error) {
	if err := checkRelPath(relPath); err != nil {
		return Resolution{}, err
	}

	abs := filepath.Join(root, filepath.FromSlash(relPath))

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return Resolution{Abs: abs}, nil
		}
		return Resolution{}, oerrors.Wrap(oerrors.ErrIO, "stat "+abs+": "+err.Error())
	}

	return Resolution{
		Abs:    abs,
		Exists: true,
		IsDir:  info.IsDir(),
	}, nil
}

// checkRelPath rejects paths that could escape the project root.
func checkRelPath(relPath string) error {
	if relPath == "" || relPath == "." {
		return oerrors.NewInvalidPathError(relPath)
	}
	if filepath.IsAbs(relPath) || strings.HasPrefix(relPath, "/") {
		return oerrors.NewInvalidPathError(relPath)
	}
	for _, seg := range strings.Split(filepath.ToSlash(relPath), "/") {
		if seg == ".." {
			return oerrors.NewInvalidPathError(relPath)
		}
	}
	// Join cleans the path; a cleaned path that leaves the root means a
	// traversal segment slipped through some encoding above.
	if !strings.HasPrefix(filepath.Join("/root", filepath.FromSlash(relPath)), filepath.FromSlash("/root/")) {
		return oerrors.NewInvalidPathError(relPath)
	}
	return nil
}
