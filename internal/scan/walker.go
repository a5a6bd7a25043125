package scan

import (
	"io/fs"
	"path/filepath"

	"github.com/conneroisu/fileheader/internal/errors"
)

// enumerate recursively walks root and calls visit for every file
// accepted by match. Directories are always descended into and never
// visited themselves; match filters files only. Order follows the
// filesystem traversal and is not canonical across platforms. The
// first walk failure aborts the enumeration and is returned as a
// traversal error.
func enumerate(root string, match func(string) bool, visit func(string) error) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !match(path) {
			return nil
		}

		return visit(path)
	})
	if err != nil {
		return errors.NewTraversalError(root, err)
	}

	return nil
}

// collect runs a full enumeration up front and returns every matching
// path as a slice, in traversal order.
func collect(root string, match func(string) bool) ([]string, error) {
	var paths []string
	err := enumerate(root, match, func(path string) error {
		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
