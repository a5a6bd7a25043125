package scan

import (
	"github.com/conneroisu/fileheader/internal/header"
)

// Applier runs the mutating header operations over a tree, serially.
// Mutation is rare relative to scanning, and a single control path per
// file means no locking and no partially interleaved writes.
type Applier struct {
	header *header.Header
}

// NewApplier creates an Applier for hdr.
func NewApplier(hdr *header.Header) *Applier {
	return &Applier{header: hdr}
}

// AddAll inserts the header into every matching file under root that
// does not already have it, returning the paths that were modified.
// The first error aborts the batch; changes already written stay on
// disk and unattempted paths are not reported.
func (a *Applier) AddAll(root string, match func(string) bool) ([]string, error) {
	return a.apply(root, match, a.header.AddIfMissing)
}

// DeleteAll removes the header from every matching file under root
// where it is present, returning the paths that were modified. Error
// behavior matches AddAll.
func (a *Applier) DeleteAll(root string, match func(string) bool) ([]string, error) {
	return a.apply(root, match, a.header.DeleteIfPresent)
}

func (a *Applier) apply(root string, match func(string) bool, op func(string) (bool, error)) ([]string, error) {
	// Enumerate fully before mutating anything, so a traversal failure
	// never leaves a half-applied batch behind.
	paths, err := collect(root, match)
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, path := range paths {
		applied, err := op(path)
		if err != nil {
			return nil, err
		}
		if applied {
			changed = append(changed, path)
		}
	}

	return changed, nil
}
