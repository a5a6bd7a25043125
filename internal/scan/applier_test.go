package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAll(t *testing.T) {
	root := t.TempDir()
	withHeader := filepath.Join(root, "a.go")
	withoutHeader := filepath.Join(root, "b.go")
	require.NoError(t, os.WriteFile(withHeader, []byte("// Copyright ACME\n\npackage a\n"), 0o644))
	require.NoError(t, os.WriteFile(withoutHeader, []byte("package b\n"), 0o644))

	changed, err := NewApplier(testHeader()).AddAll(root, MatchAll())
	require.NoError(t, err)

	assert.Equal(t, []string{withoutHeader}, changed)

	raw, err := os.ReadFile(withoutHeader)
	require.NoError(t, err)
	assert.Equal(t, "// Copyright ACME\n\npackage b\n", string(raw))
}

func TestAddAllSecondRunChangesNothing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("package a\n"), 0o644))

	applier := NewApplier(testHeader())

	changed, err := applier.AddAll(root, MatchAll())
	require.NoError(t, err)
	require.Len(t, changed, 1)

	changed, err = applier.AddAll(root, MatchAll())
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestDeleteAll(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a.go")
	untouched := filepath.Join(root, "b.go")
	require.NoError(t, os.WriteFile(target, []byte("package a\n"), 0o644))
	require.NoError(t, os.WriteFile(untouched, []byte("package b\n"), 0o644))

	applier := NewApplier(testHeader())

	changed, err := applier.AddAll(root, func(path string) bool { return path == target })
	require.NoError(t, err)
	require.Equal(t, []string{target}, changed)

	changed, err = applier.DeleteAll(root, MatchAll())
	require.NoError(t, err)
	assert.Equal(t, []string{target}, changed)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(raw))
}

func TestAddAllAbortsOnFirstError(t *testing.T) {
	root := t.TempDir()
	// WalkDir visits lexically: a.go succeeds, then b.zzz aborts the
	// batch before c.go is attempted.
	first := filepath.Join(root, "a.go")
	bad := filepath.Join(root, "b.zzz")
	last := filepath.Join(root, "c.go")
	require.NoError(t, os.WriteFile(first, []byte("package a\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("text\n"), 0o644))
	require.NoError(t, os.WriteFile(last, []byte("package c\n"), 0o644))

	changed, err := NewApplier(testHeader()).AddAll(root, MatchAll())
	require.Error(t, err)
	assert.True(t, errors.IsUnrecognizedExtension(err))
	assert.Nil(t, changed)

	// The change already applied stays on disk; the unattempted file
	// is untouched.
	raw, readErr := os.ReadFile(first)
	require.NoError(t, readErr)
	assert.True(t, strings.HasPrefix(string(raw), "// Copyright ACME\n"))

	raw, readErr = os.ReadFile(last)
	require.NoError(t, readErr)
	assert.Equal(t, "package c\n", string(raw))
}

func TestAddAllMissingRootIsTraversalError(t *testing.T) {
	changed, err := NewApplier(testHeader()).AddAll(filepath.Join(t.TempDir(), "absent"), MatchAll())
	require.Error(t, err)
	assert.True(t, errors.IsTraversal(err))
	assert.Nil(t, changed)
}

func TestDeleteAllNoHeaders(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("package a\n"), 0o644))

	changed, err := NewApplier(testHeader()).DeleteAll(root, MatchAll())
	require.NoError(t, err)
	assert.Empty(t, changed)
}
