package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/conneroisu/fileheader/internal/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader() *header.Header {
	return header.New(header.NewLineChecker("Copyright ACME", 10), "Copyright ACME")
}

// fixtureTree writes a mixed tree: files with the header, files
// without, and one binary file, returning the expected findings.
func fixtureTree(t *testing.T) (root string, missing, binary []string) {
	t.Helper()
	root = t.TempDir()

	write := func(rel, content string) string {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		return path
	}

	write("a.go", "// Copyright ACME\n\npackage a\n")
	write("sub/b.go", "// Copyright ACME\n\npackage b\n")
	missing = append(missing, write("c.go", "package c\n"))
	missing = append(missing, write("sub/d.py", "print('d')\n"))
	missing = append(missing, write("sub/deep/e.sh", "#!/bin/sh\n"))
	binary = append(binary, write("blob.go", "\xff\xfe\x00\x01"))

	return root, missing, binary
}

func TestScanClassifiesFiles(t *testing.T) {
	root, missing, binary := fixtureTree(t)

	results, err := NewScanner(testHeader(), 4).Scan(root, MatchAll())
	require.NoError(t, err)

	assert.ElementsMatch(t, missing, results.MissingHeader)
	assert.ElementsMatch(t, binary, results.BinaryFiles)
	assert.True(t, results.HasFindings())
}

func TestScanWorkerCountInvariance(t *testing.T) {
	root, missing, binary := fixtureTree(t)
	hdr := testHeader()

	for _, workers := range []int{1, 4, 64} {
		results, err := NewScanner(hdr, workers).Scan(root, MatchAll())
		require.NoError(t, err, "workers=%d", workers)

		assert.ElementsMatch(t, missing, results.MissingHeader, "workers=%d", workers)
		assert.ElementsMatch(t, binary, results.BinaryFiles, "workers=%d", workers)
	}
}

func TestScanAllHeadersPresent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("// Copyright ACME\n"), 0o644))

	results, err := NewScanner(testHeader(), 2).Scan(root, MatchAll())
	require.NoError(t, err)

	assert.Empty(t, results.MissingHeader)
	assert.Empty(t, results.BinaryFiles)
	assert.False(t, results.HasFindings())
}

func TestScanRespectsPredicate(t *testing.T) {
	root, _, _ := fixtureTree(t)

	match := func(path string) bool { return filepath.Ext(path) == ".py" }
	results, err := NewScanner(testHeader(), 2).Scan(root, match)
	require.NoError(t, err)

	require.Len(t, results.MissingHeader, 1)
	assert.Equal(t, ".py", filepath.Ext(results.MissingHeader[0]))
	assert.Empty(t, results.BinaryFiles)
}

func TestScanMissingRootIsTraversalError(t *testing.T) {
	results, err := NewScanner(testHeader(), 2).Scan(filepath.Join(t.TempDir(), "absent"), MatchAll())
	require.Error(t, err)
	assert.True(t, errors.IsTraversal(err))
	assert.Nil(t, results)
}

func TestScanChecksEveryFileExactlyOnce(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.go", "b.go", "c.go", "d.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("package x\n"), 0o644))
	}

	results, err := NewScanner(testHeader(), 8).Scan(root, MatchAll())
	require.NoError(t, err)

	assert.Len(t, results.MissingHeader, 4)
	seen := make(map[string]bool)
	for _, path := range results.MissingHeader {
		assert.False(t, seen[path], "duplicate result for %s", path)
		seen[path] = true
	}
}

func TestNewScannerNormalizesWorkerCount(t *testing.T) {
	s := NewScanner(testHeader(), 0)
	assert.GreaterOrEqual(t, s.workers, 1)

	s = NewScanner(testHeader(), -3)
	assert.GreaterOrEqual(t, s.workers, 1)
}
