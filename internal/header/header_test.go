package header

import (
	"strings"
	"testing"

	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCheckerFindsPattern(t *testing.T) {
	checker := NewLineChecker("Foo License", 10)

	present, err := checker.Check(strings.NewReader("// Foo License\n// more text\n"))
	require.NoError(t, err)
	assert.True(t, present)
}

func TestLineCheckerPatternBeyondWindow(t *testing.T) {
	checker := NewLineChecker("Foo License", 2)

	content := "line one\nline two\nFoo License\n"
	present, err := checker.Check(strings.NewReader(content))
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLineCheckerEOFBeforeLimit(t *testing.T) {
	checker := NewLineChecker("Foo License", 100)

	present, err := checker.Check(strings.NewReader("just one line"))
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLineCheckerEmptyStream(t *testing.T) {
	checker := NewLineChecker("anything", 10)

	present, err := checker.Check(strings.NewReader(""))
	require.NoError(t, err)
	assert.False(t, present)
}

func TestLineCheckerPatternOnLastAllowedLine(t *testing.T) {
	checker := NewLineChecker("needle", 3)

	present, err := checker.Check(strings.NewReader("a\nb\nneedle here\nd\n"))
	require.NoError(t, err)
	assert.True(t, present)
}

func TestLineCheckerBinaryContent(t *testing.T) {
	checker := NewLineChecker("Foo License", 10)

	present, err := checker.Check(strings.NewReader("\xff\xfe\x00binary\n"))
	assert.False(t, present)
	require.Error(t, err)
	assert.True(t, errors.IsBinary(err))
}

func TestWrapBlockComment(t *testing.T) {
	d, ok := DelimitersFor("main.c")
	require.True(t, ok)

	assert.Equal(t, "/*\n * L1\n * L2\n */\n", Wrap("L1\nL2", d))
}

func TestWrapLinePrefixOnly(t *testing.T) {
	d, ok := DelimitersFor("script.py")
	require.True(t, ok)

	assert.Equal(t, "# L1\n# L2\n", Wrap("L1\nL2", d))
}

func TestWrapTrimsTrailingWhitespace(t *testing.T) {
	d, ok := DelimitersFor("main.c")
	require.True(t, ok)

	// A blank header line under a " * " prefix collapses to " *".
	assert.Equal(t, "/*\n * L1\n *\n * L2\n */\n", Wrap("L1\n\nL2", d))
}

func TestWrapTrimsTabs(t *testing.T) {
	d, ok := DelimitersFor("lib.rs")
	require.True(t, ok)

	assert.Equal(t, "// L1\t.\n//\n", Wrap("L1\t.\n\t ", d))
}

func TestDelimitersForFilenameFallback(t *testing.T) {
	d, ok := DelimitersFor("some/dir/Dockerfile")
	require.True(t, ok)
	assert.Equal(t, Delimiters{Line: "# "}, d)
}

func TestDelimitersForExtensionBeatsFilename(t *testing.T) {
	// Dockerfile.dockerfile resolves through the extension table.
	d, ok := DelimitersFor("Dockerfile.dockerfile")
	require.True(t, ok)
	assert.Equal(t, Delimiters{Line: "# "}, d)
}

func TestDelimitersForUnknown(t *testing.T) {
	_, ok := DelimitersFor("archive.zzz")
	assert.False(t, ok)
}

func TestDelimitersForCaseSensitive(t *testing.T) {
	_, ok := DelimitersFor("MAIN.C")
	assert.False(t, ok)
}

func TestDelimitersTable(t *testing.T) {
	tests := []struct {
		path string
		want Delimiters
	}{
		{"A.java", Delimiters{Prefix: "/*", Line: " * ", Suffix: " */"}},
		{"app.tsx", Delimiters{Prefix: "/**", Line: " * ", Suffix: " */"}},
		{"main.go", Delimiters{Line: "// "}},
		{"index.php", Delimiters{Line: "// "}},
		{"deploy.yaml", Delimiters{Line: "# "}},
		{"init.el", Delimiters{Line: ";; "}},
		{"server.erl", Delimiters{Line: "% "}},
		{"schema.sql", Delimiters{Line: "-- "}},
		{"page.html", Delimiters{Prefix: "<!--", Line: " ", Suffix: "-->"}},
		{"parser.mly", Delimiters{Prefix: "(**", Line: "   ", Suffix: "*)"}},
	}

	for _, tt := range tests {
		d, ok := DelimitersFor(tt.path)
		require.True(t, ok, tt.path)
		assert.Equal(t, tt.want, d, tt.path)
	}
}

func TestHasMagicFirstLine(t *testing.T) {
	assert.True(t, hasMagicFirstLine("#!/bin/sh"))
	assert.True(t, hasMagicFirstLine(`<?xml version="1.0"?>`))
	assert.True(t, hasMagicFirstLine("<!doctype html>"))
	assert.True(t, hasMagicFirstLine("# frozen_string_literal: true"))
	assert.True(t, hasMagicFirstLine("# syntax=docker/dockerfile:1"))
	assert.False(t, hasMagicFirstLine("package main"))
	assert.False(t, hasMagicFirstLine("# plain comment"))
}
