// Package header implements detection, insertion, and removal of
// attribution and license headers in source files.
//
// A Header pairs plain, comment-free header text with a Checker that
// decides whether the header is already present in a stream. The text
// is wrapped with comment delimiters chosen by file extension (or
// exact filename) when written, and structurally significant first
// lines such as shebangs and XML declarations are kept in place.
// Insertion and deletion are both idempotent given stable content:
// deletion only acts when the exact byte block produced by insertion
// is found, and removes only its first occurrence.
package header

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/conneroisu/fileheader/internal/errors"
)

// Checker decides whether the desired header is present in a stream.
//
// Implementations must read no more of the stream than needed to
// decide, and must be safe for concurrent use: a single Checker is
// shared across every scan worker in a run.
type Checker interface {
	// Check reports whether the header is present. Content within the
	// inspected window that does not decode as UTF-8 text is reported
	// with a binary-category error (see errors.IsBinary).
	Check(r io.Reader) (bool, error)
}

// Header is an immutable pairing of plain header text and the Checker
// used to detect its presence. Construct once and share across
// workers; Header holds no mutable state.
type Header struct {
	checker Checker
	text    string
}

// New creates a Header from checker and the plain header text. The
// text carries no comment syntax; framing is applied per file type
// when the header is written.
func New(checker Checker, text string) *Header {
	return &Header{
		checker: checker,
		text:    text,
	}
}

// Text returns the plain, unframed header text.
func (h *Header) Text() string {
	return h.text
}

// Present reports whether the header is present in r, as determined by
// the Header's checker.
func (h *Header) Present(r io.Reader) (bool, error) {
	return h.checker.Check(r)
}

// LineChecker is the built-in Checker: it looks for a pattern as a
// substring of any of the first MaxLines lines of the stream.
type LineChecker struct {
	pattern  string
	maxLines int
}

// NewLineChecker creates a LineChecker that searches for pattern in
// the first maxLines newline-delimited lines.
func NewLineChecker(pattern string, maxLines int) *LineChecker {
	return &LineChecker{
		pattern:  pattern,
		maxLines: maxLines,
	}
}

// Check reads at most c.maxLines lines from r, returning true on the
// first line containing the pattern and false on EOF or once the line
// budget is spent. A line that is not valid UTF-8 yields a binary
// error.
func (c *LineChecker) Check(r io.Reader) (bool, error) {
	reader := bufio.NewReader(r)

	for read := 0; read < c.maxLines; read++ {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if !utf8.ValidString(line) {
				return false, errors.NewBinaryError("")
			}
			if strings.Contains(line, c.pattern) {
				return true, nil
			}
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}

	return false, nil
}
