package header

import (
	stderrors "errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/conneroisu/fileheader/internal/errors"
)

// errNotText marks content that could not be decoded as UTF-8 during a
// mutating operation. Unlike the scan path, where binary files are a
// result category, add and delete treat undecodable content as a hard
// I/O failure: a mutation was requested and cannot be performed.
var errNotText = stderrors.New("content is not valid UTF-8 text")

// AddIfMissing inserts the header into the file at path unless the
// checker already finds it. The rewritten file is laid out as the
// preserved magic first line (if any), the delimiter-wrapped header,
// one blank separator line, and the remaining original content.
// Returns true when the file was modified.
func (h *Header) AddIfMissing(path string) (bool, error) {
	contents, err := readText(path)
	if err != nil {
		return false, err
	}

	present, err := h.Present(strings.NewReader(contents))
	if err != nil {
		return false, errors.NewIOError(path, err)
	}
	if present {
		return false, nil
	}

	delims, ok := DelimitersFor(path)
	if !ok {
		return false, errors.NewExtensionError(path)
	}

	wrapped := Wrap(h.text, delims)
	after := contents
	if first, rest, found := strings.Cut(contents, "\n"); found && hasMagicFirstLine(first) {
		wrapped = first + "\n" + wrapped
		after = rest
	}

	// One blank line separates the header from the original content;
	// deletion depends on reconstructing this layout byte for byte.
	if err := writeFile(path, wrapped+"\n"+after); err != nil {
		return false, errors.NewIOError(path, err)
	}

	return true, nil
}

// DeleteIfPresent removes the header from the file at path if the
// checker finds it. Removal requires the exact byte block AddIfMissing
// would have produced, including the trailing blank separator line; a
// hand-edited header is treated as absent. Only the first occurrence
// is removed, so incidental copies of the text further down, e.g. in a
// string literal, survive. Returns true when the file was modified.
func (h *Header) DeleteIfPresent(path string) (bool, error) {
	contents, err := readText(path)
	if err != nil {
		return false, err
	}

	present, err := h.Present(strings.NewReader(contents))
	if err != nil {
		return false, errors.NewIOError(path, err)
	}
	if !present {
		return false, nil
	}

	delims, ok := DelimitersFor(path)
	if !ok {
		return false, errors.NewExtensionError(path)
	}

	// The checker may match on only a fragment of the header; deletion
	// stays conservative and acts only on the whole wrapped block.
	block := Wrap(h.text, delims) + "\n"
	if !strings.Contains(contents, block) {
		return false, nil
	}

	remainder := strings.Replace(contents, block, "", 1)
	if err := writeFile(path, remainder); err != nil {
		return false, errors.NewIOError(path, err)
	}

	return true, nil
}

// readText reads the whole file at path as UTF-8 text. Undecodable
// content is surfaced as an I/O error, not a binary scan result.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(path, err)
	}
	if !utf8.Valid(raw) {
		return "", errors.NewIOError(path, errNotText)
	}

	return string(raw), nil
}

// writeFile rewrites path in place with data, keeping the existing
// file mode.
func writeFile(path, data string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(path, []byte(data), mode)
}
