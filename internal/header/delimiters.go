package header

import (
	"path/filepath"
	"strings"
)

// Delimiters holds the comment framing applied around a header for one
// file syntax.
type Delimiters struct {
	// Prefix is a line emitted before the header body, skipped when empty.
	Prefix string
	// Line is prepended to every line of the header body.
	Line string
	// Suffix is a line emitted after the header body, skipped when empty.
	Suffix string
}

// extensionDelimiters maps file extensions (without the leading dot,
// case-sensitive) to their comment framing. The table is read-only for
// the process lifetime and safe to use without locking.
var extensionDelimiters = buildExtensionTable()

func buildExtensionTable() map[string]Delimiters {
	table := make(map[string]Delimiters)

	add := func(d Delimiters, exts ...string) {
		for _, ext := range exts {
			table[ext] = d
		}
	}

	add(Delimiters{Prefix: "/*", Line: " * ", Suffix: " */"},
		"c", "h", "gv", "java", "scala", "kt", "kts")
	add(Delimiters{Prefix: "/**", Line: " * ", Suffix: " */"},
		"js", "mjs", "cjs", "jsx", "tsx", "css", "scss", "sass", "ts")
	add(Delimiters{Line: "// "},
		"cc", "cpp", "cs", "go", "hcl", "hh", "hpp", "m", "mm", "proto",
		"rs", "swift", "dart", "groovy", "v", "sv", "php")
	add(Delimiters{Line: "# "},
		"py", "sh", "yaml", "yml", "dockerfile", "rb", "gemfile", "tcl",
		"tf", "bzl", "pl", "pp", "build")
	add(Delimiters{Line: ";; "}, "el", "lisp")
	add(Delimiters{Line: "% "}, "erl")
	add(Delimiters{Line: "-- "}, "hs", "lua", "sql", "sdl")
	add(Delimiters{Prefix: "<!--", Line: " ", Suffix: "-->"},
		"html", "xml", "vue", "wxi", "wxl", "wxs")
	add(Delimiters{Prefix: "(**", Line: "   ", Suffix: "*)"},
		"ml", "mli", "mll", "mly")

	return table
}

// filenameDelimiters maps exact base filenames to comment framing for
// files whose extension lookup misses.
var filenameDelimiters = map[string]Delimiters{
	"Dockerfile": {Line: "# "},
}

// DelimitersFor returns the comment framing for path, looking up the
// extension first and falling back to the exact base filename. The
// second return value is false when neither lookup matches.
func DelimitersFor(path string) (Delimiters, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if d, ok := extensionDelimiters[ext]; ok {
		return d, true
	}
	d, ok := filenameDelimiters[filepath.Base(path)]

	return d, ok
}

// Wrap frames the plain header text with d's comment delimiters.
// Trailing spaces and tabs are trimmed from each composed body line so
// that an empty header line under a " * " prefix collapses to " *",
// keeping linters quiet about trailing whitespace.
func Wrap(text string, d Delimiters) string {
	var out strings.Builder

	if d.Prefix != "" {
		out.WriteString(d.Prefix)
		out.WriteByte('\n')
	}
	for _, line := range strings.Split(text, "\n") {
		out.WriteString(strings.TrimRight(d.Line+line, " \t"))
		out.WriteByte('\n')
	}
	if d.Suffix != "" {
		out.WriteString(d.Suffix)
		out.WriteByte('\n')
	}

	return out.String()
}
