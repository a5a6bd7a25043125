// Package license provides a catalog of common SPDX license headers.
//
// Each catalog entry pairs embedded license text with the substitution
// tokens that text expects (copyright year, owner) and a search
// pattern the built-in checker uses to detect the license near the top
// of a file. Entries build ready-to-use header.Header values; the
// header engine itself knows nothing about licenses.
package license

import (
	"embed"
	"sort"
	"strconv"
	"strings"

	"github.com/conneroisu/fileheader/internal/header"
)

//go:embed texts/*.txt
var texts embed.FS

// License describes one SPDX license known to the catalog.
type License struct {
	// ID is the SPDX identifier, e.g. "Apache-2.0".
	ID string
	// Name is the human-readable license name.
	Name string

	// pattern is the substring the checker searches for, and window
	// the number of leading lines it searches through.
	pattern string
	window  int

	// yearToken and ownerToken are the placeholders in the license
	// text replaced by the copyright year and holder. Either may be
	// empty for licenses that take no substitutions.
	yearToken  string
	ownerToken string

	// file is the embedded text filename under texts/.
	file string
}

// Build constructs a Header for this license with year and owner
// substituted into the text. Each token is replaced at its first
// occurrence only, matching how license boilerplate states them once.
func (l *License) Build(year int, owner string) *header.Header {
	text := l.text()
	if l.yearToken != "" {
		text = strings.Replace(text, l.yearToken, strconv.Itoa(year), 1)
	}
	if l.ownerToken != "" {
		text = strings.Replace(text, l.ownerToken, owner, 1)
	}

	checker := header.NewLineChecker(l.pattern, l.window)

	return header.New(checker, text)
}

// Pattern returns the substring the catalog uses to detect this
// license in a file.
func (l *License) Pattern() string {
	return l.pattern
}

func (l *License) text() string {
	raw, err := texts.ReadFile("texts/" + l.file)
	if err != nil {
		// Embedded texts are part of the binary; a miss is a packaging
		// bug, not a runtime condition.
		panic("license: missing embedded text for " + l.ID + ": " + err.Error())
	}

	return strings.TrimRight(string(raw), "\n")
}

// Ten lines is enough to reach each catalog pattern even behind a
// preserved magic first line.
const defaultWindow = 10

var catalog = map[string]*License{}

func register(l *License) {
	catalog[strings.ToLower(l.ID)] = l
}

func init() {
	register(&License{
		ID:         "Apache-2.0",
		Name:       "Apache License 2.0",
		pattern:    "Apache License, Version 2.0",
		window:     defaultWindow,
		yearToken:  "[yyyy]",
		ownerToken: "[name of copyright owner]",
		file:       "apache-2.0.txt",
	})
	register(&License{
		ID:         "MIT",
		Name:       "MIT License",
		pattern:    "MIT License",
		window:     defaultWindow,
		yearToken:  "<year>",
		ownerToken: "<copyright holders>",
		file:       "mit.txt",
	})
	register(&License{
		ID:         "BSD-3-Clause",
		Name:       "BSD 3-Clause License",
		pattern:    "Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:",
		window:     defaultWindow,
		yearToken:  "<year>",
		ownerToken: "<owner>",
		file:       "bsd-3-clause.txt",
	})
	register(&License{
		ID:         "GPL-3.0-only",
		Name:       "GNU General Public License v3.0 only",
		pattern:    "GNU General Public License",
		window:     defaultWindow,
		yearToken:  "<year>",
		ownerToken: "<name of author>",
		file:       "gpl-3.0-only.txt",
	})
	register(&License{
		ID:      "MPL-2.0",
		Name:    "Mozilla Public License 2.0",
		pattern: "Mozilla Public License, v. 2.0",
		window:  defaultWindow,
		file:    "mpl-2.0.txt",
	})
	register(&License{
		ID:      "EPL-2.0",
		Name:    "Eclipse Public License 2.0",
		pattern: "Eclipse Public License - v 2.0",
		window:  defaultWindow,
		file:    "epl-2.0.txt",
	})
}

// Lookup finds a catalog entry by SPDX identifier, case-insensitively.
func Lookup(id string) (*License, bool) {
	l, ok := catalog[strings.ToLower(id)]

	return l, ok
}

// All returns every catalog entry, sorted by SPDX identifier.
func All() []*License {
	all := make([]*License, 0, len(catalog))
	for _, l := range catalog {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return all
}
