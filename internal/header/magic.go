package header

import "strings"

// magicFirstLines are markers of structurally significant first lines
// that must stay at the top of the file; a header is inserted after
// them, never before.
var magicFirstLines = []string{
	"#!",                       // shebang
	"<?xml",                    // XML declaration
	"<!doctype",                // HTML doctype
	"# encoding:",              // Ruby encoding
	"# frozen_string_literal:", // Ruby interpreter instruction
	"<?php",                    // PHP opening tag
	"# escape",                 // Dockerfile parser directive
	"# syntax",                 // Dockerfile parser directive
}

// hasMagicFirstLine reports whether line contains any marker that pins
// it to the top of the file.
func hasMagicFirstLine(line string) bool {
	for _, marker := range magicFirstLines {
		if strings.Contains(line, marker) {
			return true
		}
	}

	return false
}
