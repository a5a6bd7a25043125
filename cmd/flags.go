package cmd

import (
	"os"
	"strings"

	"github.com/conneroisu/fileheader/internal/config"
	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/conneroisu/fileheader/internal/header"
	"github.com/conneroisu/fileheader/internal/license"
	"github.com/conneroisu/fileheader/internal/logging"
	"github.com/conneroisu/fileheader/internal/scan"
)

// resolveRoot picks the root directory for a command: an explicit
// positional argument wins over the configured root.
func resolveRoot(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return cfg.Root
}

// newLogger builds the command logger from configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// buildPredicate turns the configured include/exclude patterns into
// the path predicate the engines consume.
func buildPredicate(cfg *config.Config) (func(string) bool, error) {
	if len(cfg.Include) == 0 && len(cfg.Exclude) == 0 {
		return scan.MatchAll(), nil
	}

	return scan.NewPredicate(cfg.Include, cfg.Exclude)
}

// buildHeader constructs the Header a command operates with, either
// from a custom header text file or from the SPDX license catalog.
func buildHeader(cfg *config.Config) (*header.Header, error) {
	if cfg.HeaderFile != "" {
		return headerFromFile(cfg)
	}

	if cfg.License == "" {
		return nil, errors.NewConfigError("either --license or --header-file is required")
	}

	lic, ok := license.Lookup(cfg.License)
	if !ok {
		return nil, errors.NewConfigError("unknown license " + cfg.License + " (see 'fileheader licenses')")
	}

	hdr := lic.Build(cfg.Year, cfg.Owner)
	if cfg.Pattern != "" {
		// Keep the catalog text but detect presence with the
		// user-supplied pattern and window.
		hdr = header.New(header.NewLineChecker(cfg.Pattern, cfg.MaxLines), hdr.Text())
	}

	return hdr, nil
}

func headerFromFile(cfg *config.Config) (*header.Header, error) {
	raw, err := os.ReadFile(cfg.HeaderFile)
	if err != nil {
		return nil, errors.NewIOError(cfg.HeaderFile, err)
	}

	text := strings.TrimRight(string(raw), "\n")
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = firstNonEmptyLine(text)
	}
	if pattern == "" {
		return nil, errors.NewConfigError("header file " + cfg.HeaderFile + " is empty")
	}

	return header.New(header.NewLineChecker(pattern, cfg.MaxLines), text), nil
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
