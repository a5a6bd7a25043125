// Package scan applies a header.Header across a directory tree.
//
// Two engines share one recursive enumerator: Scanner fans a worker
// pool out over the discovered paths to classify files by header
// presence, and Applier runs the mutating add/delete operations over
// the same paths one at a time. A scan never writes; a batch apply is
// single-threaded by design, since concurrent writers risk corrupting
// shared files.
package scan

import (
	"os"
	"runtime"
	"sync"

	"github.com/conneroisu/fileheader/internal/errors"
	"github.com/conneroisu/fileheader/internal/header"
)

// Results aggregates the findings of one scan. A path appears in at
// most one list; ordering is run-dependent when more than one worker
// is used, but the combined membership is stable for a fixed tree.
type Results struct {
	// MissingHeader lists text files where the header was not found.
	MissingHeader []string
	// BinaryFiles lists files whose scan window was not UTF-8 text.
	BinaryFiles []string
}

// HasFindings reports whether any scanned file is missing the header
// or could not be read as text.
func (r *Results) HasFindings() bool {
	return len(r.MissingHeader) > 0 || len(r.BinaryFiles) > 0
}

// Scanner checks for a header across a tree using a pool of workers.
// The shared Header is immutable for the duration of a run, so workers
// use it without synchronization.
type Scanner struct {
	header  *header.Header
	workers int
}

// NewScanner creates a Scanner that checks for hdr with the given
// worker count. A count below one falls back to the number of CPUs.
func NewScanner(hdr *header.Header, workers int) *Scanner {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Scanner{
		header:  hdr,
		workers: workers,
	}
}

// outcome is one worker's classification of a single path. A nil err
// with binary false means the header was missing; files where the
// header was found produce no outcome at all.
type outcome struct {
	path   string
	binary bool
	err    error
}

// Scan enumerates every file under root accepted by match and checks
// each for the header. Enumeration runs concurrently with checking, so
// directory-walk latency overlaps per-file I/O. The first fatal error
// from any worker or from the walk aborts the run, but only after
// every worker has drained and exited; errors observed after the first
// are dropped.
func (s *Scanner) Scan(root string, match func(string) bool) (*Results, error) {
	paths := make(chan string)
	results := make(chan outcome)
	walkErr := make(chan error, 1)

	go func() {
		defer close(paths)
		err := enumerate(root, match, func(path string) error {
			paths <- path

			return nil
		})
		if err != nil {
			walkErr <- err
		}
		close(walkErr)
	}()

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				s.checkOne(path, results)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	res := &Results{}
	var firstErr error
	for out := range results {
		switch {
		case out.err != nil:
			if firstErr == nil {
				firstErr = out.err
			}
		case out.binary:
			res.BinaryFiles = append(res.BinaryFiles, out.path)
		default:
			res.MissingHeader = append(res.MissingHeader, out.path)
		}
	}

	if err := <-walkErr; err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return res, nil
}

// checkOne opens one file, runs the presence check, and reports the
// classification. Header found is a no-op; header missing and binary
// content are findings; anything else is fatal to the run.
func (s *Scanner) checkOne(path string, results chan<- outcome) {
	f, err := os.Open(path)
	if err != nil {
		results <- outcome{path: path, err: errors.NewIOError(path, err)}

		return
	}
	defer f.Close()

	present, err := s.header.Present(f)
	switch {
	case errors.IsBinary(err):
		results <- outcome{path: path, binary: true}
	case err != nil:
		results <- outcome{path: path, err: errors.NewIOError(path, err)}
	case !present:
		results <- outcome{path: path}
	}
}
