// Package scanner counts the FITS frames already written to a data
// directory for one observing night.
package scanner

// Scanner reads a single data directory.
type Scanner struct {
	dir string
}

// New creates a Scanner for the given data directory.
func New(dir string) *Scanner {
	return &Scanner{dir: dir}
}
