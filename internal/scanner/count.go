package scanner

import (
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/obstools/internal/night"
)

// frameMarker must appear somewhere in a filename for it to count as a
// frame. Written frames end in _1_1_0.fits.
const frameMarker = "0.fits"

// Category is the scan result for one exposure type.
type Category struct {
	Type    ExposureType
	Pattern string
	Count   int
}

// Counts holds the per-category results of a directory scan.
type Counts struct {
	Night      night.Night
	Categories []Category
	Total      int
}

// Pattern returns the filename prefix shared by every frame of the given
// type taken on night n.
func Pattern(prefix string, e ExposureType, n night.Night) string {
	return fmt.Sprintf("%s_%s_%s", prefix, e.Code(), n.Stamp())
}

// matcher returns a predicate that accepts names starting with pattern and
// containing the frame marker.
func matcher(pattern string) func(name string) bool {
	return func(name string) bool {
		return strings.HasPrefix(name, pattern) && strings.Contains(name, frameMarker)
	}
}

// Count reads the data directory once and counts, for every exposure
// category, the entries belonging to night n. Entries are matched on name
// alone; directories and other non-regular files are counted too.
func (s *Scanner) Count(prefix string, n night.Night) (Counts, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to read data directory: %w", err)
	}

	counts := Counts{
		Night:      n,
		Categories: make([]Category, 0, len(Categories)),
	}

	for _, e := range Categories {
		pattern := Pattern(prefix, e, n)
		match := matcher(pattern)

		c := Category{Type: e, Pattern: pattern}
		for _, entry := range entries {
			if match(entry.Name()) {
				c.Count++
			}
		}

		counts.Categories = append(counts.Categories, c)
		counts.Total += c.Count
	}

	return counts, nil
}

// Next returns the sequence number for the next frame of the night.
func (c Counts) Next() int {
	return c.Total + 1
}
