// Package fitsname builds the next free FITS filename for an observing night.
//
// The generator is advisory: it reads the data directory, counts the frames
// already taken that night across every exposure category and proposes the
// next sequence number. It never creates or reserves the file.
package fitsname

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackwell-systems/obstools/internal/night"
	"github.com/blackwell-systems/obstools/internal/scanner"
)

// ErrClock is returned when the clock cannot be read.
var ErrClock = errors.New("could not get time of day")

// Clock supplies the current local time.
type Clock func() (time.Time, error)

// SystemClock reads the wall clock in the local time zone.
func SystemClock() (time.Time, error) {
	return time.Now(), nil
}

// Result describes a generated filename and how it was derived.
type Result struct {
	Path     string
	Type     scanner.ExposureType
	Night    night.Night
	Sequence int
	Counts   scanner.Counts
}

// Generator proposes filenames inside one data directory.
type Generator struct {
	Dir      string
	Prefix   string
	Resolver *night.Resolver
	Clock    Clock
	Logger   *slog.Logger
}

// New returns a Generator using the system clock, the default resolver and
// the default slog logger.
func New(dir, prefix string) *Generator {
	return &Generator{
		Dir:      dir,
		Prefix:   prefix,
		Resolver: night.NewResolver(),
		Clock:    SystemClock,
		Logger:   slog.Default(),
	}
}

// Generate returns the next filename for an exposure of type e.
func (g *Generator) Generate(e scanner.ExposureType) (Result, error) {
	now, err := g.clock()()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrClock, err)
	}
	if now.IsZero() {
		return Result{}, ErrClock
	}

	resolver := g.Resolver
	if resolver == nil {
		resolver = night.NewResolver()
	}
	n, err := resolver.Resolve(now)
	if err != nil {
		return Result{}, err
	}
	g.logger().Debug("observing night resolved", "clock", now.Format(time.RFC3339), "night", n.String())

	counts, err := scanner.New(g.Dir).Count(g.Prefix, n)
	if err != nil {
		return Result{}, err
	}
	for _, c := range counts.Categories {
		g.logger().Debug("category scanned", "pattern", c.Pattern, "count", c.Count)
	}

	seq := counts.Next()
	return Result{
		Path:     Format(g.Dir, g.Prefix, e, n, seq),
		Type:     e,
		Night:    n,
		Sequence: seq,
		Counts:   counts,
	}, nil
}

// Format renders <dir>/<prefix>_<code>_<YYYYMMDD>_<seq>_1_1_0.fits.
func Format(dir, prefix string, e scanner.ExposureType, n night.Night, seq int) string {
	return fmt.Sprintf("%s/%s_%s_%s_%d_1_1_0.fits", dir, prefix, e.Code(), n.Stamp(), seq)
}

func (g *Generator) clock() Clock {
	if g.Clock == nil {
		return SystemClock
	}
	return g.Clock
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
