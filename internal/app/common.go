// Package app wires the observatory tools to their command lines.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/blackwell-systems/obstools/internal/config"
	"github.com/blackwell-systems/obstools/internal/fitsname"
)

// Overridable in tests.
var (
	now   = time.Now
	clock = fitsname.SystemClock
)

var logOutput io.Writer = os.Stderr

// loadSite reads the site configuration from the config directory.
func loadSite() (*config.Site, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}

	site, err := config.LoadSite(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}
	return site, nil
}

// newLogger returns a text logger on stderr at the site's level.
func newLogger(site *config.Site) *slog.Logger {
	return slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{
		Level: site.LogLevel,
	}))
}
