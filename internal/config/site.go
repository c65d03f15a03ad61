// Package config provides site configuration for the observatory tools.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blackwell-systems/obstools/internal/night"
	"github.com/blackwell-systems/obstools/internal/sidereal"
)

// DirEnv overrides the config directory when set.
const DirEnv = "OBSTOOLS_CONFIG_DIR"

// Dir returns the obstools config directory. OBSTOOLS_CONFIG_DIR wins,
// then XDG_CONFIG_HOME, then ~/.config/obstools.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "obstools"), nil
}

// Site holds the constants of the observatory site.
type Site struct {
	// LongitudeHours is added to GMST to get LMST. West is negative.
	LongitudeHours float64
	// MaxYear is the last year the filename tool accepts. Zero disables it.
	MaxYear int
	// LeapYears names the leap-year rule: "gregorian" or "table".
	LeapYears string
	// LogLevel is the minimum slog level written to stderr.
	LogLevel slog.Level
}

// DefaultSite returns the settings for the Liverpool Telescope.
func DefaultSite() *Site {
	return &Site{
		LongitudeHours: sidereal.SiteLongitudeHours,
		MaxYear:        night.DefaultMaxYear,
		LeapYears:      "gregorian",
		LogLevel:       slog.LevelWarn,
	}
}

// LeapRule returns the night.LeapRule named by LeapYears.
func (s *Site) LeapRule() (night.LeapRule, error) {
	return night.ParseLeapRule(s.LeapYears)
}

// Resolver builds a night.Resolver from the site settings.
func (s *Site) Resolver() (*night.Resolver, error) {
	rule, err := s.LeapRule()
	if err != nil {
		return nil, err
	}
	return &night.Resolver{MaxYear: s.MaxYear, Leap: rule}, nil
}

// LoadSite reads {dir}/site and returns the parsed settings layered over
// DefaultSite. A missing file yields the defaults without an error. Lines
// are "key = value"; blank lines, comments and malformed lines are skipped.
func LoadSite(dir string) (*Site, error) {
	site := DefaultSite()

	path := filepath.Join(dir, "site")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return site, nil
		}
		return site, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" || value == "" {
			continue
		}

		if err := site.set(key, value); err != nil {
			return site, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return site, err
	}

	return site, nil
}

func (s *Site) set(key, value string) error {
	switch key {
	case "longitude_hours":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid longitude_hours %q: %w", value, err)
		}
		if v <= -24 || v >= 24 {
			return fmt.Errorf("longitude_hours %v out of range (-24, 24)", v)
		}
		s.LongitudeHours = v
	case "max_year":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid max_year %q: %w", value, err)
		}
		if v < 0 {
			return fmt.Errorf("max_year must not be negative, got %d", v)
		}
		s.MaxYear = v
	case "leap_years":
		if _, err := night.ParseLeapRule(value); err != nil {
			return err
		}
		s.LeapYears = strings.ToLower(value)
	case "log_level":
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", value, err)
		}
		s.LogLevel = level
	}
	// Unknown keys are ignored.
	return nil
}
