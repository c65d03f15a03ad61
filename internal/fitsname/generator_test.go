package fitsname

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blackwell-systems/obstools/internal/night"
	"github.com/blackwell-systems/obstools/internal/scanner"
)

func fixedClock(t time.Time) Clock {
	return func() (time.Time, error) { return t, nil }
}

func newTestGenerator(t *testing.T, dir string, now time.Time) *Generator {
	t.Helper()
	g := New(dir, "lt")
	g.Clock = fixedClock(now)
	g.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return g
}

func TestGenerate_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	g := newTestGenerator(t, dir, time.Date(2024, time.June, 15, 22, 30, 0, 0, time.UTC))

	res, err := g.Generate(scanner.Expose)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want := dir + "/lt_e_20240615_1_1_1_0.fits"
	if res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}
	if res.Sequence != 1 {
		t.Errorf("Sequence = %d, want 1", res.Sequence)
	}
}

func TestGenerate_CountsEveryCategory(t *testing.T) {
	dir := t.TempDir()
	existing := []string{
		"lt_b_20240229_1_1_1_0.fits",
		"lt_b_20240229_2_1_1_0.fits",
		"lt_f_20240229_3_1_1_0.fits",
		"lt_d_20240229_4_1_1_0.fits",
		"lt_e_20240229_5_1_1_0.fits",
	}
	for _, name := range existing {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	// 08:00 on 1 March belongs to the night of 29 February.
	g := newTestGenerator(t, dir, time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC))

	res, err := g.Generate(scanner.Dark)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want := dir + "/lt_d_20240229_6_1_1_0.fits"
	if res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}
	if res.Night != (night.Night{Year: 2024, Month: 2, Day: 29}) {
		t.Errorf("Night = %v, want 2024-02-29", res.Night)
	}
	if res.Counts.Total != len(existing) {
		t.Errorf("Counts.Total = %d, want %d", res.Counts.Total, len(existing))
	}
}

func TestGenerate_YearRollback(t *testing.T) {
	dir := t.TempDir()
	g := newTestGenerator(t, dir, time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC))

	res, err := g.Generate(scanner.Flat)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if want := dir + "/lt_f_20231231_1_1_1_0.fits"; res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}
}

func TestGenerate_YearCeiling(t *testing.T) {
	g := newTestGenerator(t, t.TempDir(), time.Date(2033, time.June, 1, 22, 0, 0, 0, time.UTC))

	_, err := g.Generate(scanner.Bias)
	if !errors.Is(err, night.ErrYearCeiling) {
		t.Fatalf("expected ErrYearCeiling, got %v", err)
	}
}

func TestGenerate_ConfigurableCeiling(t *testing.T) {
	g := newTestGenerator(t, t.TempDir(), time.Date(2040, time.June, 1, 22, 0, 0, 0, time.UTC))
	g.Resolver = &night.Resolver{MaxYear: 2050, Leap: night.Gregorian}

	res, err := g.Generate(scanner.Bias)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if res.Night.Year != 2040 {
		t.Errorf("Night.Year = %d, want 2040", res.Night.Year)
	}
}

func TestGenerate_ClockFailure(t *testing.T) {
	g := newTestGenerator(t, t.TempDir(), time.Time{})
	if _, err := g.Generate(scanner.Expose); !errors.Is(err, ErrClock) {
		t.Fatalf("zero clock: expected ErrClock, got %v", err)
	}

	g.Clock = func() (time.Time, error) { return time.Time{}, errors.New("rtc offline") }
	if _, err := g.Generate(scanner.Expose); !errors.Is(err, ErrClock) {
		t.Fatalf("failing clock: expected ErrClock, got %v", err)
	}
}

func TestGenerate_UnreadableDirectory(t *testing.T) {
	g := newTestGenerator(t, filepath.Join(t.TempDir(), "missing"), time.Date(2024, time.June, 15, 22, 0, 0, 0, time.UTC))
	if _, err := g.Generate(scanner.Expose); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFormat(t *testing.T) {
	got := Format("/data", "lt", scanner.Expose, night.Night{Year: 2024, Month: 3, Day: 5}, 12)
	if want := "/data/lt_e_20240305_12_1_1_0.fits"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
