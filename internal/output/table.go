// Package output renders human-readable diagnostics for the observatory
// tools.
//
// Everything here is meant for stderr. Standard output of the tools carries
// only their result (a filename or a sidereal time) so it can be captured by
// scripts.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/obstools/internal/scanner"
)

// IsColorEnabled returns true if colour codes should be written to w.
// w must be a terminal and NO_COLOR must be unset.
func IsColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return writerIsTTY(w)
}

// writerIsTTY returns true if w exposes an Fd() method (e.g. *os.File)
// and that fd is a terminal.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// RenderCountTable renders the per-category frame counts of a scan and the
// sequence number that follows. The row for selected is highlighted when
// useColor is set.
func RenderCountTable(counts scanner.Counts, selected scanner.ExposureType, useColor bool) string {
	highlight := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	if useColor {
		highlight.EnableColor()
		dim.EnableColor()
	} else {
		highlight.DisableColor()
		dim.DisableColor()
	}

	width := len("Pattern")
	for _, c := range counts.Categories {
		if len(c.Pattern) > width {
			width = len(c.Pattern)
		}
	}
	rowFormat := fmt.Sprintf("%%-8s %%-4s %%-%ds %%6s", width)
	rule := strings.Repeat("─", 8+1+4+1+width+1+6)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Observing night %s\n", counts.Night))
	sb.WriteString(fmt.Sprintf(rowFormat, "Type", "Code", "Pattern", "Frames"))
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")

	for _, c := range counts.Categories {
		row := fmt.Sprintf(rowFormat, c.Type, c.Type.Code(), c.Pattern, fmt.Sprintf("%d", c.Count))
		switch {
		case c.Type == selected:
			row = highlight.Sprint(row)
		case c.Count == 0:
			row = dim.Sprint(row)
		}
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(rowFormat, "Total", "", "", fmt.Sprintf("%d", counts.Total)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Next sequence: %d (%s)\n", counts.Next(), selected))

	return sb.String()
}
