package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/obstools/internal/fitsname"
	"github.com/blackwell-systems/obstools/internal/output"
	"github.com/blackwell-systems/obstools/internal/scanner"
)

// ErrArgCount is returned when the generator is not given exactly three
// positional arguments.
var ErrArgCount = errors.New("must specify <exp-type> <prefix> <datadir>")

// explainFlag, when it is the first argument, writes the per-type
// breakdown to stderr.
const explainFlag = "--explain"

// NewFilenameCmd builds the command for the observing-night filename
// generator. Flag parsing is disabled so every token after an optional
// leading --explain is positional. A prefix may start with "-" and --help
// counts as an argument.
func NewFilenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filename [--explain] <EXP-TYPE> <prefix> <datadir>",
		Short: "Print the next free FITS filename for tonight",
		Long: `Print the next FITS filename for an exposure taken on the current observing night.

The observing night is labelled by the evening's date: anything before local
noon belongs to the previous day's night. Frames already in <datadir> for that
night are counted across all four exposure types and the sequence number
continues from there.

EXP-TYPE is one of FLAT, BIAS, DARK or EXPOSE. The file is not created.
--explain is only recognised as the first argument.`,
		Example: `  # Next science frame
  filename EXPOSE lt /data/2024

  # Show the per-type breakdown on stderr
  filename --explain BIAS lt /data/2024`,
		Args: func(cmd *cobra.Command, args []string) error {
			if _, rest := splitExplain(args); len(rest) != 3 {
				return ErrArgCount
			}
			return nil
		},
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			explain, rest := splitExplain(args)
			return runFilename(cmd, rest, explain)
		},
	}
}

// splitExplain strips a leading --explain from args.
func splitExplain(args []string) (bool, []string) {
	if len(args) > 0 && args[0] == explainFlag {
		return true, args[1:]
	}
	return false, args
}

func runFilename(cmd *cobra.Command, args []string, explain bool) error {
	expType, err := scanner.ParseExposureType(args[0])
	if err != nil {
		return err
	}

	site, err := loadSite()
	if err != nil {
		return err
	}

	resolver, err := site.Resolver()
	if err != nil {
		return err
	}

	g := fitsname.New(args[2], args[1])
	g.Resolver = resolver
	g.Clock = clock
	g.Logger = newLogger(site)

	res, err := g.Generate(expType)
	if err != nil {
		return err
	}

	if explain {
		stderr := cmd.ErrOrStderr()
		fmt.Fprint(stderr, output.RenderCountTable(res.Counts, expType, output.IsColorEnabled(stderr)))
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
