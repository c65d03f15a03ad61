package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/obstools/internal/sidereal"
)

// ErrUsage is returned after the usage text has been printed. Callers
// should exit non-zero without printing anything further.
var ErrUsage = errors.New("usage")

const lmstUsage = `
lmst
Print the current local mean sidereal time at the telescope.

Takes no arguments. Computing LMST for other sites or for a given
date and time is not supported.
`

// NewLMSTCmd builds the command for the sidereal time reporter. Flag
// parsing is disabled: any argument at all, flags included, prints the
// usage text and fails.
func NewLMSTCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "lmst",
		Short:              "Print the current local mean sidereal time",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runLMST,
	}
}

func runLMST(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), lmstUsage)
		return ErrUsage
	}

	site, err := loadSite()
	if err != nil {
		return err
	}
	logger := newLogger(site)

	unix := now().Unix()
	mjd := sidereal.MJD(unix)
	lmst := sidereal.LMST(unix, site.LongitudeHours)
	logger.Debug("sidereal time computed",
		"unix", unix,
		"mjd", mjd,
		"gmst_rad", sidereal.GMST(mjd),
		"longitude_hours", site.LongitudeHours,
		"lmst_hours", lmst,
	)

	fmt.Fprintln(cmd.OutOrStdout(), sidereal.Split(lmst))
	return nil
}
