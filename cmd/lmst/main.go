package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/obstools/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the reporter and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	cmd := app.NewLMSTCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, app.ErrUsage) {
			fmt.Fprintf(stdout, "lmst: %v\n", err)
		}
		return 1
	}
	return 0
}
