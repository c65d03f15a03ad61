package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/obstools/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the generator and returns the process exit code. Errors are
// reported on stdout as "filename: <message>".
func run(args []string, stdout io.Writer) int {
	cmd := app.NewFilenameCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stdout, "filename: %v\n", err)
		return 1
	}
	return 0
}
