// Command eosconv converts equation-of-state tables between the solver's
// fixed-width format, the library manager's printed dump and spreadsheets.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code, so tests can
// drive it without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "eosconv: %v\n", err)
		return 1
	}
	return 0
}
