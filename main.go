// mandate formats, shifts, and compares dates from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/mandate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
