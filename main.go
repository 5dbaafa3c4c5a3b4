package main

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/gosph/cmd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := cmd.Execute(args, stdout); err != nil {
		fmt.Fprintf(stderr, "gosph: %v\n", err)
		return 1
	}
	return 0
}
