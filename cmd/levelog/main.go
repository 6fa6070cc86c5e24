package main

import (
	"fmt"
	"os"

	"github.com/spaceweasel/levelog/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "levelog:", err)
		os.Exit(1)
	}
}
