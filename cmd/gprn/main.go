package main

import (
	"os"

	"github.com/genomics-forge/gprn/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
