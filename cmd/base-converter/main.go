package main

import (
	"os"

	"github.com/pweiskircher/base-converter/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
