package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/ternary/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("ternary"),
		kong.Description("Ternary search tree toolbox"),
		kong.UsageOnError())
	if err := ctx.Run(cli.NewContext(cli.CLI.Globals, os.Stdout, os.Stderr)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
