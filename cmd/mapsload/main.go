package main

import (
	"os"

	"github.com/mapsbench/mapsload/internal/pkg/cli"
	"github.com/mapsbench/mapsload/internal/pkg/env"
)

func main() {
	// Run command
	cmd := cli.NewRootCommand(os.Stdout, os.Stderr, env.FromOs())
	os.Exit(cmd.Execute())
}
