package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/pomo/internal/cli"
	"github.com/pablasso/pomo/internal/config"
	"github.com/pablasso/pomo/internal/tui"
	"github.com/pablasso/pomo/internal/version"
)

func main() {
	// Flags launch the TUI with options; subcommands route to the CLI.
	args := os.Args[1:]
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		runTUI(args)
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(args []string) {
	settings, err := config.Load(cli.AppName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := parseArgs(args, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result.ShowHelp {
		fmt.Print(result.HelpText)
		return
	}
	if result.ShowVersion {
		fmt.Printf("pomo %s (%s, built %s)\n", version.Version, version.CommitSHA, version.BuildDate)
		return
	}

	if err := tui.Run(result.Options); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
