package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pablasso/pomo/internal/config"
	"github.com/pablasso/pomo/internal/tui"
)

// fastScale treats one real second as one plan minute.
const fastScale = 60

type parseResult struct {
	Options     tui.Options
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

// parseArgs handles the TUI launch flags. Settings come pre-loaded so
// parsing stays pure and testable.
func parseArgs(args []string, settings config.Settings) (parseResult, error) {
	fs := flag.NewFlagSet("pomo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fast := fs.Bool("fast", false, "Treat one real second as one plan minute (handy for demos)")
	theme := fs.String("theme", settings.Theme, "Color theme: dark|light")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: pomo [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Pomo is a Pomodoro timer for your terminal.")
		fmt.Fprintln(&b, "Run `pomo help` for the non-interactive commands.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	if *theme != config.ThemeDark && *theme != config.ThemeLight {
		return parseResult{}, fmt.Errorf("unknown theme %q\n\n%s", *theme, usage())
	}
	settings.Theme = *theme

	scale := 1
	if *fast {
		scale = fastScale
	}

	return parseResult{
		Options: tui.Options{
			Settings:  settings,
			TimeScale: scale,
		},
	}, nil
}
