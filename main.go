// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"mal/internal/config"
	"mal/internal/repl"
)

func main() {
	configPath := flag.String("config", ".malrc.yml", "path to the YAML config file")
	dump := flag.Bool("dump", false, "print the Go structure of every form read")
	noColor := flag.Bool("no-color", false, "disable colored output")
	verbosity := flag.Int("v", -1, "log verbosity, overrides the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dump {
		cfg.Dump = true
	}
	if *noColor {
		cfg.Color = false
	}
	if *verbosity >= 0 {
		cfg.Log.Verbosity = *verbosity
	}

	if !cfg.Color {
		color.NoColor = true
	}
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())

	if err := repl.Start(os.Stdin, os.Stdout, cfg); err != nil {
		os.Exit(1)
	}
}
