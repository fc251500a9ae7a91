// Package main is the entry point for rewind-demo, a two-field terminal
// scratchpad showing aggregate undo/redo across independently tracked state.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/rewind/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	u, err := newUI(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer u.shutdown()

	if err := u.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rewind-demo - aggregate undo/redo scratchpad\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rewind-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  tab     switch field\n")
		fmt.Fprintf(os.Stderr, "  ctrl-z  undo (chronological across both fields)\n")
		fmt.Fprintf(os.Stderr, "  ctrl-y  redo\n")
		fmt.Fprintf(os.Stderr, "  ctrl-s  mark saved (clears the changed flag)\n")
		fmt.Fprintf(os.Stderr, "  ctrl-x  clear all history\n")
		fmt.Fprintf(os.Stderr, "  esc     quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("rewind-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
