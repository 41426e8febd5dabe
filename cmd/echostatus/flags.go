// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -addr, -lang, -verbose, -version, -markdown, -player

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const (
	cmdServe = "serve"
	cmdQuery = "query"
)

type cliArgs struct {
	configPath string
	addr       string
	lang       string
	verbose    bool
	version    bool
	markdown   bool
	player     string

	command string
	address string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("echostatus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.configPath, "config", "", "Path to config.yaml (default ~/.echostatus/config.yaml)")
	fs.StringVar(&args.addr, "addr", "", "Listen address for serve (overrides config)")
	fs.StringVar(&args.lang, "lang", "", "Output language: es or en")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.BoolVar(&args.markdown, "markdown", false, "Render the query report as markdown")
	fs.StringVar(&args.player, "player", "", "Fuzzy filter for the player list (query)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: echostatus [flags] [serve | query <address>]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	rest := fs.Args()
	args.command = cmdServe
	if len(rest) > 0 {
		args.command = rest[0]
		rest = rest[1:]
	}
	switch args.command {
	case cmdServe:
		if len(rest) > 0 {
			return args, fmt.Errorf("serve takes no arguments, got %q", rest)
		}
	case cmdQuery:
		if len(rest) != 1 {
			return args, errors.New("query needs exactly one server address")
		}
		args.address = rest[0]
	default:
		return args, fmt.Errorf("unknown command %q", args.command)
	}
	return args, nil
}
