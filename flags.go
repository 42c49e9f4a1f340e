package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/procnote/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that may set flags, e.g. PROCNOTE_OUT.
const _envPrefix = "PROCNOTE"

// params holds all arguments for procnote.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	// Catalog is a YAML catalog file.
	// The built-in curriculum is used if empty.
	Catalog string

	OutputDir    string
	Home         string
	InlineStyles bool
	LineNumbers  bool
	Style        string

	// Pagefind is "-" to look up pagefind on $PATH,
	// a path to the binary, or empty to skip indexing.
	Pagefind flagvalue.FileSwitch

	Browse bool

	// Start is the lesson the reader opens on.
	// Only meaningful with Browse.
	Start string
}

// cliParser parses the command line arguments for procnote.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("procnote", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		_ = UsageHelp.Write(cmd.Stderr)
	}

	var p params

	// Input:
	flag.StringVar(&p.Catalog, "catalog", "", "")

	// Site output:
	flag.StringVar(&p.OutputDir, "out", "_site", "")
	flag.StringVar(&p.Home, "home", "/", "")
	flag.Var(&p.Pagefind, "pagefind", "")

	// Code samples:
	flag.BoolVar(&p.InlineStyles, "inline-styles", false, "")
	flag.BoolVar(&p.LineNumbers, "line-numbers", true, "")
	flag.StringVar(&p.Style, "style", "", "")

	// Terminal reader:
	flag.BoolVar(&p.Browse, "browse", false, "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.StringVar(&p.config, "config", "", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "procnote", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 0:
	case 1:
		if !p.Browse {
			fmt.Fprintf(cmd.Stderr, "Unexpected argument %q: a starting lesson requires -browse.\n", args[0])
			_ = UsageHelp.Write(cmd.Stderr)
			return nil, errInvalidArguments
		}
		p.Start = args[0]
	default:
		fmt.Fprintf(cmd.Stderr, "Too many arguments: %q\n", args)
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	if p.Browse && p.Pagefind.Bool() {
		fmt.Fprintln(cmd.Stderr, "Flags -browse and -pagefind cannot be used together.")
		return nil, errInvalidArguments
	}

	return p, nil
}
