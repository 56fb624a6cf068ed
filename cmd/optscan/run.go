package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mfridman/xflag"

	"github.com/mfridman/getopts"
)

// RunOptions specifies the output streams of a run. Nil streams default to [os.Stdout] and
// [os.Stderr].
type RunOptions struct {
	Stdout, Stderr io.Writer
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}

type config struct {
	defs          stringsFlag
	file          string
	ignoreUnknown bool
	format        string
	prefix        string
	describe      bool
	verbose       bool
}

// stringsFlag collects every occurrence of a repeated flag.
type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, " ") }

func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("optscan", flag.ContinueOnError)
	fs.Var(&cfg.defs, "d", "option definition, may be repeated")
	fs.StringVar(&cfg.file, "f", "", "read definitions from a .toml, .yaml or .yml file")
	fs.BoolVar(&cfg.ignoreUnknown, "ignore-unknown", false, "keep unknown options as positional arguments")
	fs.StringVar(&cfg.format, "format", "json", "output format: json or shell")
	fs.StringVar(&cfg.prefix, "prefix", "OPT_", "variable name prefix for the shell format")
	fs.BoolVar(&cfg.describe, "describe", false, "print the compiled options instead of scanning")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug information to stderr")
	return fs
}

// run executes optscan and reports any error on stderr. The returned error only drives the exit
// code.
func run(args []string, options *RunOptions) error {
	options = checkAndSetRunOptions(options)
	err := execute(args, options)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	errColor := color.New(color.FgRed)
	if options.Stderr != os.Stderr {
		errColor.DisableColor()
	}
	errColor.Fprint(options.Stderr, "ERROR: ")
	fmt.Fprintln(options.Stderr, err)
	var usageErr *usageError
	if errors.As(err, &usageErr) && usageErr.usage != "" {
		fmt.Fprintf(options.Stderr, "\nOptions:\n%s", usageErr.usage)
	}
	return err
}

// usageError is a scan failure reported along with the option table.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func execute(args []string, options *RunOptions) error {
	// Everything after the first "--" belongs to the scanned command line, including any further
	// "--" which then acts as a stopper.
	toolArgs, scanArgs := args, []string(nil)
	for i, arg := range args {
		if arg == "--" {
			toolArgs, scanArgs = args[:i], args[i+1:]
			break
		}
	}

	cfg := new(config)
	fs := newFlagSet(cfg)
	fs.SetOutput(io.Discard)
	if err := xflag.ParseToEnd(fs, toolArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(options.Stdout, toolUsage(fs))
		}
		return err
	}
	scanArgs = append(fs.Args(), scanArgs...)

	logger := log.NewWithOptions(options.Stderr, log.Options{Prefix: "optscan"})
	if cfg.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	switch cfg.format {
	case "json", "shell":
	default:
		return fmt.Errorf("unknown output format %q", cfg.format)
	}

	defs := definitionsFile{}
	if cfg.file != "" {
		loaded, err := loadDefinitions(cfg.file)
		if err != nil {
			return err
		}
		defs = *loaded
		logger.Debug("loaded definitions file", "path", cfg.file, "options", len(defs.Options))
	}
	defs.Options = append(defs.Options, cfg.defs...)
	ignoreUnknown := cfg.ignoreUnknown || defs.IgnoreUnknown

	reg, err := getopts.Compile(defs.Options...)
	if err != nil {
		return err
	}
	logger.Debug("compiled options", "count", reg.Len(), "required", reg.Required())

	if cfg.describe {
		fmt.Fprint(options.Stdout, describe(reg, defs.Help))
		return nil
	}

	res, err := reg.Scan(scanArgs, &getopts.ScanOptions{IgnoreUnknown: ignoreUnknown})
	if err != nil {
		return &usageError{err: err, usage: describe(reg, defs.Help)}
	}
	logger.Debug("scanned arguments", "input", len(scanArgs), "leftover", len(res.Args))

	switch cfg.format {
	case "shell":
		return writeShell(options.Stdout, reg, res, cfg.prefix)
	default:
		return writeJSON(options.Stdout, res)
	}
}
