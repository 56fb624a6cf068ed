package main

import (
	"cmp"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/getopts"
	"github.com/mfridman/getopts/pkg/textutil"
)

const width = 80

// describe renders the compiled options as a two-column table, in definition order.
func describe(reg *getopts.Registry, help map[string]string) string {
	var rows [][2]string
	for _, opt := range reg.Options() {
		rows = append(rows, [2]string{optionNames(opt), optionSummary(opt, help[opt.Name])})
	}
	if len(rows) == 0 {
		return ""
	}
	return textutil.Columns(rows, 2, width)
}

func optionNames(opt getopts.Option) string {
	names := make([]string, 0, len(opt.Aliases))
	for _, alias := range opt.Aliases {
		if len(alias) == 1 {
			names = append(names, "-"+alias)
		} else {
			names = append(names, "--"+alias)
		}
	}
	s := strings.Join(names, ", ")
	if opt.Type != getopts.TypeNone {
		s += " <" + opt.Type.String() + ">"
	}
	return s
}

func optionSummary(opt getopts.Option, help string) string {
	var traits []string
	switch opt.Kind() {
	case getopts.SlotCounter:
		traits = append(traits, "repeatable")
	case getopts.SlotArray:
		switch c := opt.Cardinality; {
		case c == getopts.Optional() || c == getopts.One():
		case c == getopts.ZeroOrMore():
			traits = append(traits, "zero or more values")
		case c == getopts.OneOrMore():
			traits = append(traits, "one or more values")
		default:
			traits = append(traits, fmt.Sprintf("%d values", c.Min))
		}
		if opt.Repeatable {
			traits = append(traits, "repeatable")
		}
	case getopts.SlotScalar:
		if opt.Cardinality == getopts.Optional() {
			traits = append(traits, "optional value")
		}
	}
	if opt.Required {
		traits = append(traits, "required")
	}
	if len(traits) == 0 {
		return help
	}
	summary := "(" + strings.Join(traits, ", ") + ")"
	if help != "" {
		summary = help + " " + summary
	}
	return summary
}

// toolUsage renders optscan's own help text.
func toolUsage(fs *flag.FlagSet) string {
	var rows [][2]string
	fs.VisitAll(func(f *flag.Flag) {
		usage := f.Usage
		if f.DefValue != "" && f.DefValue != "false" {
			usage += fmt.Sprintf(" (default: %s)", f.DefValue)
		}
		rows = append(rows, [2]string{"-" + f.Name, usage})
	})
	slices.SortFunc(rows, func(a, b [2]string) int {
		return cmp.Compare(a[0], b[0])
	})

	var b strings.Builder
	for _, line := range textutil.Wrap("Scan command-line arguments against option definitions and print "+
		"the result as JSON or shell assignments.", width) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\nUsage:\n  optscan [flags] -- [arguments...]\n\nFlags:\n")
	b.WriteString(textutil.Columns(rows, 2, width))
	return strings.TrimRight(b.String(), "\n")
}
