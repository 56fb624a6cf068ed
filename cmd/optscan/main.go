// Command optscan scans command-line arguments against getopts definitions and prints the result
// as JSON or as shell assignments, so that shell scripts can use the definition language.
//
// Usage:
//
//	optscan [flags] -- [arguments to scan...]
//
// Example:
//
//	eval "$(optscan -format shell -d 'help,h' -d 'out,o(r)=s' -- "$@")" || exit $?
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/mfridman/getopts"
)

func main() {
	os.Exit(exitCode(run(os.Args[1:], nil)))
}

func exitCode(err error) int {
	var argErr *getopts.ArgumentError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.As(err, &argErr):
		return 1
	default:
		return 2
	}
}
