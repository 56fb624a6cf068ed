// Package getopts provides a small declarative command-line option parser. Options are described
// as compact definition strings, compiled once into a [Registry], and then used to scan raw
// argument lists into typed values plus leftover positional arguments.
//
// A definition has the form:
//
//	<name>[,<alias>...][(<traits>)][=<type>[<cardinality>]]
//
// Traits are "r" (required) and "m" (repeatable: a flag is counted, a value is accumulated).
// Types are "s" (string), "u" (unsigned integer), "i" (signed integer) and "f" (float). The
// cardinality is absent (exactly one value), "?" (zero or one), "*" (zero or more), "+" (one or
// more) or a positive integer N (exactly N values). A definition without a type is a flag.
//
//	reg := getopts.MustCompile(
//	    "help,h",
//	    "dir,d(r)=s",
//	    "keyval=s2",
//	    "verbose,v(m)",
//	    "count,loops,c=u",
//	)
//	res, err := reg.Scan(os.Args[1:], nil)
//
// The package never prints, logs or exits. Compilation problems are reported as
// [*DefinitionError] and indicate a bug in the calling tool; problems with the user's arguments
// are reported as [*ArgumentError], which carries enough detail to print a usage message.
package getopts
