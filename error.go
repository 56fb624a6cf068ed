package getopts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedDefinition is reported when a definition does not follow the grammar.
	ErrMalformedDefinition = errors.New("malformed definition")
	// ErrDuplicateName is reported when a name is already used by another option.
	ErrDuplicateName = errors.New("option defined twice")
	// ErrInvalidCardinality is reported for a numeric cardinality lower than 1.
	ErrInvalidCardinality = errors.New("invalid value count")
)

// DefinitionError is returned by [Compile] when a definition string is invalid.
type DefinitionError struct {
	// Definition is the offending definition string.
	Definition string
	// Name is the option name involved, if known.
	Name string
	// Err is one of ErrMalformedDefinition, ErrDuplicateName or ErrInvalidCardinality.
	Err error
}

func (e *DefinitionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("getopts: %v: %q in %q", e.Err, e.Name, e.Definition)
	}
	return fmt.Sprintf("getopts: %v %q", e.Err, e.Definition)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// ArgumentErrorKind identifies what was wrong with the scanned arguments.
type ArgumentErrorKind int

const (
	// UnknownOption is an option-shaped argument that matches no registered name.
	UnknownOption ArgumentErrorKind = iota + 1
	// TypeMismatch is a value that cannot be converted to the option's type.
	TypeMismatch
	// MissingArgument is an option occurrence with fewer values than its cardinality requires.
	MissingArgument
	// UnexpectedParameter is an inline value given to a flag, as in --flag=value.
	UnexpectedParameter
	// MissingRequired lists every required option absent from the arguments.
	MissingRequired
)

func (k ArgumentErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case TypeMismatch:
		return "type mismatch"
	case MissingArgument:
		return "missing argument"
	case UnexpectedParameter:
		return "unexpected parameter"
	case MissingRequired:
		return "missing required option"
	default:
		return "unknown error"
	}
}

// ArgumentError reports invalid user input found by [Registry.Scan]. Which fields are set depends
// on Kind.
type ArgumentError struct {
	Kind ArgumentErrorKind

	// Option is the primary name of the option involved. Empty for UnknownOption and
	// MissingRequired.
	Option string
	// Token is the offending argument: the raw option for UnknownOption, the value for
	// TypeMismatch and UnexpectedParameter.
	Token string

	// Type is the expected value type (TypeMismatch).
	Type ValueType
	// Expected and Got describe the value count (MissingArgument).
	Expected Cardinality
	Got      int

	// Missing lists every absent required option in definition order (MissingRequired).
	Missing []string
	// Suggestions holds registered names close to an unknown option (UnknownOption).
	Suggestions []string

	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case UnknownOption:
		msg := "unknown option " + e.Token
		if len(e.Suggestions) > 0 {
			msg += ". Did you mean one of these?\n\t" + strings.Join(formatNames(e.Suggestions), "\n\t")
		}
		return msg
	case TypeMismatch:
		return fmt.Sprintf("option %s: not %s: %q", formatName(e.Option), describeType(e.Type), e.Token)
	case MissingArgument:
		if e.Expected.Unbounded() {
			return fmt.Sprintf("option %s is missing argument(s): need at least %d, got %d", formatName(e.Option), e.Expected.Min, e.Got)
		}
		return fmt.Sprintf("option %s is missing argument(s): need %d, got %d", formatName(e.Option), e.Expected.Min, e.Got)
	case UnexpectedParameter:
		return fmt.Sprintf("option %s has an unexpected parameter: %s", formatName(e.Option), e.Token)
	case MissingRequired:
		return "missing required option(s): " + strings.Join(formatNames(e.Missing), ", ")
	default:
		return e.Kind.String()
	}
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func describeType(t ValueType) string {
	switch t {
	case TypeUnsigned:
		return "an unsigned integer"
	case TypeInteger:
		return "an integer"
	case TypeFloat:
		return "a float"
	default:
		return "a " + t.String()
	}
}

func formatName(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

func formatNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, formatName(name))
	}
	return out
}
