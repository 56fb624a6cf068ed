package getopts

import (
	"os"

	"github.com/mfridman/getopts/pkg/suggest"
)

// ScanOptions controls how [Registry.Scan] treats its input.
type ScanOptions struct {
	// IgnoreUnknown leaves option-shaped arguments that match no registered name in the leftover
	// arguments instead of failing with an UnknownOption error.
	IgnoreUnknown bool
}

// Getopts compiles defs and scans args against them. A convenience function that combines
// [Compile] and [Registry.Scan]; see both for details.
//
// If args is nil, the process arguments (os.Args[1:]) are scanned.
func Getopts(args []string, defs []string, options *ScanOptions) (*Result, error) {
	if args == nil && len(os.Args) > 1 {
		args = os.Args[1:]
	}
	reg, err := Compile(defs...)
	if err != nil {
		return nil, err
	}
	return reg.Scan(args, options)
}

// Scan reads args from left to right, assigning values to the registered options. Arguments that
// are not consumed by an option are returned, in order, in [Result.Args]. A "--" argument stops
// option processing: it and everything after it are left untouched.
//
// A value-taking option accepts either "--name value" or "--name=value". Following arguments are
// consumed as values according to the option's cardinality, but never an argument that is "-",
// "--" or a registered option name. Negative numbers are therefore valid values.
//
// The options parameter may be nil, in which case default values are used. See [ScanOptions].
//
// Errors are of type [*ArgumentError]. When the only problem is missing required options, the
// error lists all of them and the returned Result is still populated.
func (r *Registry) Scan(args []string, options *ScanOptions) (*Result, error) {
	if options == nil {
		options = &ScanOptions{}
	}
	res := newResult(r)
	if len(r.options) == 0 {
		res.Args = append(res.Args, args...)
		return res, nil
	}

	s := &scanner{
		reg:     r,
		res:     res,
		args:    args,
		pending: make(map[string]bool, len(r.required)),
	}
	for _, name := range r.required {
		s.pending[name] = true
	}
	if err := s.scan(options.IgnoreUnknown); err != nil {
		return nil, err
	}

	for _, name := range r.required {
		if s.pending[name] {
			res.Missing = append(res.Missing, name)
		}
	}
	if len(res.Missing) > 0 {
		return res, &ArgumentError{Kind: MissingRequired, Missing: res.Missing}
	}
	return res, nil
}

// scanner holds the state of a single Scan call. The input slice is never modified: a cursor
// walks it, and an inline "=value" is held in a one-value pushback that is read like any other
// argument.
type scanner struct {
	reg *Registry
	res *Result

	args []string
	pos  int

	pushback    string
	hasPushback bool

	// pending holds required options not seen yet.
	pending map[string]bool
}

func (s *scanner) scan(ignoreUnknown bool) error {
	for {
		arg, ok := s.take()
		if !ok {
			return nil
		}
		if arg == "--" {
			s.res.Args = append(s.res.Args, arg)
			s.res.Args = append(s.res.Args, s.args[s.pos:]...)
			return nil
		}

		tok, ok := Classify(arg)
		if !ok {
			s.res.Args = append(s.res.Args, arg)
			continue
		}
		opt := s.reg.lookup(tok.Name)
		if opt == nil {
			if ignoreUnknown {
				s.res.Args = append(s.res.Args, arg)
				continue
			}
			return &ArgumentError{
				Kind:        UnknownOption,
				Token:       arg,
				Suggestions: suggest.FindSimilar(tok.Name, s.reg.names(), 3),
			}
		}

		delete(s.pending, opt.Name)
		s.res.counts[opt.Name]++
		sl := s.res.slots[opt.Name]

		if opt.Type == TypeNone {
			if tok.Inline {
				return &ArgumentError{Kind: UnexpectedParameter, Option: opt.Name, Token: tok.Value}
			}
			sl.mark()
			continue
		}
		if tok.Inline {
			s.pushback, s.hasPushback = tok.Value, true
		}
		if err := s.readValues(opt, sl); err != nil {
			return err
		}
	}
}

// take returns the next argument for the main loop, draining an unconsumed inline value first.
func (s *scanner) take() (string, bool) {
	if s.hasPushback {
		s.hasPushback = false
		return s.pushback, true
	}
	if s.pos >= len(s.args) {
		return "", false
	}
	s.pos++
	return s.args[s.pos-1], true
}

func (s *scanner) readValues(opt *Option, sl slot) error {
	card := opt.Cardinality
	got := 0
	for card.Unbounded() || got < card.Max {
		raw, ok := s.next()
		if !ok {
			break
		}
		if err := sl.add(raw); err != nil {
			return &ArgumentError{Kind: TypeMismatch, Option: opt.Name, Token: raw, Type: opt.Type, Err: err}
		}
		got++
	}
	if got < card.Min {
		return &ArgumentError{Kind: MissingArgument, Option: opt.Name, Expected: card, Got: got}
	}
	return nil
}

// next returns the next value candidate: a pending inline value, else the argument under the
// cursor. Either is refused when it looks like an option and then stays in place.
func (s *scanner) next() (string, bool) {
	var arg string
	switch {
	case s.hasPushback:
		arg = s.pushback
	case s.pos < len(s.args):
		arg = s.args[s.pos]
	default:
		return "", false
	}
	if s.optionLike(arg) {
		return "", false
	}
	if s.hasPushback {
		s.hasPushback = false
	} else {
		s.pos++
	}
	return arg, true
}

func (s *scanner) optionLike(arg string) bool {
	if arg == "-" || arg == "--" {
		return true
	}
	tok, ok := Classify(arg)
	return ok && s.reg.lookup(tok.Name) != nil
}
