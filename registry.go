package getopts

import (
	"slices"
	"strconv"
)

// ValueType is the type of the values an option accepts.
type ValueType int

const (
	// TypeNone marks a flag: the option takes no value.
	TypeNone ValueType = iota
	TypeString
	TypeUnsigned
	TypeInteger
	TypeFloat
)

func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeString:
		return "string"
	case TypeUnsigned:
		return "unsigned"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Cardinality is the number of values a single occurrence of an option consumes. Max is negative
// when there is no upper bound.
type Cardinality struct {
	Min, Max int
}

// One is the default cardinality of a valued option: exactly one value.
func One() Cardinality { return Cardinality{Min: 1, Max: 1} }

// Optional accepts zero or one value ("?").
func Optional() Cardinality { return Cardinality{Min: 0, Max: 1} }

// ZeroOrMore accepts any number of values ("*").
func ZeroOrMore() Cardinality { return Cardinality{Min: 0, Max: -1} }

// OneOrMore requires at least one value ("+").
func OneOrMore() Cardinality { return Cardinality{Min: 1, Max: -1} }

// Exactly requires exactly n values.
func Exactly(n int) Cardinality { return Cardinality{Min: n, Max: n} }

// Unbounded reports whether c has no upper bound.
func (c Cardinality) Unbounded() bool { return c.Max < 0 }

// String returns c as it is written in a definition; exactly one value is the empty string.
func (c Cardinality) String() string {
	switch {
	case c == One():
		return ""
	case c == Optional():
		return "?"
	case c == ZeroOrMore():
		return "*"
	case c == OneOrMore():
		return "+"
	default:
		return strconv.Itoa(c.Min)
	}
}

// SlotKind describes the shape of an option's output value.
type SlotKind int

const (
	// SlotFlag is a boolean, false unless the option was given.
	SlotFlag SlotKind = iota + 1
	// SlotCounter counts occurrences of a repeatable flag.
	SlotCounter
	// SlotScalar holds a single typed value; the last occurrence wins.
	SlotScalar
	// SlotArray accumulates typed values in order.
	SlotArray
)

func (k SlotKind) String() string {
	switch k {
	case SlotFlag:
		return "flag"
	case SlotCounter:
		return "counter"
	case SlotScalar:
		return "scalar"
	case SlotArray:
		return "array"
	default:
		return "unknown"
	}
}

// Option is the compiled form of one definition.
type Option struct {
	// Name is the primary name, used as the key in results.
	Name string
	// Aliases lists every accepted name, primary name first.
	Aliases []string

	Type        ValueType
	Cardinality Cardinality

	// Repeatable is set by the "m" trait. A repeatable flag is counted, a repeatable valued option
	// accumulates its values.
	Repeatable bool
	// Required is set by the "r" trait.
	Required bool
}

// Kind returns the output slot kind of the option.
func (o Option) Kind() SlotKind {
	if o.Type == TypeNone {
		if o.Repeatable {
			return SlotCounter
		}
		return SlotFlag
	}
	if o.Repeatable || o.Cardinality.Max != 1 {
		return SlotArray
	}
	return SlotScalar
}

// String returns the option in definition syntax.
func (o Option) String() string {
	var b []byte
	for i, name := range o.Aliases {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, name...)
	}
	if o.Required || o.Repeatable {
		b = append(b, '(')
		if o.Required {
			b = append(b, 'r')
		}
		if o.Repeatable {
			b = append(b, 'm')
		}
		b = append(b, ')')
	}
	if o.Type != TypeNone {
		b = append(b, '=', typeLetters[o.Type])
		b = append(b, o.Cardinality.String()...)
	}
	return string(b)
}

func (o Option) clone() Option {
	o.Aliases = slices.Clone(o.Aliases)
	return o
}

// Registry is an immutable set of compiled options. It is safe for concurrent use by multiple
// goroutines.
type Registry struct {
	// options in definition order.
	options []Option
	// byName maps a primary name to its index in options.
	byName map[string]int
	// aliases maps every accepted name to its primary name.
	aliases map[string]string
	// required primary names, in definition order.
	required []string
}

// Lookup resolves any alias to its option.
func (r *Registry) Lookup(alias string) (Option, bool) {
	opt := r.lookup(alias)
	if opt == nil {
		return Option{}, false
	}
	return opt.clone(), true
}

func (r *Registry) lookup(alias string) *Option {
	primary, ok := r.aliases[alias]
	if !ok {
		return nil
	}
	return &r.options[r.byName[primary]]
}

// Options returns the compiled options in definition order.
func (r *Registry) Options() []Option {
	out := make([]Option, 0, len(r.options))
	for _, opt := range r.options {
		out = append(out, opt.clone())
	}
	return out
}

// Required returns the primary names of the required options, in definition order.
func (r *Registry) Required() []string {
	return slices.Clone(r.required)
}

// Len returns the number of compiled options.
func (r *Registry) Len() int {
	return len(r.options)
}

// names returns every accepted alias, used for suggestions.
func (r *Registry) names() []string {
	var names []string
	for _, opt := range r.options {
		names = append(names, opt.Aliases...)
	}
	return names
}
