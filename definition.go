package getopts

import (
	"regexp"
	"strconv"
	"strings"
)

var definitionPattern = regexp.MustCompile(
	`^([0-9A-Za-z][0-9A-Za-z,-]*)` + // names
		`(?:\(([rm]+)\))?` + // traits
		`(?:=([suif])(\?|\*|\+|[0-9]+)?)?$`, // type and cardinality
)

var (
	letterTypes = map[byte]ValueType{
		's': TypeString,
		'u': TypeUnsigned,
		'i': TypeInteger,
		'f': TypeFloat,
	}
	typeLetters = map[ValueType]byte{
		TypeString:   's',
		TypeUnsigned: 'u',
		TypeInteger:  'i',
		TypeFloat:    'f',
	}
)

// definition is one definition string broken into its parts, before any cross-definition check.
type definition struct {
	raw        string
	names      []string
	required   bool
	repeatable bool
	typ        ValueType
	card       Cardinality
}

func parseDefinition(raw string) (definition, error) {
	m := definitionPattern.FindStringSubmatch(raw)
	if m == nil {
		return definition{}, &DefinitionError{Definition: raw, Err: ErrMalformedDefinition}
	}
	namesPart, traits, typ, card := m[1], m[2], m[3], m[4]

	def := definition{
		raw:        raw,
		required:   strings.ContainsRune(traits, 'r'),
		repeatable: strings.ContainsRune(traits, 'm'),
	}
	for _, name := range strings.Split(namesPart, ",") {
		// Empty entries ("a,,b" or a trailing comma) are skipped.
		if name == "" {
			continue
		}
		if !isAlnum(name[0]) {
			return definition{}, &DefinitionError{Definition: raw, Name: name, Err: ErrMalformedDefinition}
		}
		def.names = append(def.names, name)
	}

	if typ == "" {
		return def, nil
	}
	def.typ = letterTypes[typ[0]]
	switch card {
	case "":
		def.card = One()
	case "?":
		def.card = Optional()
	case "*":
		def.card = ZeroOrMore()
	case "+":
		def.card = OneOrMore()
	default:
		n, err := strconv.Atoi(card)
		if err != nil || n <= 0 {
			return definition{}, &DefinitionError{Definition: raw, Name: def.names[0], Err: ErrInvalidCardinality}
		}
		def.card = Exactly(n)
	}
	return def, nil
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// Compile parses the given definitions into a [Registry]. The first name of each definition is
// its primary name; every name must be unique across all definitions.
//
// An error is always a [*DefinitionError]. It signals a mistake in the calling program rather than
// in user input, see [MustCompile].
func Compile(defs ...string) (*Registry, error) {
	reg := &Registry{
		byName:  make(map[string]int, len(defs)),
		aliases: make(map[string]string),
	}
	for _, raw := range defs {
		def, err := parseDefinition(raw)
		if err != nil {
			return nil, err
		}
		if err := reg.add(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// MustCompile is like [Compile] but panics if a definition is invalid. It is intended for
// package-level registries and program startup.
func MustCompile(defs ...string) *Registry {
	reg, err := Compile(defs...)
	if err != nil {
		panic(err)
	}
	return reg
}

func (r *Registry) add(def definition) error {
	seen := make(map[string]bool, len(def.names))
	for _, name := range def.names {
		if _, ok := r.aliases[name]; ok || seen[name] {
			return &DefinitionError{Definition: def.raw, Name: name, Err: ErrDuplicateName}
		}
		seen[name] = true
	}
	opt := Option{
		Name:        def.names[0],
		Aliases:     def.names,
		Type:        def.typ,
		Cardinality: def.card,
		Repeatable:  def.repeatable,
		Required:    def.required,
	}
	r.byName[opt.Name] = len(r.options)
	r.options = append(r.options, opt)
	for _, name := range opt.Aliases {
		r.aliases[name] = opt.Name
	}
	if opt.Required {
		r.required = append(r.required, opt.Name)
	}
	return nil
}

