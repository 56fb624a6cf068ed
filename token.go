package getopts

import "regexp"

var optionToken = regexp.MustCompile(`^--?([0-9A-Za-z][0-9A-Za-z-]*)(?:=(.+))?$`)

// Token is an argument that looks like an option reference: -name, --name, -name=value or
// --name=value.
type Token struct {
	// Name is the option name without its leading dashes.
	Name string
	// Value is the inline value following "=". Only meaningful when Inline is true.
	Value string
	// Inline reports whether the argument carried an "=value" part.
	Inline bool
}

// Classify reports whether arg is shaped like an option and, if so, splits it into its name and
// inline value. A bare "-" or "--" is never an option, nor is anything not starting with a dash.
//
// Classify does not know about registered names; use [Registry.Lookup] to resolve the result.
func Classify(arg string) (Token, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return Token{}, false
	}
	m := optionToken.FindStringSubmatchIndex(arg)
	if m == nil {
		return Token{}, false
	}
	tok := Token{Name: arg[m[2]:m[3]]}
	if m[4] >= 0 {
		tok.Value = arg[m[4]:m[5]]
		tok.Inline = true
	}
	return tok, true
}
