package getopts

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *ArgumentError
		want string
	}{
		{
			err:  &ArgumentError{Kind: UnknownOption, Token: "--bogus"},
			want: "unknown option --bogus",
		},
		{
			err:  &ArgumentError{Kind: UnknownOption, Token: "-x", Suggestions: []string{"xml", "x1"}},
			want: "unknown option -x. Did you mean one of these?\n\t--xml\n\t--x1",
		},
		{
			err:  &ArgumentError{Kind: TypeMismatch, Option: "n", Token: "abc", Type: TypeUnsigned},
			want: `option -n: not an unsigned integer: "abc"`,
		},
		{
			err:  &ArgumentError{Kind: TypeMismatch, Option: "ratio", Token: "x", Type: TypeFloat},
			want: `option --ratio: not a float: "x"`,
		},
		{
			err:  &ArgumentError{Kind: MissingArgument, Option: "nums", Expected: OneOrMore()},
			want: "option --nums is missing argument(s): need at least 1, got 0",
		},
		{
			err:  &ArgumentError{Kind: UnexpectedParameter, Option: "flag", Token: "yes"},
			want: "option --flag has an unexpected parameter: yes",
		},
		{
			err:  &ArgumentError{Kind: MissingRequired, Missing: []string{"dir", "d2", "o"}},
			want: "missing required option(s): --dir, --d2, -o",
		},
	}
	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}

	var nilErr *ArgumentError
	assert.Equal(t, "<nil>", nilErr.Error())

	wrapped := &ArgumentError{Kind: TypeMismatch, Err: strconv.ErrRange}
	assert.True(t, errors.Is(wrapped, strconv.ErrRange))
}

func TestArgumentErrorKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown option", UnknownOption.String())
	assert.Equal(t, "type mismatch", TypeMismatch.String())
	assert.Equal(t, "missing argument", MissingArgument.String())
	assert.Equal(t, "unexpected parameter", UnexpectedParameter.String())
	assert.Equal(t, "missing required option", MissingRequired.String())
	assert.Equal(t, "unknown error", ArgumentErrorKind(0).String())
}

func TestDefinitionError(t *testing.T) {
	t.Parallel()

	err := &DefinitionError{Definition: "a=b", Err: ErrMalformedDefinition}
	assert.EqualError(t, err, `getopts: malformed definition "a=b"`)
	assert.ErrorIs(t, err, ErrMalformedDefinition)

	err = &DefinitionError{Definition: "a=s0", Name: "a", Err: ErrInvalidCardinality}
	assert.EqualError(t, err, `getopts: invalid value count: "a" in "a=s0"`)
}
