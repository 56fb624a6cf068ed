package getopts

import (
	"errors"
	"regexp"
	"strconv"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

var hexPrefix = regexp.MustCompile(`^[+-]?0[xX]`)

// slot holds the value of one option during a scan.
type slot interface {
	// mark records an occurrence of a flag.
	mark()
	// add converts and stores one raw value.
	add(raw string) error
	// value returns the current typed value. An unset scalar reports its zero value and false.
	value() (any, bool)
}

func newSlot(opt *Option) slot {
	switch opt.Type {
	case TypeString:
		return newValueSlot(opt, parseString)
	case TypeUnsigned:
		return newValueSlot(opt, parseUnsigned)
	case TypeInteger:
		return newValueSlot(opt, parseInteger)
	case TypeFloat:
		return newValueSlot(opt, parseFloat)
	}
	if opt.Repeatable {
		return new(counterSlot)
	}
	return new(flagSlot)
}

func newValueSlot[T any](opt *Option, parse func(string) (T, error)) slot {
	if opt.Kind() == SlotArray {
		return &arraySlot[T]{parse: parse, values: []T{}}
	}
	return &scalarSlot[T]{parse: parse}
}

type flagSlot bool

func (s *flagSlot) mark()              { *s = true }
func (s *flagSlot) add(string) error   { return nil }
func (s *flagSlot) value() (any, bool) { return bool(*s), true }

type counterSlot int

func (s *counterSlot) mark()              { *s++ }
func (s *counterSlot) add(string) error   { return nil }
func (s *counterSlot) value() (any, bool) { return int(*s), true }

type scalarSlot[T any] struct {
	parse func(string) (T, error)
	v     T
	set   bool
}

func (s *scalarSlot[T]) mark() {}

func (s *scalarSlot[T]) add(raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	s.v, s.set = v, true
	return nil
}

func (s *scalarSlot[T]) value() (any, bool) {
	return s.v, s.set
}

type arraySlot[T any] struct {
	parse  func(string) (T, error)
	values []T
}

func (s *arraySlot[T]) mark() {}

func (s *arraySlot[T]) add(raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	s.values = append(s.values, v)
	return nil
}

func (s *arraySlot[T]) value() (any, bool) {
	return s.values, true
}

func parseString(raw string) (string, error) {
	return raw, nil
}

func parseUnsigned(raw string) (uint64, error) {
	if !digitsOnly.MatchString(raw) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(raw, 10, 64)
}

func parseInteger(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// parseFloat accepts decimal and exponent literals, plus inf and nan. Overflow saturates to ±Inf.
func parseFloat(raw string) (float64, error) {
	if hexPrefix.MatchString(raw) {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(raw, 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}
