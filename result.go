package getopts

import "fmt"

// Result holds the outcome of a [Registry.Scan]. It is also returned alongside a MissingRequired
// [ArgumentError], with every other option populated. Use [Get] or [Lookup] to retrieve option
// values by any of their names.
type Result struct {
	// Args contains the arguments not consumed by any option, in their original order. When a
	// "--" argument was found, it is included along with everything after it.
	Args []string

	// Missing lists the required options that were not given, in definition order.
	Missing []string

	reg    *Registry
	slots  map[string]slot
	counts map[string]int
}

func newResult(reg *Registry) *Result {
	res := &Result{
		Args:    []string{},
		Missing: []string{},
		reg:     reg,
		slots:   make(map[string]slot, len(reg.options)),
		counts:  make(map[string]int),
	}
	for i := range reg.options {
		opt := &reg.options[i]
		res.slots[opt.Name] = newSlot(opt)
	}
	return res
}

// Get retrieves the value of an option by any of its names, with type inference. Example usage:
//
//	help := getopts.Get[bool](res, "help")       // flag
//	verbosity := getopts.Get[int](res, "v")      // repeatable flag
//	dir := getopts.Get[string](res, "dir")       // =s
//	count := getopts.Get[uint64](res, "count")   // =u
//	offset := getopts.Get[int64](res, "offset")  // =i
//	ratio := getopts.Get[float64](res, "ratio")  // =f
//	files := getopts.Get[[]string](res, "file")  // =s+, =s*, =sN or (m)
//
// An unset single-value option yields the zero value; use [Lookup] to tell it apart.
//
// Get panics if the name is not registered or T does not match the option's type. Both are
// mistakes in the calling program, not in user input.
func Get[T any](r *Result, name string) T {
	v, _ := Lookup[T](r, name)
	return v
}

// Lookup is like [Get] but also reports whether the option holds a value. It is false only for a
// single-value option that was not given (or given with zero values, for "?").
func Lookup[T any](r *Result, name string) (T, bool) {
	opt := r.reg.lookup(name)
	if opt == nil {
		panic(fmt.Sprintf("internal error: option not found: %q", name))
	}
	value, ok := r.slots[opt.Name].value()
	v, match := value.(T)
	if !match {
		panic(fmt.Sprintf("internal error: type mismatch for option %q: registered %T, requested %T", name, value, *new(T)))
	}
	return v, ok
}

// Count returns how many times the option was given, by any of its names. It returns 0 for
// unregistered names.
func (r *Result) Count(name string) int {
	primary, ok := r.reg.aliases[name]
	if !ok {
		return 0
	}
	return r.counts[primary]
}

// Has reports whether the option was given at least once.
func (r *Result) Has(name string) bool {
	return r.Count(name) > 0
}

// Values returns every option value keyed by primary name. Unset single-value options are
// omitted.
func (r *Result) Values() map[string]any {
	out := make(map[string]any, len(r.slots))
	for name, sl := range r.slots {
		if v, ok := sl.value(); ok {
			out[name] = v
		}
	}
	return out
}
