package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/mfridman/getopts"
)

type jsonResult struct {
	Options map[string]any `json:"options"`
	Args    []string       `json:"args"`
}

func writeJSON(w io.Writer, res *getopts.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonResult{Options: res.Values(), Args: res.Args}); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// writeShell prints one bash assignment per option, in definition order, followed by ARGS. Unset
// single-value options are assigned the empty string so scripts can run under "set -u".
func writeShell(w io.Writer, reg *getopts.Registry, res *getopts.Result, prefix string) error {
	values := res.Values()
	var b strings.Builder
	for _, opt := range reg.Options() {
		name := shellName(prefix, opt.Name)
		if !syntax.ValidName(name) {
			return fmt.Errorf("option %q: %q is not a valid shell variable name", opt.Name, name)
		}
		value, err := shellValue(values, opt.Name)
		if err != nil {
			return fmt.Errorf("option %q: %w", opt.Name, err)
		}
		fmt.Fprintf(&b, "%s=%s\n", name, value)
	}
	args, err := shellArray(res.Args)
	if err != nil {
		return fmt.Errorf("arguments: %w", err)
	}
	fmt.Fprintf(&b, "%sARGS=%s\n", prefix, args)
	_, err = io.WriteString(w, b.String())
	return err
}

func shellName(prefix, option string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(option, "-", "_"))
}

func shellValue(values map[string]any, name string) (string, error) {
	v, ok := values[name]
	if !ok {
		return "''", nil
	}
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return formatFloat(v), nil
	case string:
		return syntax.Quote(v, syntax.LangBash)
	case []string:
		return shellArray(v)
	case []uint64:
		return shellArray(formatAll(v, func(n uint64) string { return strconv.FormatUint(n, 10) }))
	case []int64:
		return shellArray(formatAll(v, func(n int64) string { return strconv.FormatInt(n, 10) }))
	case []float64:
		return shellArray(formatAll(v, formatFloat))
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatAll[T any](values []T, format func(T) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, format(v))
	}
	return out
}

func shellArray(values []string) (string, error) {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		q, err := syntax.Quote(v, syntax.LangBash)
		if err != nil {
			return "", err
		}
		quoted = append(quoted, q)
	}
	return "(" + strings.Join(quoted, " ") + ")", nil
}
