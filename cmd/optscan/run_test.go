package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfridman/getopts"
)

func runCapture(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(args, &RunOptions{Stdout: &out, Stderr: &errOut})
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		stdout, stderr, err := runCapture(t,
			"-d", "verbose,v(m)", "-d", "out,o=s", "-d", "nums=i+",
			"--", "-v", "--out=x.txt", "in.txt", "--nums", "1", "-2", "-v",
		)
		require.NoError(t, err)
		assert.Empty(t, stderr)

		var got struct {
			Options map[string]any `json:"options"`
			Args    []string       `json:"args"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, []string{"in.txt"}, got.Args)
		assert.Equal(t, map[string]any{
			"verbose": float64(2),
			"out":     "x.txt",
			"nums":    []any{float64(1), float64(-2)},
		}, got.Options)
	})
	t.Run("flags after positionals", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runCapture(t, "pos", "-d", "h", "--", "-h")
		require.NoError(t, err)
		assert.JSONEq(t, `{"options": {"h": true}, "args": ["pos"]}`, stdout)
	})
	t.Run("stopper is kept", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runCapture(t, "-d", "h", "--", "a", "--", "-h")
		require.NoError(t, err)
		assert.JSONEq(t, `{"options": {"h": false}, "args": ["a", "--", "-h"]}`, stdout)
	})
	t.Run("shell output", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runCapture(t,
			"-format", "shell",
			"-d", "help,h", "-d", "dry-run", "-d", "name=s", "-d", "unset=u", "-d", "tags,t(m)=s", "-d", "ratio=f",
			"--", "--name", "hello world", "-t", "a", "file", "-t", "b", "--ratio=0.5", "-h",
		)
		require.NoError(t, err)
		assert.Equal(t, ""+
			"OPT_HELP=true\n"+
			"OPT_DRY_RUN=false\n"+
			"OPT_NAME='hello world'\n"+
			"OPT_UNSET=''\n"+
			"OPT_TAGS=(a b)\n"+
			"OPT_RATIO=0.5\n"+
			"OPT_ARGS=(file)\n", stdout)
	})
	t.Run("shell prefix", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runCapture(t, "-format", "shell", "-prefix", "", "-d", "n=u", "--", "--n", "3")
		require.NoError(t, err)
		assert.Equal(t, "N=3\nARGS=()\n", stdout)

		_, stderr, err := runCapture(t, "-format", "shell", "-prefix", "", "-d", "1=u", "--", "-1", "3")
		require.Error(t, err)
		assert.Contains(t, stderr, "is not a valid shell variable name")
		assert.Equal(t, 2, exitCode(err))
	})
	t.Run("describe", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runCapture(t, "-describe", "-d", "help,h", "-d", "dir,d(r)=s", "-d", "keyval=s2", "-d", "v(m)")
		require.NoError(t, err)
		assert.Equal(t, ""+
			"  --help, -h\n"+
			"  --dir, -d <string>    (required)\n"+
			"  --keyval <string>     (2 values)\n"+
			"  -v                    (repeatable)\n", stdout)
	})
	t.Run("argument error", func(t *testing.T) {
		t.Parallel()
		stdout, stderr, err := runCapture(t, "-d", "dir,d(r)=s", "-d", "force", "--", "--forc")
		require.Error(t, err)
		assert.Empty(t, stdout)
		var argErr *getopts.ArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, getopts.UnknownOption, argErr.Kind)
		assert.Equal(t, 1, exitCode(err))
		assert.Contains(t, stderr, "ERROR: unknown option --forc")
		assert.Contains(t, stderr, "\t--force")
		assert.Contains(t, stderr, "Options:\n  --dir, -d <string>")
	})
	t.Run("ignore unknown", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := runCapture(t, "-ignore-unknown", "-d", "force", "--", "--forc")
		require.NoError(t, err)
		assert.JSONEq(t, `{"options": {"force": false}, "args": ["--forc"]}`, stdout)
	})
	t.Run("missing required", func(t *testing.T) {
		t.Parallel()
		_, stderr, err := runCapture(t, "-d", "a(r)", "-d", "b(r)=s")
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))
		assert.Contains(t, stderr, "ERROR: missing required option(s): -a, -b")
	})
	t.Run("definition error", func(t *testing.T) {
		t.Parallel()
		_, stderr, err := runCapture(t, "-d", "a", "-d", "a=s")
		require.Error(t, err)
		require.ErrorIs(t, err, getopts.ErrDuplicateName)
		assert.Equal(t, 2, exitCode(err))
		assert.Contains(t, stderr, "ERROR: getopts: option defined twice")
	})
	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, _, err := runCapture(t, "-format", "xml", "-d", "a")
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
	})
	t.Run("help", func(t *testing.T) {
		t.Parallel()
		stdout, stderr, err := runCapture(t, "-h")
		require.ErrorIs(t, err, flag.ErrHelp)
		assert.Equal(t, 0, exitCode(err))
		assert.Empty(t, stderr)
		assert.Contains(t, stdout, "Usage:\n  optscan [flags] -- [arguments...]")
		assert.Contains(t, stdout, "-format")
		assert.Contains(t, stdout, "(default: json)")
	})
	t.Run("toml definitions", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "defs.toml", `
ignore-unknown = true
options = ["out,o(r)=s", "verbose,v"]

[help]
out = "file to write"
`)
		stdout, _, err := runCapture(t, "-f", path, "-d", "n=u", "--", "-o", "x", "--what", "--n", "4")
		require.NoError(t, err)
		assert.JSONEq(t, `{"options": {"out": "x", "verbose": false, "n": 4}, "args": ["--what"]}`, stdout)

		stdout, _, err = runCapture(t, "-f", path, "-describe")
		require.NoError(t, err)
		assert.Contains(t, stdout, "--out, -o <string>    file to write (required)")
	})
	t.Run("yaml definitions", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "defs.yml", "options:\n  - help,h\n  - size=f?\n")
		stdout, _, err := runCapture(t, "-f", path, "--", "--size", "-h")
		require.NoError(t, err)
		assert.JSONEq(t, `{"options": {"help": true}, "args": []}`, stdout)
	})
	t.Run("bad definitions files", func(t *testing.T) {
		t.Parallel()
		for name, content := range map[string]string{
			"unknown.toml": `option = ["a"]`,
			"unknown.yaml": "option: [a]\n",
			"broken.toml":  `options = [`,
			"defs.json":    `{}`,
		} {
			_, _, err := runCapture(t, "-f", writeFile(t, name, content))
			require.Error(t, err, name)
			assert.Equal(t, 2, exitCode(err), name)
		}
		_, _, err := runCapture(t, "-f", filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err)
	})
	t.Run("verbose logging", func(t *testing.T) {
		t.Parallel()
		_, stderr, err := runCapture(t, "-v", "-d", "a", "--", "-a")
		require.NoError(t, err)
		assert.Contains(t, stderr, "compiled options")
		assert.Contains(t, stderr, "scanned arguments")
	})
}
