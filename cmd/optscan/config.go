package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// definitionsFile is the on-disk form of a set of option definitions:
//
//	ignore-unknown = false
//	options = ["help,h", "out,o(r)=s"]
//
//	[help]
//	out = "file to write"
type definitionsFile struct {
	IgnoreUnknown bool              `toml:"ignore-unknown" yaml:"ignore-unknown"`
	Options       []string          `toml:"options" yaml:"options"`
	Help          map[string]string `toml:"help" yaml:"help"`
}

func loadDefinitions(path string) (*definitionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}
	var defs definitionsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &defs)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("definitions file %s: unsupported extension %q", path, ext)
	}
	return &defs, nil
}
