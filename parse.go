// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"io"
	"os"
	"path/filepath"

	"github.com/db47h/pulsesim/internal/decl"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse reads a module list in text format:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// Names prefixed with '%' are flip-flops, names prefixed with '&' are
// conjunctions. The broadcaster is recognized by its name; any other plain
// name declares an inert sink.
//
func Parse(r io.Reader) ([]Decl, error) {
	lines, err := decl.Parse(r)
	if err != nil {
		return nil, err
	}
	out := make([]Decl, len(lines))
	for i, l := range lines {
		d := Decl{Name: l.Name, Dst: l.Dst}
		switch {
		case l.Marker == decl.FlipFlop:
			d.Kind = KindFlipFlop
		case l.Marker == decl.Conjunction:
			d.Kind = KindConjunction
		case l.Name == BroadcasterName:
			d.Kind = KindBroadcaster
		default:
			d.Kind = KindSink
		}
		out[i] = d
	}
	return out, nil
}

type topology struct {
	Modules []Decl `yaml:"modules"`
}

// ParseYAML reads a module list in YAML format:
//
//	modules:
//	  - {name: broadcaster, kind: broadcaster, to: [a]}
//	  - {name: a, kind: flipflop, to: [inv, con]}
//	  - {name: inv, kind: conjunction, to: [b]}
//
func ParseYAML(r io.Reader) ([]Decl, error) {
	var t topology
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty topology")
		}
		return nil, errors.Wrap(err, "decode topology")
	}
	return t.Modules, nil
}

// MarshalYAML returns the YAML representation of decls, as read by ParseYAML.
//
func MarshalYAML(decls []Decl) ([]byte, error) {
	return yaml.Marshal(topology{Modules: decls})
}

// Load reads a module list from the named file. Files with a .yaml or .yml
// extension are parsed with ParseYAML, any other with Parse.
//
func Load(name string) ([]Decl, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var decls []Decl
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		decls, err = ParseYAML(f)
	default:
		decls, err = Parse(f)
	}
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return decls, nil
}
