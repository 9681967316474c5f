// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Kind identifies the behavior of a declared module.
//
type Kind int

// Module kinds. KindButton is never declared: NewNetwork synthesizes the
// button itself.
//
const (
	KindSink Kind = iota
	KindBroadcaster
	KindFlipFlop
	KindConjunction
	KindButton
)

var kindNames = [...]string{
	KindSink:        "sink",
	KindBroadcaster: "broadcaster",
	KindFlipFlop:    "flipflop",
	KindConjunction: "conjunction",
	KindButton:      "button",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind named s.
//
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
}

// MarshalYAML implements yaml.Marshaler.
//
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (k *Kind) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	*k = v
	return nil
}

// A Decl declares a module: its name, kind and ordered destinations.
//
type Decl struct {
	Name string   `yaml:"name"`
	Kind Kind     `yaml:"kind"`
	Dst  []string `yaml:"to,flow"`
}

// Construction errors.
//
var (
	ErrEmptyName       = errors.New("empty module name")
	ErrDuplicate       = errors.New("duplicate module name")
	ErrNoBroadcaster   = errors.New("no broadcaster")
	ErrBroadcasterName = errors.New("broadcaster must be named " + BroadcasterName)
	ErrSinkOutputs     = errors.New("sink module with destinations")
	ErrUnknownKind     = errors.New("unknown module kind")
)

// Network owns all the modules of a circuit, keyed by name.
//
type Network struct {
	names   []string // declaration order, button first
	modules map[string]Module
	inputs  map[string][]string // fan-in, declaration order
	presses uint64
}

// NewNetwork builds a network from the given declarations.
//
// The button module is synthesized with the broadcaster as its sole
// destination. Conjunctions are seeded with one low entry for each module
// listing them as a destination.
//
// Declarations of kind KindSink name inert modules: they have no behavior and
// must not declare any destination. Destinations that are not declared at all
// are allowed and behave like sinks.
//
func NewNetwork(decls []Decl) (*Network, error) {
	n := &Network{
		names:   make([]string, 0, len(decls)+1),
		modules: make(map[string]Module, len(decls)+1),
		inputs:  make(map[string][]string),
	}
	btn := newButton()
	n.names = append(n.names, btn.name)
	n.modules[btn.name] = btn

	seen := map[string]bool{btn.name: true}
	hasBroadcaster := false
	for i, d := range decls {
		if d.Name == "" {
			return nil, errors.Wrapf(ErrEmptyName, "declaration #%d", i)
		}
		if seen[d.Name] {
			return nil, errors.Wrap(ErrDuplicate, d.Name)
		}
		seen[d.Name] = true
		switch d.Kind {
		case KindSink:
			if d.Name == BroadcasterName {
				return nil, errors.Wrapf(ErrBroadcasterName, "%s declared as %v", d.Name, d.Kind)
			}
			if len(d.Dst) > 0 {
				return nil, errors.Wrap(ErrSinkOutputs, d.Name)
			}
		case KindBroadcaster:
			if d.Name != BroadcasterName {
				return nil, errors.Wrap(ErrBroadcasterName, d.Name)
			}
			hasBroadcaster = true
		case KindFlipFlop, KindConjunction:
			if d.Name == BroadcasterName {
				return nil, errors.Wrapf(ErrBroadcasterName, "%s declared as %v", d.Name, d.Kind)
			}
		default:
			return nil, errors.Wrapf(ErrUnknownKind, "%s: %v", d.Name, d.Kind)
		}
		for _, dst := range d.Dst {
			if dst == "" {
				return nil, errors.Wrapf(ErrEmptyName, "destination of %s", d.Name)
			}
		}
		n.names = append(n.names, d.Name)
	}
	if !hasBroadcaster {
		return nil, ErrNoBroadcaster
	}

	// fan-in, in declaration order, without duplicates.
	n.addInputs(btn.name, btn.dst)
	for _, d := range decls {
		n.addInputs(d.Name, d.Dst)
	}

	for _, d := range decls {
		dst := append([]string(nil), d.Dst...)
		switch d.Kind {
		case KindBroadcaster:
			n.modules[d.Name] = &Broadcaster{base{name: d.Name, dst: dst}}
		case KindFlipFlop:
			n.modules[d.Name] = &FlipFlop{base: base{name: d.Name, dst: dst}}
		case KindConjunction:
			n.modules[d.Name] = newConjunction(d.Name, dst, n.inputs[d.Name])
		}
	}
	return n, nil
}

func (n *Network) addInputs(src string, dst []string) {
	for _, d := range dst {
		in := n.inputs[d]
		dup := false
		for _, s := range in {
			if s == src {
				dup = true
				break
			}
		}
		if !dup {
			n.inputs[d] = append(in, src)
		}
	}
}

// Module returns the module with the given name, or nil if there is none. Sinks
// have no module.
//
func (n *Network) Module(name string) Module {
	return n.modules[name]
}

// Inputs returns the names of the modules that list name as a destination, in
// declaration order.
//
func (n *Network) Inputs(name string) []string {
	return append([]string(nil), n.inputs[name]...)
}

// Names returns the names of all declared modules in declaration order. The
// first one is always the button.
//
func (n *Network) Names() []string {
	return append([]string(nil), n.names...)
}

// Presses returns the number of activations run on n since it was built or
// last reset.
//
func (n *Network) Presses() uint64 { return n.presses }

// Reset restores the initial state of all modules: flip-flops off and every
// conjunction entry low.
//
func (n *Network) Reset() {
	for _, m := range n.modules {
		m.reset()
	}
	n.presses = 0
}

// Clone returns a deep copy of n. The copy shares no mutable state with n and
// may be driven independently, including from another goroutine.
//
func (n *Network) Clone() *Network {
	c := &Network{
		names:   n.names,
		modules: make(map[string]Module, len(n.modules)),
		inputs:  n.inputs,
		presses: n.presses,
	}
	for k, m := range n.modules {
		c.modules[k] = m.clone()
	}
	return c
}
