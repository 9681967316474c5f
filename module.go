// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Well known module names.
//
const (
	ButtonName      = "button"
	BroadcasterName = "broadcaster"
)

// A Module is a node in a Network. It consumes one pulse at a time and
// produces zero or more signals, one per destination, in fan-out order.
//
// The set of modules is closed: only *Button, *Broadcaster, *FlipFlop and
// *Conjunction implement Module. A module never references another module
// directly; it only knows the names of its destinations.
//
type Module interface {
	// Name returns the module's unique name.
	Name() string
	// Destinations returns a copy of the module's ordered fan-out.
	Destinations() []string
	// Process delivers pulse p sent by the module named src and returns the
	// resulting signals. It may update the module's own state.
	Process(src string, p Pulse) []Signal

	reset()
	clone() Module
}

type base struct {
	name string
	dst  []string
}

func (b *base) Name() string { return b.name }

func (b *base) Destinations() []string {
	return append([]string(nil), b.dst...)
}

// emit sends p to all destinations.
func (b *base) emit(p Pulse) []Signal {
	if len(b.dst) == 0 {
		return nil
	}
	out := make([]Signal, len(b.dst))
	for i, d := range b.dst {
		out[i] = Signal{Dst: d, Pulse: p}
	}
	return out
}

// Button is the activation entry point. Whatever it receives, it sends a
// single low pulse to the broadcaster.
//
type Button struct {
	base
}

func newButton() *Button {
	return &Button{base{name: ButtonName, dst: []string{BroadcasterName}}}
}

// Process implements Module.
//
func (b *Button) Process(_ string, _ Pulse) []Signal { return b.emit(Low) }

func (b *Button) reset() {}

func (b *Button) clone() Module { return &Button{b.base} }

// Broadcaster forwards any pulse it receives to all its destinations.
//
type Broadcaster struct {
	base
}

// Process implements Module.
//
func (b *Broadcaster) Process(_ string, p Pulse) []Signal { return b.emit(p) }

func (b *Broadcaster) reset() {}

func (b *Broadcaster) clone() Module { return &Broadcaster{b.base} }

// FlipFlop is a toggle with a single bit of state, initially off.
//
// High pulses are ignored. A low pulse toggles the state, then a high pulse is
// sent if the flip-flop is now on, a low pulse otherwise.
//
type FlipFlop struct {
	base
	on bool
}

// On returns the current state of the flip-flop.
//
func (f *FlipFlop) On() bool { return f.on }

// Process implements Module.
//
func (f *FlipFlop) Process(_ string, p Pulse) []Signal {
	if p != Low {
		return nil
	}
	f.on = !f.on
	if f.on {
		return f.emit(High)
	}
	return f.emit(Low)
}

func (f *FlipFlop) reset() { f.on = false }

func (f *FlipFlop) clone() Module { return &FlipFlop{f.base, f.on} }

// Conjunction remembers the last pulse received from each of its inputs. All
// remembered pulses start low.
//
// On every input, the sender's entry is updated; then a low pulse is sent if
// all entries are high, a high pulse otherwise.
//
// The set of inputs is fixed when the network is built and never changes.
//
type Conjunction struct {
	base
	inputs []string       // in declaration order
	index  map[string]int // input name to mem index
	mem    []Pulse
	nHigh  int // number of High entries in mem
}

func newConjunction(name string, dst []string, inputs []string) *Conjunction {
	c := &Conjunction{
		base:   base{name: name, dst: dst},
		inputs: inputs,
		index:  make(map[string]int, len(inputs)),
		mem:    make([]Pulse, len(inputs)),
	}
	for i, in := range inputs {
		c.index[in] = i
	}
	return c
}

// Inputs returns the names of the modules feeding c, in declaration order.
//
func (c *Conjunction) Inputs() []string {
	return append([]string(nil), c.inputs...)
}

// Remembered returns the last pulse received from src. The boolean is false if
// src is not an input of c.
//
func (c *Conjunction) Remembered(src string) (Pulse, bool) {
	i, ok := c.index[src]
	if !ok {
		return Low, false
	}
	return c.mem[i], true
}

// Process implements Module. It panics if src is not one of the inputs fixed
// at construction time.
//
func (c *Conjunction) Process(src string, p Pulse) []Signal {
	i, ok := c.index[src]
	if !ok {
		panic("conjunction " + c.name + ": pulse from unknown input " + src)
	}
	if c.mem[i] == High {
		c.nHigh--
	}
	if p == High {
		c.nHigh++
	}
	c.mem[i] = p
	if c.nHigh == len(c.mem) {
		return c.emit(Low)
	}
	return c.emit(High)
}

func (c *Conjunction) reset() {
	for i := range c.mem {
		c.mem[i] = Low
	}
	c.nHigh = 0
}

func (c *Conjunction) clone() Module {
	// inputs and index are never mutated and can be shared.
	return &Conjunction{
		base:   c.base,
		inputs: c.inputs,
		index:  c.index,
		mem:    append([]Pulse(nil), c.mem...),
		nHigh:  c.nHigh,
	}
}

// KindOf returns the declaration kind of m.
//
func KindOf(m Module) Kind {
	switch m.(type) {
	case *Broadcaster:
		return KindBroadcaster
	case *FlipFlop:
		return KindFlipFlop
	case *Conjunction:
		return KindConjunction
	case *Button:
		return KindButton
	}
	panic("unexpected module type")
}
