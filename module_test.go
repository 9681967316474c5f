package pulsesim_test

import (
	"testing"
	"testing/quick"

	ps "github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// broadcaster -> a, b; %a -> c; %b -> c; &c -> out
func conjunctionNetwork(t *testing.T) (*ps.Network, *ps.Conjunction) {
	t.Helper()
	n := newNetwork(t, []ps.Decl{
		{Name: ps.BroadcasterName, Kind: ps.KindBroadcaster, Dst: []string{"a", "b"}},
		{Name: "a", Kind: ps.KindFlipFlop, Dst: []string{"c"}},
		{Name: "b", Kind: ps.KindFlipFlop, Dst: []string{"c"}},
		{Name: "c", Kind: ps.KindConjunction, Dst: []string{"out", "out2"}},
	})
	c, ok := n.Module("c").(*ps.Conjunction)
	require.True(t, ok)
	return n, c
}

func TestConjunction_truthTable(t *testing.T) {
	_, c := conjunctionNetwork(t)
	require.Equal(t, []string{"a", "b"}, c.Inputs())

	td := []struct {
		src  string
		in   ps.Pulse
		want ps.Pulse
	}{
		{"a", ps.Low, ps.High},   // {L, L}
		{"a", ps.High, ps.High},  // {H, L}
		{"b", ps.High, ps.Low},   // {H, H}
		{"b", ps.High, ps.Low},   // {H, H}
		{"a", ps.Low, ps.High},   // {L, H}
		{"a", ps.High, ps.Low},   // {H, H}
		{"b", ps.Low, ps.High},   // {H, L}
		{"b", ps.Pulse(7), ps.High},
	}
	for i, d := range td {
		out := c.Process(d.src, d.in)
		require.Len(t, out, 2, "step %d", i)
		for j, dst := range []string{"out", "out2"} {
			assert.Equal(t, ps.Signal{Dst: dst, Pulse: d.want}, out[j], "step %d", i)
		}
		p, ok := c.Remembered(d.src)
		assert.True(t, ok)
		assert.Equal(t, d.in, p)
	}
	_, ok := c.Remembered("x")
	assert.False(t, ok)
}

// The output of a conjunction only depends on its remembered inputs.
func TestConjunction_quick(t *testing.T) {
	_, c := conjunctionNetwork(t)
	f := func(inputs []bool) bool {
		mem := map[string]ps.Pulse{"a": ps.Low, "b": ps.Low}
		if a, ok := c.Remembered("a"); ok {
			mem["a"] = a
		}
		if b, ok := c.Remembered("b"); ok {
			mem["b"] = b
		}
		for i, v := range inputs {
			src := "a"
			if i%2 == 1 {
				src = "b"
			}
			p := ps.Low
			if v {
				p = ps.High
			}
			mem[src] = p
			want := ps.High
			if mem["a"] == ps.High && mem["b"] == ps.High {
				want = ps.Low
			}
			out := c.Process(src, p)
			if len(out) != 2 || out[0].Pulse != want || out[1].Pulse != want {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestConjunction_unknownInput(t *testing.T) {
	_, c := conjunctionNetwork(t)
	assert.Panics(t, func() { c.Process("broadcaster", ps.High) })
}

func TestFlipFlop(t *testing.T) {
	n, _ := conjunctionNetwork(t)
	f := n.Module("a").(*ps.FlipFlop)
	assert.False(t, f.On())
	assert.Nil(t, f.Process(ps.BroadcasterName, ps.High))
	assert.False(t, f.On())
	assert.Equal(t, []ps.Signal{{Dst: "c", Pulse: ps.High}}, f.Process(ps.BroadcasterName, ps.Low))
	assert.True(t, f.On())
	assert.Nil(t, f.Process(ps.BroadcasterName, ps.High))
	assert.True(t, f.On())
	assert.Equal(t, []ps.Signal{{Dst: "c", Pulse: ps.Low}}, f.Process(ps.BroadcasterName, ps.Low))
	assert.False(t, f.On())
}

// Two low pulses bring a flip-flop back to off: a network pressed twice
// behaves exactly like a fresh one.
func TestFlipFlop_pairing(t *testing.T) {
	decls := []ps.Decl{
		{Name: ps.BroadcasterName, Kind: ps.KindBroadcaster, Dst: []string{"f"}},
		{Name: "f", Kind: ps.KindFlipFlop, Dst: []string{"g", "out"}},
		{Name: "g", Kind: ps.KindFlipFlop, Dst: []string{"out"}},
	}
	a := newNetwork(t, decls)
	ps.Run(a, 4)
	assert.False(t, a.Module("f").(*ps.FlipFlop).On())
	assert.False(t, a.Module("g").(*ps.FlipFlop).On())
	pulsetest.CompareNetworks(t, a, newNetwork(t, decls), 8)
}

func TestBroadcaster(t *testing.T) {
	n, _ := conjunctionNetwork(t)
	b := n.Module(ps.BroadcasterName)
	for _, p := range []ps.Pulse{ps.Low, ps.High, ps.Pulse(3)} {
		assert.Equal(t, []ps.Signal{{Dst: "a", Pulse: p}, {Dst: "b", Pulse: p}}, b.Process(ps.ButtonName, p))
	}
}

func TestButton(t *testing.T) {
	n, _ := conjunctionNetwork(t)
	b := n.Module(ps.ButtonName)
	require.IsType(t, &ps.Button{}, b)
	assert.Equal(t, []string{ps.BroadcasterName}, b.Destinations())
	assert.Equal(t, []ps.Signal{{Dst: ps.BroadcasterName, Pulse: ps.Low}}, b.Process("", ps.High))
}

func TestKindOf(t *testing.T) {
	n, _ := conjunctionNetwork(t)
	for name, k := range map[string]ps.Kind{
		ps.ButtonName:      ps.KindButton,
		ps.BroadcasterName: ps.KindBroadcaster,
		"a":                ps.KindFlipFlop,
		"c":                ps.KindConjunction,
	} {
		assert.Equal(t, k, ps.KindOf(n.Module(name)), name)
	}
}

func TestModule_destinationsCopy(t *testing.T) {
	n, c := conjunctionNetwork(t)
	d := c.Destinations()
	d[0] = "x"
	assert.Equal(t, []string{"out", "out2"}, n.Module("c").Destinations())
}
