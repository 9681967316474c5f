// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulselib provides reusable module lists for pulsesim networks.
//
package pulselib

import (
	"math/bits"
	"strconv"

	"github.com/db47h/pulsesim"
)

// Counter returns the declarations of a ripple counter named name, and the
// name of its entry module.
//
// The counter is a chain of flip-flops name_0, name_1, ... (least significant
// bit first) driven by low pulses sent to its entry module. A conjunction named
// name listens to the flip-flops whose bit is set in period and sends its
// output to out. The first low pulse it sends is during the period-th low
// pulse received by the entry module.
//
// Counter panics if period is 0.
//
func Counter(name string, period uint64, out string) ([]pulsesim.Decl, string) {
	if period == 0 {
		panic("zero period")
	}
	n := bits.Len64(period)
	ds := make([]pulsesim.Decl, 0, n+1)
	for i := 0; i < n; i++ {
		var dst []string
		if i < n-1 {
			dst = append(dst, bitName(name, i+1))
		}
		if period&(1<<uint(i)) != 0 {
			dst = append(dst, name)
		}
		ds = append(ds, pulsesim.Decl{Name: bitName(name, i), Kind: pulsesim.KindFlipFlop, Dst: dst})
	}
	ds = append(ds, pulsesim.Decl{Name: name, Kind: pulsesim.KindConjunction, Dst: []string{out}})
	return ds, bitName(name, 0)
}

func bitName(name string, bit int) string {
	return name + "_" + strconv.Itoa(bit)
}

// GatedCounters returns a network where the broadcaster drives one Counter per
// period. The counters, named k0, k1, ..., all feed a conjunction named gate
// whose only destination is target.
//
func GatedCounters(gate, target string, periods ...uint64) []pulsesim.Decl {
	b := pulsesim.Decl{Name: pulsesim.BroadcasterName, Kind: pulsesim.KindBroadcaster}
	ds := []pulsesim.Decl{b}
	for i, p := range periods {
		cds, entry := Counter("k"+strconv.Itoa(i), p, gate)
		ds = append(ds, cds...)
		ds[0].Dst = append(ds[0].Dst, entry)
	}
	return append(ds, pulsesim.Decl{Name: gate, Kind: pulsesim.KindConjunction, Dst: []string{target}})
}

// ReferenceChain returns the reference network:
//
//	broadcaster -> a, b, c
//	%a -> b
//	%b -> c
//	%c -> inv
//	&inv -> a
//
// A single press delivers 8 low and 4 high pulses.
//
func ReferenceChain() []pulsesim.Decl {
	return []pulsesim.Decl{
		{Name: pulsesim.BroadcasterName, Kind: pulsesim.KindBroadcaster, Dst: []string{"a", "b", "c"}},
		{Name: "a", Kind: pulsesim.KindFlipFlop, Dst: []string{"b"}},
		{Name: "b", Kind: pulsesim.KindFlipFlop, Dst: []string{"c"}},
		{Name: "c", Kind: pulsesim.KindFlipFlop, Dst: []string{"inv"}},
		{Name: "inv", Kind: pulsesim.KindConjunction, Dst: []string{"a"}},
	}
}

// ReferenceInverter returns the reference network:
//
//	broadcaster -> a
//	%a -> inv, con
//	&inv -> b
//	%b -> con
//	&con -> output
//
// Its state repeats every four presses.
//
func ReferenceInverter() []pulsesim.Decl {
	return []pulsesim.Decl{
		{Name: pulsesim.BroadcasterName, Kind: pulsesim.KindBroadcaster, Dst: []string{"a"}},
		{Name: "a", Kind: pulsesim.KindFlipFlop, Dst: []string{"inv", "con"}},
		{Name: "inv", Kind: pulsesim.KindConjunction, Dst: []string{"b"}},
		{Name: "b", Kind: pulsesim.KindFlipFlop, Dst: []string{"con"}},
		{Name: "con", Kind: pulsesim.KindConjunction, Dst: []string{"output"}},
	}
}
