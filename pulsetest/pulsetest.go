// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions for testing pulse networks.
//
package pulsetest

import (
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/sebdah/goldie/v2"
)

// Recorder collects delivered events.
//
type Recorder struct {
	Events []pulsesim.Event
}

// Probe returns a probe appending every delivered event to r.Events.
//
func (r *Recorder) Probe() pulsesim.Probe {
	return func(e pulsesim.Event) { r.Events = append(r.Events, e) }
}

// Reset discards recorded events.
//
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// Trace runs presses activations of n and returns the delivered events in
// trace format, one per line, each activation preceded by a header line:
//
//	press 1
//	button -low-> broadcaster
//	...
//
func Trace(n *pulsesim.Network, presses int) string {
	var (
		b strings.Builder
		r Recorder
	)
	for i := 1; i <= presses; i++ {
		r.Reset()
		n.Activate(r.Probe())
		b.WriteString("press ")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
		for _, e := range r.Events {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// AssertTrace runs presses activations of n and compares the resulting trace
// with the golden file testdata/<name>.golden. Run the tests with -update to
// rewrite golden files.
//
func AssertTrace(t *testing.T, name string, n *pulsesim.Network, presses int) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(Trace(n, presses)))
}

// CompareNetworks activates a and b presses times side by side and fails on
// the first activation where the delivered events differ.
//
func CompareNetworks(t *testing.T, a, b *pulsesim.Network, presses int) {
	t.Helper()
	var ra, rb Recorder
	for i := 1; i <= presses; i++ {
		ra.Reset()
		rb.Reset()
		ca := a.Activate(ra.Probe())
		cb := b.Activate(rb.Probe())
		if len(ra.Events) != len(rb.Events) {
			t.Fatalf("press %d: %d events != %d events", i, len(ra.Events), len(rb.Events))
		}
		for j := range ra.Events {
			if ra.Events[j] != rb.Events[j] {
				t.Fatalf("press %d, event %d: %v != %v", i, j, ra.Events[j], rb.Events[j])
			}
		}
		if ca != cb {
			t.Fatalf("press %d: counts %+v != %+v", i, ca, cb)
		}
	}
}
