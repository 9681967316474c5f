// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Counts tallies the pulses delivered during one or more activations.
//
type Counts struct {
	Low      uint64 // low pulses delivered
	High     uint64 // high pulses delivered
	Absorbed uint64 // pulses sent to a destination with no module
	Emitted  uint64 // signals produced by modules, the button's included
}

// Total returns the number of pulses delivered.
//
func (c Counts) Total() uint64 { return c.Low + c.High }

// Product returns Low * High.
//
func (c Counts) Product() uint64 { return c.Low * c.High }

// Add returns the sum of c and o.
//
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Low:      c.Low + o.Low,
		High:     c.High + o.High,
		Absorbed: c.Absorbed + o.Absorbed,
		Emitted:  c.Emitted + o.Emitted,
	}
}

// A Probe observes every event delivered during an activation, in delivery
// order, before the destination module processes it. Probes must not drive
// the network they observe.
//
type Probe func(e Event)

// Activate presses the button once and runs the network until no pulse is in
// flight.
//
// Pulses are delivered breadth-first: the signals produced by a module are
// queued behind all pulses already in flight, in the module's fan-out order.
// Two activations of networks in the same state therefore deliver exactly the
// same sequence of events.
//
// The pulse that triggers the button is not counted; the low pulse the button
// sends to the broadcaster is.
//
// Activate does not return on networks that keep pulses in flight forever,
// such as a conjunction listing itself as a destination.
//
func (n *Network) Activate(probes ...Probe) Counts {
	var (
		c Counts
		q eventQueue
	)
	n.presses++
	btn := n.modules[ButtonName]
	n.enqueue(&q, &c, btn, btn.Process("", Low))

	for {
		e, ok := q.pop()
		if !ok {
			break
		}
		if e.Pulse == Low {
			c.Low++
		} else {
			c.High++
		}
		for _, p := range probes {
			p(e)
		}
		m := n.modules[e.Dst]
		if m == nil {
			c.Absorbed++
			continue
		}
		n.enqueue(&q, &c, m, m.Process(e.Src, e.Pulse))
	}
	return c
}

func (n *Network) enqueue(q *eventQueue, c *Counts, m Module, out []Signal) {
	src := m.Name()
	for _, s := range out {
		q.push(Event{Src: src, Signal: s})
	}
	c.Emitted += uint64(len(out))
}

// Run activates n presses times and returns the aggregated counts.
//
func Run(n *Network, presses int, probes ...Probe) Counts {
	var c Counts
	for i := 0; i < presses; i++ {
		c = c.Add(n.Activate(probes...))
	}
	return c
}
