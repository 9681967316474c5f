// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"io"
	"log/slog"
	"math/bits"
	"sort"

	"github.com/pkg/errors"
)

// Cycle detector defaults.
//
const (
	DefaultTarget         = "rx"
	DefaultMaxActivations = 1 << 24
)

// Cycle detector errors.
//
var (
	ErrNoGate        = errors.New("target has no input")
	ErrAmbiguousGate = errors.New("target has more than one input")
	ErrNotFound      = errors.New("cycle not found")
	ErrOverflow      = errors.New("cycle length overflows uint64")
)

type cycleConfig struct {
	target string
	pulse  Pulse
	max    uint64
	log    *slog.Logger
}

// A CycleOption configures CycleLength.
//
type CycleOption func(*cycleConfig)

// WithTarget sets the name of the final target. The default is DefaultTarget.
//
func WithTarget(name string) CycleOption {
	return func(c *cycleConfig) { c.target = name }
}

// WithPulse sets the pulse kind watched on the gate's inputs (or on the target
// when simulating directly). The default is Low.
//
func WithPulse(p Pulse) CycleOption {
	return func(c *cycleConfig) { c.pulse = p }
}

// WithMaxActivations bounds the number of activations CycleLength may run
// before giving up with ErrNotFound. Zero removes the bound, in which case
// CycleLength may never return on networks where the watched pulse never
// occurs. The default is DefaultMaxActivations.
//
func WithMaxActivations(max uint64) CycleOption {
	return func(c *cycleConfig) { c.max = max }
}

// WithLogger sets the logger used to report progress.
//
func WithLogger(l *slog.Logger) CycleOption {
	return func(c *cycleConfig) { c.log = l }
}

// CycleLength returns the number of activations after which the target
// module receives the watched pulse.
//
// The gate is the only module feeding the target, and its feeders are the
// modules feeding the gate. Both are discovered from the topology. The network
// is activated repeatedly, recording for each feeder the index of the first
// activation during which it sends the watched pulse to the gate (the first
// activation run by CycleLength has index 1). Once every feeder has been seen,
// CycleLength returns the least common multiple of the recorded indices.
//
// This assumes that each feeder sends the watched pulse periodically, with a
// period equal to its first index and no phase offset. The assumption is not
// verified: on networks where it does not hold the result is meaningless.
//
// If the gate has fewer than two feeders, there is nothing to combine and
// CycleLength simulates directly: it returns the index of the first activation
// during which the target itself receives the watched pulse.
//
// The network is mutated in place.
//
func CycleLength(n *Network, opts ...CycleOption) (uint64, error) {
	cfg := cycleConfig{
		target: DefaultTarget,
		pulse:  Low,
		max:    DefaultMaxActivations,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.log == nil {
		cfg.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	gates := n.inputs[cfg.target]
	switch len(gates) {
	case 0:
		return 0, errors.Wrap(ErrNoGate, cfg.target)
	case 1:
	default:
		return 0, errors.Wrapf(ErrAmbiguousGate, "%s fed by %v", cfg.target, gates)
	}
	gate := gates[0]
	feeders := n.inputs[gate]
	log := cfg.log.With("target", cfg.target, "gate", gate)

	if len(feeders) < 2 {
		log.Debug("no feeders to combine, simulating directly", "feeders", len(feeders))
		return directCycle(n, &cfg, log)
	}

	log.Debug("watching feeders", "feeders", feeders, "pulse", cfg.pulse)
	var (
		i    uint64
		seen = make(map[string]uint64, len(feeders))
	)
	probe := func(e Event) {
		if e.Dst != gate || e.Pulse != cfg.pulse {
			return
		}
		if _, ok := seen[e.Src]; !ok {
			seen[e.Src] = i
			log.Debug("feeder seen", "feeder", e.Src, "activation", i)
		}
	}
	for len(seen) < len(feeders) {
		if cfg.max > 0 && i >= cfg.max {
			var missing []string
			for _, f := range feeders {
				if _, ok := seen[f]; !ok {
					missing = append(missing, f)
				}
			}
			return 0, errors.Wrapf(ErrNotFound, "after %d activations, feeders %v never sent %v to %s", i, missing, cfg.pulse, gate)
		}
		i++
		n.Activate(probe)
	}

	periods := make([]uint64, 0, len(seen))
	for _, v := range seen {
		periods = append(periods, v)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i] < periods[j] })
	l, err := LCM(periods...)
	if err != nil {
		return 0, errors.Wrapf(err, "periods %v", periods)
	}
	log.Info("cycle found", "periods", periods, "length", l, "activations", i)
	return l, nil
}

func directCycle(n *Network, cfg *cycleConfig, log *slog.Logger) (uint64, error) {
	var hit bool
	probe := func(e Event) {
		if e.Dst == cfg.target && e.Pulse == cfg.pulse {
			hit = true
		}
	}
	for i := uint64(1); cfg.max == 0 || i <= cfg.max; i++ {
		n.Activate(probe)
		if hit {
			log.Info("cycle found", "length", i)
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "after %d activations, %s never received %v", cfg.max, cfg.target, cfg.pulse)
}

// GCD returns the greatest common divisor of a and b.
//
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of vs. It returns 1 for an empty list
// and ErrOverflow if the result does not fit in an uint64.
//
func LCM(vs ...uint64) (uint64, error) {
	l := uint64(1)
	for _, v := range vs {
		if v == 0 {
			return 0, nil
		}
		hi, lo := bits.Mul64(l/GCD(l, v), v)
		if hi != 0 {
			return 0, ErrOverflow
		}
		l = lo
	}
	return l, nil
}
