// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Pulse is the kind of a signal.
//
type Pulse uint8

// Pulse kinds.
//
const (
	Low Pulse = iota
	High
)

func (p Pulse) String() string {
	switch p {
	case Low:
		return "low"
	case High:
		return "high"
	}
	return "pulse(" + strconv.Itoa(int(p)) + ")"
}

// A Signal is a pulse on its way to the module named Dst.
//
type Signal struct {
	Dst   string
	Pulse Pulse
}

// An Event is a Signal bound to the name of the module that sent it.
//
type Event struct {
	Src string
	Signal
}

// String returns the event in trace format:
//
//	inv -low-> b
//
func (e Event) String() string {
	return e.Src + " -" + e.Pulse.String() + "-> " + e.Dst
}

// ParsePulse returns the pulse kind named s ("low" or "high").
//
func ParsePulse(s string) (Pulse, error) {
	switch s {
	case "low":
		return Low, nil
	case "high":
		return High, nil
	}
	return 0, errors.Errorf("invalid pulse %q", s)
}
