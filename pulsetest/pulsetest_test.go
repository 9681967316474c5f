package pulsetest_test

import (
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulselib"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	n, err := pulsesim.NewNetwork(pulselib.ReferenceChain())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(pulsetest.Trace(n, 2), "\n"), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, "press 1", lines[0])
	assert.Equal(t, "button -low-> broadcaster", lines[1])
	assert.Equal(t, "inv -high-> a", lines[12])
	assert.Equal(t, "press 2", lines[13])
	assert.Equal(t, uint64(2), n.Presses())
}

func TestRecorder(t *testing.T) {
	n, err := pulsesim.NewNetwork(pulselib.ReferenceInverter())
	require.NoError(t, err)
	var r pulsetest.Recorder
	c := n.Activate(r.Probe())
	assert.Equal(t, int(c.Total()), len(r.Events))
	assert.Equal(t, pulsesim.Event{Src: pulsesim.ButtonName, Signal: pulsesim.Signal{Dst: pulsesim.BroadcasterName, Pulse: pulsesim.Low}}, r.Events[0])
	r.Reset()
	assert.Empty(t, r.Events)
}

func TestCompareNetworks(t *testing.T) {
	a, err := pulsesim.NewNetwork(pulselib.ReferenceInverter())
	require.NoError(t, err)
	// four presses bring the inverter back to its initial state.
	pulsesim.Run(a, 4)
	b, err := pulsesim.NewNetwork(pulselib.ReferenceInverter())
	require.NoError(t, err)
	pulsetest.CompareNetworks(t, a, b, 12)
}
