package pulselib_test

import (
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulselib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	ds, entry := pulselib.Counter("k", 5, "g")
	assert.Equal(t, "k_0", entry)
	// 5 = 0b101
	assert.Equal(t, []pulsesim.Decl{
		{Name: "k_0", Kind: pulsesim.KindFlipFlop, Dst: []string{"k_1", "k"}},
		{Name: "k_1", Kind: pulsesim.KindFlipFlop, Dst: []string{"k_2"}},
		{Name: "k_2", Kind: pulsesim.KindFlipFlop, Dst: []string{"k"}},
		{Name: "k", Kind: pulsesim.KindConjunction, Dst: []string{"g"}},
	}, ds)

	assert.Panics(t, func() { pulselib.Counter("k", 0, "g") })
}

// A counter sends its first low pulse while its entry module receives the
// period-th low pulse.
func TestCounter_firstLow(t *testing.T) {
	for p := uint64(1); p <= 40; p++ {
		ds, entry := pulselib.Counter("k", p, "out")
		ds = append(ds, pulsesim.Decl{Name: pulsesim.BroadcasterName, Kind: pulsesim.KindBroadcaster, Dst: []string{entry}})
		n, err := pulsesim.NewNetwork(ds)
		require.NoError(t, err)
		var first uint64
		for first == 0 && n.Presses() < 2*p {
			n.Activate(func(e pulsesim.Event) {
				if first == 0 && e.Src == "k" && e.Pulse == pulsesim.Low {
					first = n.Presses()
				}
			})
		}
		assert.Equal(t, p, first, "period %d", p)
	}
}

func TestGatedCounters(t *testing.T) {
	ds := pulselib.GatedCounters("gate", "rx", 2, 3)
	require.Equal(t, pulsesim.BroadcasterName, ds[0].Name)
	assert.Equal(t, []string{"k0_0", "k1_0"}, ds[0].Dst)
	last := ds[len(ds)-1]
	assert.Equal(t, pulsesim.Decl{Name: "gate", Kind: pulsesim.KindConjunction, Dst: []string{"rx"}}, last)

	n, err := pulsesim.NewNetwork(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"k0", "k1"}, n.Inputs("gate"))
	assert.Equal(t, []string{"gate"}, n.Inputs("rx"))
}

func TestReference(t *testing.T) {
	for _, ds := range [][]pulsesim.Decl{pulselib.ReferenceChain(), pulselib.ReferenceInverter()} {
		_, err := pulsesim.NewNetwork(ds)
		assert.NoError(t, err)
	}
}
