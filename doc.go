/*
Package pulsesim provides a discrete-event pulse propagation simulator over a
fixed network of logic modules, and a cycle detector that infers the long run
period of that network without running it exhaustively.

A network is built once from a list of module declarations (see Decl and
NewNetwork) and is then mutated in place by repeated activations. An
activation presses the button module: a low pulse is sent to the broadcaster
and every resulting pulse is delivered breadth-first, in strict FIFO order,
until no pulse remains in flight:

	n, err := pulsesim.NewNetwork([]pulsesim.Decl{
		{Name: "broadcaster", Kind: pulsesim.KindBroadcaster, Dst: []string{"a"}},
		{Name: "a", Kind: pulsesim.KindFlipFlop, Dst: []string{"out"}},
	})
	if err != nil {
		// handle construction error
	}
	c := n.Activate()
	fmt.Println(c.Low, c.High)

Modules only address each other by name. A destination with no backing
module is an unmonitored sink: pulses sent to it are counted and absorbed.

The simulation is strictly sequential. A Network must never be driven by two
activations concurrently; independent copies obtained with Clone may be.

*/
package pulsesim
