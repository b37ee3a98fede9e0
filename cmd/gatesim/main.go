// Command gatesim demonstrates the gate-level simulator end to end: it
// wires an 8-bit constant source into an 8-bit register, pulses the
// register's clock, reads back the stored value, and writes an event
// trace report.
package main

import (
	"fmt"

	"github.com/sarchlab/akita/v4/monitoring"
	"github.com/tebeka/atexit"

	"github.com/holowire/logicsim/circuit"
	"github.com/holowire/logicsim/core"
	"github.com/holowire/logicsim/storage"
	"github.com/holowire/logicsim/trace"
)

func main() {
	monitor := monitoring.NewMonitor()

	built := circuit.Builder{}.
		WithName("RegisterDemo").
		WithMonitor(monitor).
		Build()

	reg := storage.NewRegister(8, built.Creator)
	source := storage.NewConstantBits(storage.MakeBits(42, 8), built.Creator)
	built.Creator.LinkMany(source.Bits, reg.Data(), core.StandardDelay)

	if err := built.Finalize(); err != nil {
		panic(err)
	}

	recorder := trace.NewRecorder()
	recorder.Attach(built.Collection)

	built.Collection.Write(reg.Clock, core.High)
	built.Collection.PlayAll()
	built.Collection.Write(reg.Clock, core.Low)
	built.Collection.PlayAll()

	value, ok := reg.ReadUint64(built.Collection)
	if !ok {
		fmt.Println("register holds a non-binary value")
	} else {
		fmt.Printf("register holds %d\n", value)
	}

	if err := recorder.SaveWaveform("gatesim_trace.txt"); err != nil {
		fmt.Println("failed to save waveform:", err)
	}

	atexit.Exit(0)
}
