package core

import "github.com/sarchlab/akita/v4/sim"

// Hook positions a NodeCollection invokes at, mirroring the
// package-level HookPos vars a Port defines for message send/recv. These
// let an observer (package trace) record a waveform without the engine
// itself depending on any logging library.
var (
	// HookPosEventProcessed marks a popped event having its influence
	// applied and propagated to neighbors.
	HookPosEventProcessed = &sim.HookPos{Name: "Event Processed"}
	// HookPosNodeWritten marks a Write/WriteLater call that posted a
	// self-event. A Write no-op posts nothing; WriteLater always posts,
	// even when the new state equals the current output_state.
	HookPosNodeWritten = &sim.HookPos{Name: "Node Written"}
	// HookPosElementStepped marks an element's Step being invoked by
	// Play. The priming Steps made by Absorb post no hook.
	HookPosElementStepped = &sim.HookPos{Name: "Element Stepped"}
)

// EventHookInfo is the Item carried by a HookPosEventProcessed HookCtx.
type EventHookInfo struct {
	Target  NodeIndex
	State   LineState
	Time    uint64
	Forcer  NodeIndex
	ForceID uint64
}

// WriteHookInfo is the Item carried by a HookPosNodeWritten HookCtx.
type WriteHookInfo struct {
	Target NodeIndex
	State  LineState
	Delay  PropagationDelay
}

// StepHookInfo is the Item carried by a HookPosElementStepped HookCtx.
type StepHookInfo struct {
	Element ElementIndex
	Cause   NodeIndex
}
