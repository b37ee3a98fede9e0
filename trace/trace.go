// Package trace records a NodeCollection's event history via its
// core.HookPos hook positions and renders it as a waveform report.
package trace

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/holowire/logicsim/core"
)

// LevelEvent is a custom slog level between Info and Debug's usual
// neighbors, used for per-event trace lines that are too frequent for
// Info but still worth keeping outside Debug's broader net.
const LevelEvent slog.Level = slog.LevelInfo - 2

// Entry is one recorded occurrence: an event processed, a node written,
// or an element stepped, tagged with the tick it happened at.
type Entry struct {
	Tick    uint64
	Kind    string
	Node    core.NodeIndex
	State   core.LineState
	Element core.ElementIndex
}

// Recorder implements sim.Hook, accumulating Entries for every
// HookPosEventProcessed, HookPosNodeWritten, and HookPosElementStepped
// it's registered against.
type Recorder struct {
	Entries []Entry
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Attach registers r against all three of core's hook positions on c.
func (r *Recorder) Attach(c *core.NodeCollection) {
	c.AcceptHook(r)
}

// Func implements sim.Hook.
func (r *Recorder) Func(ctx sim.HookCtx) {
	c, _ := ctx.Domain.(*core.NodeCollection)
	tick := uint64(0)
	if c != nil {
		tick = c.CurrentTick()
	}

	switch ctx.Pos {
	case core.HookPosEventProcessed:
		info := ctx.Item.(core.EventHookInfo)
		r.Entries = append(r.Entries, Entry{Tick: tick, Kind: "event", Node: info.Target, State: info.State})
		slog.Log(context.Background(), LevelEvent, "event",
			slog.Uint64("tick", tick), slog.Int("node", int(info.Target)), slog.String("state", info.State.String()))
	case core.HookPosNodeWritten:
		info := ctx.Item.(core.WriteHookInfo)
		r.Entries = append(r.Entries, Entry{Tick: tick, Kind: "write", Node: info.Target, State: info.State})
	case core.HookPosElementStepped:
		info := ctx.Item.(core.StepHookInfo)
		r.Entries = append(r.Entries, Entry{Tick: tick, Kind: "step", Node: info.Cause, Element: info.Element})
	}
}

// WriteWaveform renders a recorder's entries as a table to w.
func (r *Recorder) WriteWaveform(w *os.File) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Event Trace")
	t.AppendHeader(table.Row{"Tick", "Kind", "Node", "State", "Element"})
	for _, e := range r.Entries {
		t.AppendRow(table.Row{e.Tick, e.Kind, int(e.Node), e.State.String(), int(e.Element)})
	}
	t.Render()
}

// SaveWaveform renders the waveform report to filename.
func (r *Recorder) SaveWaveform(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("trace: creating waveform file: %w", err)
	}
	defer f.Close()

	r.WriteWaveform(f)
	return nil
}
