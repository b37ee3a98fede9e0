package core

import "github.com/sarchlab/akita/v4/sim"

// NodeCollection is the live simulation: it absorbs staged NodeCreator
// sessions, runs the event loop, invokes element Step on node changes,
// and answers reads. It is not safe for concurrent use -- the scheduling
// model is single-threaded and cooperative by design (see SPEC_FULL.md §5).
type NodeCollection struct {
	*sim.HookableBase

	name string

	nodes    []node
	elements []Element
	events   eventQueue

	currentTick uint64

	eventIDCounter uint64
	linkIDCounter  uint64
	forceIDCounter uint64

	resolve func(lows, highs int) LineState
}

// Option configures a NodeCollection at construction time.
type Option func(*NodeCollection)

// WithName sets the collection's name, used only for diagnostics (hook
// contexts, trace reports).
func WithName(name string) Option {
	return func(c *NodeCollection) { c.name = name }
}

// WithUndrivenFloating switches the wire-resolution table so a node with
// no influence at all reads as Floating rather than Low. The default
// (Low) is the spec-pinned behavior; this option exists for callers that
// want the more physically faithful variant (see DESIGN.md).
func WithUndrivenFloating() Option {
	return func(c *NodeCollection) { c.resolve = resolveWireFloating }
}

// NewNodeCollection creates an empty, live simulation.
func NewNodeCollection(opts ...Option) *NodeCollection {
	c := &NodeCollection{
		HookableBase: sim.NewHookableBase(),
		resolve:      resolveWire,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name implements sim.Named, so a NodeCollection can itself be used as a
// hook Domain.
func (c *NodeCollection) Name() string { return c.name }

// CurrentTick returns the scheduler's current simulated time.
func (c *NodeCollection) CurrentTick() uint64 { return c.currentTick }

func (c *NodeCollection) ensureNode(n NodeIndex) {
	for len(c.nodes) <= int(n) {
		c.nodes = append(c.nodes, newNode())
	}
}

// Absorb commits a staged NodeCreator session: every element it
// registered claims ownership of the nodes it declares via Nodes(), and
// every link declaration becomes a symmetric adjacency entry with a
// freshly minted link id. Returns a *ConstructionError if two elements
// claim the same node; this is a programmer error the caller is expected
// to treat as fatal (see DESIGN.md / SPEC_FULL.md §7).
//
// After claiming and linking, every element absorbed in this call is
// Step'd exactly once. Without this, a source element with nothing
// upstream of it (ConstantBit, a ROM's internal ConstantBits) would sit
// forever at its zero-influence default and never post the self-event
// that actually drives its value -- Step is otherwise only ever invoked
// reactively, in response to an event landing on one of an element's own
// nodes, and nothing upstream of a source ever produces such an event.
// Priming posts whatever self-events each element's Step writes at the
// current tick (none for an inert Pin or a Write no-op); from there
// the ordinary event loop carries every dependent element to a
// consistent fixed point, the same as if each had just been written to
// for the first time. This is a necessary completion of the staged
// construction protocol, not a behavioral change to it (see DESIGN.md).
func (c *NodeCollection) Absorb(creator *NodeCreator) error {
	for _, e := range creator.elements {
		if err := c.addElement(e); err != nil {
			return err
		}
	}

	for _, pl := range creator.links {
		c.link(pl.a, pl.b, pl.delay)
	}

	for _, e := range creator.elements {
		e.Step(c)
	}

	return nil
}

func (c *NodeCollection) addElement(e Element) error {
	idx := ElementIndex(len(c.elements))

	for _, n := range e.Nodes() {
		c.ensureNode(n)
		nd := &c.nodes[n]
		if nd.hasElement {
			return &ConstructionError{Node: n, First: nd.elementIndex, Second: idx}
		}
		nd.hasElement = true
		nd.elementIndex = idx
	}

	c.elements = append(c.elements, e)
	return nil
}

func (c *NodeCollection) link(a, b NodeIndex, delay PropagationDelay) {
	c.ensureNode(a)
	c.ensureNode(b)
	c.linkIDCounter++
	id := c.linkIDCounter
	c.nodes[a].linkedWith = append(c.nodes[a].linkedWith, link{linkedTo: b, delay: delay, id: id})
	c.nodes[b].linkedWith = append(c.nodes[b].linkedWith, link{linkedTo: a, delay: delay, id: id})
}

// Write drives n to newState. If newState already equals n's last
// written output state, this is a no-op: no event, no hook. Otherwise it
// records the new output state and posts a self-event (target == forcer
// == n) at the current tick, which -- once processed by Play -- installs
// the influence on n itself and propagates to neighbors via the normal
// rule. The self-event is not an inline mutation: Step is never
// re-entered synchronously from Write, so other stimuli at the same
// instant are still ordered strictly by event id.
func (c *NodeCollection) Write(n NodeIndex, newState LineState) {
	c.ensureNode(n)
	if newState == c.nodes[n].outputState {
		return
	}
	c.WriteLater(n, newState, 0)
}

// WriteLater behaves like Write but schedules the self-event delta ticks
// in the future, and -- unlike Write -- always posts a new event, even if
// newState equals the node's current output state. This asymmetry is
// deliberate: Write's no-op check exists precisely to make immediate
// same-state writes free, while an explicitly delayed write (used to
// stage clock edges and timed test stimuli) always represents a distinct
// scheduled occurrence.
func (c *NodeCollection) WriteLater(n NodeIndex, newState LineState, delta PropagationDelay) {
	c.ensureNode(n)
	c.nodes[n].outputState = newState

	c.eventIDCounter++
	c.forceIDCounter++

	evt := lineStateEvent{
		target:   n,
		newState: newState,
		time:     c.currentTick + uint64(delta),
		id:       c.eventIDCounter,
		forcer:   n,
		forceID:  c.forceIDCounter,
	}
	c.events.push(evt)

	if c.HookableBase != nil {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosNodeWritten,
			Item:   WriteHookInfo{Target: n, State: newState, Delay: delta},
		})
	}
}

// Read returns n's derived input state: the fold of its influences,
// mapped through the collection's wire-resolution table. It never
// mutates.
func (c *NodeCollection) Read(n NodeIndex) LineState {
	c.ensureNode(n)
	return c.nodes[n].inputState(c.resolve)
}

// applyInfluence updates (or inserts) the influence e.forcer holds on the
// target node, per the dedup rule: a stale force_id (older than what's
// already recorded for that forcer) leaves the influence untouched. This
// gates only the influence-record write -- propagation and Step below
// still run unconditionally, matching the reference implementation (see
// SPEC_FULL.md §4.3).
func (c *NodeCollection) applyInfluence(e lineStateEvent) {
	target := &c.nodes[e.target]
	if existing := target.findInfluence(e.forcer); existing != nil {
		if existing.ForceID >= e.forceID {
			return
		}
		existing.ForceKind = e.newState
		existing.ForceID = e.forceID
		return
	}
	target.influences = append(target.influences, Influence{
		ForceGenerator: e.forcer,
		ForceKind:      e.newState,
		ForceID:        e.forceID,
	})
}

// playEvent applies e's influence, then propagates it along every
// adjacency link of the target node, skipping any neighbor that already
// has a newer-or-equal influence from the same forcer.
func (c *NodeCollection) playEvent(e lineStateEvent) {
	c.currentTick = e.time
	c.applyInfluence(e)

	for _, adj := range c.nodes[e.target].linkedWith {
		neighbor := &c.nodes[adj.linkedTo]
		if existing := neighbor.findInfluence(e.forcer); existing != nil && existing.ForceID >= e.forceID {
			continue
		}

		c.eventIDCounter++
		c.events.push(lineStateEvent{
			target:   adj.linkedTo,
			newState: e.newState,
			time:     c.currentTick + uint64(adj.delay),
			id:       c.eventIDCounter,
			forcer:   e.forcer,
			forceID:  e.forceID,
		})
	}

	if c.HookableBase != nil {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosEventProcessed,
			Item: EventHookInfo{
				Target:  e.target,
				State:   e.newState,
				Time:    e.time,
				Forcer:  e.forcer,
				ForceID: e.forceID,
			},
		})
	}
}

// Play pops the earliest-ordered pending event and processes it,
// returning false if the queue was already empty. The typical use is
// "pump until quiescent": `for c.Play() { }`.
func (c *NodeCollection) Play() bool {
	evt, ok := c.events.pop()
	if !ok {
		return false
	}

	nd := &c.nodes[evt.target]
	hasElement, elementIndex := nd.hasElement, nd.elementIndex

	c.playEvent(evt)

	if hasElement {
		c.elements[elementIndex].Step(c)
		if c.HookableBase != nil {
			c.InvokeHook(sim.HookCtx{
				Domain: c,
				Pos:    HookPosElementStepped,
				Item:   StepHookInfo{Element: elementIndex, Cause: evt.target},
			})
		}
	}

	return true
}

// PlayAll pumps the event queue to quiescence, i.e. until Play returns
// false. It returns the number of events processed. Calling it again
// immediately afterwards is a no-op (returns 0): pumping to quiescence is
// idempotent.
func (c *NodeCollection) PlayAll() int {
	n := 0
	for c.Play() {
		n++
	}
	return n
}
