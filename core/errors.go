package core

import "fmt"

// ConstructionError reports a problem detected while absorbing a staged
// NodeCreator into a live NodeCollection. These are programmer errors,
// not ordinary simulation outcomes -- LineState values (Floating,
// Conflict) carry anomalous signal states, never errors.
type ConstructionError struct {
	// Node is the node two elements both tried to claim.
	Node NodeIndex
	// First and Second are the indices of the two elements racing to
	// claim Node; Second is the one Absorb was processing when the
	// conflict was detected.
	First, Second ElementIndex
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf(
		"core: node %d already claimed by element %d, element %d also tried to claim it",
		e.Node, e.First, e.Second,
	)
}
