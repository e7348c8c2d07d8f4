package inet

// LinkPair connects two previously-disconnected ports to each other. It
// panics if either port is already linked: a double-link is a caller bug,
// not a recoverable condition.
func LinkPair[T any](left, right Port[T]) {
	if _, ok := left.getLinked(); ok {
		panic("inet: left port already linked")
	}
	if _, ok := right.getLinked(); ok {
		panic("inet: right port already linked")
	}
	l, r := left, right
	left.setLinked(&r)
	right.setLinked(&l)
}

// UnlinkPair disconnects two ports that must currently be linked to each
// other.
func UnlinkPair[T any](left, right Port[T]) {
	if !IsPairLinked(left, right) {
		panic("inet: ports are not linked to each other")
	}
	left.setLinked(nil)
	right.setLinked(nil)
}

// IsPairLinked reports whether left and right are linked to each other.
func IsPairLinked[T any](left, right Port[T]) bool {
	ll, ok := left.getLinked()
	if !ok {
		return false
	}
	rl, ok := right.getLinked()
	if !ok {
		return false
	}
	return ll.Equal(right) && rl.Equal(left)
}

// GetLinked peeks at port's current neighbor without disconnecting either
// side. ok is false when port is not currently connected to anything.
func GetLinked[T any](port Port[T]) (Port[T], bool) {
	return port.getLinked()
}

// ContractWireNode removes a WireNode that sits between two ports, linking
// them directly to each other. Both sides of the wire, and the ports they
// point back to, must already be connected. The four cells involved are
// taken (cleared) before the final LinkPair so its disconnected-port
// precondition holds.
func ContractWireNode[T any](w *WireNode[T]) {
	left, ok := w.SideA().takeLinked()
	if !ok {
		panic("inet: wire node side A is not connected")
	}
	right, ok := w.SideB().takeLinked()
	if !ok {
		panic("inet: wire node side B is not connected")
	}

	leftBack, ok := left.takeLinked()
	if !ok {
		panic("inet: wire node backlink A is missing")
	}
	rightBack, ok := right.takeLinked()
	if !ok {
		panic("inet: wire node backlink B is missing")
	}

	if !leftBack.Equal(w.SideA()) {
		panic("inet: wire node backlink A is inconsistent")
	}
	if !rightBack.Equal(w.SideB()) {
		panic("inet: wire node backlink B is inconsistent")
	}

	LinkPair(left, right)
}

// InsertWireNode splices a new WireNode into port's existing connection,
// returning the inserted node. port must already be linked to some
// counterpart.
func InsertWireNode[T any](port Port[T]) *WireNode[T] {
	linked, ok := port.getLinked()
	if !ok {
		panic("inet: port should be connected")
	}
	backlink, ok := linked.getLinked()
	if !ok {
		panic("inet: backlink should exist")
	}
	if !port.Equal(backlink) {
		panic("inet: port/backlink mismatch")
	}

	wire := NewWireNode[T]()

	UnlinkPair(port, linked)
	LinkPair(port, wire.SideA())
	LinkPair(linked, wire.SideB())

	return wire
}

// Retract disconnects port from its counterpart and returns that
// counterpart.
func Retract[T any](port Port[T]) Port[T] {
	linked, ok := port.getLinked()
	if !ok {
		panic("inet: port is not connected")
	}
	UnlinkPair(port, linked)
	return linked
}

// Interact fires the single rewrite rule of the substrate: two nodes whose
// principal ports are linked to each other are unlinked, each of their
// auxiliary ports is spliced through a temporary wire, sig.Link rewires the
// two auxiliary port sets against each other, and the temporary wires are
// then contracted away — leaving the two nodes' former auxiliary neighbors
// connected exactly as sig.Link specified, with node_a and node_b
// themselves no longer part of the net.
func Interact[T any, S Signature[T]](sig S, nodeA, nodeB *DataNode[T]) {
	UnlinkPair(nodeA.Principal(), nodeB.Principal())

	auxA := nodeA.AuxiliaryPorts()
	auxB := nodeB.AuxiliaryPorts()

	wires := make([]*WireNode[T], 0, len(auxA)+len(auxB))
	for _, p := range auxA {
		wires = append(wires, InsertWireNode(p))
	}
	for _, p := range auxB {
		wires = append(wires, InsertWireNode(p))
	}

	linkedA := make([]Port[T], len(auxA))
	for i, p := range auxA {
		linkedA[i] = Retract(p)
	}
	linkedB := make([]Port[T], len(auxB))
	for i, p := range auxB {
		linkedB[i] = Retract(p)
	}

	sig.Link(nodeA.Data, nodeB.Data, linkedA, linkedB)

	for _, w := range wires {
		ContractWireNode(w)
	}
}
