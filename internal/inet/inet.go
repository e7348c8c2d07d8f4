// Package inet is a generic interaction-net execution substrate: nodes with
// typed principal/auxiliary ports connected by wires, and a single rewrite
// rule — interact — that fires whenever two principal ports are linked.
// It is independent of internal/core; nothing in the core type theory feeds
// it, and nothing here feeds back into elaboration. Execution is entirely
// single-threaded: ports are plain pointers, not behind any lock.
package inet

// Signature supplies the two pieces of domain knowledge the substrate needs
// about a node payload type T: how many auxiliary ports a node of that data
// carries, and how to rewire two nodes' auxiliary ports into each other when
// their principal ports interact.
type Signature[T any] interface {
	NumAuxiliaryPorts(data T) int
	Link(leftData, rightData T, leftPorts, rightPorts []Port[T])
}

// portCell holds one endpoint's link to its counterpart. A plain pointer
// field suffices: nothing in this package holds two live mutable views of
// the same cell at once, and the GC keeps cyclically-linked nodes alive
// for as long as any port can still reach them.
type portCell[T any] struct {
	linked *Port[T]
}

// DataNode is a node carrying payload data: one principal port and zero or
// more auxiliary ports, the count fixed at construction by Signature.
type DataNode[T any] struct {
	Data      T
	principal portCell[T]
	auxiliary []portCell[T]
}

// WireNode is a two-sided pass-through inserted temporarily while an
// interaction rewires a node's auxiliary ports; ContractWireNode removes it
// again once both sides are known.
type WireNode[T any] struct {
	sideA portCell[T]
	sideB portCell[T]
}

// OutputNode anchors a single port that is never itself subject to
// interaction — a fixed root the caller can observe or rewrite from outside.
type OutputNode[T any] struct {
	connection portCell[T]
}

type portKind uint8

const (
	portKindData portKind = iota
	portKindWire
	portKindOutput
)

type dataPortSelector struct {
	principal bool
	auxIndex  int
}

type wireSide uint8

const (
	sideA wireSide = iota
	sideB
)

// Port identifies one endpoint: a specific port on a specific node. Two
// Ports compare equal when they name the same endpoint (same node by
// identity, same slot), regardless of when they were obtained.
type Port[T any] struct {
	kind kindAndTarget[T]
}

type kindAndTarget[T any] struct {
	kind   portKind
	data   *DataNode[T]
	dsel   dataPortSelector
	wire   *WireNode[T]
	wside  wireSide
	output *OutputNode[T]
}

func dataPort[T any](node *DataNode[T], sel dataPortSelector) Port[T] {
	return Port[T]{kind: kindAndTarget[T]{kind: portKindData, data: node, dsel: sel}}
}

func wirePort[T any](node *WireNode[T], side wireSide) Port[T] {
	return Port[T]{kind: kindAndTarget[T]{kind: portKindWire, wire: node, wside: side}}
}

func outputPort[T any](node *OutputNode[T]) Port[T] {
	return Port[T]{kind: kindAndTarget[T]{kind: portKindOutput, output: node}}
}

// Equal reports whether p and o name the same port.
func (p Port[T]) Equal(o Port[T]) bool {
	if p.kind.kind != o.kind.kind {
		return false
	}
	switch p.kind.kind {
	case portKindData:
		return p.kind.data == o.kind.data && p.kind.dsel == o.kind.dsel
	case portKindWire:
		return p.kind.wire == o.kind.wire && p.kind.wside == o.kind.wside
	case portKindOutput:
		return p.kind.output == o.kind.output
	}
	return false
}

func (p Port[T]) cell() *portCell[T] {
	switch p.kind.kind {
	case portKindData:
		if p.kind.dsel.principal {
			return &p.kind.data.principal
		}
		return &p.kind.data.auxiliary[p.kind.dsel.auxIndex]
	case portKindWire:
		if p.kind.wside == sideA {
			return &p.kind.wire.sideA
		}
		return &p.kind.wire.sideB
	case portKindOutput:
		return &p.kind.output.connection
	}
	panic("inet: port names no node")
}

func (p Port[T]) getLinked() (Port[T], bool) {
	c := p.cell()
	if c.linked == nil {
		return Port[T]{}, false
	}
	return *c.linked, true
}

func (p Port[T]) setLinked(other *Port[T]) {
	p.cell().linked = other
}

// takeLinked detaches p's outgoing link without touching the remote
// backlink. Only the wire-splicing primitives use it; they restore the
// backlink invariant before returning.
func (p Port[T]) takeLinked() (Port[T], bool) {
	c := p.cell()
	if c.linked == nil {
		return Port[T]{}, false
	}
	out := *c.linked
	c.linked = nil
	return out, true
}

// NewDataNode constructs a DataNode for data, sizing its auxiliary ports via
// sig.NumAuxiliaryPorts. The node starts with every port disconnected.
func NewDataNode[T any, S Signature[T]](sig S, data T) *DataNode[T] {
	n := sig.NumAuxiliaryPorts(data)
	return &DataNode[T]{Data: data, auxiliary: make([]portCell[T], n)}
}

// Principal returns node's principal port.
func (n *DataNode[T]) Principal() Port[T] {
	return dataPort[T](n, dataPortSelector{principal: true})
}

// Auxiliary returns node's index-th auxiliary port.
func (n *DataNode[T]) Auxiliary(index int) Port[T] {
	return dataPort[T](n, dataPortSelector{auxIndex: index})
}

// AuxiliaryPorts returns every auxiliary port of node, in order.
func (n *DataNode[T]) AuxiliaryPorts() []Port[T] {
	ports := make([]Port[T], len(n.auxiliary))
	for i := range n.auxiliary {
		ports[i] = n.Auxiliary(i)
	}
	return ports
}

// NewWireNode constructs a disconnected WireNode.
func NewWireNode[T any]() *WireNode[T] {
	return &WireNode[T]{}
}

// SideA returns the wire's first side.
func (w *WireNode[T]) SideA() Port[T] { return wirePort[T](w, sideA) }

// SideB returns the wire's second side.
func (w *WireNode[T]) SideB() Port[T] { return wirePort[T](w, sideB) }

// NewOutputNode constructs a disconnected OutputNode.
func NewOutputNode[T any]() *OutputNode[T] {
	return &OutputNode[T]{}
}

// Connection returns the node's single port.
func (n *OutputNode[T]) Connection() Port[T] { return outputPort[T](n) }
