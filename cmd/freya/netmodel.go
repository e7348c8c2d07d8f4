package main

import "freya/internal/inet"

// symbolLabel names one of Lafont's three interaction combinators. CON and
// DUP both carry two auxiliary ports; ERA carries none, so it erases
// whatever subtree meets it instead of duplicating or passing through.
type symbolLabel uint8

const (
	labelCon symbolLabel = iota
	labelDup
	labelEra
)

func (l symbolLabel) String() string {
	switch l {
	case labelCon:
		return "CON"
	case labelDup:
		return "DUP"
	case labelEra:
		return "ERA"
	default:
		return "?"
	}
}

func (l symbolLabel) arity() int {
	if l == labelEra {
		return 0
	}
	return 2
}

// Symbol is the demo net's node payload: a combinator label plus an ID
// assigned at construction time, used only for display and snapshotting.
type Symbol struct {
	Label symbolLabel
	ID    int
}

// symbolSignature implements inet.Signature[*Symbol] with the three
// interaction-combinator rewrite rules: same-label agents annihilate (their
// auxiliary ports wire straight across to each other), an eraser meeting
// anything erases the other side's whole neighborhood, and two different
// non-erasing agents commute through a grid of fresh copies. registry
// records every node ever created so the CLI can snapshot the graph after
// a rewrite introduces new nodes mid-flight.
type symbolSignature struct {
	counter  *int
	registry *[]*inet.DataNode[*Symbol]
}

// newSymbolSignature returns a fresh signature with its own node counter
// and registry, ready to build a demo net.
func newSymbolSignature() symbolSignature {
	counter := 0
	registry := make([]*inet.DataNode[*Symbol], 0, 8)
	return symbolSignature{counter: &counter, registry: &registry}
}

func (symbolSignature) NumAuxiliaryPorts(data *Symbol) int {
	return data.Label.arity()
}

func (sig symbolSignature) Link(leftData, rightData *Symbol, leftPorts, rightPorts []inet.Port[*Symbol]) {
	switch {
	case leftData.Label == labelEra && rightData.Label == labelEra:
		// two erasers meeting: both vanish, nothing left to wire
	case leftData.Label == labelEra:
		sig.eraseInto(rightPorts)
	case rightData.Label == labelEra:
		sig.eraseInto(leftPorts)
	case leftData.Label == rightData.Label:
		for i := range leftPorts {
			inet.LinkPair(leftPorts[i], rightPorts[i])
		}
	default:
		sig.commute(leftData.Label, rightData.Label, leftPorts, rightPorts)
	}
}

// eraseInto attaches a fresh ERA node to every port in ports, consuming the
// subtree that used to hang off the node that just got erased.
func (sig symbolSignature) eraseInto(ports []inet.Port[*Symbol]) {
	for _, p := range ports {
		era := sig.newNode(labelEra)
		inet.LinkPair(era.Principal(), p)
	}
}

// commute is Lafont's rule for two distinct non-erasing agents meeting
// principal-to-principal: len(rightPorts) fresh copies of the left agent
// and len(leftPorts) fresh copies of the right agent are created, each
// original neighbor is reattached to one copy's principal port, and the
// copies' auxiliary ports are cross-wired into a grid.
func (sig symbolSignature) commute(leftLabel, rightLabel symbolLabel, leftPorts, rightPorts []inet.Port[*Symbol]) {
	leftCopies := make([]*inet.DataNode[*Symbol], len(rightPorts))
	for j := range leftCopies {
		leftCopies[j] = sig.newNode(leftLabel)
	}
	rightCopies := make([]*inet.DataNode[*Symbol], len(leftPorts))
	for k := range rightCopies {
		rightCopies[k] = sig.newNode(rightLabel)
	}

	for j, copyNode := range leftCopies {
		inet.LinkPair(copyNode.Principal(), rightPorts[j])
	}
	for k, copyNode := range rightCopies {
		inet.LinkPair(copyNode.Principal(), leftPorts[k])
	}
	for j, lc := range leftCopies {
		for k, rc := range rightCopies {
			inet.LinkPair(lc.Auxiliary(k), rc.Auxiliary(j))
		}
	}
}

func (sig symbolSignature) newNode(label symbolLabel) *inet.DataNode[*Symbol] {
	*sig.counter++
	data := &Symbol{Label: label, ID: *sig.counter}
	node := inet.NewDataNode[*Symbol, symbolSignature](sig, data)
	*sig.registry = append(*sig.registry, node)
	return node
}

// namedOutput pairs one of the demo net's boundary anchors with a stable
// display name.
type namedOutput struct {
	name string
	node *inet.OutputNode[*Symbol]
}

// demoNet is a small net wired to show one commutation redex and the
// further redexes it produces: a CON meeting a DUP, whose fresh DUP copies
// then meet an ERA (erase) and a second CON (a second commutation). No
// two agents with the same label meet, so annihilation never fires here.
type demoNet struct {
	sig     symbolSignature
	outputs []namedOutput
}

// buildDemoNet constructs the net described on demoNet and returns it ready
// for its first (and only initially pending) interaction.
func buildDemoNet() *demoNet {
	sig := newSymbolSignature()

	con := sig.newNode(labelCon)
	dup := sig.newNode(labelDup)
	era := sig.newNode(labelEra)
	con2 := sig.newNode(labelCon)

	outDupA := &namedOutput{name: "leafL", node: inet.NewOutputNode[*Symbol]()}
	outDupB := &namedOutput{name: "leafR", node: inet.NewOutputNode[*Symbol]()}
	outCon2A := &namedOutput{name: "tailA", node: inet.NewOutputNode[*Symbol]()}
	outCon2B := &namedOutput{name: "tailB", node: inet.NewOutputNode[*Symbol]()}

	// The pending redex: con's principal meets dup's principal.
	inet.LinkPair(con.Principal(), dup.Principal())

	// con's auxiliary neighbors: an eraser and a second constructor, so the
	// commutation that follows immediately produces two redexes, neither of
	// which creates a further one.
	inet.LinkPair(con.Auxiliary(0), era.Principal())
	inet.LinkPair(con.Auxiliary(1), con2.Principal())

	// con2's own auxiliary ports terminate at boundary anchors.
	inet.LinkPair(con2.Auxiliary(0), outCon2A.node.Connection())
	inet.LinkPair(con2.Auxiliary(1), outCon2B.node.Connection())

	// dup's auxiliary ports terminate at boundary anchors: the "two
	// copies" a duplicator produces, made visible once the redex fires.
	inet.LinkPair(dup.Auxiliary(0), outDupA.node.Connection())
	inet.LinkPair(dup.Auxiliary(1), outDupB.node.Connection())

	return &demoNet{
		sig: sig,
		outputs: []namedOutput{
			*outDupA, *outDupB, *outCon2A, *outCon2B,
		},
	}
}

// findReadyRedex scans the signature's registry for two distinct nodes
// whose principal ports are linked to each other, the only condition
// Interact requires. Nodes Interact has already consumed are left in the
// registry fully disconnected, so GetLinked simply reports them as not
// currently linked and the scan skips them.
func findReadyRedex(sig symbolSignature) (a, b *inet.DataNode[*Symbol], ok bool) {
	registry := *sig.registry
	for i, candidateA := range registry {
		linked, linkedOK := inet.GetLinked(candidateA.Principal())
		if !linkedOK {
			continue
		}
		for j, candidateB := range registry {
			if i == j {
				continue
			}
			if linked.Equal(candidateB.Principal()) {
				return candidateA, candidateB, true
			}
		}
	}
	return nil, nil, false
}

// step fires the next pending redex, if any, and reports whether it did.
func (d *demoNet) step() bool {
	a, b, ok := findReadyRedex(d.sig)
	if !ok {
		return false
	}
	inet.Interact[*Symbol, symbolSignature](d.sig, a, b)
	return true
}

// runToNormalForm fires every pending redex until none remain, returning
// how many Interact calls it took.
func (d *demoNet) runToNormalForm() int {
	count := 0
	for d.step() {
		count++
	}
	return count
}
