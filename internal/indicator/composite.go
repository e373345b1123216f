package indicator

import "github.com/rxtech-lab/argo-indicator/internal/types"

type disposer interface {
	Dispose()
}

// Composite is a node that wraps a fixed internal subgraph behind one anchor.
// Its calculate pushes source[i] into the anchor, which cascades through the
// subgraph, and then reads the output at i.
type Composite[S any] struct {
	*Node[S]

	anchor *Node[S]
	owned  []disposer
}

// NewComposite creates a composite whose anchor results are project(source[i]).
// Wire the subgraph to Anchor() and call Bind to finish construction.
func NewComposite[S any](project func(S) types.Value) *Composite[S] {
	return &Composite[S]{
		Node:   newNode[S](),
		anchor: newAnchor(project),
	}
}

func newValueComposite() *Composite[types.Value] {
	return NewComposite(identity)
}

func newBarComposite() *Composite[types.Bar] {
	return NewComposite(closeOf)
}

// Anchor returns the identity node through which the subgraph is updated.
func (c *Composite[S]) Anchor() *Node[S] {
	return c.anchor
}

// Bars exposes the anchor's raw source as an upstream.
func (c *Composite[S]) Bars() Upstream[S] {
	return Sourced(c.anchor)
}

// Own registers internal nodes to be disposed together with the composite.
func (c *Composite[S]) Own(nodes ...disposer) {
	c.owned = append(c.owned, nodes...)
}

// Bind sets the output read after each anchor push and, when input is not
// nil, replays and follows it.
func (c *Composite[S]) Bind(output func(index int) types.Value, input Upstream[S]) {
	c.calculate = func(index int) types.Value {
		c.anchor.set(index, c.source[index], c.sourceAt)

		return output(index)
	}
	link(c.Node, input)
}

func (c *Composite[S]) sourceAt(index int) S {
	return c.source[index]
}

// Dispose detaches the composite from its upstream and tears down its subgraph.
func (c *Composite[S]) Dispose() {
	for _, n := range c.owned {
		n.Dispose()
	}

	c.owned = nil
	c.Node.Dispose()
}
