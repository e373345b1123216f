package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// base holds the memoized results of a node, its subscribers and the
// subscriptions it holds on upstream nodes.
type base struct {
	result    []types.Value
	callbacks callbacks
	links     []*Subscription
}

func (b *base) Len() int {
	return len(b.result)
}

func (b *base) At(index int) (types.Value, error) {
	if err := checkIndex(index, len(b.result)); err != nil {
		return types.None(), err
	}

	return b.result[index], nil
}

func (b *base) FromEnd(distance int) (types.Value, error) {
	if distance < 0 || distance >= len(b.result) {
		return types.None(), errors.Newf(errors.ErrCodeIndexOutOfRange,
			"distance %d out of range for series of length %d", distance, len(b.result))
	}

	return b.result[len(b.result)-1-distance], nil
}

func (b *base) Tail() types.Value {
	return b.Value(len(b.result) - 1)
}

func (b *base) Value(index int) types.Value {
	if index < 0 || index >= len(b.result) {
		return types.None()
	}

	return b.result[index]
}

func (b *base) Subscribe(handler ChangeHandler) *Subscription {
	return b.callbacks.add(handler)
}

// Subscribers returns the number of active subscriptions on this node.
func (b *base) Subscribers() int {
	return b.callbacks.len()
}

func (b *base) Dispose() {
	for _, link := range b.links {
		link.Dispose()
	}

	b.links = nil
}

func (b *base) follow(sub *Subscription) {
	b.links = append(b.links, sub)
}

// store finalizes result[index] and notifies subscribers. index may be at
// most Len(), in which case the result is appended.
func (b *base) store(index int, v types.Value) {
	if index == len(b.result) {
		b.result = append(b.result, v)
	} else {
		b.result[index] = v
	}

	b.callbacks.emit(index, v)
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return errors.Newf(errors.ErrCodeIndexOutOfRange, "index %d out of range [0, %d)", index, length)
	}

	return nil
}

// Node pairs a source sequence with its computed results. result[i] is
// computed once from source[0..i] and result[0..i) and recomputed only when
// index i itself is updated.
//
// Updating an index other than the last one does not recompute later indices.
type Node[S any] struct {
	base

	source    []S
	calculate func(index int) types.Value
}

// newNode creates a node whose results are computed by calculate. The
// closure usually reads the node's own source and previous results.
func newNode[S any]() *Node[S] {
	return &Node[S]{}
}

// Add appends v to the source and computes the new result.
func (n *Node[S]) Add(v S) {
	n.source = append(n.source, v)
	index := len(n.source) - 1
	n.store(index, n.calculate(index))
}

// Update overwrites source[index] and recomputes result[index] only.
func (n *Node[S]) Update(index int, v S) error {
	if err := checkIndex(index, len(n.source)); err != nil {
		return err
	}

	n.overwrite(index, v)

	return nil
}

// SourceAt returns source[index].
func (n *Node[S]) SourceAt(index int) (S, error) {
	if err := checkIndex(index, len(n.source)); err != nil {
		var zero S

		return zero, err
	}

	return n.source[index], nil
}

func (n *Node[S]) overwrite(index int, v S) {
	n.source[index] = v
	n.store(index, n.calculate(index))
}

// set appends when index == Len() and overwrites otherwise. Missing indices
// in between are filled with fill.
func (n *Node[S]) set(index int, v S, fill func(index int) S) {
	for len(n.source) < index {
		n.Add(fill(len(n.source)))
	}

	if index == len(n.source) {
		n.Add(v)

		return
	}

	n.overwrite(index, v)
}

// sourceValue returns source[index] for value nodes, absent when out of range.
func sourceValue(n *Node[types.Value], index int) types.Value {
	if index < 0 || index >= len(n.source) {
		return types.None()
	}

	return n.source[index]
}

// link replays the upstream history into n and keeps n in sync with it.
func link[S any](n *Node[S], up Upstream[S]) {
	if up == nil {
		return
	}

	for i := 0; i < up.Len(); i++ {
		n.Add(up.Element(i))
	}

	n.follow(up.Subscribe(func(index int, _ types.Value) {
		n.set(index, up.Element(index), up.Element)
	}))
}

// newAnchor creates an identity node whose result is project(source[i]).
func newAnchor[S any](project func(S) types.Value) *Node[S] {
	n := newNode[S]()
	n.calculate = func(index int) types.Value {
		return project(n.source[index])
	}

	return n
}

func identity(v types.Value) types.Value {
	return v
}

func closeOf(bar types.Bar) types.Value {
	return types.ValueOf(bar.Close)
}

// NewIdentity creates a value node with result[i] = source[i]. A nil input
// creates a standalone node fed through Add and Update.
func NewIdentity(input Series) *Node[types.Value] {
	n := newAnchor(identity)
	link(n, Follow(input))

	return n
}

// NewBarIdentity creates a bar node whose results are the bar closes.
func NewBarIdentity(input Upstream[types.Bar]) *Node[types.Bar] {
	n := newAnchor(closeOf)
	link(n, input)

	return n
}
