// Package indicator is an incremental indicator engine: a reactive graph of
// numeric series where every node owns a source and a memoized result
// sequence, and downstream nodes recompute through change notifications.
//
// All recomputation runs synchronously on the caller's goroutine. A graph must
// not be mutated from more than one goroutine at a time.
package indicator

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
)

// ChangeHandler is invoked right after result[index] of a series is finalized.
type ChangeHandler func(index int, value types.Value)

// Series is a read-only view over computed results.
type Series interface {
	// Len returns the number of computed results.
	Len() int
	// At returns result[index] and fails when index is out of range.
	At(index int) (types.Value, error)
	// FromEnd returns the result distance positions before the tail. FromEnd(0) is the tail.
	FromEnd(distance int) (types.Value, error)
	// Tail returns the newest result, or an absent value when the series is empty.
	Tail() types.Value
	// Value returns result[index], or an absent value when index is outside the series.
	Value(index int) types.Value
	// Subscribe registers a handler called after every result change.
	Subscribe(handler ChangeHandler) *Subscription
}

// Indicator is a series that can be detached from the graph.
type Indicator interface {
	Series
	// Dispose unregisters the indicator from every upstream it follows.
	Dispose()
}

// Upstream is anything a node can follow: it has a length, notifies about
// changes and exposes the element at an index.
type Upstream[S any] interface {
	Len() int
	Subscribe(handler ChangeHandler) *Subscription
	Element(index int) S
}

type seriesUpstream struct {
	Series
}

func (s seriesUpstream) Element(index int) types.Value {
	return s.Value(index)
}

// Follow exposes the results of a series as an upstream of values.
func Follow(s Series) Upstream[types.Value] {
	if s == nil {
		return nil
	}

	return seriesUpstream{Series: s}
}

type sourcedUpstream[S any] struct {
	node *Node[S]
}

func (s sourcedUpstream[S]) Len() int {
	return s.node.Len()
}

func (s sourcedUpstream[S]) Subscribe(handler ChangeHandler) *Subscription {
	return s.node.Subscribe(handler)
}

func (s sourcedUpstream[S]) Element(index int) S {
	return s.node.source[index]
}

// Sourced exposes the raw source of a node as an upstream. It lets bar-shaped
// nodes feed other bar-shaped nodes.
func Sourced[S any](n *Node[S]) Upstream[S] {
	return sourcedUpstream[S]{node: n}
}
