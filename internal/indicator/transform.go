package indicator

import "github.com/rxtech-lab/argo-indicator/internal/types"

// Transform applies a stateless function to every source element.
type Transform[S any] struct {
	*Node[S]
}

// NewTransform creates a node with result[i] = f(source[i]). A nil input
// creates a standalone node fed through Add and Update.
func NewTransform[S any](input Upstream[S], f func(S) types.Value) *Transform[S] {
	t := &Transform[S]{Node: newAnchor(f)}
	link(t.Node, input)

	return t
}

// Map applies f to every value of a series.
func Map(input Series, f func(types.Value) types.Value) *Transform[types.Value] {
	return NewTransform(Follow(input), f)
}

// Bar projections used by bar-shaped composites.

func highOf(bar types.Bar) types.Value   { return types.ValueOf(bar.High) }
func lowOf(bar types.Bar) types.Value    { return types.ValueOf(bar.Low) }
func volumeOf(bar types.Bar) types.Value { return types.ValueOf(bar.Volume) }
func hl2Of(bar types.Bar) types.Value    { return types.ValueOf(bar.HL2()) }
func hlc3Of(bar types.Bar) types.Value   { return types.ValueOf(bar.HLC3()) }

// Field selects which bar field a projection reads.
type Field string

const (
	FieldClose  Field = "close"
	FieldHigh   Field = "high"
	FieldLow    Field = "low"
	FieldVolume Field = "volume"
	FieldHL2    Field = "hl2"
	FieldHLC3   Field = "hlc3"
)

func (f Field) projection() func(types.Bar) types.Value {
	switch f {
	case FieldHigh:
		return highOf
	case FieldLow:
		return lowOf
	case FieldVolume:
		return volumeOf
	case FieldHL2:
		return hl2Of
	case FieldHLC3:
		return hlc3Of
	default:
		return closeOf
	}
}

// Project creates a value series that reads one field of each bar.
func Project(bars Upstream[types.Bar], field Field) *Transform[types.Bar] {
	return NewTransform(bars, field.projection())
}
