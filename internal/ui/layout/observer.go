package layout

import (
	"github.com/sadopc/gopanel/internal/element"
	"github.com/sadopc/gopanel/internal/observe"
)

// Size is the measured size of an element.
type Size struct {
	Width  int
	Height int
}

// Unmeasured is reported for an element that has not been laid out yet.
var Unmeasured = Size{Width: -1, Height: -1}

type tracked struct {
	ref   *element.Ref
	value *observe.Value[Size]
}

// Observer reports element sizes reactively. Refresh re-measures every
// tracked element and notifies subscribers of the ones that changed.
type Observer struct {
	tracked []tracked
}

// NewObserver returns an observer tracking nothing.
func NewObserver() *Observer {
	return &Observer{}
}

// Observe starts tracking ref and returns its size value. Observing the same
// ref twice returns the same value.
func (o *Observer) Observe(ref *element.Ref) *observe.Value[Size] {
	for _, t := range o.tracked {
		if t.ref == ref {
			return t.value
		}
	}
	v := observe.NewValue(Unmeasured)
	o.tracked = append(o.tracked, tracked{ref: ref, value: v})
	return v
}

// Refresh measures every attached element.
func (o *Observer) Refresh() {
	for _, t := range o.tracked {
		el := t.ref.Current()
		if el == nil {
			continue
		}
		t.value.Set(Size{Width: el.Rect.Width, Height: el.Rect.Height})
	}
}
